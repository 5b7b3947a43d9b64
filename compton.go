package xraydb

import "github.com/xraydb/xraydb/internal/kernel"

// ComptonResult holds the scattered-photon and recoil-electron energetics
// for one incident energy.
type ComptonResult struct {
	Incident     float64
	Xray90Deg    float64
	XrayMean     float64
	ElectronMean float64
}

// ComptonEnergies linearly interpolates the Compton energetics table at
// incidentEnergy. Incident is echoed back unchanged; the other three fields
// are each interpolated against their own tabulated array.
func (db *DB) ComptonEnergies(incidentEnergy float64) ComptonResult {
	c := db.h.DB.Compton
	return ComptonResult{
		Incident:     incidentEnergy,
		Xray90Deg:    kernel.Linear(incidentEnergy, c.Incident, c.Xray90Deg),
		XrayMean:     kernel.Linear(incidentEnergy, c.Incident, c.XrayMean),
		ElectronMean: kernel.Linear(incidentEnergy, c.Incident, c.ElectronMean),
	}
}

// ComptonEnergies is the package-level convenience wrapper for
// ComptonEnergies.
func ComptonEnergies(incidentEnergy float64) ComptonResult {
	return mustDefault().ComptonEnergies(incidentEnergy)
}
