package xraydb

import (
	"math"

	"github.com/xraydb/xraydb/internal/kernel"
)

// MuKind selects which Elam mass-attenuation contribution MuElam computes.
// It is a tagged enumeration rather than a stringly-typed "kind" parameter;
// a value outside the declared constants is rejected with a DataError.
type MuKind int

const (
	Photo MuKind = iota
	Coherent
	Incoherent
	Total
)

const (
	elamMinEnergyEV = 100.0
	elamMaxEnergyEV = 800000.0
)

// MuElam returns the Elam mass-attenuation coefficient (cm^2/g) for element
// at each of energies (eV). Energies are clamped to [100, 800000] eV before
// evaluation. Total is the sum of the exponentiated photo, coherent, and
// incoherent contributions — not a separately-tabulated value.
func (db *DB) MuElam(element string, energies []float64, kind MuKind) ([]float64, error) {
	if len(energies) == 0 {
		return []float64{}, nil
	}
	z, err := db.Resolve(element)
	if err != nil {
		return nil, err
	}
	el, _ := db.h.Index.ElementByZ(z)

	clamped := kernel.ClampSlice(energies, elamMinEnergyEV, elamMaxEnergyEV)
	logE := make([]float64, len(clamped))
	for i, e := range clamped {
		logE[i] = math.Log(e)
	}

	switch kind {
	case Photo:
		rec, ok := db.h.Index.Photoabsorption(el.Symbol)
		if !ok {
			return nil, errDataf("mu_elam: no photoabsorption table for %s", el.Symbol)
		}
		return expSlice(kernel.ElamSplineSlice(logE, rec.LogEnergy, rec.LogMu, rec.LogMuSpline)), nil
	case Coherent:
		rec, ok := db.h.Index.Scattering(el.Symbol)
		if !ok {
			return nil, errDataf("mu_elam: no scattering table for %s", el.Symbol)
		}
		return expSlice(kernel.ElamSplineSlice(logE, rec.LogEnergy, rec.CoherentLogMu, rec.CoherentSpline)), nil
	case Incoherent:
		rec, ok := db.h.Index.Scattering(el.Symbol)
		if !ok {
			return nil, errDataf("mu_elam: no scattering table for %s", el.Symbol)
		}
		return expSlice(kernel.ElamSplineSlice(logE, rec.LogEnergy, rec.IncoherentLogMu, rec.IncoherentSpline)), nil
	case Total:
		photo, err := db.MuElam(element, energies, Photo)
		if err != nil {
			return nil, err
		}
		coh, err := db.MuElam(element, energies, Coherent)
		if err != nil {
			return nil, err
		}
		incoh, err := db.MuElam(element, energies, Incoherent)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(photo))
		for i := range out {
			out[i] = photo[i] + coh[i] + incoh[i]
		}
		return out, nil
	default:
		return nil, errDataf("mu_elam: unknown kind %d", kind)
	}
}

// MuElam is the package-level convenience wrapper for MuElam.
func MuElam(element string, energies []float64, kind MuKind) ([]float64, error) {
	return mustDefault().MuElam(element, energies, kind)
}

func expSlice(logVals []float64) []float64 {
	out := make([]float64, len(logVals))
	for i, v := range logVals {
		out[i] = math.Exp(v)
	}
	return out
}

func (db *DB) chantlerRecord(element string) (cr chantlerRecordShape, err error) {
	z, err := db.Resolve(element)
	if err != nil {
		return cr, err
	}
	el, _ := db.h.Index.ElementByZ(z)
	rec, ok := db.h.Index.Chantler(el.Symbol)
	if !ok {
		return cr, errDataf("chantler: no table for %s", el.Symbol)
	}
	return chantlerRecordShape{z: el.Z, energy: rec.EnergyEV, f1: rec.F1, f2: rec.F2, muPhoto: rec.MuPhoto, muIncoh: rec.MuIncoh, muTotal: rec.MuTotal}, nil
}

type chantlerRecordShape struct {
	z                         int
	energy, f1, f2            []float64
	muPhoto, muIncoh, muTotal []float64
}

func chantlerClamp(energies, table []float64) []float64 {
	lo := table[0]
	hi := math.Min(table[len(table)-1], 1e6)
	return kernel.ClampSlice(energies, lo, hi)
}

// F1Chantler linearly interpolates Chantler f' = f1 - Z + corrections at
// each of energies (eV), clamped to [energy[0], min(energy[last], 1e6)].
// Add Z to the result for the conventional f1.
func (db *DB) F1Chantler(element string, energies []float64) ([]float64, error) {
	if len(energies) == 0 {
		return []float64{}, nil
	}
	rec, err := db.chantlerRecord(element)
	if err != nil {
		return nil, err
	}
	clamped := chantlerClamp(energies, rec.energy)
	return kernel.LinearSlice(clamped, rec.energy, rec.f1), nil
}

// F1Chantler is the package-level convenience wrapper for F1Chantler.
func F1Chantler(element string, energies []float64) ([]float64, error) {
	return mustDefault().F1Chantler(element, energies)
}

// F2Chantler log-log interpolates f2 at each of energies (eV).
func (db *DB) F2Chantler(element string, energies []float64) ([]float64, error) {
	if len(energies) == 0 {
		return []float64{}, nil
	}
	rec, err := db.chantlerRecord(element)
	if err != nil {
		return nil, err
	}
	clamped := chantlerClamp(energies, rec.energy)
	return kernel.LogLogSlice(clamped, rec.energy, rec.f2), nil
}

// F2Chantler is the package-level convenience wrapper for F2Chantler.
func F2Chantler(element string, energies []float64) ([]float64, error) {
	return mustDefault().F2Chantler(element, energies)
}

// ChantlerMuKind selects which Chantler mass-attenuation array MuChantler
// reads from; it has no Coherent member because the Chantler tables don't
// carry a separate coherent-scattering column.
type ChantlerMuKind int

const (
	ChantlerTotal ChantlerMuKind = iota
	ChantlerPhoto
	ChantlerIncoherent
)

// MuChantler log-log interpolates the selected Chantler mass-attenuation
// array at each of energies (eV). ChantlerTotal returns the tabulated
// mu_photo+mu_incoh sum (the coherent contribution is not included — see
// upstream convention).
func (db *DB) MuChantler(element string, energies []float64, kind ChantlerMuKind) ([]float64, error) {
	if len(energies) == 0 {
		return []float64{}, nil
	}
	rec, err := db.chantlerRecord(element)
	if err != nil {
		return nil, err
	}
	var table []float64
	switch kind {
	case ChantlerTotal:
		table = rec.muTotal
	case ChantlerPhoto:
		table = rec.muPhoto
	case ChantlerIncoherent:
		table = rec.muIncoh
	default:
		return nil, errDataf("mu_chantler: unknown kind %d", kind)
	}
	clamped := chantlerClamp(energies, rec.energy)
	return kernel.LogLogSlice(clamped, rec.energy, table), nil
}

// MuChantler is the package-level convenience wrapper for MuChantler.
func MuChantler(element string, energies []float64, kind ChantlerMuKind) ([]float64, error) {
	return mustDefault().MuChantler(element, energies, kind)
}

// ChantlerEnergies returns the tabulated Chantler energies for element,
// filtered to [emin, emax]. Pass emin=0, emax=1e9 for no filtering (the
// spec's stated defaults).
func (db *DB) ChantlerEnergies(element string, emin, emax float64) ([]float64, error) {
	rec, err := db.chantlerRecord(element)
	if err != nil {
		return nil, err
	}
	var out []float64
	for _, e := range rec.energy {
		if e >= emin && e <= emax {
			out = append(out, e)
		}
	}
	return out, nil
}

// ChantlerEnergies is the package-level convenience wrapper for
// ChantlerEnergies.
func ChantlerEnergies(element string, emin, emax float64) ([]float64, error) {
	return mustDefault().ChantlerEnergies(element, emin, emax)
}
