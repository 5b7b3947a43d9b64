package xraydb

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// elementaryChargeCoulombs is q in the flux_in formula.
const elementaryChargeCoulombs = 1.602176634e-19

// defaultIonizationPotentialEV is used when a gas has no tabulated row.
const defaultIonizationPotentialEV = 32.0

// GasFraction is one (name, fraction) entry of an ion-chamber gas mixture.
// Name may be a materials-registry name, a registry formula (such as a bare
// element symbol like "Ar" that has a registry entry), or "N2"/"O2"
// (resolved to "nitrogen"/"oxygen" for property lookups). A name with no
// registry entry fails.
type GasFraction struct {
	Name     string
	Fraction float64
}

// IonChamberFluxes is the result of IonChamberFluxes: the incident photon
// flux and its split into transmitted, photoabsorbed, Compton-incoherent,
// and coherently-scattered fractions.
type IonChamberFluxes struct {
	Incident    float64
	Transmitted float64
	Photo       float64
	Incoherent  float64
	Coherent    float64
}

func resolveGasAlias(name string) string {
	switch name {
	case "N2":
		return "nitrogen"
	case "O2":
		return "oxygen"
	default:
		return name
	}
}

// IonChamberFluxes inverts a measured ion-chamber voltage into an incident
// photon flux and its per-interaction-kind decomposition. gases
// need not sum to 1; fractions are normalized internally. Fails with
// KindDataError if the summed gas fractions are not positive.
func (db *DB) IonChamberFluxes(gases []GasFraction, volts, lengthCM, energy, sensitivity float64, withCompton, bothCarriers bool) (IonChamberFluxes, error) {
	ncarriers := 1.0
	if bothCarriers {
		ncarriers = 2.0
	}

	fractions := make([]float64, len(gases))
	for i, g := range gases {
		fractions[i] = g.Fraction
	}
	gasTotal := floats.Sum(fractions)
	if gasTotal <= 0 {
		return IonChamberFluxes{}, errDataf("ionchamber_fluxes: gas fractions must sum to > 0")
	}

	energyCompton := 0.0
	if withCompton {
		energyCompton = db.ComptonEnergies(energy).ElectronMean
	}

	var muPhoto, muIncoh, muTotal, muCoh, ionPot float64
	eArr := []float64{energy}

	for _, g := range gases {
		weight := g.Fraction / gasTotal
		lookupName := resolveGasAlias(g.Name)

		ip, err := db.IonizationPotential(g.Name)
		if err != nil {
			ip, err = db.IonizationPotential(lookupName)
			if err != nil {
				ip = defaultIonizationPotentialEV
			}
		}

		photo, err := db.MaterialMuNamed(lookupName, 0, eArr, Photo)
		if err != nil {
			return IonChamberFluxes{}, err
		}
		total, err := db.MaterialMuNamed(lookupName, 0, eArr, Total)
		if err != nil {
			return IonChamberFluxes{}, err
		}
		incoh, err := db.MaterialMuNamed(lookupName, 0, eArr, Incoherent)
		if err != nil {
			return IonChamberFluxes{}, err
		}
		coh, err := db.MaterialMuNamed(lookupName, 0, eArr, Coherent)
		if err != nil {
			return IonChamberFluxes{}, err
		}

		muPhoto += photo[0] * weight
		muTotal += total[0] * weight
		muIncoh += incoh[0] * weight
		muCoh += coh[0] * weight
		ionPot += ip * weight
	}

	attenTotal := 1 - math.Exp(-lengthCM*muTotal)
	var attenPhoto, attenIncoh, attenCoh float64
	if muTotal > 0 {
		attenPhoto = attenTotal * muPhoto / muTotal
		attenIncoh = attenTotal * muIncoh / muTotal
		attenCoh = attenTotal * muCoh / muTotal
	}

	absorbedEnergy := ncarriers * (energy*attenPhoto + energyCompton*attenIncoh)

	fluxIn := 0.0
	if absorbedEnergy > 0 {
		fluxIn = volts * sensitivity * ionPot / (elementaryChargeCoulombs * absorbedEnergy)
	}

	return IonChamberFluxes{
		Incident:    fluxIn,
		Transmitted: fluxIn * (1 - attenTotal),
		Photo:       fluxIn * attenPhoto,
		Incoherent:  fluxIn * attenIncoh,
		Coherent:    fluxIn * attenCoh,
	}, nil
}

// IonChamber is the package-level convenience wrapper for DB.IonChamberFluxes.
// It is named IonChamber rather than IonChamberFluxes at package scope
// because IonChamberFluxes is already the exported result type.
func IonChamber(gases []GasFraction, volts, lengthCM, energy, sensitivity float64, withCompton, bothCarriers bool) (IonChamberFluxes, error) {
	return mustDefault().IonChamberFluxes(gases, volts, lengthCM, energy, sensitivity, withCompton, bothCarriers)
}
