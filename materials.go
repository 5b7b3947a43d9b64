package xraydb

import (
	"math"

	"github.com/xraydb/xraydb/internal/kernel"
)

// Physical constants used throughout materials and optics calculations, kept
// as named constants rather than inlined literals since XrayDeltaBeta and the
// ion chamber both depend on the exact values.
const (
	hcEVNm = 1239.84193
	reCm   = 2.8179403262e-13
	avogadroNumber = 6.02214076e23
)

// MassFraction computes the element → mass-fraction map for a chemical
// formula: the parsed atom counts weighted by molar mass and normalized to
// the formula's total molar weight. It fails with a KindInvalidFormula
// error if the total weight is non-positive or non-finite — a zero,
// negative, NaN, or infinite weight makes the resulting density/mu
// meaningless regardless of cause.
func (db *DB) MassFraction(formula string) (map[string]float64, error) {
	counts, err := kernel.ParseFormula(formula)
	if err != nil {
		return nil, errInvalidFormula(formula, err.Error())
	}

	totalWeight := 0.0
	molarMass := make(map[string]float64, len(counts))
	for symbol, count := range counts {
		z, err := db.Resolve(symbol)
		if err != nil {
			return nil, errInvalidFormula(formula, "unknown element "+symbol)
		}
		el, _ := db.h.Index.ElementByZ(z)
		molarMass[symbol] = el.MolarMass
		totalWeight += count * el.MolarMass
	}
	if !(totalWeight > 0) || math.IsInf(totalWeight, 1) {
		return nil, errInvalidFormula(formula, "total molar weight is not positive and finite")
	}

	out := make(map[string]float64, len(counts))
	for symbol, count := range counts {
		out[symbol] = count * molarMass[symbol] / totalWeight
	}
	return out, nil
}

// MassFraction is the package-level convenience wrapper for MassFraction.
func MassFraction(formula string) (map[string]float64, error) {
	return mustDefault().MassFraction(formula)
}

// MaterialMu computes the mass-fraction-weighted Elam mass-attenuation
// coefficient of a compound, in 1/cm, at each of energies.
func (db *DB) MaterialMu(formula string, densityGPerCM3 float64, energies []float64, kind MuKind) ([]float64, error) {
	fractions, err := db.MassFraction(formula)
	if err != nil {
		return nil, err
	}
	if len(energies) == 0 {
		return []float64{}, nil
	}

	out := make([]float64, len(energies))
	for symbol, frac := range fractions {
		mu, err := db.MuElam(symbol, energies, kind)
		if err != nil {
			return nil, err
		}
		for i, m := range mu {
			out[i] += frac * m * densityGPerCM3
		}
	}
	return out, nil
}

// MaterialMu is the package-level convenience wrapper for MaterialMu.
func MaterialMu(formula string, densityGPerCM3 float64, energies []float64, kind MuKind) ([]float64, error) {
	return mustDefault().MaterialMu(formula, densityGPerCM3, energies, kind)
}

// OpticalConstants holds the complex refractive-index decrement δ,
// absorptive part β, and the 1/e attenuation length (cm) for one compound
// at one energy.
type OpticalConstants struct {
	Delta     float64
	Beta      float64
	AttenLenCM float64
}

// XrayDeltaBeta computes the complex refractive-index decrement and
// absorption length of a compound at a single x-ray energy.
// AttenLenCM is +Inf when Beta is zero.
func (db *DB) XrayDeltaBeta(formula string, densityGPerCM3, energy float64) (OpticalConstants, error) {
	counts, err := kernel.ParseFormula(formula)
	if err != nil {
		return OpticalConstants{}, errInvalidFormula(formula, err.Error())
	}

	totalWeight := 0.0
	sumF1 := 0.0
	sumF2 := 0.0
	for symbol, count := range counts {
		z, err := db.Resolve(symbol)
		if err != nil {
			return OpticalConstants{}, errInvalidFormula(formula, "unknown element "+symbol)
		}
		el, _ := db.h.Index.ElementByZ(z)
		totalWeight += count * el.MolarMass

		fprime, err := db.F1Chantler(symbol, []float64{energy})
		if err != nil {
			return OpticalConstants{}, err
		}
		f2, err := db.F2Chantler(symbol, []float64{energy})
		if err != nil {
			return OpticalConstants{}, err
		}
		sumF1 += count * (float64(z) + fprime[0])
		sumF2 += count * f2[0]
	}
	if !(totalWeight > 0) {
		return OpticalConstants{}, errInvalidFormula(formula, "total molar weight is not positive")
	}

	lambdaCM := 1e-7 * hcEVNm / energy
	prefactor := reCm * lambdaCM * lambdaCM * densityGPerCM3 * avogadroNumber / (2 * math.Pi * totalWeight)

	delta := prefactor * sumF1
	beta := prefactor * sumF2
	atlen := math.Inf(1)
	if beta != 0 {
		atlen = lambdaCM / (4 * math.Pi * beta)
	}
	return OpticalConstants{Delta: delta, Beta: beta, AttenLenCM: atlen}, nil
}

// XrayDeltaBeta is the package-level convenience wrapper for XrayDeltaBeta.
func XrayDeltaBeta(formula string, densityGPerCM3, energy float64) (OpticalConstants, error) {
	return mustDefault().XrayDeltaBeta(formula, densityGPerCM3, energy)
}
