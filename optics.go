package xraydb

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
)

// Polarization selects the incident x-ray polarization state for the
// Optics Engine's reflectivity and Darwin-width calculations.
type Polarization int

const (
	PolarizationS Polarization = iota
	PolarizationP
	PolarizationUnpolarized
)

// planckHCAngstrom is hc in eV*Angstrom, used throughout the optics engine
// to convert between photon energy and wavelength.
const planckHCAngstrom = 12398.4193

// rElectronAngstrom is the classical electron radius in Angstrom.
const rElectronAngstrom = 2.8179403262e-5

var diamondLattice = map[string]float64{
	"si": 5.4309,
	"ge": 5.6578,
	"c":  3.567,
}

// DarwinWidthResult is the result of a crystal Bragg-reflection Darwin-width
// calculation. It is named DarwinWidthResult rather than DarwinWidth because
// DarwinWidth is already the package-level function.
type DarwinWidthResult struct {
	Theta             float64
	ThetaOffset       float64
	ThetaWidth        float64
	ThetaFWHM         float64
	RockingThetaFWHM  float64
	EnergyWidth       float64
	EnergyFWHM        float64
	RockingEnergyFWHM float64
	Zeta              []float64
	DTheta            []float64
	DEnergy           []float64
	Intensity         []float64
	RockingCurve      []float64
}

// DarwinWidth computes the intrinsic angular/energy acceptance of a
// perfect-crystal Bragg reflection for one of the diamond-structure
// crystals Si, Ge, or C/diamond. lattice overrides the
// built-in lattice constant (Angstrom) when nonzero. m is the reflection
// order (use 1 for the fundamental). Returns (nil, nil) when the Bragg
// condition can't be satisfied at this energy (lambda > 2d).
func (db *DB) DarwinWidth(energy float64, crystal string, h, k, l int, lattice float64, pol Polarization, ignoreF1, ignoreF2 bool, m int) (*DarwinWidthResult, error) {
	hklSum := h + k + l
	var eqr float64
	switch {
	case hklSum%4 == 0 && h%2 == 0 && k%2 == 0 && l%2 == 0:
		eqr = 8.0
	case h%2 != 0 && k%2 != 0 && l%2 != 0:
		eqr = 4.0 * math.Sqrt2
	default:
		return nil, errDataf("darwin_width: hkl must all be even (sum divisible by 4) or all odd")
	}

	key := crystalKey(crystal)
	builtin, ok := diamondLattice[key]
	if !ok {
		return nil, errDataf("darwin_width: unsupported crystal %q, use Si, Ge, or C", crystal)
	}
	// Chantler and Waasmaier lookups need the canonical element symbol, not
	// the caller's spelling ("si", "diamond", ...).
	symbol := map[string]string{"si": "Si", "ge": "Ge", "c": "C"}[key]
	a := builtin
	if lattice != 0 {
		a = lattice
	}

	dspace := a / math.Sqrt(float64(h*h+k*k+l*l))
	lambda := planckHCAngstrom / energy
	if lambda > 2*dspace {
		return nil, nil
	}

	theta := math.Asin(lambda / (2 * dspace))
	q := 0.5 / dspace

	var f1, f2 float64
	if !ignoreF1 {
		vals, err := db.F1Chantler(symbol, []float64{energy})
		if err != nil {
			return nil, err
		}
		f1 = vals[0]
	}
	if !ignoreF2 {
		vals, err := db.F2Chantler(symbol, []float64{energy})
		if err != nil {
			return nil, err
		}
		f2 = vals[0]
	}

	mf := float64(m)
	gscale := 2 * dspace * dspace * rElectronAngstrom / (mf * a * a * a)

	switch pol {
	case PolarizationUnpolarized:
		eqr = eqr * (1 + math.Abs(math.Cos(2*theta))) / 2
	case PolarizationP:
		eqr = eqr * math.Abs(math.Cos(2*theta))
	}

	f0Zero, err := db.F0(symbol, []float64{0})
	if err != nil {
		return nil, err
	}
	f0Q, err := db.F0(symbol, []float64{q})
	if err != nil {
		return nil, err
	}

	fAnom := complex(f1, -f2)
	g0 := complex(8*gscale, 0) * (complex(f0Zero[0], 0) + fAnom)
	g := complex(eqr*gscale, 0) * (complex(f0Q[0], 0) + fAnom)

	total := cmplx.Abs(complex(2, 0) * g / complex(mf*math.Pi, 0))
	fwhm := total * 3 / (2 * math.Sqrt2)

	zetaOffset := real(g0) / math.Pi
	thetaOffset := math.Tan(theta) * zetaOffset

	zetaStep := 0.01 * total
	if zetaStep <= 0 {
		return nil, nil
	}
	zetaStart := -2.5 * zetaOffset
	zetaEnd := 4.5 * zetaOffset
	nPoints := int(math.Ceil((zetaEnd - zetaStart) / zetaStep))
	if nPoints < 1 {
		nPoints = 1
	}

	zeta := make([]float64, nPoints)
	for i := range zeta {
		zeta[i] = zetaStart + float64(i)*zetaStep
	}

	intensity := make([]float64, nPoints)
	one := complex(1, 0)
	for i, z := range zeta {
		xc := (complex(mf*math.Pi*z, 0) - g0) / g
		var r complex128
		switch {
		case real(xc) > 1:
			r = xc - cmplx.Sqrt(xc*xc-one)
		case real(xc) < -1:
			r = xc + cmplx.Sqrt(xc*xc-one)
		default:
			r = xc - complex(0, 1)*cmplx.Sqrt(one-xc*xc)
		}
		intensity[i] = real(r * cmplx.Conj(r))
	}

	denergy := make([]float64, nPoints)
	dtheta := make([]float64, nPoints)
	tanTheta := math.Tan(theta)
	for i, z := range zeta {
		denergy[i] = -z * energy
		dtheta[i] = z * tanTheta
	}

	intensitySum := floats.Sum(intensity)
	rockingCurve := make([]float64, nPoints)
	if intensitySum > 0 {
		conv := convolveSame(intensity, intensity)
		for i, v := range conv {
			rockingCurve[i] = v / intensitySum
		}
	}

	halfMax := floats.Max(rockingCurve) / 2

	first, last, count := -1, -1, 0
	for i, v := range rockingCurve {
		if v >= halfMax {
			if first == -1 {
				first = i
			}
			last = i
			count++
		}
	}

	var rockingEnergyFWHM, rockingThetaFWHM float64
	if count >= 2 {
		rockingEnergyFWHM = math.Abs(denergy[last] - denergy[first])
		rockingThetaFWHM = math.Abs(dtheta[last] - dtheta[first])
	}

	return &DarwinWidthResult{
		Theta:             theta,
		ThetaOffset:       thetaOffset,
		ThetaWidth:        total * tanTheta,
		ThetaFWHM:         fwhm * tanTheta,
		RockingThetaFWHM:  rockingThetaFWHM,
		EnergyWidth:       total * energy,
		EnergyFWHM:        fwhm * energy,
		RockingEnergyFWHM: rockingEnergyFWHM,
		Zeta:              zeta,
		DTheta:            dtheta,
		DEnergy:           denergy,
		Intensity:         intensity,
		RockingCurve:      rockingCurve,
	}, nil
}

// DarwinWidth is the package-level convenience wrapper for DarwinWidth.
func DarwinWidth(energy float64, crystal string, h, k, l int, lattice float64, pol Polarization, ignoreF1, ignoreF2 bool, m int) (*DarwinWidthResult, error) {
	return mustDefault().DarwinWidth(energy, crystal, h, k, l, lattice, pol, ignoreF1, ignoreF2, m)
}

func crystalKey(crystal string) string {
	switch crystal {
	case "Si", "si":
		return "si"
	case "Ge", "ge":
		return "ge"
	case "C", "c", "diamond":
		return "c"
	default:
		return ""
	}
}

// convolveSame computes the discrete convolution of a and b, cropped to
// the centered len(a)-length window (numpy's mode="same" for equal-length
// inputs).
func convolveSame(a, b []float64) []float64 {
	na, nb := len(a), len(b)
	fullLen := na + nb - 1
	full := make([]float64, fullLen)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			full[i+j] += ai * bj
		}
	}
	start := (fullLen - na) / 2
	return full[start : start+na]
}

// MirrorReflectivity computes single-layer mirror reflectivity |r|^2 at
// each grazing angle theta (radians), using the Fresnel coefficient with
// an optional Nevot-Croce roughness factor. This routine uses
// the n = 1 - delta - i*beta sign convention; MultilayerReflectivity
// deliberately uses the opposite sign on beta (see its doc comment).
func (db *DB) MirrorReflectivity(formula string, theta []float64, energy, density, roughnessAngstrom float64, pol Polarization) ([]float64, error) {
	oc, err := db.XrayDeltaBeta(formula, density, energy)
	if err != nil {
		return nil, err
	}
	n := complex(1-oc.Delta, -oc.Beta)
	qf := 2 * math.Pi * energy / planckHCAngstrom

	out := make([]float64, len(theta))
	for i, th := range theta {
		sinTh := math.Sin(th)
		cosTh := math.Cos(th)

		kiz := complex(qf*sinTh, 0)
		ktz := cmplx.Sqrt(n*n-complex(cosTh*cosTh, 0)) * complex(qf, 0)
		if pol == PolarizationP {
			ktz /= n
		}

		r := (kiz - ktz) / (kiz + ktz)
		if roughnessAngstrom > 1e-12 {
			r *= cmplx.Exp(complex(-2*roughnessAngstrom*roughnessAngstrom, 0) * kiz * ktz)
		}
		out[i] = real(r * cmplx.Conj(r))
	}
	return out, nil
}

// MirrorReflectivity is the package-level convenience wrapper for
// MirrorReflectivity.
func MirrorReflectivity(formula string, theta []float64, energy, density, roughnessAngstrom float64, pol Polarization) ([]float64, error) {
	return mustDefault().MirrorReflectivity(formula, theta, energy, density, roughnessAngstrom, pol)
}

// MultilayerLayer is one repeated unit of a Parratt-recursion stackup,
// ordered from the surface inward.
type MultilayerLayer struct {
	Formula    string
	ThicknessA float64
	Density    float64
}

// MultilayerReflectivity computes reflectivity |r|^2 at each grazing
// angle theta (radians) for a periodic multilayer stack over a substrate,
// via Parratt recursion. This routine uses the
// n = 1 - delta + i*beta sign convention on beta, the opposite of
// MirrorReflectivity — both conventions are kept because they reflect
// genuine sign differences in the two derivations' starting points.
// PolarizationUnpolarized is rejected with a DataError.
func (db *DB) MultilayerReflectivity(stackup []MultilayerLayer, substrateFormula string, substrateDensity float64, theta []float64, energy float64, nPeriods int, substrateRoughA, surfaceRoughA float64, pol Polarization) ([]float64, error) {
	if pol == PolarizationUnpolarized {
		return nil, errDataf("multilayer_reflectivity: use S or P polarization for multilayer")
	}
	if len(stackup) == 0 {
		return nil, errDataf("multilayer_reflectivity: stackup must be non-empty")
	}

	k0 := 2 * math.Pi * energy / planckHCAngstrom

	nVals := make([]complex128, len(stackup))
	for i, layer := range stackup {
		oc, err := db.XrayDeltaBeta(layer.Formula, layer.Density, energy)
		if err != nil {
			return nil, err
		}
		nVals[i] = complex(1-oc.Delta, oc.Beta)
	}

	var tAll []float64
	var nAll []complex128
	for p := 0; p < nPeriods; p++ {
		for i, layer := range stackup {
			tAll = append(tAll, layer.ThicknessA)
			nAll = append(nAll, nVals[i])
		}
	}

	ocSub, err := db.XrayDeltaBeta(substrateFormula, substrateDensity, energy)
	if err != nil {
		return nil, err
	}
	nSub := complex(1-ocSub.Delta, ocSub.Beta)

	totalLayers := len(tAll)
	last := totalLayers - 1
	one := complex(1, 0)
	twoI := complex(0, 2)

	out := make([]float64, len(theta))
	for ti, th := range theta {
		sinTh := math.Sin(th)
		cosTh := math.Cos(th)
		cos2 := complex(cosTh*cosTh, 0)

		kiz := complex(k0*sinTh, 0)
		kz := make([]complex128, totalLayers)
		for i, ni := range nAll {
			kz[i] = cmplx.Sqrt(ni*ni-cos2) * complex(k0, 0)
		}
		kzSub := cmplx.Sqrt(nSub*nSub-cos2) * complex(k0, 0)

		var rAmp complex128
		switch pol {
		case PolarizationS:
			rAmp = (kz[last] - kzSub) / (kz[last] + kzSub)
		case PolarizationP:
			a := kz[last] / nAll[last] * nSub
			b := kzSub / nSub * nAll[last]
			rAmp = (a - b) / (a + b)
		}

		if substrateRoughA >= 1e-12 {
			rAmp *= cmplx.Exp(complex(-2*substrateRoughA*substrateRoughA, 0) * kz[last] * kzSub)
		}

		for i := last - 1; i >= 0; i-- {
			var fresnelR complex128
			switch pol {
			case PolarizationS:
				fresnelR = (kz[i] - kz[i+1]) / (kz[i] + kz[i+1])
			case PolarizationP:
				a := kz[i] / nAll[i] * nAll[i+1]
				b := kz[i+1] / nAll[i+1] * nAll[i]
				fresnelR = (a - b) / (a + b)
			}
			p2 := cmplx.Exp(twoI * complex(tAll[i+1], 0) * kz[i+1])
			rAmp = (fresnelR + rAmp*p2) / (one + fresnelR*rAmp*p2)
		}

		var fresnelR complex128
		switch pol {
		case PolarizationS:
			fresnelR = (kiz - kz[0]) / (kiz + kz[0])
		case PolarizationP:
			fresnelR = (kiz - kz[0]/nAll[0]) / (kiz + kz[0]/nAll[0])
		}
		p2 := cmplx.Exp(twoI * complex(tAll[0], 0) * kz[0])
		rAmp = (fresnelR + rAmp*p2) / (one + fresnelR*rAmp*p2)

		if surfaceRoughA >= 1e-12 {
			rAmp *= cmplx.Exp(complex(-2*surfaceRoughA*surfaceRoughA, 0) * kiz * kz[0])
		}

		out[ti] = real(rAmp * cmplx.Conj(rAmp))
	}
	return out, nil
}

// MultilayerReflectivity is the package-level convenience wrapper for
// MultilayerReflectivity.
func MultilayerReflectivity(stackup []MultilayerLayer, substrateFormula string, substrateDensity float64, theta []float64, energy float64, nPeriods int, substrateRoughA, surfaceRoughA float64, pol Polarization) ([]float64, error) {
	return mustDefault().MultilayerReflectivity(stackup, substrateFormula, substrateDensity, theta, energy, nPeriods, substrateRoughA, surfaceRoughA, pol)
}

// CoatedReflectivity is a convenience wrapper around MultilayerReflectivity
// for a single coating layer (with an optional binder layer between
// coating and substrate) repeated exactly once.
func (db *DB) CoatedReflectivity(coating string, coatingThickA float64, coatingDensity float64, binder *MultilayerLayer, substrateFormula string, substrateDensity float64, theta []float64, energy, surfaceRoughA, substrateRoughA float64, pol Polarization) ([]float64, error) {
	stackup := []MultilayerLayer{{Formula: coating, ThicknessA: coatingThickA, Density: coatingDensity}}
	if binder != nil {
		stackup = append(stackup, *binder)
	}
	return db.MultilayerReflectivity(stackup, substrateFormula, substrateDensity, theta, energy, 1, substrateRoughA, surfaceRoughA, pol)
}

// CoatedReflectivity is the package-level convenience wrapper for
// CoatedReflectivity.
func CoatedReflectivity(coating string, coatingThickA float64, coatingDensity float64, binder *MultilayerLayer, substrateFormula string, substrateDensity float64, theta []float64, energy, surfaceRoughA, substrateRoughA float64, pol Polarization) ([]float64, error) {
	return mustDefault().CoatedReflectivity(coating, coatingThickA, coatingDensity, binder, substrateFormula, substrateDensity, theta, energy, surfaceRoughA, substrateRoughA, pol)
}
