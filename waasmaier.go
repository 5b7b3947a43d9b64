package xraydb

import "math"

// F0 evaluates the Waasmaier-Kirfel analytic f0(q) form for an ion label
// (e.g. "Fe2+", or a bare element symbol for the neutral atom) at each of
// q (1/Angstrom):
//
//	f0(q) = offset + sum_i scale[i] * exp(-exponents[i] * q^2)
func (db *DB) F0(ion string, q []float64) ([]float64, error) {
	rec, ok := db.h.Index.Waasmaier(ion)
	if !ok {
		return nil, errUnknownIon(ion)
	}
	out := make([]float64, len(q))
	for i, qi := range q {
		out[i] = waasmaierEval(rec, qi)
	}
	return out, nil
}

// F0 is the package-level convenience wrapper for F0.
func F0(ion string, q []float64) ([]float64, error) { return mustDefault().F0(ion, q) }

func waasmaierEval(rec WaasmaierRecord, q float64) float64 {
	sum := rec.Offset
	q2 := q * q
	for i := 0; i < 5; i++ {
		sum += rec.Scale[i] * math.Exp(-rec.Exponents[i]*q2)
	}
	return sum
}

// F0Ions returns every Waasmaier ion label (including the bare element
// symbol for the neutral form) tabulated for an element.
func (db *DB) F0Ions(element string) ([]string, error) {
	z, err := db.Resolve(element)
	if err != nil {
		return nil, err
	}
	el, _ := db.h.Index.ElementByZ(z)
	recs := db.h.Index.WaasmaierByElement(el.Symbol)
	out := make([]string, len(recs))
	for i, r := range recs {
		out[i] = r.Ion
	}
	return out, nil
}

// F0Ions is the package-level convenience wrapper for F0Ions.
func F0Ions(element string) ([]string, error) { return mustDefault().F0Ions(element) }
