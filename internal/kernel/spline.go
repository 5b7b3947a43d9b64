package kernel

import "sort"

// ElamSpline evaluates the cubic spline defined by knots xin/yin and
// pre-stored second derivatives yspl (as produced by the offline Elam table
// generator) at the query point x.
//
// Unlike Linear and LogLog, this does not clamp at the table endpoints: the
// bracket formula is evaluated using whichever bracket the partition point
// resolves to, which extrapolates for x outside [xin[0], xin[last]]. Callers
// that need clamped behavior (the cross-section engine) clamp x before
// calling this.
func ElamSpline(x float64, xin, yin, yspl []float64) float64 {
	n := len(xin)
	hi := sort.Search(n, func(i int) bool { return xin[i] >= x })
	if hi < 1 {
		hi = 1
	}
	if hi > n-1 {
		hi = n - 1
	}
	lo := hi - 1

	h := xin[hi] - xin[lo]
	a := (xin[hi] - x) / h
	b := (x - xin[lo]) / h

	return a*yin[lo] + b*yin[hi] +
		(h*h/6)*((a*a*a-a)*yspl[lo]+(b*b*b-b)*yspl[hi])
}

// ElamSplineSlice applies ElamSpline element-wise, preserving length and
// ordering. Callers that need clamping should clamp x beforehand.
func ElamSplineSlice(x []float64, xin, yin, yspl []float64) []float64 {
	out := make([]float64, len(x))
	for i, xi := range x {
		out[i] = ElamSpline(xi, xin, yin, yspl)
	}
	return out
}
