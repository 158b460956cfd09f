package policy

import "math"

// phiInv is the inverse golden ratio, the bracket contraction factor of
// the golden-section search.
var phiInv = 1.0 / ((math.Sqrt(5.0) + 1.0) / 2.0)

// MaxUnimodal returns the argmax and maximum of f over the integer domain
// 0..n, assuming f is unimodal there.
//
// The bracket (lhs,rhs) starts at (0,n); two interior probes are placed by
// splitting at the golden ratio, rounded to the nearest integer. When the
// left probe's value is strictly smaller the left side is discarded and
// the bracket re-split against the advanced left probe; otherwise the
// right side is discarded and the re-split runs against the advanced right
// probe. The loop ends when the probes meet; f is then evaluated at the
// final probe so the returned value is always defined, even when rounding
// collapses the probes before the first comparison (small n).
//
// Contracts:
//   - n ≥ 0; f must be defined on 0..n.
//   - Unimodality is assumed, not checked: on violation a local optimum is
//     returned silently.
//
// Complexity: O(log n) probe evaluations, O(1) space.
func MaxUnimodal(n int, f func(int) float64) (int, float64) {
	var (
		lhs = 0
		rhs = n
		x1  = rhs - goldenStep(rhs-lhs)
		x2  = lhs + goldenStep(rhs-lhs)
	)

	for x1 < x2 {
		f1 := f(x1)
		f2 := f(x2)
		if f1 < f2 {
			lhs = x1
			x1 = x2
			x2 = rhs - goldenStep(rhs-x1)
		} else {
			rhs = x2
			x2 = x1
			x1 = lhs + goldenStep(x2-lhs)
		}
	}

	return x1, f(x1)
}

// goldenStep returns the golden-ratio fraction of a bracket width, rounded
// to the nearest integer. The rounding, not truncation, is load-bearing:
// it fixes the probe sequence, and with it the tie behavior every
// downstream table depends on.
func goldenStep(width int) int {
	return int(math.Round(float64(width) * phiInv))
}
