package bspline

import "github.com/chewxy/math32"

// Tolerances used by [FloatEquals]. They are small enough that knots
// computed at single-precision resolution (e.g. j/n for small n) still
// compare equal to their intended value, but large enough to absorb the
// rounding a de Boor recursion accumulates over a handful of levels.
//
// The two are kept at the same order of magnitude deliberately: near
// magnitude 1 (where most knot vectors live, clamped into [0, 1]),
// relative and absolute error coincide, so a relative tolerance much
// looser than the absolute one would make values just outside the
// absolute tolerance snap back to "equal" anyway, defeating the point of
// having an absolute cutoff at domain boundaries.
const (
	AbsError float32 = 1e-6
	RelError float32 = 1e-6
)

// FloatEquals reports whether x and y are close enough to be treated as
// the same knot or control-point coordinate. It first tries the absolute
// tolerance; only when that fails does it fall back to a relative
// comparison against the larger-magnitude operand, which is the only way
// the division below cannot be by zero.
func FloatEquals(x, y float32) bool {
	if math32.Abs(x-y) <= AbsError {
		return true
	}
	var r float32
	if math32.Abs(x) > math32.Abs(y) {
		r = math32.Abs((x - y) / x)
	} else {
		r = math32.Abs((x - y) / y)
	}
	return r <= RelError
}
