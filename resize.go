package bspline

// Resize returns a spline with n control points and n knots added (n >
// 0) or removed (n < 0) at the end back selects: back == true grows or
// shrinks the trailing end, back == false the leading end. Added slots
// are left at their zero value; for leading growth, that means the
// existing data shifts up to make room at the front.
func Resize(b *BSpline, n int, back bool) (*BSpline, error) {
	if n == 0 {
		return b.Clone(), nil
	}

	deg := b.deg
	newNCtrlp := b.nCtrlp + n
	if newNCtrlp <= deg {
		return &BSpline{}, newError(KindDegGeNCtrlp, "resize would leave n_ctrlp=%d <= deg=%d", newNCtrlp, deg)
	}
	if n < 0 && newNCtrlp > b.nCtrlp {
		return &BSpline{}, newError(KindOverUnderflow, "n_ctrlp underflowed")
	}
	if n > 0 && newNCtrlp < b.nCtrlp {
		return &BSpline{}, newError(KindOverUnderflow, "n_ctrlp overflowed")
	}

	dim := b.dim
	newNKnots := b.nKnots + n
	minNCtrlp, minNKnots := b.nCtrlp, b.nKnots
	if n < 0 {
		minNCtrlp, minNKnots = newNCtrlp, newNKnots
	}

	result := &BSpline{
		deg:    deg,
		order:  b.order,
		dim:    dim,
		nCtrlp: newNCtrlp,
		nKnots: newNKnots,
		ctrlp:  make([]float32, newNCtrlp*dim),
		knots:  make([]float32, newNKnots),
	}

	var fromCtrlp, fromKnots, toCtrlp, toKnots int
	switch {
	case !back && n < 0:
		fromCtrlp, fromKnots = -n*dim, -n
	case !back && n > 0:
		toCtrlp, toKnots = n*dim, n
	}

	copy(result.ctrlp[toCtrlp:toCtrlp+minNCtrlp*dim], b.ctrlp[fromCtrlp:fromCtrlp+minNCtrlp*dim])
	copy(result.knots[toKnots:toKnots+minNKnots], b.knots[fromKnots:fromKnots+minNKnots])
	return result, nil
}
