package bspline

// insertKnot builds a new spline with net.U() inserted n times into b,
// using the already-computed evaluation net. It assumes net is a valid
// interior evaluation of b (net.Case() == EvalInterior): the caller is
// expected to have already special-cased the endpoint cases, which need
// no insertion at all (see Split).
//
// The new buffers are assembled by copying the untouched head and tail
// of b's control points and knots, then filling the middle region from
// the net's diagonal: forward along the net's left edge for n points,
// across the apex for the remaining N-n points, then backward along the
// right edge for n more points. That traversal order is load-bearing —
// it is what makes n successive single-knot insertions collapse into one
// pass over the net.
func insertKnot(b *BSpline, net *DeBoorNet, n int) (*BSpline, error) {
	if net.s+n > b.order {
		return &BSpline{}, newError(KindMultiplicity, "s=%d + n=%d exceeds order=%d", net.s, n, b.order)
	}
	if n < 0 {
		return &BSpline{}, newError(KindOverUnderflow, "n=%d is negative", n)
	}
	if n == 0 {
		return b.Clone(), nil
	}

	deg := b.deg
	dim := b.dim
	k := net.k
	N := net.h + 1 // number of control points the insertion touches

	newNCtrlp := b.nCtrlp + n
	newNKnots := b.nKnots + n
	result := &BSpline{
		deg:    deg,
		order:  b.order,
		dim:    dim,
		nCtrlp: newNCtrlp,
		nKnots: newNKnots,
		ctrlp:  make([]float32, newNCtrlp*dim),
		knots:  make([]float32, newNKnots),
	}

	cidx := k - deg + N
	kidx := k + 1

	copy(result.ctrlp[:(k-deg)*dim], b.ctrlp[:(k-deg)*dim])
	copy(result.ctrlp[(cidx+n)*dim:], b.ctrlp[cidx*dim:])

	copy(result.knots[:k+1], b.knots[:k+1])
	copy(result.knots[kidx+n:], b.knots[kidx:])

	fromIdx, toIdx, stride := 0, (k-deg)*dim, N*dim
	for i := 0; i < n; i++ { // left flank, walking from the net's base
		copy(result.ctrlp[toIdx:toIdx+dim], net.points[fromIdx:fromIdx+dim])
		fromIdx += stride
		toIdx += dim
		stride -= dim
	}
	copy(result.ctrlp[toIdx:toIdx+(N-n)*dim], net.points[fromIdx:fromIdx+(N-n)*dim]) // straddling the apex

	fromIdx -= dim
	toIdx += (N - n) * dim
	stride = -(N - n + 1) * dim
	for i := 0; i < n; i++ { // right flank, walking back toward the base
		copy(result.ctrlp[toIdx:toIdx+dim], net.points[fromIdx:fromIdx+dim])
		fromIdx += stride
		stride -= dim
		toIdx += dim
	}

	for i := 0; i < n; i++ {
		result.knots[k+1+i] = net.u
	}
	return result, nil
}

// InsertKnot evaluates b at u and inserts the result n times, returning
// the new spline and the span index k' the inserted knot(s) now occupy.
// n == 0 is a no-op copy. It fails with KindMultiplicity if u's
// resulting multiplicity would exceed b.Order().
func InsertKnot(b *BSpline, u float32, n int) (*BSpline, int, error) {
	net, err := Evaluate(b, u)
	if err != nil {
		return &BSpline{}, 0, err
	}
	result, err := insertKnot(b, net, n)
	if err != nil {
		return &BSpline{}, 0, err
	}
	return result, net.k + n, nil
}
