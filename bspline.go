package bspline

// KnotType selects how [New] initializes a spline's knot vector.
type KnotType int

const (
	// KnotNone leaves the knot vector uninitialized (all zero), for
	// callers that fill it in themselves.
	KnotNone KnotType = iota
	// KnotOpened lays out knots uniformly across [0, 1].
	KnotOpened
	// KnotClamped clamps the first and last order knots to 0 and 1 and
	// spaces the interior knots uniformly between them.
	KnotClamped
)

// BSpline is a piecewise polynomial curve of degree deg in a space of
// dimension dim, with n_ctrlp control points and a knot vector of length
// n_knots = n_ctrlp + deg + 1. Control points are stored as n_ctrlp
// contiguous tuples of dim float32s; ControlPoint provides the
// (index, component) -> slot mapping.
//
// The zero value is an empty spline (as produced by a failed
// constructor) and carries no control points or knots.
type BSpline struct {
	deg, order, dim, nCtrlp, nKnots int
	ctrlp, knots                    []float32
}

// New allocates a BSpline of the given degree, dimension and
// control-point count, with its knot vector initialized per typ.
// Control points are left at their zero value.
func New(deg, dim, nCtrlp int, typ KnotType) (*BSpline, error) {
	if dim < 1 {
		return &BSpline{}, newError(KindDimZero, "dim=%d", dim)
	}
	if deg >= nCtrlp {
		return &BSpline{}, newError(KindDegGeNCtrlp, "deg=%d, n_ctrlp=%d", deg, nCtrlp)
	}
	order := deg + 1
	if order < deg {
		return &BSpline{}, newError(KindOverUnderflow, "order overflowed for deg=%d", deg)
	}
	nKnots := nCtrlp + order
	if nKnots < nCtrlp {
		return &BSpline{}, newError(KindOverUnderflow, "n_knots overflowed for n_ctrlp=%d, order=%d", nCtrlp, order)
	}
	b := &BSpline{
		deg:    deg,
		order:  order,
		dim:    dim,
		nCtrlp: nCtrlp,
		nKnots: nKnots,
		ctrlp:  make([]float32, nCtrlp*dim),
		knots:  make([]float32, nKnots),
	}
	setupKnots(b, typ)
	return b, nil
}

// setupKnots fills result.knots according to typ. result must already
// have deg, order, dim, nCtrlp, nKnots set and knots allocated.
func setupKnots(result *BSpline, typ KnotType) {
	if typ == KnotNone {
		return
	}
	nKnots := result.nKnots
	deg := result.deg
	order := result.order

	if typ == KnotOpened {
		denom := float32(nKnots - 1)
		for i := 0; i < nKnots; i++ {
			result.knots[i] = float32(i) / denom
		}
		return
	}

	// KnotClamped.
	current := 0
	end := order
	for ; current < end; current++ {
		result.knots[current] = 0
	}
	end = nKnots - order
	numerator := 1
	// Equals n_ctrlp - deg, which is at least 1 since deg < n_ctrlp. When
	// order == n_ctrlp there are no interior knots and the loop below
	// never executes.
	denom := float32(nKnots - 2*deg - 1)
	for ; current < end; current++ {
		result.knots[current] = float32(numerator) / denom
		numerator++
	}
	end = nKnots
	for ; current < end; current++ {
		result.knots[current] = 1
	}
}

// Copy deep-copies src into dst. It fails with KindInputEqOutput if src
// and dst are the same value.
func Copy(dst, src *BSpline) error {
	if dst == src {
		return newError(KindInputEqOutput, "copy source and destination alias")
	}
	dst.deg = src.deg
	dst.order = src.order
	dst.dim = src.dim
	dst.nCtrlp = src.nCtrlp
	dst.nKnots = src.nKnots
	dst.ctrlp = append([]float32(nil), src.ctrlp...)
	dst.knots = append([]float32(nil), src.knots...)
	return nil
}

// Clone returns a deep copy of b.
func (b *BSpline) Clone() *BSpline {
	dst := &BSpline{}
	_ = Copy(dst, b) // b != dst by construction
	return dst
}

// Equals reports whether x and y have identical structure (degree,
// order, dimension, counts) and pointwise-tolerantly-equal control
// points and knots.
func Equals(x, y *BSpline) bool {
	if x.deg != y.deg || x.order != y.order || x.dim != y.dim ||
		x.nCtrlp != y.nCtrlp || x.nKnots != y.nKnots {
		return false
	}
	for i := range x.ctrlp {
		if !FloatEquals(x.ctrlp[i], y.ctrlp[i]) {
			return false
		}
	}
	for i := range x.knots {
		if !FloatEquals(x.knots[i], y.knots[i]) {
			return false
		}
	}
	return true
}

// Degree returns the polynomial degree p.
func (b *BSpline) Degree() int { return b.deg }

// Order returns p + 1.
func (b *BSpline) Order() int { return b.order }

// Dim returns the dimension of the ambient space the curve lives in.
func (b *BSpline) Dim() int { return b.dim }

// NumControlPoints returns the number of control points.
func (b *BSpline) NumControlPoints() int { return b.nCtrlp }

// NumKnots returns the length of the knot vector.
func (b *BSpline) NumKnots() int { return b.nKnots }

// ControlPoints returns the backing slice of control points, laid out as
// n_ctrlp contiguous tuples of Dim() scalars. Callers must not retain it
// past the next operation that may reallocate b's buffers.
func (b *BSpline) ControlPoints() []float32 { return b.ctrlp }

// ControlPoint returns the i-th control point as a Dim()-length slice
// into b's backing buffer.
func (b *BSpline) ControlPoint(i int) []float32 {
	return b.ctrlp[i*b.dim : (i+1)*b.dim]
}

// Knots returns the backing slice of the knot vector.
func (b *BSpline) Knots() []float32 { return b.knots }
