package bspline

// Split returns a spline identical in shape to b but with u raised to
// full multiplicity (b.Order()), plus the knot index k' at which u now
// sits. If u already has full multiplicity (an endpoint, or an interior
// knot already repeated b.Order() times) the result is just a copy of b.
func Split(b *BSpline, u float32) (*BSpline, int, error) {
	net, err := Evaluate(b, u)
	if err != nil {
		return &BSpline{}, 0, err
	}
	switch net.Case() {
	case EvalEndpoint, EvalDoubleEndpoint:
		return b.Clone(), net.k, nil
	default:
		result, err := insertKnot(b, net, net.h+1)
		if err != nil {
			return &BSpline{}, 0, err
		}
		return result, net.k + net.h + 1, nil
	}
}
