package bspline

// ToBeziers decomposes b into a sequence of abutting Bézier segments of
// the same degree, sharing endpoints: it repeatedly splits at every
// interior knot until each one has full multiplicity (b.Order()). The
// clamping ends are fixed up first, if needed, since a curve that is not
// already clamped would otherwise split extra segments off its own
// boundary.
func ToBeziers(b *BSpline) (*BSpline, error) {
	beziers := b.Clone()
	deg := beziers.deg
	order := beziers.order

	uMin := beziers.knots[deg]
	if !FloatEquals(beziers.knots[0], uMin) {
		split, k, err := Split(beziers, uMin)
		if err != nil {
			return &BSpline{}, err
		}
		beziers = split
		resizeAmt := -deg + (2*deg - k)
		beziers, err = Resize(beziers, resizeAmt, false)
		if err != nil {
			return &BSpline{}, err
		}
	}

	uMax := beziers.knots[beziers.nKnots-order]
	if !FloatEquals(beziers.knots[beziers.nKnots-1], uMax) {
		split, k, err := Split(beziers, uMax)
		if err != nil {
			return &BSpline{}, err
		}
		beziers = split
		resizeAmt := -deg + (k - (beziers.nKnots - order))
		beziers, err = Resize(beziers, resizeAmt, true)
		if err != nil {
			return &BSpline{}, err
		}
	}

	k := order
	for k < beziers.nKnots-order {
		split, kPrime, err := Split(beziers, beziers.knots[k])
		if err != nil {
			return &BSpline{}, err
		}
		beziers = split
		k = kPrime + 1
	}
	return beziers, nil
}
