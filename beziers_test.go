package bspline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToBeziersAlreadyClamped(t *testing.T) {
	// Already fully clamped, with four simple interior knots: splits
	// into exactly five Bézier segments.
	b, err := New(3, 1, 8, KnotClamped)
	require.NoError(t, err)
	copy(b.ControlPoints(), []float32{0, 1, 2, 3, 4, 5, 6, 7})

	beziers, err := ToBeziers(b)
	require.NoError(t, err)

	order := beziers.Order()
	// Every Bézier segment owns order knots' worth of multiplicity and
	// does not share control points with its neighbors, so the segment
	// count is (n_knots - 2*order)/order + 1, not /deg; see DESIGN.md.
	segments := (beziers.NumKnots()-2*order)/order + 1
	assert.Equal(t, 5, segments, "four interior knots split a single spline into five segments")
	assert.Equal(t, segments*order, beziers.NumControlPoints())

	// Every interior knot must now have full multiplicity.
	knots := beziers.Knots()
	i := order
	for i < beziers.NumKnots()-order {
		s := 0
		j := i
		for j < len(knots) && FloatEquals(knots[j], knots[i]) {
			s++
			j++
		}
		assert.Equal(t, order, s, "knot at %d has multiplicity %d, want %d", i, s, order)
		i = j
	}
}

func TestToBeziersPreservesCurve(t *testing.T) {
	b, err := New(3, 1, 8, KnotClamped)
	require.NoError(t, err)
	copy(b.ControlPoints(), []float32{0, 1, 2, 3, 4, 5, 6, 7})

	beziers, err := ToBeziers(b)
	require.NoError(t, err)

	for _, u := range []float32{0, 0.1, 0.3, 0.5, 0.7, 0.9, 1.0} {
		before, err := Evaluate(b, u)
		require.NoError(t, err)
		after, err := Evaluate(beziers, u)
		require.NoError(t, err)
		assert.InDeltaf(t, before.Result()[0], after.Result()[0], 1e-4, "u=%v", u)
	}
}
