package bspline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cubicBezier(t *testing.T, ctrlp []float32) *BSpline {
	t.Helper()
	b, err := New(3, 1, 4, KnotClamped)
	require.NoError(t, err)
	copy(b.ControlPoints(), ctrlp)
	return b
}

func TestEvaluateMidpoint(t *testing.T) {
	b := cubicBezier(t, []float32{0, 1, 2, 3})
	net, err := Evaluate(b, 0.5)
	require.NoError(t, err)
	assert.Equal(t, EvalInterior, net.Case())
	assert.InDelta(t, 1.5, net.Result()[0], float64(RelError)*2)
}

func TestEvaluateEndpointsClamped(t *testing.T) {
	b := cubicBezier(t, []float32{0, 1, 2, 3})

	net, err := Evaluate(b, 0)
	require.NoError(t, err)
	assert.Equal(t, EvalEndpoint, net.Case())
	assert.Equal(t, float32(0), net.Result()[0])

	net, err = Evaluate(b, 1)
	require.NoError(t, err)
	assert.Equal(t, EvalEndpoint, net.Case())
	assert.Equal(t, float32(3), net.Result()[0])
}

func TestEvaluateOutOfDomain(t *testing.T) {
	b := cubicBezier(t, []float32{0, 1, 2, 3})

	_, err := Evaluate(b, 1.0+2*AbsError)
	require.Error(t, err)
	var berr *Error
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, KindUUndefined, berr.Kind)

	_, err = Evaluate(b, -0.1)
	require.Error(t, err)
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, KindUUndefined, berr.Kind)
}

func TestEvaluateInteriorFullMultiplicityKnot(t *testing.T) {
	// Two cubic Bezier segments glued at u=0.5 with multiplicity 4.
	b, err := New(3, 1, 5, KnotNone)
	require.NoError(t, err)
	copy(b.Knots(), []float32{0, 0, 0, 0, 0.5, 0.5, 0.5, 0.5, 1})
	// Only 5 control points fit 9 knots of order 4 (n_ctrlp = n_knots - order = 5);
	// this is deliberately a degenerate two-segment spline exercising the
	// EvalDoubleEndpoint dispatch at the shared knot.
	copy(b.ControlPoints(), []float32{0, 1, 2, 2, 3})

	net, err := Evaluate(b, 0.5)
	require.NoError(t, err)
	assert.Equal(t, EvalDoubleEndpoint, net.Case())
	assert.Equal(t, 2, net.NumPoints())
}

func TestEvaluateMultiplicityExceedsOrder(t *testing.T) {
	b, err := New(1, 1, 2, KnotNone)
	require.NoError(t, err)
	// order = 2; three coincident knots give multiplicity 3 at u=0.
	copy(b.Knots(), []float32{0, 0, 0, 1})
	copy(b.ControlPoints(), []float32{0, 1})

	_, err = Evaluate(b, 0)
	require.Error(t, err)
	var berr *Error
	require.True(t, errors.As(err, &berr))
	assert.Equal(t, KindMultiplicity, berr.Kind)
}
