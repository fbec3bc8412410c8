// Package gomlxeval evaluates many B-splines at once as a GoMLX
// computation graph, for batched inference workloads (e.g. calibration
// layers of a "KAN - Kolmogorov-Arnold Networks" [1] style model) where
// the CPU, one-evaluation-at-a-time [github.com/tinygeom/bspline.Evaluate]
// would be too slow.
//
// It only needs a [github.com/tinygeom/bspline.BSpline] for its knot
// vector: control points are supplied separately so a single knot layout
// can be evaluated against many different sets of control points in one
// graph. This sidesteps the de Boor net entirely in favor of the
// classic recursive Cox-de Boor basis-function formula, vectorized over
// a batch.
//
// [1] https://arxiv.org/pdf/2404.19756
package gomlxeval

import (
	"github.com/gomlx/exceptions"
	. "github.com/gomlx/gomlx/graph"
	"github.com/gomlx/gomlx/types/shapes"

	"github.com/tinygeom/bspline"
)

// Evaluate creates the computation graph to evaluate the B-spline
// defined by b (used only for its knot vector) at inputs, against
// controlPoints.
//
// Parameters:
//   - b: the knot layout to evaluate against. Its own control points are
//     ignored; use controlPoints instead.
//   - inputs: tensor (graph.Node) with shape `[batchSize, numInputs]`: one
//     B-spline evaluation per example per input. If inputs is a scalar,
//     it is expanded to shape `[batchSize=1, numInputs=1]`. Its dtype
//     must match controlPoints'.
//   - controlPoints: tensor (graph.Node) with shape
//     `[numInputs, numOutputs, numControlPoints]`, where numControlPoints
//     must equal b.NumControlPoints(). If rank 1, it is expanded to
//     shape `[numInputs=1, numOutputs=1, numControlPoints]`.
//
// The returned tensor is shaped `[batchSize, numOutputs, numInputs]`. If
// inputs was a scalar and numInputs==numOutputs==1, the result is
// reshaped to a scalar.
func Evaluate(b *bspline.BSpline, inputs, controlPoints *Node) *Node {
	if inputs.DType() != controlPoints.DType() {
		exceptions.Panicf("gomlxeval.Evaluate() requires inputs.dtype=%s and controlPoints.dtype=%s to match",
			inputs.DType(), controlPoints.DType())
	}
	if controlPoints.Rank() == 1 {
		controlPoints = ExpandDims(controlPoints, 0, 0)
	}
	if controlPoints.Rank() != 3 {
		exceptions.Panicf("gomlxeval.Evaluate() requires control points of rank 3, shape [numInputs, numOutputs, numControlPoints], got shape %s",
			controlPoints.Shape())
	}
	numInputs := controlPoints.Shape().Dimensions[0]
	numOutputs := controlPoints.Shape().Dimensions[1]
	numControlPoints := controlPoints.Shape().Dimensions[2]
	if numControlPoints != b.NumControlPoints() {
		exceptions.Panicf("gomlxeval.Evaluate() controlPoints (shape=%s) last dimension must match b.NumControlPoints()=%d",
			controlPoints.Shape(), b.NumControlPoints())
	}

	inputIsScalar := inputs.Shape().IsScalar()
	if inputIsScalar {
		inputs = Reshape(inputs, 1, 1)
		if numInputs != 1 {
			exceptions.Panicf("gomlxeval.Evaluate() controlPoints has shape=%s (numInputs=%d) but inputs is a scalar",
				controlPoints.Shape(), numInputs)
		}
	} else if inputs.Rank() == 2 {
		if inputs.Shape().Dimensions[1] != numInputs {
			exceptions.Panicf("gomlxeval.Evaluate() controlPoints (shape=%s) numInputs=%d doesn't match inputs (%s) numInputs=%d",
				controlPoints.Shape(), numInputs, inputs.Shape(), inputs.Shape().Dimensions[1])
		}
	} else {
		exceptions.Panicf("gomlxeval.Evaluate() expects inputs of rank 2 or a scalar, got shape=%s", inputs.Shape())
	}

	knots := ConstAsDType(inputs.Graph(), inputs.DType(), b.Knots())
	numKnots := knots.Shape().Dimensions[0]
	knots = ExpandDims(knots, 0) // shape [1, numKnots]

	out := (&evalData{
		degree:           b.Degree(),
		dtype:            inputs.DType(),
		batchSize:        inputs.Shape().Dimensions[0],
		numInputs:        numInputs,
		numOutputs:       numOutputs,
		numControlPoints: numControlPoints,
		numKnots:         numKnots,
		controlPoints:    controlPoints,
		knots:            knots,
		flatInputs:       Reshape(inputs, -1, 1), // shape [batchSize*numInputs, 1]
	}).eval()
	if numOutputs == 1 && inputIsScalar {
		out = Reshape(out)
	}
	return out
}

// evalData holds the parameters of a batched evaluation graph, after all
// inputs have been checked.
type evalData struct {
	degree                                                       int
	dtype                                                        shapes.DType
	batchSize, numInputs, numOutputs, numControlPoints, numKnots int
	controlPoints, knots, flatInputs                             *Node
}

func (e *evalData) eval() *Node {
	basisFlat := e.basisFunction(e.degree)                                          // [batchSize*numInputs, numKnots]
	basis := Reshape(basisFlat, e.batchSize, e.numInputs, e.numKnots)                // [batchSize, numInputs, numKnots]
	basis = Slice(basis, AxisRange(), AxisRange(), AxisRange(0, e.numControlPoints)) // [batchSize, numInputs, numControlPoints]

	// i: batchSize (preserved), j: numInputs (matched), k: numControlPoints
	// (summed), l: numOutputs. Result: [batchSize, numOutputs, numInputs].
	return Einsum("ijk,jlk->ilj", basis, e.controlPoints)
}

// basisFunction returns, for each of the flatInputs, the weight of each
// of the numKnots basis functions of the given degree, shaped
// `[batchSize*numInputs, numKnots]`. It is the vectorized form of the
// Cox-de Boor recursion.
func (e *evalData) basisFunction(degree int) *Node {
	if degree == 0 {
		cond := And(
			GreaterOrEqual(e.flatInputs, e.knots),
			ShiftLeft(LessThan(e.flatInputs, e.knots), 1, 0.0))
		return ConvertType(cond, e.dtype)
	}

	recursiveBasis := e.basisFunction(degree - 1)

	knotsDelta := Sub(Shift(e.knots, -1, ShiftDirLeft, degree), e.knots)
	knotsDeltaIsZero := Equal(knotsDelta, ZerosLike(knotsDelta))
	knotsDelta = Where(knotsDeltaIsZero, OnesLike(knotsDelta), knotsDelta)
	zeros := ZerosLike(recursiveBasis)
	broadcastToBasis := func(x *Node) *Node { return BroadcastToDims(x, zeros.Shape().Dimensions...) }

	weightsLeft := Div(Sub(e.flatInputs, e.knots), knotsDelta)
	weightsLeft = Where(broadcastToBasis(knotsDeltaIsZero), zeros, weightsLeft)
	left := Mul(weightsLeft, recursiveBasis)

	weightsRight := Sub(Shift(e.knots, -1, ShiftDirLeft, degree+1), e.flatInputs)
	weightsRight = Div(weightsRight, Shift(knotsDelta, -1, ShiftDirLeft, 1))
	weightsRight = Where(
		broadcastToBasis(Shift(knotsDeltaIsZero, -1, ShiftDirLeft, 1)),
		zeros, weightsRight)
	right := Mul(weightsRight, Shift(recursiveBasis, -1, ShiftDirLeft, 1))
	return Add(left, right)
}
