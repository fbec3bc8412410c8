// Package bspline implements the computational core of a B-spline curve
// library: de Boor evaluation, knot insertion, curve splitting and
// decomposition into Bézier segments.
//
// Control points and knots are stored as float32 and compared with the
// tolerant equality in [FloatEquals]; values within [AbsError] or
// [RelError] of each other are treated as coincident throughout the
// package, matching ordinary single-precision rounding.
//
// The package does not cover surfaces, NURBS weights, derivatives or
// arbitrary-precision arithmetic. For batched evaluation of many curves
// at once on an accelerator, see the sibling package
// [github.com/tinygeom/bspline/gomlxeval].
package bspline
