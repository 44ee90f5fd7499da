// Package affine implements the 2D affine maps that carry lattice points
// into tuning space, in a real-valued and an integer-valued flavor.
//
// 🚀 What lives here?
//
//   - Transform — six float64 coefficients (a, b, c, d, tx, ty) with
//     apply(x,y) = (a·x + b·y + tx, c·x + d·y + ty). Composable,
//     invertible when the determinant is nonzero.
//   - FromThreeDots — fits the unique affine map sending three source
//     points to three target points by solving the 6×6 correspondence
//     system (package solver). This single mechanism derives a MOS's
//     implied transform and performs three-point retuning.
//   - IntegerTransform — the same shape restricted to integer
//     coefficients, used to remap between the internal bases of two MOS
//     instances. Its inverse exists exactly when the determinant is ±1.
//
// Errors:
//   - ErrDegenerate    — zero determinant on inversion, or a singular
//     three-point correspondence (collinear sources).
//   - ErrNotUnimodular — an integer map whose determinant is not ±1 where
//     unimodularity is required.
//
// All operations are pure; a Transform is a plain value and is never
// mutated in place.
package affine
