// Package solver provides a small dense linear-system solve used by the
// affine-fitting and spline code: Gaussian elimination with partial
// pivoting on an n×n coefficient matrix.
//
// Algorithm Outline:
//  1. For each column, select the row with the largest-magnitude entry in
//     the remaining rows (partial pivoting) and swap it into place.
//  2. If no pivot exceeds PivotEps, the system is singular: fail with
//     ErrSingular. Callers treat this as "no solution exists for this
//     correspondence" (e.g. three collinear source points in an affine fit).
//  3. Eliminate below the pivot, then back-substitute.
//
// The input matrix and right-hand side are copied; Solve never mutates its
// arguments. All failure modes are deterministic functions of the input.
//
// Complexity:
//
//	Time   = O(n³)
//	Memory = O(n²)
//
// In scalatrix n is tiny (6 for affine fits, knot count + 1 for splines),
// so no factorization caching or blocking is attempted.
package solver
