package solver

import (
	"errors"
	"math"
)

// PivotEps is the smallest pivot magnitude accepted during elimination.
// A column whose best remaining pivot is below this threshold marks the
// system as singular.
const PivotEps = 1e-15

// Sentinel errors for solver operations.
var (
	// ErrSingular indicates no pivot above PivotEps exists at some column:
	// the system has no unique solution.
	ErrSingular = errors.New("solver: singular system")

	// ErrBadShape indicates an empty or non-square coefficient matrix.
	ErrBadShape = errors.New("solver: coefficient matrix must be square and non-empty")

	// ErrDimensionMismatch indicates len(rhs) differs from the matrix size.
	ErrDimensionMismatch = errors.New("solver: right-hand side length mismatch")
)

// Solve returns the unique x with m·x = rhs, using Gaussian elimination
// with partial pivoting. m must be square; m and rhs are left unmodified.
//
// Errors:
//   - ErrBadShape          — m is empty or has a row of the wrong length.
//   - ErrDimensionMismatch — len(rhs) != len(m).
//   - ErrSingular          — no acceptable pivot at some column.
func Solve(m [][]float64, rhs []float64) ([]float64, error) {
	n := len(m)
	if n == 0 {
		return nil, ErrBadShape
	}
	for _, row := range m {
		if len(row) != n {
			return nil, ErrBadShape
		}
	}
	if len(rhs) != n {
		return nil, ErrDimensionMismatch
	}

	// Work on an augmented copy so the caller's slices stay intact.
	aug := make([][]float64, n)
	for i := range aug {
		aug[i] = make([]float64, n+1)
		copy(aug[i], m[i])
		aug[i][n] = rhs[i]
	}

	for col := 0; col < n; col++ {
		// Partial pivoting: largest-magnitude entry in the remaining column.
		pivot := col
		for row := col + 1; row < n; row++ {
			if math.Abs(aug[row][col]) > math.Abs(aug[pivot][col]) {
				pivot = row
			}
		}
		if math.Abs(aug[pivot][col]) < PivotEps {
			return nil, ErrSingular
		}
		aug[col], aug[pivot] = aug[pivot], aug[col]

		for row := col + 1; row < n; row++ {
			factor := aug[row][col] / aug[col][col]
			if factor == 0 {
				continue
			}
			for k := col; k <= n; k++ {
				aug[row][k] -= factor * aug[col][k]
			}
		}
	}

	// Back substitution.
	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}
	return x, nil
}
