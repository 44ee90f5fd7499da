package affine

import (
	"errors"
	"fmt"

	"github.com/scalatrix/scalatrix/lattice"
	"github.com/scalatrix/scalatrix/solver"
)

// FromThreeDots fits the unique affine transform sending a1→b1, a2→b2 and
// a3→b3. Each correspondence contributes two rows of a 6×6 system solved
// by Gaussian elimination.
//
// Returns ErrDegenerate when the sources admit no unique map (three
// collinear source points make the system singular).
func FromThreeDots(a1, a2, a3, b1, b2, b3 lattice.Vec2d) (Transform, error) {
	m := [][]float64{
		{a1.X, a1.Y, 1, 0, 0, 0},
		{0, 0, 0, a1.X, a1.Y, 1},
		{a2.X, a2.Y, 1, 0, 0, 0},
		{0, 0, 0, a2.X, a2.Y, 1},
		{a3.X, a3.Y, 1, 0, 0, 0},
		{0, 0, 0, a3.X, a3.Y, 1},
	}
	rhs := []float64{b1.X, b1.Y, b2.X, b2.Y, b3.X, b3.Y}

	sol, err := solver.Solve(m, rhs)
	if err != nil {
		if errors.Is(err, solver.ErrSingular) {
			return Transform{}, fmt.Errorf("three-dot fit: %w", ErrDegenerate)
		}
		return Transform{}, fmt.Errorf("three-dot fit: %w", err)
	}
	return Transform{A: sol[0], B: sol[1], Tx: sol[2], C: sol[3], D: sol[4], Ty: sol[5]}, nil
}
