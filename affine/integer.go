package affine

import (
	"fmt"

	"github.com/scalatrix/scalatrix/lattice"
)

// IntegerTransform is an affine map with all six coefficients restricted
// to integers. It is applied with exact integer arithmetic and is
// invertible exactly when its determinant is ±1.
type IntegerTransform struct {
	A, B, C, D, Tx, Ty int
}

// IntegerIdentity returns the integer identity transform.
func IntegerIdentity() IntegerTransform {
	return IntegerTransform{A: 1, D: 1}
}

// Apply maps a lattice point through t. Exact.
func (t IntegerTransform) Apply(v lattice.Vec2i) lattice.Vec2i {
	return lattice.Vec2i{
		X: t.A*v.X + t.B*v.Y + t.Tx,
		Y: t.C*v.X + t.D*v.Y + t.Ty,
	}
}

// Det returns the determinant of the linear part.
func (t IntegerTransform) Det() int {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the exact integer inverse. An integer affine map has one
// iff its determinant is ±1; anything else fails with ErrNotUnimodular.
func (t IntegerTransform) Inverse() (IntegerTransform, error) {
	det := t.Det()
	if det != 1 && det != -1 {
		return IntegerTransform{}, fmt.Errorf("inverse of det=%d map: %w", det, ErrNotUnimodular)
	}
	// 1/det equals det for det = ±1, so the adjugate scales exactly.
	inv := IntegerTransform{
		A: t.D * det,
		B: -t.B * det,
		C: -t.C * det,
		D: t.A * det,
	}
	inv.Tx = -(inv.A*t.Tx + inv.B*t.Ty)
	inv.Ty = -(inv.C*t.Tx + inv.D*t.Ty)
	return inv, nil
}

// LinearFromTwoDots derives the 2×2 integer linear map (no translation)
// sending p1→q1 and p2→q2, by exact integer elimination.
//
// Errors:
//   - ErrDegenerate    — p1 and p2 are collinear (no unique map).
//   - ErrNotUnimodular — the source pair spans a sublattice of index > 1
//     and no integer-exact solution exists.
func LinearFromTwoDots(p1, q1, p2, q2 lattice.Vec2i) (IntegerTransform, error) {
	detP := p1.X*p2.Y - p2.X*p1.Y
	if detP == 0 {
		return IntegerTransform{}, fmt.Errorf("two-dot fit: %w", ErrDegenerate)
	}

	// L = Q · adj(P) / det(P), entrywise; every division must be exact.
	num := [4]int{
		q1.X*p2.Y - q2.X*p1.Y, // A
		q2.X*p1.X - q1.X*p2.X, // B
		q1.Y*p2.Y - q2.Y*p1.Y, // C
		q2.Y*p1.X - q1.Y*p2.X, // D
	}
	var coef [4]int
	for i, v := range num {
		if v%detP != 0 {
			return IntegerTransform{}, fmt.Errorf("two-dot fit with det=%d sources: %w", detP, ErrNotUnimodular)
		}
		coef[i] = v / detP
	}
	return IntegerTransform{A: coef[0], B: coef[1], C: coef[2], D: coef[3]}, nil
}
