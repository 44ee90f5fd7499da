package affine

import (
	"errors"
	"math"

	"github.com/scalatrix/scalatrix/lattice"
)

// DetEps is the determinant magnitude below which a real transform is
// treated as degenerate.
const DetEps = 1e-15

// normEps is the slack allowed on the origin's x-image when checking
// normalization.
const normEps = 1e-12

// Sentinel errors for affine operations.
var (
	// ErrDegenerate indicates a zero determinant on inversion or a
	// singular point-correspondence system (e.g. collinear source points).
	ErrDegenerate = errors.New("affine: degenerate transform")

	// ErrNotUnimodular indicates an integer transform whose determinant is
	// not ±1 where an exact integer inverse is required.
	ErrNotUnimodular = errors.New("affine: integer transform is not unimodular")
)

// Transform is a real 2×2 linear map plus translation:
//
//	apply(x, y) = (A·x + B·y + Tx, C·x + D·y + Ty)
type Transform struct {
	A, B, C, D, Tx, Ty float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{A: 1, D: 1}
}

// Apply maps a tuning-space point through t.
func (t Transform) Apply(v lattice.Vec2d) lattice.Vec2d {
	return lattice.Vec2d{
		X: t.A*v.X + t.B*v.Y + t.Tx,
		Y: t.C*v.X + t.D*v.Y + t.Ty,
	}
}

// ApplyInt maps a lattice point through t. The lattice coordinates enter
// the float domain here and nowhere earlier.
func (t Transform) ApplyInt(v lattice.Vec2i) lattice.Vec2d {
	return t.Apply(v.AsVec2d())
}

// Compose returns t∘inner: inner is applied first.
// Composition is associative and not commutative.
func (t Transform) Compose(inner Transform) Transform {
	return Transform{
		A:  t.A*inner.A + t.B*inner.C,
		B:  t.A*inner.B + t.B*inner.D,
		C:  t.C*inner.A + t.D*inner.C,
		D:  t.C*inner.B + t.D*inner.D,
		Tx: t.A*inner.Tx + t.B*inner.Ty + t.Tx,
		Ty: t.C*inner.Tx + t.D*inner.Ty + t.Ty,
	}
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the inverse transform, or ErrDegenerate when the
// determinant is zero within DetEps.
func (t Transform) Inverse() (Transform, error) {
	det := t.Det()
	if math.Abs(det) < DetEps {
		return Transform{}, ErrDegenerate
	}
	inv := Transform{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
	}
	inv.Tx = -(inv.A*t.Tx + inv.B*t.Ty)
	inv.Ty = -(inv.C*t.Tx + inv.D*t.Ty)
	return inv, nil
}

// Linear returns t with the translation stripped.
func (t Transform) Linear() Transform {
	t.Tx, t.Ty = 0, 0
	return t
}

// Normalized translates t so the origin maps onto the segment
// (x = 0, 0 ≤ y < 1), the precondition of scale generation. The linear
// part is untouched.
func (t Transform) Normalized() Transform {
	t.Tx = 0
	t.Ty -= math.Floor(t.Ty)
	return t
}

// IsNormalized reports whether the origin's image already satisfies
// x = 0 (within a small slack) and 0 ≤ y < 1.
func (t Transform) IsNormalized() bool {
	return math.Abs(t.Tx) <= normEps && t.Ty >= 0 && t.Ty < 1
}
