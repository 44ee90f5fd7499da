package affine_test

import (
	"testing"

	"github.com/scalatrix/scalatrix/affine"
	"github.com/scalatrix/scalatrix/lattice"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const affineTol = 1e-9

// TestTransform_Apply verifies the coefficient layout:
// apply(x,y) = (a·x + b·y + tx, c·x + d·y + ty).
func TestTransform_Apply(t *testing.T) {
	tr := affine.Transform{A: 2, B: 3, C: 5, D: 7, Tx: 11, Ty: 13}
	got := tr.Apply(lattice.Vec2d{X: 1, Y: -1})
	assert.InDelta(t, 2-3+11, got.X, affineTol)
	assert.InDelta(t, 5-7+13, got.Y, affineTol)
}

// TestTransform_ComposeAppliesInnerFirst checks compose(Outer, Inner)
// semantics: Inner runs first.
func TestTransform_ComposeAppliesInnerFirst(t *testing.T) {
	shift := affine.Transform{A: 1, D: 1, Tx: 1}      // x+1
	scale := affine.Transform{A: 2, D: 1}             // 2x
	p := lattice.Vec2d{X: 3}

	// scale∘shift: first shift, then scale → 2·(3+1) = 8
	got := scale.Compose(shift).Apply(p)
	assert.InDelta(t, 8, got.X, affineTol, "inner must run first")

	// shift∘scale: first scale, then shift → 2·3+1 = 7
	got = shift.Compose(scale).Apply(p)
	assert.InDelta(t, 7, got.X, affineTol, "composition must not commute")
}

// TestTransform_ComposeAssociative verifies (A∘B)∘C = A∘(B∘C) pointwise.
func TestTransform_ComposeAssociative(t *testing.T) {
	a := affine.Transform{A: 2, B: 1, C: 0, D: 1, Tx: 0.5}
	b := affine.Transform{A: 1, B: -1, C: 1, D: 1, Ty: -0.25}
	c := affine.Transform{A: 0, B: 1, C: 1, D: 0, Tx: 2, Ty: 3}
	p := lattice.Vec2d{X: 0.3, Y: -0.7}

	left := a.Compose(b).Compose(c).Apply(p)
	right := a.Compose(b.Compose(c)).Apply(p)
	assert.InDelta(t, left.X, right.X, affineTol)
	assert.InDelta(t, left.Y, right.Y, affineTol)
}

// TestTransform_InverseRoundTrip checks t⁻¹(t(p)) = p.
func TestTransform_InverseRoundTrip(t *testing.T) {
	tr := affine.Transform{A: 0.17, B: 0.075, C: 2.0 / 7, D: -5.0 / 7, Tx: 0, Ty: 3.0 / 14}
	inv, err := tr.Inverse()
	require.NoError(t, err)

	p := lattice.Vec2d{X: 1.25, Y: -0.5}
	back := inv.Apply(tr.Apply(p))
	assert.InDelta(t, p.X, back.X, affineTol)
	assert.InDelta(t, p.Y, back.Y, affineTol)
}

// TestTransform_InverseDegenerate verifies a zero-determinant map fails.
func TestTransform_InverseDegenerate(t *testing.T) {
	tr := affine.Transform{A: 1, B: 2, C: 2, D: 4} // rank 1
	_, err := tr.Inverse()
	assert.ErrorIs(t, err, affine.ErrDegenerate)
}

// TestTransform_Normalized verifies origin-image normalization.
func TestTransform_Normalized(t *testing.T) {
	tr := affine.Transform{A: 1, D: 1, Tx: 3.7, Ty: -1.25}
	assert.False(t, tr.IsNormalized())

	n := tr.Normalized()
	assert.True(t, n.IsNormalized())
	origin := n.Apply(lattice.Vec2d{})
	assert.InDelta(t, 0, origin.X, affineTol)
	assert.GreaterOrEqual(t, origin.Y, 0.0)
	assert.Less(t, origin.Y, 1.0)
	assert.Equal(t, tr.Linear(), n.Linear(), "linear part must be untouched")
}

// TestFromThreeDots_ExactCorrespondence fits a map through three
// non-collinear points and checks every correspondence is reproduced.
func TestFromThreeDots_ExactCorrespondence(t *testing.T) {
	src := []lattice.Vec2d{{X: 0, Y: 0}, {X: 3, Y: 1}, {X: 5, Y: 2}}
	dst := []lattice.Vec2d{{X: 0, Y: 0.5}, {X: 0.585, Y: 0.9}, {X: 1, Y: 0.5}}

	tr, err := affine.FromThreeDots(src[0], src[1], src[2], dst[0], dst[1], dst[2])
	require.NoError(t, err)

	for i := range src {
		got := tr.Apply(src[i])
		assert.InDelta(t, dst[i].X, got.X, affineTol, "dot %d x", i)
		assert.InDelta(t, dst[i].Y, got.Y, affineTol, "dot %d y", i)
	}
}

// TestFromThreeDots_CollinearSources verifies the singular-system error
// surfaces as ErrDegenerate.
func TestFromThreeDots_CollinearSources(t *testing.T) {
	_, err := affine.FromThreeDots(
		lattice.Vec2d{X: 0, Y: 0}, lattice.Vec2d{X: 1, Y: 1}, lattice.Vec2d{X: 2, Y: 2},
		lattice.Vec2d{X: 0, Y: 0}, lattice.Vec2d{X: 1, Y: 0}, lattice.Vec2d{X: 0, Y: 1},
	)
	assert.ErrorIs(t, err, affine.ErrDegenerate)
}
