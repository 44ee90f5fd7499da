package scale_test

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalatrix/scalatrix/affine"
	"github.com/scalatrix/scalatrix/lattice"
	"github.com/scalatrix/scalatrix/pitchset"
	"github.com/scalatrix/scalatrix/scale"
)

// diatonicTransform is the implied tuning map of the 5L2s scale in mode 1
// with generator 0.585 and a pure-octave equave: (1,0) lands at y = 2/7,
// (0,1) at y = -5/7, and the origin inside the strip at y = 3/14.
func diatonicTransform() affine.Transform {
	return affine.Transform{
		A: 0.17, B: 0.075,
		C: 2.0 / 7.0, D: -5.0 / 7.0,
		Tx: 0, Ty: 3.0 / 14.0,
	}
}

// TestStripSteps_Diatonic confirms the minimal step pair of the diatonic
// strip is the whole tone (1,0) and the diatonic semitone (0,1).
func TestStripSteps_Diatonic(t *testing.T) {
	r, s, err := scale.StripSteps(diatonicTransform(), scale.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, lattice.Vec2i{X: 1, Y: 0}, r)
	assert.Equal(t, lattice.Vec2i{X: 0, Y: 1}, s)
}

// TestStripSteps_Degenerate rejects a transform that maps every lattice
// direction backwards or sideways.
func TestStripSteps_Degenerate(t *testing.T) {
	tr := affine.Transform{A: -1, B: -1, C: 0.1, D: 0.1}
	_, _, err := scale.StripSteps(tr, scale.DefaultOptions())
	assert.ErrorIs(t, err, scale.ErrDegenerate)
}

// TestFromAffine_Invariants walks a full diatonic octave and checks the
// defining strip properties: strictly increasing tuning x, every node
// inside 0 <= y < 1, and consecutive differences drawn from {r, s, r+s}.
func TestFromAffine_Invariants(t *testing.T) {
	tr := diatonicTransform()
	sc, err := scale.FromAffine(tr, 440, 8, 0, scale.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, 8, sc.Len())

	r, s, err := scale.StripSteps(tr, scale.DefaultOptions())
	require.NoError(t, err)
	rs := r.Add(s)

	nodes := sc.Nodes()
	for i, n := range nodes {
		assert.GreaterOrEqual(t, n.TuningCoord.Y, 0.0, "node %d below strip", i)
		assert.Less(t, n.TuningCoord.Y, 1.0, "node %d above strip", i)
		if i == 0 {
			continue
		}
		assert.Greater(t, n.TuningCoord.X, nodes[i-1].TuningCoord.X, "node %d not ascending", i)
		d := n.NaturalCoord.Sub(nodes[i-1].NaturalCoord)
		assert.Contains(t, []lattice.Vec2i{r, s, rs}, d, "node %d step", i)
	}

	// Eight nodes of a 7-note scale span exactly one equave.
	assert.Equal(t, lattice.Vec2i{X: 5, Y: 2}, nodes[7].NaturalCoord.Sub(nodes[0].NaturalCoord))
	assert.InDelta(t, 880, nodes[7].Pitch, 1e-9)
}

// TestFromAffine_Root places the origin node at the requested index and
// continues the same walk in both directions.
func TestFromAffine_Root(t *testing.T) {
	tr := diatonicTransform()
	sc, err := scale.FromAffine(tr, 440, 8, 3, scale.DefaultOptions())
	require.NoError(t, err)

	root, err := sc.Node(3)
	require.NoError(t, err)
	assert.Equal(t, lattice.Vec2i{}, root.NaturalCoord)
	assert.InDelta(t, 440, root.Pitch, 1e-12)

	// The rooted slice is a contiguous window of the zero-rooted walk.
	whole, err := scale.FromAffine(tr, 440, 16, 8, scale.DefaultOptions())
	require.NoError(t, err)
	for i := 0; i < sc.Len(); i++ {
		got, err := sc.Node(i)
		require.NoError(t, err)
		want, err := whole.Node(8 - 3 + i)
		require.NoError(t, err)
		assert.Equal(t, want.NaturalCoord, got.NaturalCoord, "node %d", i)
	}
}

// TestFromAffine_Validation covers the constructor's argument checks.
func TestFromAffine_Validation(t *testing.T) {
	tr := diatonicTransform()
	opts := scale.DefaultOptions()

	_, err := scale.FromAffine(tr, 0, 8, 0, opts)
	assert.ErrorIs(t, err, scale.ErrInvalidParameter)

	_, err = scale.FromAffine(tr, 440, 0, 0, opts)
	assert.ErrorIs(t, err, scale.ErrInvalidParameter)

	_, err = scale.FromAffine(tr, 440, 8, 8, opts)
	assert.ErrorIs(t, err, scale.ErrInvalidParameter)

	shifted := tr
	shifted.Tx = 0.25
	_, err = scale.FromAffine(shifted, 440, 8, 0, opts)
	assert.ErrorIs(t, err, scale.ErrUnnormalized)
}

// TestNode_OutOfRange returns an error instead of clamping.
func TestNode_OutOfRange(t *testing.T) {
	sc, err := scale.FromAffine(diatonicTransform(), 440, 8, 0, scale.DefaultOptions())
	require.NoError(t, err)

	_, err = sc.Node(-1)
	assert.ErrorIs(t, err, scale.ErrIndexOutOfRange)
	_, err = sc.Node(8)
	assert.ErrorIs(t, err, scale.ErrIndexOutOfRange)
}

// TestRetuneWithAffine keeps lattice coordinates and recomputes tuning
// under a slightly different generator.
func TestRetuneWithAffine(t *testing.T) {
	sc, err := scale.FromAffine(diatonicTransform(), 440, 8, 0, scale.DefaultOptions())
	require.NoError(t, err)
	before := make([]lattice.Vec2i, sc.Len())
	for i, n := range sc.Nodes() {
		before[i] = n.NaturalCoord
	}

	flatter := diatonicTransform()
	flatter.A = 0.165 // narrows the whole tone a touch
	sc.RetuneWithAffine(flatter)

	for i, n := range sc.Nodes() {
		assert.Equal(t, before[i], n.NaturalCoord, "node %d moved on the lattice", i)
		assert.InDelta(t, 440*math.Exp2(n.TuningCoord.X), n.Pitch, 1e-9)
		assert.False(t, n.Tempered)
	}
}

// TestTemperToPitchSet snaps the diatonic scale onto 12-TET.
func TestTemperToPitchSet(t *testing.T) {
	sc, err := scale.FromAffine(diatonicTransform(), 440, 8, 0, scale.DefaultOptions())
	require.NoError(t, err)

	et, err := pitchset.ET(12, 2.0, -0.1, 1.1)
	require.NoError(t, err)
	require.NoError(t, sc.TemperToPitchSet(et))

	for i, n := range sc.Nodes() {
		assert.True(t, n.Tempered, "node %d", i)
		steps := math.Round(n.TuningCoord.X * 12)
		assert.InDelta(t, 440*math.Exp2(steps/12), n.Pitch, 1e-9, "node %d", i)
	}

	err = sc.TemperToPitchSet(pitchset.PitchSet{})
	assert.ErrorIs(t, err, scale.ErrEmptyPitchSet)
}

// TestPrint renders the table without panicking on out-of-range rows.
func TestPrint(t *testing.T) {
	sc, err := scale.FromAffine(diatonicTransform(), 440, 8, 0, scale.DefaultOptions())
	require.NoError(t, err)

	var buf bytes.Buffer
	sc.Print(&buf, -1, 3)
	out := buf.String()
	assert.Contains(t, out, "out of range")
	assert.Contains(t, out, "node   0")
}
