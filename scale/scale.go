package scale

import (
	"fmt"
	"io"
	"math"

	"github.com/scalatrix/scalatrix/affine"
	"github.com/scalatrix/scalatrix/lattice"
	"github.com/scalatrix/scalatrix/pitchset"
)

// Scale is an ordered node sequence with a fixed length, a base
// frequency, and a root index whose node sits at the lattice origin.
// The defining invariant: TuningCoord.X is strictly increasing by index.
type Scale struct {
	nodes    []Node
	baseFreq float64
	rootIdx  int
}

// New returns an all-zero scale of n nodes, ready for Recalc. Most
// callers want FromAffine instead.
func New(baseFreq float64, n, rootIdx int) (*Scale, error) {
	if baseFreq <= 0 || n <= 0 || rootIdx < 0 || rootIdx >= n {
		return nil, ErrInvalidParameter
	}
	return &Scale{
		nodes:    make([]Node, n),
		baseFreq: baseFreq,
		rootIdx:  rootIdx,
	}, nil
}

// FromAffine slices the strip 0 ≤ y < 1 of the transformed lattice into
// an n-node scale with the root (lattice origin) at rootIdx.
//
// tr must be normalized: its origin image on the segment (x = 0,
// 0 ≤ y < 1). Un-normalized transforms fail with ErrUnnormalized.
func FromAffine(tr affine.Transform, baseFreq float64, n, rootIdx int, opts Options) (*Scale, error) {
	s, err := New(baseFreq, n, rootIdx)
	if err != nil {
		return nil, err
	}
	if err = s.recalc(tr, opts); err != nil {
		return nil, err
	}
	return s, nil
}

// Recalc regenerates the scale in place from a new transform, length and
// root. On error the receiver is left unchanged.
func (s *Scale) Recalc(tr affine.Transform, n, rootIdx int, opts Options) error {
	fresh, err := FromAffine(tr, s.baseFreq, n, rootIdx, opts)
	if err != nil {
		return err
	}
	*s = *fresh
	return nil
}

// recalc fills s.nodes by the three-gap walk described in the package
// documentation.
func (s *Scale) recalc(tr affine.Transform, opts Options) error {
	if !tr.IsNormalized() {
		return ErrUnnormalized
	}
	r, st, err := StripSteps(tr, opts)
	if err != nil {
		return err
	}
	zr := tr.Linear().ApplyInt(r)
	zs := tr.Linear().ApplyInt(st)

	root := Node{
		NaturalCoord: lattice.Vec2i{},
		TuningCoord:  tr.ApplyInt(lattice.Vec2i{}),
		Pitch:        s.baseFreq,
	}
	s.nodes[s.rootIdx] = root

	// Forward pass.
	last := root
	for n := 1; n < len(s.nodes)-s.rootIdx; n++ {
		switch {
		case inStrip(last.TuningCoord.Y + zr.Y):
			last.NaturalCoord = last.NaturalCoord.Add(r)
		case inStrip(last.TuningCoord.Y + zs.Y):
			last.NaturalCoord = last.NaturalCoord.Add(st)
		default:
			last.NaturalCoord = last.NaturalCoord.Add(r).Add(st)
		}
		last.TuningCoord = tr.ApplyInt(last.NaturalCoord)
		last.Pitch = s.baseFreq * math.Exp2(last.TuningCoord.X)
		s.nodes[s.rootIdx+n] = last
	}

	// Backward pass.
	last = root
	for n := -1; n >= -s.rootIdx; n-- {
		switch {
		case inStrip(last.TuningCoord.Y - zr.Y):
			last.NaturalCoord = last.NaturalCoord.Sub(r)
		case inStrip(last.TuningCoord.Y - zs.Y):
			last.NaturalCoord = last.NaturalCoord.Sub(st)
		default:
			last.NaturalCoord = last.NaturalCoord.Sub(r).Sub(st)
		}
		last.TuningCoord = tr.ApplyInt(last.NaturalCoord)
		last.Pitch = s.baseFreq * math.Exp2(last.TuningCoord.X)
		s.nodes[s.rootIdx+n] = last
	}
	return nil
}

// inStrip reports membership in the half-open strip 0 ≤ y < 1.
func inStrip(y float64) bool {
	return y >= 0 && y < 1
}

// RetuneWithAffine recomputes every node's tuning coordinate and pitch
// from its existing lattice coordinate under a new transform, clearing
// any tempering. The strip search is not re-run: the caller promises the
// new transform keeps the same lattice points in the strip (a continuous
// tuning deformation, not a change of shape).
func (s *Scale) RetuneWithAffine(tr affine.Transform) {
	for i := range s.nodes {
		node := &s.nodes[i]
		node.TuningCoord = tr.ApplyInt(node.NaturalCoord)
		node.Pitch = s.baseFreq * math.Exp2(node.TuningCoord.X)
		node.Tempered = false
	}
}

// TemperToPitchSet snaps every node's pitch to the nearest entry of ps,
// marking the node tempered and recording both the applied and the
// closest reference pitch. Lattice and tuning coordinates are untouched.
func (s *Scale) TemperToPitchSet(ps pitchset.PitchSet) error {
	if len(ps) == 0 {
		return ErrEmptyPitchSet
	}
	for i := range s.nodes {
		node := &s.nodes[i]
		closest, _ := ps.Closest(node.TuningCoord.X)
		node.Pitch = s.baseFreq * math.Exp2(closest.Log2Fr)
		node.Tempered = true
		node.TemperedPitch = closest
		node.ClosestPitch = closest
	}
	return nil
}

// Len returns the node count.
func (s *Scale) Len() int { return len(s.nodes) }

// RootIdx returns the index of the node at the lattice origin.
func (s *Scale) RootIdx() int { return s.rootIdx }

// BaseFreq returns the frequency assigned to the root node.
func (s *Scale) BaseFreq() float64 { return s.baseFreq }

// Node returns the node at index i, or ErrIndexOutOfRange — never a
// clamped or zero node.
func (s *Scale) Node(i int) (Node, error) {
	if i < 0 || i >= len(s.nodes) {
		return Node{}, fmt.Errorf("node %d of %d: %w", i, len(s.nodes), ErrIndexOutOfRange)
	}
	return s.nodes[i], nil
}

// Nodes returns the backing node slice. Mutating it mutates the scale;
// the mos package uses this for periodic replication and retuning.
func (s *Scale) Nodes() []Node { return s.nodes }

// Print writes num nodes starting at first in a fixed-width table,
// flagging out-of-range indices instead of skipping them.
func (s *Scale) Print(w io.Writer, first, num int) {
	for i := first; i < first+num; i++ {
		if i < 0 || i >= len(s.nodes) {
			fmt.Fprintf(w, "node %d out of range\n", i)
			continue
		}
		n := s.nodes[i]
		fmt.Fprintf(w, "node %3d: (%3d,%3d) -> (%7.3f,%6.3f) %10.5f Hz",
			i, n.NaturalCoord.X, n.NaturalCoord.Y, n.TuningCoord.X, n.TuningCoord.Y, n.Pitch)
		if n.Tempered {
			fmt.Fprintf(w, " (%s)", n.TemperedPitch.Label)
		}
		fmt.Fprintln(w)
	}
}
