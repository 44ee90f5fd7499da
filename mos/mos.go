package mos

import (
	"errors"
	"fmt"

	"github.com/scalatrix/scalatrix/affine"
	"github.com/scalatrix/scalatrix/lattice"
	"github.com/scalatrix/scalatrix/scale"
)

// MOS is a fully derived Moment-of-Symmetry structure. All fields are
// computed together from the canonical parameters (a, b, mode, equave,
// generator); values are only ever replaced wholesale, never patched,
// so a MOS in hand is always internally consistent.
type MOS struct {
	a, b, n      int
	a0, b0, n0   int
	mode         int
	repetitions  int
	depth        int
	nL, nS       int
	equave       float64
	period       float64
	generator    float64
	path         Path
	vGen         lattice.Vec2i
	lVec         lattice.Vec2i
	sVec         lattice.Vec2i
	chromaVec    lattice.Vec2i
	lFr, sFr     float64
	chromaFr     float64
	implied      affine.Transform
	mosTransform affine.IntegerTransform
	baseScale    *scale.Scale
}

// New derives a MOS from step counts a and b, a mode rotation in
// [0, n0), an equave (log2 ratio spanning gcd(a,b) periods) and a
// generator fraction in [0, 1].
func New(a, b, mode int, equave, generator float64) (*MOS, error) {
	return derive(a, b, mode, equave, generator)
}

// FromG derives a MOS from a generator alone: the unit interval is
// split at the generator position and refined depth times, a
// Stern-Brocot unfolding that accumulates the primitive step counts.
// The result uses a = a0·repetitions, b = b0·repetitions.
func FromG(depth, mode int, generator, equave float64, repetitions int) (*MOS, error) {
	if depth < 0 || repetitions < 1 {
		return nil, fmt.Errorf("fromG depth=%d repetitions=%d: %w", depth, repetitions, ErrInvalidParameter)
	}
	a0, b0 := unfoldG(depth, generator)
	return derive(a0*repetitions, b0*repetitions, mode, equave, generator)
}

// unfoldG splits [0,1) at the generator and refines depth times,
// returning the accumulated primitive step counts.
func unfoldG(depth int, generator float64) (a0, b0 int) {
	a0, b0 = 1, 1
	aLen, bLen := generator, 1.0-generator
	for i := 0; i < depth; i++ {
		if aLen > bLen {
			b0 += a0
			aLen -= bLen
		} else {
			a0 += b0
			bLen -= aLen
		}
	}
	return a0, b0
}

// AdjustParams re-derives the receiver from new canonical parameters.
// On error the receiver is left unchanged.
func (m *MOS) AdjustParams(a, b, mode int, equave, generator float64) error {
	fresh, err := derive(a, b, mode, equave, generator)
	if err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// AdjustG re-derives the receiver from a generator unfolding, like
// FromG. On error the receiver is left unchanged.
func (m *MOS) AdjustG(depth, mode int, generator, equave float64, repetitions int) error {
	fresh, err := FromG(depth, mode, generator, equave, repetitions)
	if err != nil {
		return err
	}
	*m = *fresh
	return nil
}

// AdjustTuning re-derives the receiver with new mode, equave and
// generator while keeping the step counts a and b. On error the
// receiver is left unchanged.
func (m *MOS) AdjustTuning(mode int, equave, generator float64) error {
	return m.AdjustParams(m.a, m.b, mode, equave, generator)
}

// derive computes the complete snapshot. It is the single source of
// every derived field; mutators call it and commit the result.
func derive(a, b, mode int, equave, generator float64) (*MOS, error) {
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("step counts (%d,%d): %w", a, b, ErrInvalidParameter)
	}
	if generator < 0 || generator > 1 {
		return nil, fmt.Errorf("generator %g outside [0,1]: %w", generator, ErrInvalidParameter)
	}
	if equave <= 0 {
		return nil, fmt.Errorf("equave %g: %w", equave, ErrInvalidParameter)
	}

	r := gcd(a, b)
	m := &MOS{
		a: a, b: b, n: a + b,
		a0: a / r, b0: b / r,
		mode:        mode,
		repetitions: r,
		equave:      equave,
		period:      equave / float64(r),
		generator:   generator,
	}
	m.n0 = m.a0 + m.b0
	if mode < 0 || mode >= m.n0 {
		return nil, fmt.Errorf("mode %d outside [0,%d): %w", mode, m.n0, ErrInvalidParameter)
	}

	m.path = DerivePath(m.a0, m.b0)
	m.depth = len(m.path)
	m.vGen = m.path.Apply(lattice.Vec2i{X: 1, Y: 0})

	implied, err := m.calcImpliedAffine()
	if err != nil {
		return nil, err
	}
	m.implied = implied
	m.updateVectors(implied)

	m.baseScale, err = scale.FromAffine(implied, 1.0, m.n+1, 0, scale.DefaultOptions())
	if err != nil {
		return nil, fmt.Errorf("base scale: %w", err)
	}

	m.mosTransform, err = affine.LinearFromTwoDots(
		lattice.Vec2i{X: 1, Y: 0}, lattice.Vec2i{X: 1, Y: 1},
		m.vGen, lattice.Vec2i{X: m.a0, Y: m.b0},
	)
	if errors.Is(err, affine.ErrDegenerate) && m.vGen == (lattice.Vec2i{X: 1, Y: 0}) {
		// Whenever b0 = 1 the path is all StepLeft and folds (1,0) back
		// onto itself, so the second anchor is collinear with the first
		// and cannot pin the map. Fix it by convention to the unimodular
		// choice satisfying (1,0)→(1,1).
		m.mosTransform, err = affine.IntegerTransform{A: 1, B: 0, C: 1, D: 1}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("basis transform: %w", err)
	}
	return m, nil
}

// calcImpliedAffine fits the tuning transform to three anchors: the
// origin, the generator vector, and one full period (a0, b0). The
// images place the generator at its fractional x position and center
// the strip vertically according to the mode.
func (m *MOS) calcImpliedAffine() (affine.Transform, error) {
	q := 0.5 / float64(m.n0)
	my := q * float64(2*m.mode+1)
	tr, err := affine.FromThreeDots(
		lattice.Vec2d{},
		lattice.Vec2d{X: float64(m.vGen.X), Y: float64(m.vGen.Y)},
		lattice.Vec2d{X: float64(m.a0), Y: float64(m.b0)},
		lattice.Vec2d{X: 0, Y: my},
		lattice.Vec2d{X: m.generator * m.period, Y: q * float64(2*m.mode+3)},
		lattice.Vec2d{X: m.period, Y: my},
	)
	if err != nil {
		return affine.Transform{}, fmt.Errorf("implied transform: %w", err)
	}
	return tr, nil
}

// updateVectors names the lattice basis vector with the larger x-image
// the large step and the other the small step.
func (m *MOS) updateVectors(tr affine.Transform) {
	v1 := lattice.Vec2i{X: 1, Y: 0}
	v2 := lattice.Vec2i{X: 0, Y: 1}
	// Step sizes are intervals, so the translation must not leak in.
	lin := tr.Linear()
	fr1 := lin.ApplyInt(v1).X
	fr2 := lin.ApplyInt(v2).X
	if fr1 > fr2 {
		m.lVec, m.sVec = v1, v2
		m.lFr, m.sFr = fr1, fr2
		m.nL, m.nS = m.a, m.b
	} else {
		m.lVec, m.sVec = v2, v1
		m.lFr, m.sFr = fr2, fr1
		m.nL, m.nS = m.b, m.a
	}
	m.chromaVec = m.lVec.Sub(m.sVec)
	m.chromaFr = m.lFr - m.sFr
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// A returns the large-side step count of the full (unreduced) pattern.
func (m *MOS) A() int { return m.a }

// B returns the small-side step count of the full pattern.
func (m *MOS) B() int { return m.b }

// N returns the total note count a+b.
func (m *MOS) N() int { return m.n }

// A0 returns the reduced (primitive) first step count.
func (m *MOS) A0() int { return m.a0 }

// B0 returns the reduced second step count.
func (m *MOS) B0() int { return m.b0 }

// N0 returns the primitive note count a0+b0.
func (m *MOS) N0() int { return m.n0 }

// Mode returns the rotation selector in [0, n0).
func (m *MOS) Mode() int { return m.mode }

// Repetitions returns gcd(a, b), the number of periods per equave.
func (m *MOS) Repetitions() int { return m.repetitions }

// Depth returns the brightness path length.
func (m *MOS) Depth() int { return m.depth }

// NL and NS return how many large and small steps the pattern has.
func (m *MOS) NL() int { return m.nL }
func (m *MOS) NS() int { return m.nS }

// Equave returns the log2 ratio of the interval of repetition.
func (m *MOS) Equave() float64 { return m.equave }

// Period returns equave / repetitions.
func (m *MOS) Period() float64 { return m.period }

// Generator returns the generator fraction of one period.
func (m *MOS) Generator() float64 { return m.generator }

// Path returns a copy of the brightness path.
func (m *MOS) Path() Path {
	p := make(Path, len(m.path))
	copy(p, m.path)
	return p
}

// VGen returns the generator vector, the path folded onto (1, 0).
func (m *MOS) VGen() lattice.Vec2i { return m.vGen }

// LVec, SVec and ChromaVec return the large-step, small-step and
// chroma (L−s) lattice vectors.
func (m *MOS) LVec() lattice.Vec2i      { return m.lVec }
func (m *MOS) SVec() lattice.Vec2i      { return m.sVec }
func (m *MOS) ChromaVec() lattice.Vec2i { return m.chromaVec }

// LFr, SFr and ChromaFr return the corresponding log2 step sizes.
func (m *MOS) LFr() float64      { return m.lFr }
func (m *MOS) SFr() float64      { return m.sFr }
func (m *MOS) ChromaFr() float64 { return m.chromaFr }

// ImpliedAffine returns the current tuning transform.
func (m *MOS) ImpliedAffine() affine.Transform { return m.implied }

// MOSTransform returns the unimodular basis map sending (1,0)→(1,1)
// and the generator vector to (a0, b0).
func (m *MOS) MOSTransform() affine.IntegerTransform { return m.mosTransform }

// BaseScale returns the one-period reference scale (n+1 nodes, root 0,
// base frequency 1). The returned value is shared with the receiver;
// treat it as read-only.
func (m *MOS) BaseScale() *scale.Scale { return m.baseScale }
