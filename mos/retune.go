package mos

import (
	"fmt"
	"math"

	"github.com/scalatrix/scalatrix/affine"
	"github.com/scalatrix/scalatrix/lattice"
)

// recalcOnRetune adopts tr as the new tuning transform: equave, period
// and generator are recomputed from its images of (a,b), (a0,b0) and
// the origin, the step vectors reassigned, and the base scale retuned
// in place. Validation happens before any field is touched, so a
// rejected transform leaves the receiver unchanged.
func (m *MOS) recalcOnRetune(tr affine.Transform) error {
	origin := tr.ApplyInt(lattice.Vec2i{}).X
	equave := tr.ApplyInt(lattice.Vec2i{X: m.a, Y: m.b}).X - origin
	period := tr.ApplyInt(lattice.Vec2i{X: m.a0, Y: m.b0}).X - origin
	if math.Abs(period) < periodEps {
		return fmt.Errorf("retune collapses the period: %w", ErrDegenerate)
	}
	generator := (tr.ApplyInt(m.vGen).X - origin) / period

	m.implied = tr
	m.equave = equave
	m.period = period
	m.generator = generator
	m.updateVectors(tr)
	m.baseScale.RetuneWithAffine(tr)
	return nil
}

// RetuneZeroPoint reapplies the current transform, discarding any
// tempering the base scale picked up.
func (m *MOS) RetuneZeroPoint() error {
	return m.recalcOnRetune(m.implied)
}

// RetuneOnePoint translates the tuning so v sounds at log2fr. A pure
// shift: every interval, and the shape, stay exactly as they were.
func (m *MOS) RetuneOnePoint(v lattice.Vec2i, log2fr float64) error {
	tr := m.implied
	tr.Tx += log2fr - m.implied.ApplyInt(v).X
	return m.recalcOnRetune(tr)
}

// RetuneTwoPoints rescales the x axis so v reaches log2fr while the
// pitch of fixed is preserved. Fails with ErrDegenerate when fixed and
// v currently sound at the same pitch, since no rescale can separate
// them.
func (m *MOS) RetuneTwoPoints(fixed, v lattice.Vec2i, log2fr float64) error {
	fixedFr := m.implied.ApplyInt(fixed).X
	vFr := m.implied.ApplyInt(v).X
	if math.Abs(vFr-fixedFr) < periodEps {
		return fmt.Errorf("two-point retune with coincident pitches: %w", ErrDegenerate)
	}
	k := (log2fr - fixedFr) / (vFr - fixedFr)
	tr := affine.Transform{A: k, D: 1}.Compose(m.implied)
	tr.Tx += fixedFr - tr.ApplyInt(fixed).X
	return m.recalcOnRetune(tr)
}

// RetuneThreePoints refits the full transform, anchoring fixed1 and
// fixed2 at their current images and sending v to log2fr. The only
// retune that can distort the two lattice axes independently; fails
// with affine.ErrDegenerate for collinear anchor points.
func (m *MOS) RetuneThreePoints(fixed1, fixed2, v lattice.Vec2i, log2fr float64) error {
	t1 := m.implied.ApplyInt(fixed1)
	t2 := m.implied.ApplyInt(fixed2)
	tv := m.implied.ApplyInt(v)
	tv.X = log2fr
	tr, err := affine.FromThreeDots(
		fixed1.AsVec2d(), fixed2.AsVec2d(), v.AsVec2d(),
		t1, t2, tv,
	)
	if err != nil {
		return fmt.Errorf("three-point retune: %w", err)
	}
	return m.recalcOnRetune(tr)
}
