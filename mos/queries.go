package mos

import (
	"math"

	"github.com/scalatrix/scalatrix/lattice"
)

// NodeInScale reports whether lattice point v belongs to the scale in
// the current mode. The test is the primitive-shape window: counting
// generator steps with the reduced counts keeps the answer consistent
// with what the slicing walk actually produces, also when the pattern
// repeats within the equave.
func (m *MOS) NodeInScale(v lattice.Vec2i) bool {
	d := v.X*m.b0 - v.Y*m.a0 + m.mode
	return d >= 0 && d < m.n0
}

// NodeScaleDegree returns the scale degree of v in [0, n).
func (m *MOS) NodeScaleDegree(v lattice.Vec2i) int {
	return lattice.FloorMod(v.X+v.Y, m.n)
}

// NodeEquaveNr returns which equave v falls in, 0 for the base equave.
func (m *MOS) NodeEquaveNr(v lattice.Vec2i) int {
	return lattice.FloorDiv(v.X+v.Y, m.n)
}

// accidentalConvention returns the sign and neutral-mode offset of the
// bright-generator convention: when the large step is the first basis
// vector, sharps count upward from neutral mode 1; otherwise the roles
// flip and the neutral mode sits at n0-2.
func (m *MOS) accidentalConvention() (accSign, neutral int) {
	if m.lVec.X == 1 {
		return 1, 1
	}
	return -1, m.n0 - 2
}

// NodeAccidental returns the accidental count of v: positive for
// sharps, negative for flats, zero for the neutral rotation.
func (m *MOS) NodeAccidental(v lattice.Vec2i) int {
	accSign, neutral := m.accidentalConvention()
	nGen := v.X*m.b0 - v.Y*m.a0
	return accSign * lattice.FloorDiv(nGen+neutral, m.n0)
}

// CoordFromNotation converts notation (step in [0, n), accidental
// count, equave number) back to the lattice coordinate. It is the
// exact inverse of the degree, accidental and equave-number queries.
func (m *MOS) CoordFromNotation(step, alter, octave int) lattice.Vec2i {
	accSign, neutral := m.accidentalConvention()
	d := step + m.n*octave
	x := ceilDiv(d*m.a0-neutral+accSign*alter*m.n0, m.n0)
	return lattice.Vec2i{X: x, Y: d - x}
}

// ceilDiv divides rounding toward +inf; q must be positive.
func ceilDiv(p, q int) int {
	return lattice.FloorDiv(p+q-1, q)
}

// CoordToFreq maps a (possibly fractional) lattice coordinate through
// the current tuning transform and converts to frequency.
func (m *MOS) CoordToFreq(x, y, baseFreq float64) float64 {
	return baseFreq * math.Exp2(m.implied.Apply(lattice.Vec2d{X: x, Y: y}).X)
}

// AngleStd converts the generator fraction to its standard angle, the
// inverse of g = 1/(1+tan((1-angle)·π/2)).
func (m *MOS) AngleStd() float64 {
	if m.generator <= 0 {
		return 0
	}
	return math.Pi/2 - math.Atan2(1/m.generator-1, 1)
}

// Angle folds the standard angle through the brightness path, yielding
// the angle in the innermost (deepest) coordinate frame.
func (m *MOS) Angle() float64 {
	angle := m.AngleStd()
	for _, s := range m.path {
		if s == StepRight {
			angle = math.Atan2(math.Tan(angle)-1, 1)
		} else {
			angle = math.Atan2(1, 1/math.Tan(angle)-1)
		}
	}
	return angle
}

// GFromAngle unfolds an innermost-frame angle back through the path and
// returns the corresponding generator fraction. Inverse of Angle.
func (m *MOS) GFromAngle(angle float64) float64 {
	for i := len(m.path) - 1; i >= 0; i-- {
		if m.path[i] == StepRight {
			angle = math.Atan2(math.Tan(angle)+1, 1)
		} else {
			angle = math.Atan2(1, 1/math.Tan(angle)+1)
		}
	}
	return 1 / (1 + math.Tan(math.Pi/2-angle))
}
