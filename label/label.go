package label

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/scalatrix/scalatrix/lattice"
	"github.com/scalatrix/scalatrix/mos"
	"github.com/scalatrix/scalatrix/scale"
)

const (
	flat  = "♭" // ♭
	sharp = "♯" // ♯
)

// Calculator renders node labels. It keeps a diatonic reference MOS so
// near-diatonic scales can be spelled with letter names.
type Calculator struct {
	diatonic *mos.MOS
}

// NewCalculator builds a Calculator with the standard diatonic
// reference shape (5L2s, mode 1, pure octave, generator 0.585).
func NewCalculator() (*Calculator, error) {
	d, err := mos.New(5, 2, 1, 1.0, 0.585)
	if err != nil {
		return nil, fmt.Errorf("diatonic reference: %w", err)
	}
	return &Calculator{diatonic: d}, nil
}

// AccidentalString returns the run of flats or sharps for v: one glyph
// per accidental count, empty for neutral nodes.
func (c *Calculator) AccidentalString(m *mos.MOS, v lattice.Vec2i) string {
	acc := m.NodeAccidental(v)
	if acc == 0 {
		return ""
	}
	glyph := sharp
	if acc < 0 {
		glyph, acc = flat, -acc
	}
	return strings.Repeat(glyph, acc)
}

// NodeLabelDigit labels v with its one-based degree plus accidentals,
// e.g. "5" for the fifth degree or "♯4".
func (c *Calculator) NodeLabelDigit(m *mos.MOS, v lattice.Vec2i, accidentalAfter bool) string {
	deg := strconv.Itoa(m.NodeScaleDegree(v) + 1)
	return joinLabel(deg, c.AccidentalString(m, v), accidentalAfter)
}

// NodeLabelDigitZeroBased is NodeLabelDigit counting degrees from 0.
func (c *Calculator) NodeLabelDigitZeroBased(m *mos.MOS, v lattice.Vec2i, accidentalAfter bool) string {
	deg := strconv.Itoa(m.NodeScaleDegree(v))
	return joinLabel(deg, c.AccidentalString(m, v), accidentalAfter)
}

// NodeLabelLetter labels v with a letter name. Degrees map to letters
// with an offset of two so that degree 0 of the diatonic shape reads
// "C".
func (c *Calculator) NodeLabelLetter(m *mos.MOS, v lattice.Vec2i, accidentalAfter bool) string {
	dia := lattice.FloorMod(v.X+v.Y+2, m.N())
	letter := string(rune('A' + dia))
	return joinLabel(letter, c.AccidentalString(m, v), accidentalAfter)
}

// NodeLabelLetterWithOctave appends the octave number, anchored so the
// base equave is middleCOctave (conventionally 4).
func (c *Calculator) NodeLabelLetterWithOctave(m *mos.MOS, v lattice.Vec2i, middleCOctave int, accidentalAfter bool) string {
	octave := middleCOctave + m.NodeEquaveNr(v)
	return c.NodeLabelLetter(m, v, accidentalAfter) + strconv.Itoa(octave)
}

// NoteLabelNormalized picks the friendliest spelling: scales whose
// generator sits between 4/7 and 3/5 of a near-octave equave are
// spelled with diatonic letters through a basis change; anything else
// gets degree digits. Setting overrideLetterLabels forces digits.
func (c *Calculator) NoteLabelNormalized(m *mos.MOS, v lattice.Vec2i, overrideLetterLabels bool) string {
	g, e := m.Generator(), m.Equave()
	if g > 4.0/7.0 && g < 3.0/5.0 && e > 0.9 && e < 1.2 && !overrideLetterLabels {
		dv := c.diatonic.MapFromMOS(m, v)
		return c.NodeLabelLetter(c.diatonic, dv, false)
	}
	return c.NodeLabelDigit(m, v, false)
}

// DeviationLabel labels a tempered node with its reference pitch and,
// when the deviation exceeds thresholdCents, the offset in cents, e.g.
// "3:2+3.9ct". compareWithTempered measures the tempered pitch against
// the reference instead of the raw tuning coordinate. Nodes without a
// reference pitch yield an empty string.
func (c *Calculator) DeviationLabel(node scale.Node, thresholdCents float64, compareWithTempered bool) string {
	ref := node.ClosestPitch
	if ref.Label == "" {
		return ""
	}
	actual := node.TuningCoord.X
	if compareWithTempered {
		actual = node.TemperedPitch.Log2Fr
	}
	cents := 1200.0 * (actual - ref.Log2Fr)
	if cents < thresholdCents && cents > -thresholdCents {
		return ref.Label
	}
	return fmt.Sprintf("%s%+.1fct", ref.Label, cents)
}

func joinLabel(body, acc string, accidentalAfter bool) string {
	if accidentalAfter {
		return body + acc
	}
	return acc + body
}
