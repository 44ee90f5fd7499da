package mos

import "github.com/scalatrix/scalatrix/lattice"

// Step is one choice in a brightness path: which of the two running
// step counts the Euclidean algorithm reduced.
type Step uint8

const (
	// StepLeft records a subtraction from the first coordinate.
	StepLeft Step = iota
	// StepRight records a subtraction from the second coordinate.
	StepRight
)

// String implements fmt.Stringer.
func (s Step) String() string {
	if s == StepRight {
		return "R"
	}
	return "L"
}

// Path is the brightness path of a MOS: the Euclidean reduction of the
// primitive step counts (a0, b0) down to (1, 1), recorded innermost
// step first.
type Path []Step

// DerivePath runs the Euclidean algorithm on coprime positive (a0, b0),
// subtracting the smaller count from the larger until both reach 1,
// and returns the recorded choices in reversed (innermost-first) order.
func DerivePath(a0, b0 int) Path {
	var p Path
	for a0 > 1 || b0 > 1 {
		if a0 > b0 {
			a0 -= b0
			p = append(p, StepLeft)
		} else {
			b0 -= a0
			p = append(p, StepRight)
		}
	}
	for i, j := 0, len(p)-1; i < j; i, j = i+1, j-1 {
		p[i], p[j] = p[j], p[i]
	}
	return p
}

// Apply folds the path onto v: each StepRight adds the running first
// component into the second, each StepLeft the second into the first.
// Applied to (1, 0) this reconstructs the generator vector.
func (p Path) Apply(v lattice.Vec2i) lattice.Vec2i {
	for _, s := range p {
		if s == StepRight {
			v.Y += v.X
		} else {
			v.X += v.Y
		}
	}
	return v
}

// ApplyReverse unfolds the path from v, undoing Apply step by step from
// the outside in. ApplyReverse(Apply(v)) == v for every v.
func (p Path) ApplyReverse(v lattice.Vec2i) lattice.Vec2i {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == StepRight {
			v.Y -= v.X
		} else {
			v.X -= v.Y
		}
	}
	return v
}
