package lattice

// Vec2i is a point in the generating integer lattice.
// The zero value is the lattice origin.
type Vec2i struct {
	X, Y int
}

// Add returns v + w. Exact.
func (v Vec2i) Add(w Vec2i) Vec2i {
	return Vec2i{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v − w. Exact.
func (v Vec2i) Sub(w Vec2i) Vec2i {
	return Vec2i{X: v.X - w.X, Y: v.Y - w.Y}
}

// Scale returns k·v. Exact.
func (v Vec2i) Scale(k int) Vec2i {
	return Vec2i{X: k * v.X, Y: k * v.Y}
}

// Neg returns −v.
func (v Vec2i) Neg() Vec2i {
	return Vec2i{X: -v.X, Y: -v.Y}
}

// AsVec2d converts v to tuning-space coordinates.
// The conversion is exact for all lattice points reachable in practice
// (|coordinate| < 2^53).
func (v Vec2i) AsVec2d() Vec2d {
	return Vec2d{X: float64(v.X), Y: float64(v.Y)}
}

// Vec2d is a point in tuning space. X is a log2 frequency ratio; Y is the
// strip coordinate.
type Vec2d struct {
	X, Y float64
}

// Add returns v + w.
func (v Vec2d) Add(w Vec2d) Vec2d {
	return Vec2d{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns v − w.
func (v Vec2d) Sub(w Vec2d) Vec2d {
	return Vec2d{X: v.X - w.X, Y: v.Y - w.Y}
}

// FloorDiv returns ⌊a/b⌋ for b > 0, correct for negative a.
func FloorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FloorMod returns a mod b in [0, b) for b > 0, correct for negative a.
func FloorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
