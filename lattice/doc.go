// Package lattice defines the two coordinate types every other scalatrix
// package builds on, plus the floored integer arithmetic used for scale
// degree and equave bookkeeping.
//
// 🚀 What lives here?
//
//   - Vec2i — a point of the generating lattice. All arithmetic is exact
//     integer arithmetic; no operation in this package or its dependents
//     ever approximates a lattice coordinate with a float.
//   - Vec2d — a point of tuning space. X carries log2-frequency-ratio
//     information; Y is an auxiliary coordinate used only to test
//     membership in the horizontal strip 0 ≤ y < 1.
//   - FloorDiv / FloorMod — floored division and non-negative modulo,
//     well defined for negative operands.
//
// ⚙️ Usage:
//
//	v := lattice.Vec2i{X: 3, Y: 1}
//	w := v.Add(lattice.Vec2i{X: 2, Y: 1}) // (5, 2), exact
//	d := lattice.FloorMod(w.X+w.Y, 7)     // scale degree arithmetic
//
// The package is allocation-free and has no dependencies.
package lattice
