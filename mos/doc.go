// Package mos derives Moment-of-Symmetry scale structure from five
// canonical parameters: step counts a and b, a mode rotation, an equave
// (the log2 interval of repetition) and a fractional generator.
//
// 🚀 What you get
//
//   - MOS: an immutable snapshot of every derived field (reduced step
//     counts, brightness path, generator vector, implied tuning
//     transform, step vectors, a one-period reference scale).
//   - Pure integer queries: scale membership, degree, equave number,
//     accidental count, and the inverse notation→coordinate mapping.
//   - Retuning: zero/one/two/three-point adjustments that deform the
//     tuning while preserving the lattice shape.
//   - Scale production: periodic replication of the reference period
//     into scales of any length and root.
//
// ✨ The brightness path
//
// Running the Euclidean algorithm on the reduced step counts (a0, b0)
// until both reach 1 records a sequence of left/right choices, the
// Path. Folding the path onto (1, 0) rebuilds the generator vector;
// unfolding is its exact inverse. The path is the combinatorial
// identity of the pattern: two MOS agree in shape iff their paths
// agree.
//
// ⚙️ Mutation model
//
// A MOS value is a consistent snapshot. Mutators (AdjustParams,
// AdjustG, AdjustTuning, the retunes) derive a complete replacement
// first and commit it only on success, so a failed adjustment leaves
// the receiver exactly as it was.
//
// Quick start:
//
//	m, err := mos.New(5, 2, 1, 1.0, 0.585) // the diatonic shape
//	if err != nil { ... }
//	sc, err := m.GenerateScale(261.63, 15, 7)
package mos
