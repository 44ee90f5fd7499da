// Package scalatrix generates and analyzes microtonal scales from a
// geometric model of the 2D integer lattice.
//
// 🚀 What is scalatrix?
//
//	The core idea: "a scale is a path on a 2D lattice". An affine transform
//	redistributes the lattice in tuning space; the points landing inside the
//	horizontal strip 0 ≤ y < 1, read off in increasing x, form the scale:
//		• Affine algebra: real and integer 2×2 transforms + translation
//		• Strip slicing: three-gap lattice traversal with strict ordering
//		• MOS theory: step patterns, brightness paths, modes, retuning
//		• Pitch sets: equal temperaments, just intonation, harmonic series
//		• Consonance: Plomp–Levelt dissonance curves and interval scores
//
// ✨ Why choose scalatrix?
//
//   - Exact where it matters – lattice arithmetic never touches floats
//   - Log2-domain tuning math – a single 2^x conversion at the very end
//   - Pure computation – no I/O, no hidden state, no goroutines
//   - Transactional mutation – a failed retune leaves nothing half-updated
//
// Under the hood, everything is organized per concern:
//
//	lattice/    — exact integer and real 2-vectors
//	solver/     — small dense linear solves (Gaussian elimination)
//	affine/     — affine transforms, point-correspondence fitting
//	scale/      — strip sampling and node sequences
//	mos/        — Moment-of-Symmetry derivation, retuning, notation queries
//	pitchset/   — ET / JI / harmonic-series pitch collections
//	spectrum/   — partial lists for consonance analysis
//	consonance/ — dissonance curves, hulls, per-interval scores
//	label/      — structural note labels (digits, letters, accidentals)
//
// Quick ASCII example:
//
//	y=1 ──────────────────────────────
//	      ∙     ∙     ∙    ∙     ∙      ← lattice images inside the strip
//	y=0 ──────────────────────────────
//	      0    0.17  0.32 0.49  0.585   ← read left to right: the scale
//
// Dive into README-style examples in each package's example_test.go, and
// try the inspection CLI under cmd/scalatrix.
//
//	go get github.com/scalatrix/scalatrix
package scalatrix
