// Package scale turns an affine transform into an ordered node sequence:
// the lattice points whose images land in the horizontal strip 0 ≤ y < 1,
// read off in increasing x.
//
// 🚀 How generation works (three-gap traversal):
//
//  1. Strip the translation from the transform to get the linear map M.
//  2. Find the primitive step pair (r, s): among all lattice vectors whose
//     image moves forward (x > 0) and stays within one strip height
//     (|y| < 1), r is the cheapest step that raises the strip coordinate
//     and s the cheapest that lowers it. By the three-distance theorem
//     these two realize every gap between consecutive strip points.
//  3. Walk forward from the root: take r if it keeps the point inside
//     0 ≤ y < 1, else s, else r+s (boundary configurations only).
//     Walk backward symmetrically.
//
// The result is the "path on the lattice": strictly increasing tuning x,
// every strip coordinate in [0, 1).
//
// ⚙️ Usage:
//
//	sc, err := scale.FromAffine(tr, 440.0, 8, 0, scale.DefaultOptions())
//	node, err := sc.Node(3) // out-of-range is an error, never a clamp
//
// Transforms must be normalized (origin image at x = 0, 0 ≤ y < 1);
// FromAffine rejects anything else with ErrUnnormalized — use
// affine.Transform.Normalized to fix a transform up explicitly.
//
// Retuning (RetuneWithAffine) recomputes tuning coordinates and pitches
// from existing lattice coordinates without re-running the strip search;
// it is only valid for transforms that deform the tuning continuously
// without changing which lattice points fall in the strip.
package scale
