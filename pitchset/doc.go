// Package pitchset builds named collections of pitches — equal
// temperaments, just-intonation ratio sets and harmonic-series segments —
// used as tempering targets for generated scales and as references for
// deviation labels.
//
// 🚀 What lives here?
//
//   - Pitch — a label ("3:2", "7\12") plus its log2 frequency ratio.
//   - PitchSet — a slice of pitches, always sorted by Log2Fr and filtered
//     to a caller-supplied log2 range.
//   - ET — steps of an n-fold division of an arbitrary equave.
//   - JI — coprime ratios of prime-limited numbers up to a bound.
//   - HarmonicSeries — numerators over a fixed base, prime-factor exact.
//   - AddPitches / ScalePitch — label-aware pitch arithmetic: ratios
//     multiply, same-denominator ET steps add, everything else degrades to
//     a plain log2 sum with an empty label.
//
// ⚙️ Usage:
//
//	ps, err := pitchset.ET(12, 1.0, -1.0, 1.0)   // 12-TET within ±1 octave
//	ji, err := pitchset.JI(pitchset.DefaultPrimes(3), 16, 0, 1)
//
// All frequency math stays in the log2 domain; labels are exact integer
// bookkeeping on top.
package pitchset
