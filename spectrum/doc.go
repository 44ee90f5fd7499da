// Package spectrum describes instrument timbres as lists of partials
// (frequency ratio + amplitude pairs) for the consonance analysis.
//
// Three constructors cover the usual cases:
//
//   - Harmonic — partials 1..n with geometric amplitude decay.
//   - OddHarmonic — clarinet-like spectra: partials 1, 3, 5, …
//   - Pseudoharmonic — harmonic numbering with selected primes retuned to
//     given cent values, so tempered timbres can be matched against
//     tempered scales.
//
// A Spectrum is plain data; nothing here computes dissonance — that is
// package consonance's job.
package spectrum
