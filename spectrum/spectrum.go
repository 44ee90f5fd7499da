package spectrum

import "math"

// DefaultDecay is the amplitude ratio between consecutive partials used
// by callers that do not care to tune it.
const DefaultDecay = 0.88

// Partial is a single spectral component: its frequency as a multiple of
// the fundamental and its linear amplitude.
type Partial struct {
	Ratio     float64
	Amplitude float64
}

// Spectrum is a list of partials. The fundamental is Partials[0] by
// convention but nothing below depends on ordering.
type Spectrum struct {
	Partials []Partial
}

// Harmonic returns partials 1..nPartials with amplitudes decay^(i−1).
func Harmonic(nPartials int, decay float64) Spectrum {
	p := make([]Partial, 0, nPartials)
	for i := 1; i <= nPartials; i++ {
		p = append(p, Partial{
			Ratio:     float64(i),
			Amplitude: math.Pow(decay, float64(i-1)),
		})
	}
	return Spectrum{Partials: p}
}

// OddHarmonic returns partials 1, 3, 5, … up to maxHarmonic with
// amplitudes decay^(h−1).
func OddHarmonic(maxHarmonic int, decay float64) Spectrum {
	var p []Partial
	for h := 1; h <= maxHarmonic; h += 2 {
		p = append(p, Partial{
			Ratio:     float64(h),
			Amplitude: math.Pow(decay, float64(h-1)),
		})
	}
	return Spectrum{Partials: p}
}

// Pseudoharmonic returns partials 1..nPartials where every prime factor
// listed in primeCents is retuned so that prime sounds at the given cent
// value (e.g. 2 → 1200¢ keeps octaves pure, 3 → 1902¢ keeps fifths just).
// Primes absent from the map stay at their harmonic position.
func Pseudoharmonic(nPartials int, decay float64, primeCents map[int]float64) Spectrum {
	// Per-prime adjustment ratio: adjusted pitch over just pitch.
	adjust := make(map[int]float64, len(primeCents))
	for prime, cents := range primeCents {
		adjust[prime] = math.Exp2(cents/1200.0) / float64(prime)
	}

	p := make([]Partial, 0, nPartials)
	for n := 1; n <= nPartials; n++ {
		ratio := float64(n)
		for _, f := range primeFactors(n) {
			if adj, ok := adjust[f]; ok {
				ratio *= adj
			}
		}
		p = append(p, Partial{
			Ratio:     ratio,
			Amplitude: math.Pow(decay, float64(n-1)),
		})
	}
	return Spectrum{Partials: p}
}

// primeFactors returns the prime factorization of n with multiplicity.
func primeFactors(n int) []int {
	var factors []int
	for i := 2; i*i <= n; {
		if n%i == 0 {
			factors = append(factors, i)
			n /= i
		} else {
			i++
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
