package pitchset

import (
	"errors"
	"math"
	"sort"
	"strconv"
)

// rangeEps is the slack applied to range filtering so pitches sitting
// exactly on a bound survive floating-point noise.
const rangeEps = 1e-6

// maxPrimes caps DefaultPrimes: the table below.
const maxPrimes = 25

// ErrInvalidParameter rejects non-positive sizes or empty prime lists at
// the construction boundary.
var ErrInvalidParameter = errors.New("pitchset: invalid parameter")

// primes holds the first 25 primes, enough for any practical prime limit.
var primes = [maxPrimes]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47,
	53, 59, 61, 67, 71, 73, 79, 83, 89, 97,
}

// Pitch is one entry of a pitch set: a display label plus its exact
// position as a log2 frequency ratio.
type Pitch struct {
	Label  string
	Log2Fr float64
}

// PitchSet is an ordered pitch collection, sorted by Log2Fr.
type PitchSet []Pitch

// PseudoPrime is a prime (or a retuned stand-in for one) with its log2
// size. JI and harmonic-series generation factor numbers over these.
type PseudoPrime struct {
	Label  string
	Number int
	Log2Fr float64
}

// PrimeFromIndex returns the idx-th prime (0-based) as a PseudoPrime.
func PrimeFromIndex(idx int) (PseudoPrime, error) {
	if idx < 0 || idx >= maxPrimes {
		return PseudoPrime{}, ErrInvalidParameter
	}
	p := primes[idx]
	return PseudoPrime{
		Label:  strconv.Itoa(p),
		Number: p,
		Log2Fr: math.Log2(float64(p)),
	}, nil
}

// DefaultPrimes returns the first n primes (capped at 25).
func DefaultPrimes(n int) []PseudoPrime {
	if n > maxPrimes {
		n = maxPrimes
	}
	list := make([]PseudoPrime, 0, n)
	for i := 0; i < n; i++ {
		p, _ := PrimeFromIndex(i)
		list = append(list, p)
	}
	return list
}

// ET generates the steps of an nSteps-fold equal division of the given
// equave that fall within [minLog2Fr, maxLog2Fr]. Labels use the
// conventional backslash notation, e.g. "7\12".
func ET(nSteps int, equaveLog2Fr, minLog2Fr, maxLog2Fr float64) (PitchSet, error) {
	if nSteps <= 0 || equaveLog2Fr <= 0 {
		return nil, ErrInvalidParameter
	}

	minStep := int(math.Ceil(minLog2Fr * float64(nSteps) / equaveLog2Fr))
	maxStep := int(math.Floor(maxLog2Fr * float64(nSteps) / equaveLog2Fr))

	var ps PitchSet
	for i := minStep; i <= maxStep; i++ {
		log2fr := float64(i) * equaveLog2Fr / float64(nSteps)
		if log2fr < minLog2Fr-rangeEps || log2fr > maxLog2Fr+rangeEps {
			continue
		}
		ps = append(ps, Pitch{
			Label:  strconv.Itoa(i) + `\` + strconv.Itoa(nSteps),
			Log2Fr: log2fr,
		})
	}
	sortByLog2Fr(ps)
	return ps, nil
}

// JI generates all coprime ratios num:den whose numerator and denominator
// factor completely over the given primes and stay below maxNumOrDen,
// filtered to [minLog2Fr, maxLog2Fr].
func JI(primeList []PseudoPrime, maxNumOrDen int, minLog2Fr, maxLog2Fr float64) (PitchSet, error) {
	if len(primeList) == 0 || maxNumOrDen <= 1 {
		return nil, ErrInvalidParameter
	}

	// All prime-limited numbers below the bound, with exact log2 sizes
	// accumulated from the (possibly retuned) prime list.
	var nums []PseudoPrime
	for i := 1; i < maxNumOrDen; i++ {
		r := i
		log2fr := 0.0
		for _, p := range primeList {
			for r%p.Number == 0 {
				r /= p.Number
				log2fr += p.Log2Fr
			}
		}
		if r == 1 {
			nums = append(nums, PseudoPrime{
				Label:  strconv.Itoa(i),
				Number: i,
				Log2Fr: log2fr,
			})
		}
	}

	var ps PitchSet
	for _, num := range nums {
		for _, den := range nums {
			if gcd(num.Number, den.Number) > 1 {
				continue
			}
			log2fr := num.Log2Fr - den.Log2Fr
			if log2fr <= minLog2Fr-rangeEps || log2fr >= maxLog2Fr+rangeEps {
				continue
			}
			ps = append(ps, Pitch{
				Label:  num.Label + ":" + den.Label,
				Log2Fr: log2fr,
			})
		}
	}
	sortByLog2Fr(ps)
	return ps, nil
}

// HarmonicSeries generates pitches num:base for every integer numerator
// whose log2 ratio over base lies within [minLog2Fr, maxLog2Fr]. The log2
// size is accumulated prime-factor by prime-factor so retuned primes
// (pseudoprimes) shift the series coherently.
func HarmonicSeries(primeList []PseudoPrime, base int, minLog2Fr, maxLog2Fr float64) (PitchSet, error) {
	if len(primeList) == 0 || base <= 0 {
		return nil, ErrInvalidParameter
	}

	baseLog2Fr := math.Log2(float64(base))
	minNum := int(math.Ceil(float64(base) * math.Exp2(minLog2Fr)))
	if minNum < 1 {
		minNum = 1
	}
	maxNum := int(math.Floor(float64(base) * math.Exp2(maxLog2Fr)))

	var ps PitchSet
	for num := minNum; num <= maxNum; num++ {
		g := gcd(num, base)
		log2fr := -baseLog2Fr
		r := num
		for _, p := range primeList {
			for r%p.Number == 0 {
				r /= p.Number
				log2fr += p.Log2Fr
			}
		}
		log2fr += math.Log2(float64(r))

		if log2fr < minLog2Fr-rangeEps || log2fr > maxLog2Fr+rangeEps {
			continue
		}
		ps = append(ps, Pitch{
			Label:  strconv.Itoa(num/g) + ":" + strconv.Itoa(base/g),
			Log2Fr: log2fr,
		})
	}
	sortByLog2Fr(ps)
	return ps, nil
}

// Closest returns the pitch of ps nearest to log2fr, or false when the
// set is empty.
func (ps PitchSet) Closest(log2fr float64) (Pitch, bool) {
	if len(ps) == 0 {
		return Pitch{}, false
	}
	best := ps[0]
	bestDist := math.Abs(best.Log2Fr - log2fr)
	for _, p := range ps[1:] {
		if d := math.Abs(p.Log2Fr - log2fr); d < bestDist {
			best, bestDist = p, d
		}
	}
	return best, true
}

func sortByLog2Fr(ps PitchSet) {
	sort.Slice(ps, func(i, j int) bool { return ps[i].Log2Fr < ps[j].Log2Fr })
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
