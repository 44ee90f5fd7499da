package pitchset

import (
	"strconv"
	"strings"
)

// ratio is a parsed "num:den" label.
type ratio struct {
	num, den int
}

// etStep is a parsed "num\den" label (den = division count).
type etStep struct {
	num, den int
}

func parseRatio(label string) (ratio, bool) {
	num, den, ok := splitInts(label, ":")
	return ratio{num: num, den: den}, ok
}

func parseET(label string) (etStep, bool) {
	num, den, ok := splitInts(label, `\`)
	return etStep{num: num, den: den}, ok
}

func splitInts(label, sep string) (int, int, bool) {
	i := strings.Index(label, sep)
	if i < 0 {
		return 0, 0, false
	}
	num, err := strconv.Atoi(label[:i])
	if err != nil {
		return 0, 0, false
	}
	den, err := strconv.Atoi(label[i+1:])
	if err != nil {
		return 0, 0, false
	}
	return num, den, true
}

// AddPitches stacks two pitches: log2 positions add; labels combine when
// compatible (two ratios multiply and reduce, two ET steps over the same
// division add numerators). Incompatible labels yield an empty label with
// the correct Log2Fr.
func AddPitches(a, b Pitch) Pitch {
	out := Pitch{Log2Fr: a.Log2Fr + b.Log2Fr}

	if ra, ok := parseRatio(a.Label); ok {
		if rb, ok := parseRatio(b.Label); ok {
			num := ra.num * rb.num
			den := ra.den * rb.den
			g := gcd(num, den)
			out.Label = strconv.Itoa(num/g) + ":" + strconv.Itoa(den/g)
			return out
		}
	}
	if ea, ok := parseET(a.Label); ok {
		if eb, ok := parseET(b.Label); ok && ea.den == eb.den {
			out.Label = strconv.Itoa(ea.num+eb.num) + `\` + strconv.Itoa(ea.den)
			return out
		}
	}
	return out
}

// ScalePitch raises a pitch to an integer power: Log2Fr scales by k; a
// ratio label is exponentiated (negative k inverts the fraction first),
// an ET label multiplies its numerator. Unknown labels come back empty.
func ScalePitch(p Pitch, k int) Pitch {
	out := Pitch{Log2Fr: float64(k) * p.Log2Fr}

	if r, ok := parseRatio(p.Label); ok {
		num, den := int64(1), int64(1)
		bn, bd := int64(r.num), int64(r.den)
		power := k
		if power < 0 {
			bn, bd = bd, bn
			power = -power
		}
		for i := 0; i < power; i++ {
			num *= bn
			den *= bd
		}
		g := gcd64(num, den)
		out.Label = strconv.FormatInt(num/g, 10) + ":" + strconv.FormatInt(den/g, 10)
		return out
	}
	if e, ok := parseET(p.Label); ok {
		out.Label = strconv.Itoa(k*e.num) + `\` + strconv.Itoa(e.den)
		return out
	}
	return out
}

func gcd64(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}
