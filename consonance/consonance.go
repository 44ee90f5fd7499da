package consonance

import (
	"math"
	"sort"

	"github.com/viterin/vek"

	"github.com/scalatrix/scalatrix/spectrum"
)

// Plomp-Levelt roughness model constants (Sethares' parameterization).
const (
	dstar = 0.24
	s1    = 0.0207
	s2    = 18.96
	c1    = 5.0
	c2    = -5.0
	a1    = -3.51
	a2    = -5.75
)

// PLCurve is a sampled dissonance curve: PL[i] is the summed pairwise
// roughness of the spectrum against itself shifted by Cents[i].
type PLCurve struct {
	Cents []float64
	PL    []float64
}

// HullRes pairs a dissonance curve with its spline hull and the spiky
// residual Hull−PL whose peaks mark consonant valleys.
type HullRes struct {
	Cents []float64
	PL    []float64
	Hull  []float64
	Spiky []float64
}

// IntervalScore is one scored interval of an AnalyzeScale call.
type IntervalScore struct {
	Name       string
	Cents      float64
	Consonance float64
}

// Result aggregates per-interval consonances.
type Result struct {
	Intervals []IntervalScore
	Total     float64
	Mean      float64
}

// Interval names a pitch interval by its size in cents.
type Interval struct {
	Name  string
	Cents float64
}

// dissonanceAtCents sums the pairwise Plomp-Levelt roughness of the
// spectrum sounded together with itself transposed by the interval.
func dissonanceAtCents(spec spectrum.Spectrum, f0, cents float64) float64 {
	ratio := math.Exp2(cents / 1200.0)
	np := len(spec.Partials)

	type fa struct{ freq, amp float64 }
	all := make([]fa, 0, 2*np)
	for _, p := range spec.Partials {
		all = append(all, fa{f0 * p.Ratio, p.Amplitude})
	}
	for _, p := range spec.Partials {
		all = append(all, fa{f0 * ratio * p.Ratio, p.Amplitude})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].freq < all[j].freq })

	diss := 0.0
	for i := range all {
		for j := i + 1; j < len(all); j++ {
			fLow := all[i].freq
			aMin := math.Min(all[i].amp, all[j].amp)
			sf := dstar / (s1*fLow + s2) * (all[j].freq - fLow)
			diss += aMin * (c1*math.Exp(a1*sf) + c2*math.Exp(a2*sf))
		}
	}
	return diss
}

// ComputePLCurve samples the dissonance of spec against itself over
// [centsMin, centsMax] at the given resolution, with the lower tone
// fixed at f0 Hz.
func ComputePLCurve(spec spectrum.Spectrum, f0, centsMin, centsMax, resolution float64) PLCurve {
	nPoints := int((centsMax-centsMin)/resolution) + 1
	if nPoints < 2 {
		return PLCurve{
			Cents: []float64{centsMin},
			PL:    []float64{dissonanceAtCents(spec, f0, centsMin)},
		}
	}
	curve := PLCurve{
		Cents: make([]float64, nPoints),
		PL:    make([]float64, nPoints),
	}
	for i := 0; i < nPoints; i++ {
		c := centsMin + float64(i)*(centsMax-centsMin)/float64(nPoints-1)
		curve.Cents[i] = c
		curve.PL[i] = dissonanceAtCents(spec, f0, c)
	}
	return curve
}

// npGradient is a second-order finite difference: one-sided at the
// edges, central inside.
func npGradient(f []float64, dx float64) []float64 {
	n := len(f)
	g := make([]float64, n)
	if n < 2 {
		return g
	}
	g[0] = (f[1] - f[0]) / dx
	g[n-1] = (f[n-1] - f[n-2]) / dx
	for i := 1; i < n-1; i++ {
		g[i] = (f[i+1] - f[i-1]) / (2 * dx)
	}
	return g
}

// findLocalMaxima returns indices that strictly dominate every
// neighbor within order samples on both sides.
func findLocalMaxima(arr []float64, order int) []int {
	var maxima []int
	for i := order; i < len(arr)-order; i++ {
		isMax := true
		for j := i - order; j <= i+order; j++ {
			if j != i && arr[j] >= arr[i] {
				isMax = false
				break
			}
		}
		if isMax {
			maxima = append(maxima, i)
		}
	}
	return maxima
}

// hullKnots picks spline knot indices from the curvature maxima of the
// curve: spikes above spikeThreshold are dropped, and the knot list is
// padded with the curve endpoints when the outermost knots sit more
// than 50 cents from them.
func hullKnots(pl []float64, dx float64, order int, spikeThreshold float64) []int {
	d2 := npGradient(npGradient(pl, dx), dx)
	maxIdx := findLocalMaxima(d2, order)

	var clean []int
	for _, idx := range maxIdx {
		if d2[idx] <= spikeThreshold {
			clean = append(clean, idx)
		}
	}
	if len(clean) < 2 {
		// Too spiky everywhere; keep the flattest half of the maxima.
		sorted := append([]int(nil), maxIdx...)
		sort.Slice(sorted, func(i, j int) bool { return d2[sorted[i]] < d2[sorted[j]] })
		keep := len(maxIdx) / 2
		if keep < 2 {
			keep = 2
		}
		if keep > len(sorted) {
			keep = len(sorted)
		}
		clean = sorted[:keep]
		sort.Ints(clean)
	}

	n := len(pl)
	epMargin := int(50.0 / dx)
	if len(clean) == 0 || clean[0] > epMargin {
		clean = append([]int{0}, clean...)
	}
	if clean[len(clean)-1] < n-epMargin {
		clean = append(clean, n-1)
	}
	return clean
}

// ComputeHull3 fits a spline hull over the curvature-selected knots of
// the curve and returns the hull together with the spiky residual.
// Curves too short or too featureless come back with a hull equal to
// the curve and a zero residual.
func ComputeHull3(curve PLCurve, order int, spikeThreshold float64) (HullRes, error) {
	n := len(curve.Cents)
	if n < 3 {
		return HullRes{curve.Cents, curve.PL, curve.PL, make([]float64, n)}, nil
	}
	dx := curve.Cents[1] - curve.Cents[0]

	d2 := npGradient(npGradient(curve.PL, dx), dx)
	if len(findLocalMaxima(d2, order)) < 2 {
		return HullRes{curve.Cents, curve.PL, curve.PL, make([]float64, n)}, nil
	}

	knots := hullKnots(curve.PL, dx, order, spikeThreshold)
	kx := make([]float64, len(knots))
	ky := make([]float64, len(knots))
	for i, idx := range knots {
		kx[i] = curve.Cents[idx]
		ky[i] = curve.PL[idx]
	}
	spline, err := newCubicSpline(kx, ky)
	if err != nil {
		return HullRes{}, err
	}

	res := HullRes{
		Cents: curve.Cents,
		PL:    curve.PL,
		Hull:  make([]float64, n),
		Spiky: make([]float64, n),
	}
	for i, c := range curve.Cents {
		res.Hull[i] = spline.eval(c)
	}
	vek.Maximum_Inplace(res.Hull, curve.PL)
	vek.Sub_Into(res.Spiky, res.Hull, curve.PL)
	return res, nil
}

// Value maps a normalized valley depth to a consonance score in [0, 1]:
// the full-depth valley at the unison scores 1, valleys below about
// one percent of it score 0.
func Value(spikyNormalized float64) float64 {
	return math.Max(0, 1+0.5*math.Log10(math.Max(spikyNormalized, 1e-10)))
}

const (
	analysisMargin     = 300.0
	analysisResolution = 0.5
)

// AnalyzeScale scores named intervals against the spectrum. The
// dissonance curve is computed with a margin beyond [0, maxCents] so
// the hull is not biased at the edges, cropped back, and normalized to
// the valley depth at the unison. Intervals above maxIntervalCents are
// skipped.
func AnalyzeScale(spec spectrum.Spectrum, f0 float64, intervals []Interval, maxCents, maxIntervalCents float64) (Result, error) {
	ext := ComputePLCurve(spec, f0, -analysisMargin, maxCents+analysisMargin, analysisResolution)
	hull, err := ComputeHull3(ext, 3, 0.005)
	if err != nil {
		return Result{}, err
	}

	var centsCrop, spikyCrop []float64
	for i, c := range hull.Cents {
		if c >= 0 && c <= maxCents {
			centsCrop = append(centsCrop, c)
			spikyCrop = append(spikyCrop, hull.Spiky[i])
		}
	}

	peakAt0 := 0.0
	for i, c := range centsCrop {
		if c >= -0.5 && c <= 0.5 && spikyCrop[i] > peakAt0 {
			peakAt0 = spikyCrop[i]
		}
	}
	if peakAt0 <= 0 {
		peakAt0 = vek.Max(spikyCrop)
	}

	var res Result
	for _, iv := range intervals {
		if iv.Cents > maxIntervalCents {
			continue
		}
		sv := interpolate(centsCrop, spikyCrop, iv.Cents)
		c := Value(sv / peakAt0)
		res.Intervals = append(res.Intervals, IntervalScore{iv.Name, iv.Cents, c})
		res.Total += c
	}
	if len(res.Intervals) > 0 {
		res.Mean = res.Total / float64(len(res.Intervals))
	}
	return res, nil
}

// interpolate linearly between the two samples bracketing x; zero when
// x falls outside the sampled range.
func interpolate(xs, ys []float64, x float64) float64 {
	for i := 0; i+1 < len(xs); i++ {
		if xs[i] <= x && xs[i+1] >= x {
			t := (x - xs[i]) / (xs[i+1] - xs[i])
			return ys[i] + t*(ys[i+1]-ys[i])
		}
	}
	return 0
}
