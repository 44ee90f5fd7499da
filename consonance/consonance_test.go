package consonance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalatrix/scalatrix/consonance"
	"github.com/scalatrix/scalatrix/spectrum"
)

// TestComputePLCurve_Shape samples the requested grid and peaks in
// roughness somewhere between the deep valleys.
func TestComputePLCurve_Shape(t *testing.T) {
	spec := spectrum.Harmonic(8, spectrum.DefaultDecay)
	curve := consonance.ComputePLCurve(spec, 500, 0, 1200, 0.5)

	require.Len(t, curve.Cents, 2401)
	require.Len(t, curve.PL, 2401)
	assert.InDelta(t, 0.0, curve.Cents[0], 1e-12)
	assert.InDelta(t, 1200.0, curve.Cents[2400], 1e-9)

	// The octave valley: dissonance at 1200 cents is well below the
	// dissonance a quartertone away.
	atOctave := curve.PL[2400]
	nearOctave := curve.PL[2300] // 1150 cents
	assert.Less(t, atOctave, nearOctave)
}

// TestComputeHull3 covers the curve from above: the hull dominates the
// raw dissonance everywhere and the residual is non-negative.
func TestComputeHull3(t *testing.T) {
	spec := spectrum.Harmonic(8, spectrum.DefaultDecay)
	curve := consonance.ComputePLCurve(spec, 500, -300, 1500, 0.5)
	hull, err := consonance.ComputeHull3(curve, 3, 0.005)
	require.NoError(t, err)

	require.Len(t, hull.Hull, len(curve.PL))
	require.Len(t, hull.Spiky, len(curve.PL))
	for i := range hull.Hull {
		assert.GreaterOrEqual(t, hull.Hull[i], curve.PL[i]-1e-12, "index %d", i)
		assert.GreaterOrEqual(t, hull.Spiky[i], -1e-12, "index %d", i)
	}
}

// TestComputeHull3_Short returns the curve unchanged when there is
// nothing to fit.
func TestComputeHull3_Short(t *testing.T) {
	curve := consonance.PLCurve{Cents: []float64{0, 1}, PL: []float64{1, 2}}
	hull, err := consonance.ComputeHull3(curve, 3, 0.005)
	require.NoError(t, err)
	assert.Equal(t, curve.PL, hull.Hull)
	assert.Equal(t, []float64{0, 0}, hull.Spiky)
}

// TestValue clamps to [0, 1] with 1 at full valley depth.
func TestValue(t *testing.T) {
	assert.InDelta(t, 1.0, consonance.Value(1.0), 1e-12)
	assert.InDelta(t, 0.5, consonance.Value(0.1), 1e-12)
	assert.Equal(t, 0.0, consonance.Value(0.0))
	assert.Equal(t, 0.0, consonance.Value(1e-4))
}

// TestAnalyzeScale ranks the just fifth above the semitone for a
// harmonic timbre and reports the aggregate statistics.
func TestAnalyzeScale(t *testing.T) {
	spec := spectrum.Harmonic(8, spectrum.DefaultDecay)
	intervals := []consonance.Interval{
		{Name: "unison", Cents: 0},
		{Name: "semitone", Cents: 100},
		{Name: "fifth", Cents: 701.955},
		{Name: "octave", Cents: 1200},
		{Name: "ninth", Cents: 1400},
	}
	res, err := consonance.AnalyzeScale(spec, 500, intervals, 1200, 1200)
	require.NoError(t, err)

	// The 1400 cent entry is beyond maxIntervalCents and skipped.
	require.Len(t, res.Intervals, 4)

	byName := map[string]float64{}
	for _, iv := range res.Intervals {
		assert.GreaterOrEqual(t, iv.Consonance, 0.0)
		assert.LessOrEqual(t, iv.Consonance, 1.0)
		byName[iv.Name] = iv.Consonance
	}
	assert.Greater(t, byName["fifth"], byName["semitone"])
	assert.Greater(t, byName["octave"], byName["semitone"])
	assert.InDelta(t, res.Total/4, res.Mean, 1e-12)
}
