// Package consonance scores intervals against a timbre. It computes
// the Plomp-Levelt pairwise roughness of two copies of a spectrum
// swept against each other, fits a smooth spline hull over the
// resulting dissonance curve, and reads consonance as the depth of the
// valleys the curve digs below that hull.
//
// The pipeline:
//
//	curve := consonance.ComputePLCurve(spec, 500, -300, 1500, 0.5)
//	hull, err := consonance.ComputeHull3(curve, 3, 0.005)
//	// hull.Spiky[i] is the valley depth at hull.Cents[i]
//
// or, end to end, AnalyzeScale scores a list of named intervals and
// returns per-interval values in [0, 1] plus their mean and total.
package consonance
