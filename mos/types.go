package mos

import "errors"

var (
	// ErrInvalidParameter is returned for non-positive step counts, a
	// generator outside [0,1], a non-positive equave, or a mode outside
	// [0, n0).
	ErrInvalidParameter = errors.New("mos: invalid parameter")

	// ErrDegenerate is returned when a retune or derivation collapses
	// the period or the point-correspondence system has no solution.
	ErrDegenerate = errors.New("mos: degenerate configuration")
)

// periodEps rejects retunes that collapse the period to nothing.
const periodEps = 1e-12
