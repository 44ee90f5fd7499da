package scale

import (
	"errors"

	"github.com/scalatrix/scalatrix/lattice"
	"github.com/scalatrix/scalatrix/pitchset"
)

// Default12TETCPitch is middle C in 12-TET at A4 = 440 Hz, the
// conventional base frequency when a caller has no opinion.
const Default12TETCPitch = 261.6255653006

// Sentinel errors for scale operations.
var (
	// ErrInvalidParameter indicates a non-positive node count or base
	// frequency, or a root index outside the node range, at construction.
	ErrInvalidParameter = errors.New("scale: invalid parameter")

	// ErrUnnormalized indicates a transform whose origin image is not on
	// the segment (x = 0, 0 ≤ y < 1); callers must normalize first.
	ErrUnnormalized = errors.New("scale: transform is not normalized")

	// ErrIndexOutOfRange indicates a node index outside [0, Len).
	ErrIndexOutOfRange = errors.New("scale: node index out of range")

	// ErrDegenerate indicates the strip-step search found no forward step:
	// the linear map cannot advance along the strip.
	ErrDegenerate = errors.New("scale: degenerate linear map, no strip step exists")

	// ErrEmptyPitchSet indicates tempering against an empty pitch set.
	ErrEmptyPitchSet = errors.New("scale: pitch set must be non-empty")
)

// Node is one scale member: its exact lattice position, its image in
// tuning space under the current transform, and the resulting pitch
// (base_freq · 2^TuningCoord.X). Tempering, when applied, snaps Pitch to
// the nearest pitch-set entry and records it.
type Node struct {
	NaturalCoord  lattice.Vec2i
	TuningCoord   lattice.Vec2d
	Pitch         float64
	Tempered      bool
	TemperedPitch pitchset.Pitch
	ClosestPitch  pitchset.Pitch
}

// Options tunes the strip-step search.
type Options struct {
	// SearchRadius bounds the lattice window scanned for the step pair:
	// both coordinates range over [−SearchRadius, SearchRadius]. The
	// default is ample for every MOS-implied transform (whose steps are
	// unit vectors) and for any transform a three-point retune of one can
	// reach.
	SearchRadius int
}

// DefaultSearchRadius is the window used when Options leaves
// SearchRadius zero.
const DefaultSearchRadius = 32

// DefaultOptions returns the standard search settings.
func DefaultOptions() Options {
	return Options{SearchRadius: DefaultSearchRadius}
}
