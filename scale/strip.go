package scale

import (
	"github.com/scalatrix/scalatrix/affine"
	"github.com/scalatrix/scalatrix/lattice"
)

// forwardEps separates genuine forward motion from rounding noise when
// classifying step candidates.
const forwardEps = 1e-12

// StripSteps finds the primitive step pair (r, s) of the linear part of
// tr: r is the lattice vector with the smallest positive x-image among
// those whose y-image lies in [0, 1), s the smallest among those with
// y-image in (−1, 0). Starting from any point already inside the strip
// 0 ≤ y < 1, one of r and s (or, on boundary configurations, r+s) always
// reaches the next strip point in increasing x.
//
// In exactly-periodic configurations every useful step may have y-image
// ≥ 0; then s = r and the traversal never needs a descending step.
//
// Returns ErrDegenerate when no forward step exists at all within the
// search window.
func StripSteps(tr affine.Transform, opts Options) (r, s lattice.Vec2i, err error) {
	lin := tr.Linear()
	radius := opts.SearchRadius
	if radius <= 0 {
		radius = DefaultSearchRadius
	}

	var (
		haveR, haveS bool
		bestRX       float64
		bestSX       float64
	)
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if i == 0 && j == 0 {
				continue
			}
			v := lattice.Vec2i{X: i, Y: j}
			z := lin.ApplyInt(v)
			if z.X <= forwardEps {
				continue
			}
			if z.Y >= 1 || z.Y <= -1 {
				continue
			}
			if z.Y >= 0 {
				if !haveR || z.X < bestRX {
					r, bestRX, haveR = v, z.X, true
				}
			} else {
				if !haveS || z.X < bestSX {
					s, bestSX, haveS = v, z.X, true
				}
			}
		}
	}

	if !haveR && !haveS {
		return lattice.Vec2i{}, lattice.Vec2i{}, ErrDegenerate
	}
	if !haveR {
		// Only descending candidates: the strip cannot be walked from its
		// lower edge, which the normalized origin may sit on.
		return lattice.Vec2i{}, lattice.Vec2i{}, ErrDegenerate
	}
	if !haveS {
		s = r
	}
	return r, s, nil
}
