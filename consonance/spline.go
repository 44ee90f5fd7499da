package consonance

import (
	"fmt"

	"github.com/scalatrix/scalatrix/solver"
)

// cubicSpline is a not-a-knot cubic spline through the given knots,
// matching the scipy CubicSpline default boundary conditions.
type cubicSpline struct {
	xs         []float64
	a, b, c, d []float64
	nSeg       int
}

// newCubicSpline fits the spline. Knot x values must be strictly
// increasing; two knots degrade to linear interpolation.
func newCubicSpline(x, y []float64) (*cubicSpline, error) {
	s := &cubicSpline{xs: x, nSeg: len(x) - 1}
	if s.nSeg < 1 {
		return s, nil
	}
	if s.nSeg == 1 {
		s.a = []float64{y[0]}
		s.b = []float64{(y[1] - y[0]) / (x[1] - x[0])}
		s.c = []float64{0, 0}
		s.d = []float64{0}
		return s, nil
	}

	n := s.nSeg
	h := make([]float64, n)
	for i := 0; i < n; i++ {
		h[i] = x[i+1] - x[i]
	}

	// (n+1) equations for the c coefficients: not-a-knot rows at both
	// ends, continuity of the second derivative inside.
	sz := n + 1
	mat := make([][]float64, sz)
	for i := range mat {
		mat[i] = make([]float64, sz)
	}
	rhs := make([]float64, sz)

	mat[0][0] = h[1]
	mat[0][1] = -(h[0] + h[1])
	mat[0][2] = h[0]
	for i := 1; i < n; i++ {
		mat[i][i-1] = h[i-1]
		mat[i][i] = 2 * (h[i-1] + h[i])
		mat[i][i+1] = h[i]
		rhs[i] = 3 * ((y[i+1]-y[i])/h[i] - (y[i]-y[i-1])/h[i-1])
	}
	mat[n][n-2] = h[n-1]
	mat[n][n-1] = -(h[n-2] + h[n-1])
	mat[n][n] = h[n-2]

	c, err := solver.Solve(mat, rhs)
	if err != nil {
		return nil, fmt.Errorf("spline knots: %w", err)
	}

	s.a = make([]float64, n)
	s.b = make([]float64, n)
	s.c = c
	s.d = make([]float64, n)
	for i := 0; i < n; i++ {
		s.a[i] = y[i]
		s.b[i] = (y[i+1]-y[i])/h[i] - h[i]*(c[i+1]+2*c[i])/3
		s.d[i] = (c[i+1] - c[i]) / (3 * h[i])
	}
	return s, nil
}

// eval extrapolates with the first/last segment outside the knot range.
func (s *cubicSpline) eval(xv float64) float64 {
	if s.nSeg < 1 {
		return 0
	}
	seg := s.nSeg - 1
	for i := 0; i < s.nSeg; i++ {
		if xv < s.xs[i+1] {
			seg = i
			break
		}
	}
	dx := xv - s.xs[seg]
	return s.a[seg] + s.b[seg]*dx + s.c[seg]*dx*dx + s.d[seg]*dx*dx*dx
}
