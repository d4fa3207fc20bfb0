package linprog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/linprog"
)

// unitBox2D returns the constraint block of the box [-1,1]².
func unitBox2D() (*mat.Dense, []float64) {
	a := mat.NewDense(4, 2, []float64{
		1, 0,
		-1, 0,
		0, 1,
		0, -1,
	})

	return a, []float64{1, 1, 1, 1}
}

// TestSimplex_MaximizeOverBox verifies a maximization over the unit box
// reaches the expected corner.
func TestSimplex_MaximizeOverBox(t *testing.T) {
	a, b := unitBox2D()
	res, err := linprog.NewSimplex().Solve(linprog.Problem{
		C:        []float64{1, 2},
		A:        a,
		B:        b,
		Maximize: true,
	})
	require.NoError(t, err)
	require.Equal(t, linprog.Optimal, res.Status)
	assert.InDelta(t, 3.0, res.Value, 1e-9, "max x+2y over [-1,1]² is 3")
	assert.InDelta(t, 1.0, res.X[0], 1e-9)
	assert.InDelta(t, 1.0, res.X[1], 1e-9)
}

// TestSimplex_Minimize verifies the default objective sense.
func TestSimplex_Minimize(t *testing.T) {
	a, b := unitBox2D()
	res, err := linprog.NewSimplex().Solve(linprog.Problem{C: []float64{1, 0}, A: a, B: b})
	require.NoError(t, err)
	require.Equal(t, linprog.Optimal, res.Status)
	assert.InDelta(t, -1.0, res.Value, 1e-9)
}

// TestSimplex_Infeasible verifies that a self-contradictory system reports
// the Infeasible status with a nil error.
func TestSimplex_Infeasible(t *testing.T) {
	// x ≤ -1 and -x ≤ 0  →  x ≤ -1 and x ≥ 0: empty.
	a := mat.NewDense(2, 1, []float64{1, -1})
	res, err := linprog.NewSimplex().Solve(linprog.Problem{
		C: []float64{1},
		A: a,
		B: []float64{-1, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, linprog.Infeasible, res.Status)
}

// TestSimplex_Unbounded verifies the Unbounded status on a half-line.
func TestSimplex_Unbounded(t *testing.T) {
	// maximize x s.t. -x ≤ 0 (x ≥ 0): unbounded above.
	a := mat.NewDense(1, 1, []float64{-1})
	res, err := linprog.NewSimplex().Solve(linprog.Problem{
		C:        []float64{1},
		A:        a,
		B:        []float64{0},
		Maximize: true,
	})
	require.NoError(t, err)
	assert.Equal(t, linprog.Unbounded, res.Status)
}

// TestSimplex_EqualityBlock verifies equality constraints restrict the
// feasible region to a segment.
func TestSimplex_EqualityBlock(t *testing.T) {
	a, b := unitBox2D()
	ae := mat.NewDense(1, 2, []float64{1, 1}) // x + y = 0
	res, err := linprog.NewSimplex().Solve(linprog.Problem{
		C:        []float64{1, 0},
		A:        a,
		B:        b,
		Ae:       ae,
		Be:       []float64{0},
		Maximize: true,
	})
	require.NoError(t, err)
	require.Equal(t, linprog.Optimal, res.Status)
	assert.InDelta(t, 1.0, res.Value, 1e-9)
	assert.InDelta(t, -res.X[0], res.X[1], 1e-9, "witness must satisfy x+y=0")
}

// TestSimplex_Unconstrained verifies the documented unconstrained policy.
func TestSimplex_Unconstrained(t *testing.T) {
	res, err := linprog.NewSimplex().Solve(linprog.Problem{C: []float64{0, 0}})
	require.NoError(t, err)
	assert.Equal(t, linprog.Optimal, res.Status)
	assert.Equal(t, 0.0, res.Value)

	res, err = linprog.NewSimplex().Solve(linprog.Problem{C: []float64{1, 0}})
	require.NoError(t, err)
	assert.Equal(t, linprog.Unbounded, res.Status)
}

// TestSimplex_BadShapes verifies fail-fast shape validation.
func TestSimplex_BadShapes(t *testing.T) {
	a := mat.NewDense(1, 3, []float64{1, 1, 1})
	_, err := linprog.NewSimplex().Solve(linprog.Problem{C: []float64{1, 0}, A: a, B: []float64{1}})
	assert.ErrorIs(t, err, linprog.ErrBadProblem, "column mismatch must fail fast")

	_, err = linprog.NewSimplex().Solve(linprog.Problem{C: nil})
	assert.ErrorIs(t, err, linprog.ErrBadProblem, "empty objective must fail fast")
}
