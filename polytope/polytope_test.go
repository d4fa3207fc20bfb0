package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/interval"
	"github.com/katalvlaran/lvlset/polytope"
	"github.com/katalvlaran/lvlset/set"
)

func vec(xs ...float64) *mat.VecDense { return mat.NewVecDense(len(xs), xs) }

// unitBox returns the H-polytope [-1,1]².
func unitBox(t *testing.T) *polytope.Polytope {
	t.Helper()
	a := mat.NewDense(4, 2, []float64{
		1, 0,
		-1, 0,
		0, 1,
		0, -1,
	})
	p, err := polytope.New(a, vec(1, 1, 1, 1))
	require.NoError(t, err)

	return p
}

// TestConstructors_Validation covers the fail-fast shape checks.
func TestConstructors_Validation(t *testing.T) {
	_, err := polytope.New(nil, nil)
	assert.ErrorIs(t, err, polytope.ErrBadShape, "no constraint blocks at all")

	a := mat.NewDense(1, 2, []float64{1, 0})
	_, err = polytope.New(a, vec(1, 2))
	assert.ErrorIs(t, err, polytope.ErrBadShape, "row/offset mismatch")

	ae := mat.NewDense(1, 3, []float64{1, 0, 0})
	_, err = polytope.NewWithEquality(a, vec(1), ae, vec(0))
	assert.ErrorIs(t, err, set.ErrWrongInputDimension, "equality block column mismatch")

	_, err = polytope.NewV(nil)
	assert.ErrorIs(t, err, polytope.ErrBadShape)

	_, err = polytope.Empty(0)
	assert.ErrorIs(t, err, polytope.ErrBadDimension)

	_, err = polytope.Inf(-1)
	assert.ErrorIs(t, err, polytope.ErrBadDimension)
}

// TestEmpty verifies the canonical empty polytope: constraint 0·x ≤ −1,
// emptiness, and non-containment of the origin.
func TestEmpty(t *testing.T) {
	p, err := polytope.Empty(3)
	require.NoError(t, err)
	assert.Equal(t, 3, p.Dim())
	assert.True(t, p.HasHRep())

	a, b := p.A(), p.B()
	r, c := a.Dims()
	assert.Equal(t, 1, r)
	assert.Equal(t, 3, c)
	assert.InDelta(t, -1.0, b.AtVec(0), 0)

	empty, err := p.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	ok, _, _, err := p.ContainsPoint(vec(0, 0, 0), polytope.DefaultContainsOptions())
	require.NoError(t, err)
	assert.False(t, ok, "the empty set contains nothing, not even the origin")
}

// TestOrigin verifies the origin polytope's H-system and that its vertex
// enumeration yields exactly the origin.
func TestOrigin(t *testing.T) {
	p, err := polytope.Origin(2)
	require.NoError(t, err)
	assert.True(t, p.HasHRep())
	assert.False(t, p.HasVRep())

	v, err := p.Vertices()
	require.NoError(t, err)
	assert.True(t, p.HasVRep(), "conversion must populate the store")
	rows, cols := v.Dims()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 1, cols)
	assert.InDelta(t, 0.0, v.At(0, 0), 1e-9)
	assert.InDelta(t, 0.0, v.At(1, 0), 1e-9)
}

// TestInf verifies the full space: non-empty, unbounded, full-dimensional.
func TestInf(t *testing.T) {
	p, err := polytope.Inf(2)
	require.NoError(t, err)

	empty, err := p.IsEmpty()
	require.NoError(t, err)
	assert.False(t, empty)

	bounded, err := p.IsBounded()
	require.NoError(t, err)
	assert.False(t, bounded)

	fullDim, err := p.IsFullDim()
	require.NoError(t, err)
	assert.True(t, fullDim)
}

// TestMemoizedFacts verifies emptiness is computed once and cached: an
// infeasible system without a trivial contradiction still reports empty.
func TestMemoizedFacts(t *testing.T) {
	// x ≤ -1 and x ≥ 0: infeasible without a structurally zero row.
	a := mat.NewDense(2, 1, []float64{1, -1})
	p, err := polytope.New(a, vec(-1, 0))
	require.NoError(t, err)

	empty, err := p.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty, "feasibility LP must detect emptiness")

	// Second query is O(1); result must be stable.
	empty, err = p.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}

// TestProps_UnitBox checks boundedness, full-dimensionality and the
// Chebyshev center on the unit box.
func TestProps_UnitBox(t *testing.T) {
	p := unitBox(t)

	bounded, err := p.IsBounded()
	require.NoError(t, err)
	assert.True(t, bounded)

	fullDim, err := p.IsFullDim()
	require.NoError(t, err)
	assert.True(t, fullDim)

	c, err := p.Center()
	require.NoError(t, err)
	assert.InDelta(t, 0.0, c.AtVec(0), 1e-9)
	assert.InDelta(t, 0.0, c.AtVec(1), 1e-9)
}

// TestEqualityConstraints verifies degenerate (lower-dimensional) sets:
// the segment x+y=1 inside the unit square.
func TestEqualityConstraints(t *testing.T) {
	a := mat.NewDense(4, 2, []float64{1, 0, -1, 0, 0, 1, 0, -1})
	ae := mat.NewDense(1, 2, []float64{1, 1})
	p, err := polytope.NewWithEquality(a, vec(1, 1, 1, 1), ae, vec(1))
	require.NoError(t, err)

	fullDim, err := p.IsFullDim()
	require.NoError(t, err)
	assert.False(t, fullDim, "equality-constrained sets are degenerate")

	ok, _, _, err := p.ContainsPoint(vec(0.5, 0.5), polytope.DefaultContainsOptions())
	require.NoError(t, err)
	assert.True(t, ok, "a point on the carrier line is contained")

	ok, _, _, err = p.ContainsPoint(vec(0.5, 0.6), polytope.ContainsOptions{Tol: 1e-9})
	require.NoError(t, err)
	assert.False(t, ok, "off the carrier line violates the equality residual")

	v, err := p.Vertices()
	require.NoError(t, err)
	_, k := v.Dims()
	assert.Equal(t, 2, k, "the segment has two endpoints")
}

// TestFromInterval verifies the interval→polytope bridge.
func TestFromInterval(t *testing.T) {
	iv, err := interval.New(vec(-1, 0), vec(1, 2))
	require.NoError(t, err)
	p, err := polytope.FromInterval(iv)
	require.NoError(t, err)

	ok, _, _, err := p.ContainsPoint(vec(0, 1), polytope.DefaultContainsOptions())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _, _, err = p.ContainsPoint(vec(0, 3), polytope.DefaultContainsOptions())
	require.NoError(t, err)
	assert.False(t, ok)

	emptyIv, err := interval.Empty(2)
	require.NoError(t, err)
	p, err = polytope.FromInterval(emptyIv)
	require.NoError(t, err)
	empty, err := p.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)
}
