package polytope_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/polytope"
	"github.com/katalvlaran/lvlset/set"
)

// TestSupportFunc_HRep solves the LP path on the unit box.
func TestSupportFunc_HRep(t *testing.T) {
	p := unitBox(t)

	val, witness, err := p.SupportFunc(vec(1, 1), set.Upper)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, val, 1e-9, "sup of x+y over [-1,1]² is 2")
	assert.InDelta(t, 1.0, witness.AtVec(0), 1e-9)
	assert.InDelta(t, 1.0, witness.AtVec(1), 1e-9)

	val, _, err = p.SupportFunc(vec(1, 1), set.Lower)
	require.NoError(t, err)
	assert.InDelta(t, -2.0, val, 1e-9)
}

// TestSupportFunc_VRep uses the finite reduction, no solver involved.
func TestSupportFunc_VRep(t *testing.T) {
	v := mat.NewDense(2, 3, []float64{
		0, 2, 0,
		0, 0, 2,
	})
	p, err := polytope.NewV(v)
	require.NoError(t, err)

	val, witness, err := p.SupportFunc(vec(1, 0), set.Upper)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, val, 1e-12)
	assert.InDelta(t, 2.0, witness.AtVec(0), 1e-12)
	assert.InDelta(t, 0.0, witness.AtVec(1), 1e-12)
}

// TestSupportFunc_Sentinels verifies the IEEE infinities for empty and
// unbounded polytopes.
func TestSupportFunc_Sentinels(t *testing.T) {
	empty, err := polytope.Empty(2)
	require.NoError(t, err)
	val, witness, err := empty.SupportFunc(vec(1, 0), set.Upper)
	require.NoError(t, err)
	assert.True(t, math.IsInf(val, -1), "upper support of the empty set is -Inf")
	assert.Nil(t, witness)

	val, _, err = empty.SupportFunc(vec(1, 0), set.Lower)
	require.NoError(t, err)
	assert.True(t, math.IsInf(val, 1))

	// Half-line x ≥ 0 in 1D: unbounded above.
	ray, err := polytope.New(mat.NewDense(1, 1, []float64{-1}), vec(0))
	require.NoError(t, err)
	val, witness, err = ray.SupportFunc(vec(1), set.Upper)
	require.NoError(t, err)
	assert.True(t, math.IsInf(val, 1))
	require.NotNil(t, witness, "unbounded support carries the direction as witness ray")
	assert.InDelta(t, 1.0, witness.AtVec(0), 0)
}

// TestSupportFunc_DimensionCheck rejects mismatched directions.
func TestSupportFunc_DimensionCheck(t *testing.T) {
	p := unitBox(t)
	_, _, err := p.SupportFunc(vec(1, 0, 0), set.Upper)
	assert.ErrorIs(t, err, set.ErrWrongInputDimension)
}

// TestBox_UnitDiamond encloses the diamond |x|+|y| ≤ 1 in its box.
func TestBox_UnitDiamond(t *testing.T) {
	a := mat.NewDense(4, 2, []float64{
		1, 1,
		1, -1,
		-1, 1,
		-1, -1,
	})
	p, err := polytope.New(a, vec(1, 1, 1, 1))
	require.NoError(t, err)

	iv, err := p.BoxInterval()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		assert.InDelta(t, -1.0, iv.Inf().AtVec(i), 1e-9)
		assert.InDelta(t, 1.0, iv.Sup().AtVec(i), 1e-9)
	}

	box, err := p.Box()
	require.NoError(t, err)
	ok, _, _, err := box.ContainsPoint(vec(1, 1), polytope.ContainsOptions{Tol: 1e-9})
	require.NoError(t, err)
	assert.True(t, ok, "the box is a strict enclosure of the diamond")
}

// TestBox_Empty short-circuits on the empty-set signal.
func TestBox_Empty(t *testing.T) {
	p, err := polytope.Empty(2)
	require.NoError(t, err)

	box, err := p.Box()
	require.NoError(t, err)
	empty, err := box.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	iv, err := p.BoxInterval()
	require.NoError(t, err)
	isEmpty, _ := iv.IsEmpty()
	assert.True(t, isEmpty)
}

// TestBox_Unbounded: an unbounded polytope has no interval box, and its
// polytope box keeps only the finite bounds.
func TestBox_Unbounded(t *testing.T) {
	// Vertical strip: -1 ≤ x ≤ 1, y free.
	a := mat.NewDense(2, 2, []float64{1, 0, -1, 0})
	p, err := polytope.New(a, vec(1, 1))
	require.NoError(t, err)

	_, err = p.BoxInterval()
	assert.ErrorIs(t, err, set.ErrUnboundedConversion)

	box, err := p.Box()
	require.NoError(t, err)
	ok, _, _, err := box.ContainsPoint(vec(0, 1e6), polytope.ContainsOptions{Tol: 1e-9})
	require.NoError(t, err)
	assert.True(t, ok, "the strip's box stays unbounded along y")

	ok, _, _, err = box.ContainsPoint(vec(2, 0), polytope.ContainsOptions{Tol: 1e-9})
	require.NoError(t, err)
	assert.False(t, ok, "finite x-bounds survive")
}
