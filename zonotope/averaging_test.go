package zonotope_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/set"
	"github.com/katalvlaran/lvlset/zonotope"
)

// TestAveraging_SelfIntersection: intersecting a zonotope with itself
// must reproduce it — the closed-form weights are exactly 0.5, 0.5 and
// cancel in the normalization.
func TestAveraging_SelfIntersection(t *testing.T) {
	g := mat.NewDense(2, 2, []float64{
		2, 2,
		2, 0,
	})
	z, err := zonotope.New(vec(2, 1), g)
	require.NoError(t, err)

	out, err := zonotope.AveragingIntersection([]*zonotope.Zonotope{z, z}, zonotope.DefaultAveragingOptions())
	require.NoError(t, err)

	c, err := out.Center()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, c.AtVec(0), 1e-12)
	assert.InDelta(t, 1.0, c.AtVec(1), 1e-12)

	// The concatenated half-weight generators describe the same set:
	// identical interval bounds and support values.
	zi, err := z.Interval()
	require.NoError(t, err)
	oi, err := out.Interval()
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		assert.InDelta(t, zi.Inf().AtVec(i), oi.Inf().AtVec(i), 1e-12)
		assert.InDelta(t, zi.Sup().AtVec(i), oi.Sup().AtVec(i), 1e-12)
	}

	zv, _, err := z.SupportFunc(vec(1, 2), set.Upper)
	require.NoError(t, err)
	ov, _, err := out.SupportFunc(vec(1, 2), set.Upper)
	require.NoError(t, err)
	assert.InDelta(t, zv, ov, 1e-12)
}

// TestAveraging_ClosedFormWeights: a wide and a narrow zonotope — the
// analytic weights favor the narrow one (smaller generator energy gets
// the larger weight).
func TestAveraging_ClosedFormWeights(t *testing.T) {
	wide, err := zonotope.New(vec(0, 0), mat.NewDense(2, 2, []float64{10, 0, 0, 10}))
	require.NoError(t, err)
	narrow, err := zonotope.New(vec(1, 1), mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.NoError(t, err)

	out, err := zonotope.AveragingIntersection([]*zonotope.Zonotope{wide, narrow}, zonotope.DefaultAveragingOptions())
	require.NoError(t, err)

	// t_wide = 200, t_narrow = 2 → w = (1/101, 100/101); the center lands
	// almost on the narrow operand's center.
	c, err := out.Center()
	require.NoError(t, err)
	assert.InDelta(t, 100.0/101.0, c.AtVec(0), 1e-9)

	r, err := out.Radius()
	require.NoError(t, err)
	nr, err := narrow.Radius()
	require.NoError(t, err)
	assert.Less(t, r, 2*nr, "the enclosure stays near the narrow operand's scale")
}

// TestAveraging_NumericRadius exercises the derivative-free path.
func TestAveraging_NumericRadius(t *testing.T) {
	z1, err := zonotope.New(vec(0, 0), mat.NewDense(2, 2, []float64{3, 0, 0, 3}))
	require.NoError(t, err)
	z2, err := zonotope.New(vec(1, 0), mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.NoError(t, err)

	out, err := zonotope.AveragingIntersection(
		[]*zonotope.Zonotope{z1, z2},
		zonotope.AveragingOptions{Method: zonotope.Radius, WeightSum: 1},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, out.Dim())

	// The optimizer should not do worse than uniform weights.
	r, err := out.Radius()
	require.NoError(t, err)
	assert.LessOrEqual(t, r, 3.0)
}

// TestAveraging_Validation rejects empty lists, empty operands and
// mismatched dimensions.
func TestAveraging_Validation(t *testing.T) {
	_, err := zonotope.AveragingIntersection(nil, zonotope.DefaultAveragingOptions())
	assert.ErrorIs(t, err, zonotope.ErrNoZonotopes)

	z2, err := zonotope.New(vec(0, 0), nil)
	require.NoError(t, err)
	e, err := zonotope.Empty(2)
	require.NoError(t, err)
	_, err = zonotope.AveragingIntersection([]*zonotope.Zonotope{z2, e}, zonotope.DefaultAveragingOptions())
	assert.ErrorIs(t, err, set.ErrMissingRepresentation)

	z3, err := zonotope.New(vec(0, 0, 0), nil)
	require.NoError(t, err)
	_, err = zonotope.AveragingIntersection([]*zonotope.Zonotope{z2, z3}, zonotope.DefaultAveragingOptions())
	assert.ErrorIs(t, err, set.ErrWrongInputDimension)

	opts := zonotope.DefaultAveragingOptions()
	opts.WeightSum = -1
	_, err = zonotope.AveragingIntersection([]*zonotope.Zonotope{z2}, opts)
	assert.ErrorIs(t, err, zonotope.ErrBadWeightSum)
}

// TestAveraging_PointOperand: a point zonotope has zero generator energy,
// which the closed form cannot weight; the numeric path handles the same
// list without dividing by the energy.
func TestAveraging_PointOperand(t *testing.T) {
	z, err := zonotope.New(vec(0, 0), mat.NewDense(2, 2, []float64{1, 0, 0, 1}))
	require.NoError(t, err)
	pt, err := zonotope.FromPoint(vec(1, 1))
	require.NoError(t, err)

	_, err = zonotope.AveragingIntersection([]*zonotope.Zonotope{z, pt}, zonotope.DefaultAveragingOptions())
	assert.ErrorIs(t, err, zonotope.ErrZeroGeneratorEnergy)

	opts := zonotope.AveragingOptions{Method: zonotope.NormGen, ClosedForm: false, WeightSum: 1}
	out, err := zonotope.AveragingIntersection([]*zonotope.Zonotope{z, pt}, opts)
	require.NoError(t, err)
	c, err := out.Center()
	require.NoError(t, err)
	assert.False(t, math.IsNaN(c.AtVec(0)), "numeric weights stay finite")
}

// TestMethodString covers the objective labels.
func TestMethodString(t *testing.T) {
	assert.Equal(t, "normGen", zonotope.NormGen.String())
	assert.Equal(t, "radius", zonotope.Radius.String())
	assert.Equal(t, "volume", zonotope.Volume.String())
}
