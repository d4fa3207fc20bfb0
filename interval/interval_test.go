package interval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/interval"
	"github.com/katalvlaran/lvlset/set"
)

func vec(xs ...float64) *mat.VecDense { return mat.NewVecDense(len(xs), xs) }

// TestNew_Validation covers bound ordering and shape checks.
func TestNew_Validation(t *testing.T) {
	_, err := interval.New(vec(0, 2), vec(1, 1))
	assert.ErrorIs(t, err, interval.ErrBadBounds, "inf > sup must be rejected")

	_, err = interval.New(vec(0), vec(1, 1))
	assert.ErrorIs(t, err, set.ErrWrongInputDimension)

	iv, err := interval.New(vec(-1, -1), vec(1, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, iv.Dim())
}

// TestEmpty verifies the canonical empty sentinel: dimension preserved,
// no points, no center.
func TestEmpty(t *testing.T) {
	iv, err := interval.Empty(3)
	require.NoError(t, err)
	assert.Equal(t, 3, iv.Dim())

	empty, err := iv.IsEmpty()
	require.NoError(t, err)
	assert.True(t, empty)

	ok, err := iv.Contains(vec(0, 0, 0), 1e-9)
	require.NoError(t, err)
	assert.False(t, ok, "empty interval contains nothing")

	_, err = iv.Center()
	assert.ErrorIs(t, err, set.ErrMissingRepresentation)

	_, err = interval.Empty(0)
	assert.ErrorIs(t, err, interval.ErrBadDimension)
}

// TestCenterRadiusVertices checks the derived quantities of [-1,3]×[0,2].
func TestCenterRadiusVertices(t *testing.T) {
	iv, err := interval.New(vec(-1, 0), vec(3, 2))
	require.NoError(t, err)

	c, err := iv.Center()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c.AtVec(0), 1e-12)
	assert.InDelta(t, 1.0, c.AtVec(1), 1e-12)

	r, err := iv.Radius()
	require.NoError(t, err)
	assert.InDelta(t, 2.0, r.AtVec(0), 1e-12)
	assert.InDelta(t, 1.0, r.AtVec(1), 1e-12)

	v, err := iv.Vertices()
	require.NoError(t, err)
	_, k := v.Dims()
	assert.Equal(t, 4, k, "a 2D box has 4 corners")
}

// TestContains walks the containment boundary of [-1,3]×[0,2].
func TestContains(t *testing.T) {
	iv, err := interval.New(vec(-1, 0), vec(3, 2))
	require.NoError(t, err)
	empty, err := interval.Empty(2)
	require.NoError(t, err)

	cases := []struct {
		name string
		iv   *interval.Interval
		p    *mat.VecDense
		tol  float64
		want bool
	}{
		{name: "interior", iv: iv, p: vec(1, 1), tol: 1e-9, want: true},
		{name: "corner", iv: iv, p: vec(3, 2), tol: 1e-9, want: true},
		{name: "outside within tol", iv: iv, p: vec(3+1e-10, 2), tol: 1e-9, want: true},
		{name: "outside beyond tol", iv: iv, p: vec(3.1, 1), tol: 1e-9, want: false},
		{name: "below lower bound", iv: iv, p: vec(0, -0.1), tol: 1e-9, want: false},
		{name: "empty interval", iv: empty, p: vec(0, 0), tol: 1e-9, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := tc.iv.Contains(tc.p, tc.tol)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}

	_, err = iv.Contains(vec(0), 1e-9)
	assert.ErrorIs(t, err, set.ErrWrongInputDimension)
}

// TestSupportFunc checks closed-form support values and the empty sentinels.
func TestSupportFunc(t *testing.T) {
	iv, err := interval.New(vec(-1, 0), vec(3, 2))
	require.NoError(t, err)

	val, witness, err := iv.SupportFunc(vec(1, 1), set.Upper)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, val, 1e-12, "sup of x+y is 3+2")
	assert.InDelta(t, 3.0, witness.AtVec(0), 1e-12)

	val, _, err = iv.SupportFunc(vec(1, 1), set.Lower)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, val, 1e-12)

	empty, err := interval.Empty(2)
	require.NoError(t, err)
	val, _, err = empty.SupportFunc(vec(1, 0), set.Upper)
	require.NoError(t, err)
	assert.True(t, math.IsInf(val, -1), "upper support of the empty set is -Inf")
}

// TestPlusTranslate checks interval arithmetic and shifting.
func TestPlusTranslate(t *testing.T) {
	a, err := interval.New(vec(-1, -1), vec(1, 1))
	require.NoError(t, err)
	b, err := interval.New(vec(0, 1), vec(2, 3))
	require.NoError(t, err)

	sum, err := a.Plus(b)
	require.NoError(t, err)
	assert.InDelta(t, -1.0, sum.Inf().AtVec(0), 1e-12)
	assert.InDelta(t, 4.0, sum.Sup().AtVec(1), 1e-12)

	empty, err := interval.Empty(2)
	require.NoError(t, err)
	sum, err = a.Plus(empty)
	require.NoError(t, err)
	isEmpty, _ := sum.IsEmpty()
	assert.True(t, isEmpty, "sum with the empty set is empty")

	shifted, err := a.Translate(vec(5, 5))
	require.NoError(t, err)
	assert.InDelta(t, 4.0, shifted.Inf().AtVec(0), 1e-12)
	assert.InDelta(t, 6.0, shifted.Sup().AtVec(0), 1e-12)
}

// TestLinearMap verifies the center/radius enclosure is exact for a
// diagonal scaling and conservative in general.
func TestLinearMap(t *testing.T) {
	iv, err := interval.New(vec(-1, -1), vec(1, 1))
	require.NoError(t, err)

	scaled, err := iv.LinearMap(mat.NewDense(2, 2, []float64{2, 0, 0, 3}))
	require.NoError(t, err)
	assert.InDelta(t, -2.0, scaled.Inf().AtVec(0), 1e-12)
	assert.InDelta(t, 3.0, scaled.Sup().AtVec(1), 1e-12)

	// Rotation by 45°: the enclosure must contain the rotated corner (√2, 0).
	s := math.Sqrt2 / 2
	rotated, err := iv.LinearMap(mat.NewDense(2, 2, []float64{s, -s, s, s}))
	require.NoError(t, err)
	ok, err := rotated.Contains(vec(math.Sqrt2, 0), 1e-9)
	require.NoError(t, err)
	assert.True(t, ok)
}
