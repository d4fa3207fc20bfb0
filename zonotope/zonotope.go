// SPDX-License-Identifier: MIT

// This file declares the Zonotope type, its constructors, and the
// closed-form operations on the center/generator representation.
package zonotope

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvlset/interval"
	"github.com/katalvlaran/lvlset/polytope"
	"github.com/katalvlaran/lvlset/set"
)

// maxSignDim caps generator sign enumeration: 2^g corner points.
const maxSignDim = 16

// Sentinel errors local to zonotope construction and operations.
var (
	// ErrBadDimension indicates a non-positive ambient dimension.
	ErrBadDimension = errors.New("zonotope: dimension must be positive")

	// ErrBadShape indicates a generator matrix whose row count disagrees
	// with the center.
	ErrBadShape = errors.New("zonotope: matrix shapes do not line up")

	// ErrNoZonotopes indicates an empty operand list where at least one
	// zonotope is required.
	ErrNoZonotopes = errors.New("zonotope: operand list is empty")
)

// Zonotope implements the shared capability interface.
var _ set.Set = (*Zonotope)(nil)

// Zonotope is the affine set { c + G·β : β ∈ [-1,1]^g } with center c
// (n×1) and generator matrix G (n×g, columns = generators).
//
// The empty zonotope is a distinguished sentinel with a nil center and
// nil generators (ambient dimension preserved, point count zero). A nil
// generator matrix with a valid center is the point zonotope {c}.
// Geometry is immutable after construction.
type Zonotope struct {
	n int
	c *mat.VecDense
	g *mat.Dense
}

// New constructs a zonotope from a center and an optional generator
// matrix. A nil g yields the point zonotope {c}.
func New(c *mat.VecDense, g *mat.Dense) (*Zonotope, error) {
	if c == nil || c.Len() == 0 {
		return nil, fmt.Errorf("%w: nil center; use Empty for the empty set", ErrBadShape)
	}
	n := c.Len()
	if g != nil {
		r, _ := g.Dims()
		if r != n {
			return nil, fmt.Errorf("%w: generators have %d rows, center has %d", set.ErrWrongInputDimension, r, n)
		}
	}

	z := &Zonotope{n: n, c: mat.VecDenseCopyOf(c)}
	if g != nil {
		z.g = mat.DenseCopyOf(g)
	}

	return z, nil
}

// FromPoint constructs the degenerate zonotope {p}.
func FromPoint(p *mat.VecDense) (*Zonotope, error) {
	return New(p, nil)
}

// Empty returns the canonical empty zonotope in ambient dimension n.
func Empty(n int) (*Zonotope, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}

	return &Zonotope{n: n}, nil
}

// FromInterval converts an interval into the zonotope with center
// (inf+sup)/2 and the diagonal generator matrix diag(radius).
func FromInterval(iv *interval.Interval) (*Zonotope, error) {
	if iv == nil {
		return nil, fmt.Errorf("%w: nil interval", set.ErrUnsupportedOperand)
	}
	if empty, _ := iv.IsEmpty(); empty {
		return Empty(iv.Dim())
	}

	c, err := iv.Center()
	if err != nil {
		return nil, err
	}
	r, err := iv.Radius()
	if err != nil {
		return nil, err
	}
	n := iv.Dim()
	g := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		g.Set(i, i, r.AtVec(i))
	}

	return &Zonotope{n: n, c: c, g: g}, nil
}

// Dim returns the ambient dimension.
func (z *Zonotope) Dim() int { return z.n }

// IsEmpty reports whether the zonotope is the empty sentinel. Never
// errors; the error return satisfies set.Set.
func (z *Zonotope) IsEmpty() (bool, error) { return z.c == nil, nil }

// Generators returns the number of generator columns.
func (z *Zonotope) Generators() int {
	if z.g == nil {
		return 0
	}
	_, g := z.g.Dims()

	return g
}

// Center returns a copy of the center vector.
// Returns set.ErrMissingRepresentation for the empty zonotope.
func (z *Zonotope) Center() (*mat.VecDense, error) {
	if z.c == nil {
		return nil, fmt.Errorf("%w: empty zonotope has no center", set.ErrMissingRepresentation)
	}

	return mat.VecDenseCopyOf(z.c), nil
}

// G returns a copy of the generator matrix, or nil for a point zonotope.
func (z *Zonotope) G() *mat.Dense {
	if z.g == nil {
		return nil
	}

	return mat.DenseCopyOf(z.g)
}

// Abs returns the zonotope with |c| and elementwise |G|. The empty
// zonotope maps to itself; the operation is idempotent.
func (z *Zonotope) Abs() *Zonotope {
	if z.c == nil {
		return z
	}

	out := &Zonotope{n: z.n, c: mat.NewVecDense(z.n, nil)}
	for i := 0; i < z.n; i++ {
		out.c.SetVec(i, math.Abs(z.c.AtVec(i)))
	}
	if z.g != nil {
		_, g := z.g.Dims()
		out.g = mat.NewDense(z.n, g, nil)
		for i := 0; i < z.n; i++ {
			for j := 0; j < g; j++ {
				out.g.Set(i, j, math.Abs(z.g.At(i, j)))
			}
		}
	}

	return out
}

// Plus returns the Minkowski sum: centers add, generator matrices
// concatenate. Either operand empty yields empty.
func (z *Zonotope) Plus(o *Zonotope) (*Zonotope, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil zonotope operand", set.ErrUnsupportedOperand)
	}
	if o.n != z.n {
		return nil, fmt.Errorf("%w: %d vs %d", set.ErrWrongInputDimension, z.n, o.n)
	}
	if z.c == nil || o.c == nil {
		return Empty(z.n)
	}

	c := mat.NewVecDense(z.n, nil)
	c.AddVec(z.c, o.c)

	return &Zonotope{n: z.n, c: c, g: concatGenerators(z.n, z.g, o.g)}, nil
}

// Translate shifts the zonotope by vector t: only the center moves.
func (z *Zonotope) Translate(t *mat.VecDense) (*Zonotope, error) {
	if t == nil || t.Len() != z.n {
		return nil, fmt.Errorf("%w: translation vector must be a column of dimension %d", set.ErrUnsupportedOperand, z.n)
	}
	if z.c == nil {
		return Empty(z.n)
	}

	c := mat.NewVecDense(z.n, nil)
	c.AddVec(z.c, t)

	return &Zonotope{n: z.n, c: c, g: cloneDense(z.g)}, nil
}

// LinearMap returns the image { M·x : x ∈ Z } = (M·c, M·G). The map is
// exact for zonotopes.
func (z *Zonotope) LinearMap(m *mat.Dense) (*Zonotope, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", set.ErrUnsupportedOperand)
	}
	rows, cols := m.Dims()
	if cols != z.n {
		return nil, fmt.Errorf("%w: matrix has %d columns, zonotope dimension is %d", set.ErrWrongInputDimension, cols, z.n)
	}
	if z.c == nil {
		return Empty(rows)
	}

	c := mat.NewVecDense(rows, nil)
	c.MulVec(m, z.c)
	out := &Zonotope{n: rows, c: c}
	if z.g != nil {
		var g mat.Dense
		g.Mul(m, z.g)
		out.g = &g
	}

	return out, nil
}

// Radius returns the 2-norm of the rowwise absolute generator sums — the
// radius of the tightest origin-centered box enclosure, used as an
// optimization objective in averaging intersection.
func (z *Zonotope) Radius() (float64, error) {
	if z.c == nil {
		return 0, fmt.Errorf("%w: empty zonotope has no radius", set.ErrMissingRepresentation)
	}

	return floats.Norm(z.absRowSums(), 2), nil
}

// Volume computes the exact volume 2^n · Σ_S |det G_S| over all
// n-generator subsets S.
//
// Complexity: C(g,n) determinants of n×n matrices.
func (z *Zonotope) Volume() (float64, error) {
	if z.c == nil {
		return 0, fmt.Errorf("%w: empty zonotope has no volume", set.ErrMissingRepresentation)
	}
	g := z.Generators()
	if g < z.n {
		return 0, nil
	}

	total := 0.0
	sub := mat.NewDense(z.n, z.n, nil)
	for _, cols := range combin.Combinations(g, z.n) {
		for j, col := range cols {
			for i := 0; i < z.n; i++ {
				sub.Set(i, j, z.g.At(i, col))
			}
		}
		total += math.Abs(mat.Det(sub))
	}

	return math.Pow(2, float64(z.n)) * total, nil
}

// Interval returns the tightest axis-aligned interval enclosure
// c ± Σ|gᵢ| (rowwise absolute generator sums). Empty maps to empty.
func (z *Zonotope) Interval() (*interval.Interval, error) {
	if z.c == nil {
		return interval.Empty(z.n)
	}

	r := z.absRowSums()
	inf := mat.NewVecDense(z.n, nil)
	sup := mat.NewVecDense(z.n, nil)
	for i := 0; i < z.n; i++ {
		inf.SetVec(i, z.c.AtVec(i)-r[i])
		sup.SetVec(i, z.c.AtVec(i)+r[i])
	}

	return interval.New(inf, sup)
}

// Box returns the interval enclosure as a zonotope with diagonal
// generators.
func (z *Zonotope) Box() (*Zonotope, error) {
	iv, err := z.Interval()
	if err != nil {
		return nil, err
	}

	return FromInterval(iv)
}

// Vertices enumerates the corner points c + G·s over all sign vectors
// s ∈ {-1,1}^g as matrix columns. The point set spans the zonotope but is
// not reduced to the hull vertices.
//
// The empty zonotope yields a nil matrix; more than maxSignDim generators
// return set.ErrNotImplemented.
func (z *Zonotope) Vertices() (*mat.Dense, error) {
	if z.c == nil {
		return nil, nil
	}
	g := z.Generators()
	if g == 0 {
		v := mat.NewDense(z.n, 1, nil)
		for i := 0; i < z.n; i++ {
			v.Set(i, 0, z.c.AtVec(i))
		}

		return v, nil
	}
	if g > maxSignDim {
		return nil, fmt.Errorf("%w: sign enumeration over %d generators", set.ErrNotImplemented, g)
	}

	k := 1 << g
	v := mat.NewDense(z.n, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < z.n; i++ {
			x := z.c.AtVec(i)
			for col := 0; col < g; col++ {
				if j&(1<<col) != 0 {
					x += z.g.At(i, col)
				} else {
					x -= z.g.At(i, col)
				}
			}
			v.Set(i, j, x)
		}
	}

	return v, nil
}

// SupportFunc evaluates the support function in closed form:
// h(d) = dᵀc + Σ|dᵀgᵢ|, witness c + Σ sign(dᵀgᵢ)·gᵢ.
//
// Empty zonotope: -Inf for Upper, +Inf for Lower.
func (z *Zonotope) SupportFunc(dir *mat.VecDense, mode set.SupportMode) (float64, *mat.VecDense, error) {
	if dir == nil || dir.Len() != z.n {
		return 0, nil, fmt.Errorf("%w: direction length must equal dimension %d", set.ErrWrongInputDimension, z.n)
	}
	if z.c == nil {
		if mode == set.Upper {
			return math.Inf(-1), nil, nil
		}

		return math.Inf(1), nil, nil
	}

	sign := 1.0
	if mode == set.Lower {
		sign = -1
	}

	value := mat.Dot(dir, z.c)
	witness := mat.VecDenseCopyOf(z.c)
	for col := 0; col < z.Generators(); col++ {
		d := 0.0
		for i := 0; i < z.n; i++ {
			d += dir.AtVec(i) * z.g.At(i, col)
		}
		s := sign
		if d < 0 {
			s = -sign
		}
		value += sign * math.Abs(d)
		for i := 0; i < z.n; i++ {
			witness.SetVec(i, witness.AtVec(i)+s*z.g.At(i, col))
		}
	}

	return value, witness, nil
}

// ToPolytope converts the zonotope into a V-representation polytope via
// generator sign enumeration. Inherits the Vertices generator cap.
func (z *Zonotope) ToPolytope() (*polytope.Polytope, error) {
	if z.c == nil {
		return polytope.Empty(z.n)
	}
	v, err := z.Vertices()
	if err != nil {
		return nil, err
	}

	return polytope.NewV(v)
}

// Enclose computes a zonotope enclosing
// { λ·x1 + (1−λ)·x2 : x1 ∈ Z, x2 ∈ Z2, λ ∈ [0,1] }:
// center (c1+c2)/2, generators [(Ĝ1+G2)/2 | (c1−c2)/2 | (Ĝ1−G2)/2 | rest]
// where Ĝ1 is G1 truncated to G2's column count and rest holds the
// leftover columns of the wider operand.
func (z *Zonotope) Enclose(o *Zonotope) (*Zonotope, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil zonotope operand", set.ErrUnsupportedOperand)
	}
	if o.n != z.n {
		return nil, fmt.Errorf("%w: %d vs %d", set.ErrWrongInputDimension, z.n, o.n)
	}
	if z.c == nil || o.c == nil {
		return nil, fmt.Errorf("%w: enclose over the empty zonotope", set.ErrMissingRepresentation)
	}

	// Order so the first operand carries at least as many generators.
	a, b := z, o
	if a.Generators() < b.Generators() {
		a, b = b, a
	}
	ga, gb := a.Generators(), b.Generators()

	c := mat.NewVecDense(z.n, nil)
	c.AddVec(a.c, b.c)
	c.ScaleVec(0.5, c)

	// Columns: gb sums, 1 center difference, gb differences, ga-gb leftovers.
	g := mat.NewDense(z.n, 2*gb+1+(ga-gb), nil)
	for i := 0; i < z.n; i++ {
		for j := 0; j < gb; j++ {
			g.Set(i, j, (a.g.At(i, j)+b.g.At(i, j))/2)
			g.Set(i, gb+1+j, (a.g.At(i, j)-b.g.At(i, j))/2)
		}
		g.Set(i, gb, (a.c.AtVec(i)-b.c.AtVec(i))/2)
		for j := gb; j < ga; j++ {
			g.Set(i, 2*gb+1+(j-gb), a.g.At(i, j))
		}
	}

	return &Zonotope{n: z.n, c: c, g: g}, nil
}

// ConvHull computes a zonotope enclosing the convex hull of the two
// operands. A zonotope is convex, so a nil operand returns the receiver;
// either operand being the empty sentinel (emptiness is structural here,
// no tolerance needed) yields the other; otherwise Enclose.
func (z *Zonotope) ConvHull(o *Zonotope) (*Zonotope, error) {
	if o == nil {
		return z, nil
	}
	if o.n != z.n {
		return nil, fmt.Errorf("%w: %d vs %d", set.ErrWrongInputDimension, z.n, o.n)
	}
	if o.c == nil {
		return z, nil
	}
	if z.c == nil {
		return o, nil
	}

	return z.Enclose(o)
}

// absRowSums returns the per-row sum of absolute generator entries.
func (z *Zonotope) absRowSums() []float64 {
	r := make([]float64, z.n)
	for col := 0; col < z.Generators(); col++ {
		for i := 0; i < z.n; i++ {
			r[i] += math.Abs(z.g.At(i, col))
		}
	}

	return r
}

// concatGenerators builds [g1 | g2], tolerating nil blocks.
func concatGenerators(n int, g1, g2 *mat.Dense) *mat.Dense {
	c1, c2 := 0, 0
	if g1 != nil {
		_, c1 = g1.Dims()
	}
	if g2 != nil {
		_, c2 = g2.Dims()
	}
	if c1+c2 == 0 {
		return nil
	}

	out := mat.NewDense(n, c1+c2, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < c1; j++ {
			out.Set(i, j, g1.At(i, j))
		}
		for j := 0; j < c2; j++ {
			out.Set(i, c1+j, g2.At(i, j))
		}
	}

	return out
}

func cloneDense(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}

	return mat.DenseCopyOf(m)
}
