// SPDX-License-Identifier: MIT

// This file declares the ConZonotope type and its operations. A
// constrained zonotope restricts the generator coefficients of a zonotope
// by linear equalities, which makes it closed under intersection at the
// cost of solver-backed queries.
package conzono

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/linprog"
	"github.com/katalvlaran/lvlset/set"
	"github.com/katalvlaran/lvlset/zonotope"
)

// Sentinel errors local to constrained-zonotope construction.
var (
	// ErrBadDimension indicates a non-positive ambient dimension.
	ErrBadDimension = errors.New("conzono: dimension must be positive")

	// ErrBadShape indicates constraint matrices whose shapes do not line
	// up with the generator count.
	ErrBadShape = errors.New("conzono: matrix shapes do not line up")
)

// defaultSolver backs the coefficient-space linear programs.
var defaultSolver linprog.Solver = linprog.NewSimplex()

// ConZonotope implements the shared capability interface.
var _ set.Set = (*ConZonotope)(nil)

// ConZonotope is the constrained zonotope
// { c + G·β : A·β = b, β ∈ [-1,1]^g }.
//
// The empty sentinel has a nil center (ambient dimension preserved). A
// nil constraint block (a and b both nil) degenerates to an ordinary
// zonotope. Geometry is immutable after construction; the emptiness fact
// is memoized (benign race, same policy as the polytope cache).
type ConZonotope struct {
	n int
	c *mat.VecDense
	g *mat.Dense

	a *mat.Dense
	b *mat.VecDense

	solver linprog.Solver
	empty  *bool
}

// Option configures a ConZonotope at construction.
type Option func(*ConZonotope)

// WithSolver overrides the linear-program solver used for emptiness and
// support queries.
func WithSolver(s linprog.Solver) Option {
	return func(cz *ConZonotope) { cz.solver = s }
}

// New constructs a constrained zonotope. g may be nil (point), and the
// constraint block (a, b) may be nil as a pair; when present, a's column
// count must equal the generator count and b's length must equal a's row
// count.
func New(c *mat.VecDense, g *mat.Dense, a *mat.Dense, b *mat.VecDense, opts ...Option) (*ConZonotope, error) {
	if c == nil || c.Len() == 0 {
		return nil, fmt.Errorf("%w: nil center; use Empty for the empty set", ErrBadShape)
	}
	n := c.Len()
	gen := 0
	if g != nil {
		r, cols := g.Dims()
		if r != n {
			return nil, fmt.Errorf("%w: generators have %d rows, center has %d", set.ErrWrongInputDimension, r, n)
		}
		gen = cols
	}
	if (a == nil) != (b == nil) {
		return nil, fmt.Errorf("%w: constraint matrix and offsets must be given together", ErrBadShape)
	}
	if a != nil {
		rows, cols := a.Dims()
		if cols != gen {
			return nil, fmt.Errorf("%w: constraint matrix has %d columns, generator count is %d", ErrBadShape, cols, gen)
		}
		if b.Len() != rows {
			return nil, fmt.Errorf("%w: constraint matrix has %d rows but offsets disagree", ErrBadShape, rows)
		}
	}

	cz := &ConZonotope{n: n, c: mat.VecDenseCopyOf(c)}
	if g != nil {
		cz.g = mat.DenseCopyOf(g)
	}
	if a != nil {
		cz.a = mat.DenseCopyOf(a)
		cz.b = mat.VecDenseCopyOf(b)
	}
	cz.apply(opts)

	return cz, nil
}

// FromZonotope lifts an ordinary zonotope into an unconstrained
// ConZonotope.
func FromZonotope(z *zonotope.Zonotope, opts ...Option) (*ConZonotope, error) {
	if z == nil {
		return nil, fmt.Errorf("%w: nil zonotope", set.ErrUnsupportedOperand)
	}
	if empty, _ := z.IsEmpty(); empty {
		return Empty(z.Dim(), opts...)
	}
	c, err := z.Center()
	if err != nil {
		return nil, err
	}

	return New(c, z.G(), nil, nil, opts...)
}

// Empty returns the canonical empty constrained zonotope in dimension n.
func Empty(n int, opts ...Option) (*ConZonotope, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}

	cz := &ConZonotope{n: n}
	cz.empty = boolPtr(true)
	cz.apply(opts)

	return cz, nil
}

// Dim returns the ambient dimension.
func (cz *ConZonotope) Dim() int { return cz.n }

// Generators returns the number of generator columns.
func (cz *ConZonotope) Generators() int {
	if cz.g == nil {
		return 0
	}
	_, g := cz.g.Dims()

	return g
}

// Constraints returns copies of the coefficient constraint block (A, b),
// both nil when unconstrained.
func (cz *ConZonotope) Constraints() (*mat.Dense, *mat.VecDense) {
	if cz.a == nil {
		return nil, nil
	}

	return mat.DenseCopyOf(cz.a), mat.VecDenseCopyOf(cz.b)
}

// IsEmpty reports whether the coefficient polytope
// { β : A·β = b, β ∈ [-1,1]^g } is infeasible. The fact is memoized.
func (cz *ConZonotope) IsEmpty() (bool, error) {
	if cz.empty != nil {
		return *cz.empty, nil
	}
	if cz.a == nil {
		// Unconstrained: β = 0 is always feasible.
		cz.empty = boolPtr(false)

		return false, nil
	}

	gen := cz.Generators()
	res, err := cz.lp().Solve(linprog.Problem{
		C:  make([]float64, gen),
		A:  betaBounds(gen),
		B:  onesSlice(2 * gen),
		Ae: cz.a,
		Be: vecSlice(cz.b),
	})
	if err != nil {
		return false, fmt.Errorf("conzono: feasibility check: %w", err)
	}

	empty := res.Status == linprog.Infeasible
	cz.empty = boolPtr(empty)

	return empty, nil
}

// Center returns a feasible representative point: c + G·β for a feasible
// coefficient vector β (the constraint-respecting analogue of the
// zonotope center). Returns set.ErrMissingRepresentation for the empty
// sentinel.
func (cz *ConZonotope) Center() (*mat.VecDense, error) {
	if empty, err := cz.IsEmpty(); err != nil {
		return nil, err
	} else if empty {
		return nil, fmt.Errorf("%w: empty constrained zonotope has no center", set.ErrMissingRepresentation)
	}
	if cz.a == nil {
		return mat.VecDenseCopyOf(cz.c), nil
	}

	gen := cz.Generators()
	res, err := cz.lp().Solve(linprog.Problem{
		C:  make([]float64, gen),
		A:  betaBounds(gen),
		B:  onesSlice(2 * gen),
		Ae: cz.a,
		Be: vecSlice(cz.b),
	})
	if err != nil {
		return nil, fmt.Errorf("conzono: center: %w", err)
	}
	if res.Status != linprog.Optimal {
		return nil, fmt.Errorf("%w: center program reported %s on a non-empty set", linprog.ErrNumericalFailure, res.Status)
	}

	return cz.pointAt(res.X), nil
}

// Vertices is not provided for constrained zonotopes: exact enumeration
// requires solving the coefficient polytope's vertex problem and is out
// of the built-in scope.
func (cz *ConZonotope) Vertices() (*mat.Dense, error) {
	return nil, fmt.Errorf("%w: constrained-zonotope vertex enumeration", set.ErrNotImplemented)
}

// SupportFunc evaluates the support function by one linear program over
// the coefficients: optimize dᵀG·β subject to A·β = b, β ∈ [-1,1]^g, and
// offset by dᵀc.
//
// Empty sentinel: -Inf for Upper, +Inf for Lower.
func (cz *ConZonotope) SupportFunc(dir *mat.VecDense, mode set.SupportMode) (float64, *mat.VecDense, error) {
	if dir == nil || dir.Len() != cz.n {
		return 0, nil, fmt.Errorf("%w: direction length must equal dimension %d", set.ErrWrongInputDimension, cz.n)
	}
	if empty, err := cz.IsEmpty(); err != nil {
		return 0, nil, err
	} else if empty {
		if mode == set.Upper {
			return math.Inf(-1), nil, nil
		}

		return math.Inf(1), nil, nil
	}

	base := mat.Dot(dir, cz.c)
	gen := cz.Generators()
	if gen == 0 {
		return base, mat.VecDenseCopyOf(cz.c), nil
	}

	// Objective over β: (Gᵀd)ᵀ·β.
	obj := make([]float64, gen)
	for j := 0; j < gen; j++ {
		for i := 0; i < cz.n; i++ {
			obj[j] += dir.AtVec(i) * cz.g.At(i, j)
		}
	}

	res, err := cz.lp().Solve(linprog.Problem{
		C:        obj,
		A:        betaBounds(gen),
		B:        onesSlice(2 * gen),
		Ae:       cz.a,
		Be:       vecSlice(cz.b),
		Maximize: mode == set.Upper,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("conzono: support: %w", err)
	}
	if res.Status != linprog.Optimal {
		return 0, nil, fmt.Errorf("%w: support program reported %s on a non-empty set", linprog.ErrNumericalFailure, res.Status)
	}

	return base + res.Value, cz.pointAt(res.X), nil
}

// Plus returns the Minkowski sum: centers add, generators concatenate,
// and the constraint blocks combine block-diagonally so each operand's
// coefficients stay independently constrained.
func (cz *ConZonotope) Plus(o *ConZonotope) (*ConZonotope, error) {
	if o == nil {
		return nil, fmt.Errorf("%w: nil operand", set.ErrUnsupportedOperand)
	}
	if o.n != cz.n {
		return nil, fmt.Errorf("%w: %d vs %d", set.ErrWrongInputDimension, cz.n, o.n)
	}
	if cz.c == nil || o.c == nil {
		return Empty(cz.n)
	}

	c := mat.NewVecDense(cz.n, nil)
	c.AddVec(cz.c, o.c)

	out := &ConZonotope{n: cz.n, c: c, solver: cz.solver}
	out.g = concatColumns(cz.n, cz.g, o.g)
	out.a, out.b = blockDiag(cz.a, cz.b, o.a, o.b, cz.Generators(), o.Generators())

	return out, nil
}

// Translate shifts the set by vector t: only the center moves.
func (cz *ConZonotope) Translate(t *mat.VecDense) (*ConZonotope, error) {
	if t == nil || t.Len() != cz.n {
		return nil, fmt.Errorf("%w: translation vector must be a column of dimension %d", set.ErrUnsupportedOperand, cz.n)
	}
	if cz.c == nil {
		return Empty(cz.n)
	}

	c := mat.NewVecDense(cz.n, nil)
	c.AddVec(cz.c, t)
	out := &ConZonotope{n: cz.n, c: c, g: cloneDense(cz.g), a: cloneDense(cz.a), b: cloneVec(cz.b), solver: cz.solver}
	out.empty = cz.empty

	return out, nil
}

// LinearMap returns the exact image (M·c, M·G); the coefficient
// constraints are untouched.
func (cz *ConZonotope) LinearMap(m *mat.Dense) (*ConZonotope, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", set.ErrUnsupportedOperand)
	}
	rows, cols := m.Dims()
	if cols != cz.n {
		return nil, fmt.Errorf("%w: matrix has %d columns, dimension is %d", set.ErrWrongInputDimension, cols, cz.n)
	}
	if cz.c == nil {
		return Empty(rows)
	}

	c := mat.NewVecDense(rows, nil)
	c.MulVec(m, cz.c)
	out := &ConZonotope{n: rows, c: c, a: cloneDense(cz.a), b: cloneVec(cz.b), solver: cz.solver}
	out.empty = cz.empty
	if cz.g != nil {
		var g mat.Dense
		g.Mul(m, cz.g)
		out.g = &g
	}

	return out, nil
}

// ToZonotope drops the coefficient constraints, yielding an ordinary
// zonotope that encloses the constrained set.
func (cz *ConZonotope) ToZonotope() (*zonotope.Zonotope, error) {
	if cz.c == nil {
		return zonotope.Empty(cz.n)
	}

	return zonotope.New(cz.c, cz.g)
}

// pointAt maps a coefficient vector into ambient space: c + G·β.
func (cz *ConZonotope) pointAt(beta []float64) *mat.VecDense {
	x := mat.VecDenseCopyOf(cz.c)
	for j := 0; j < cz.Generators(); j++ {
		for i := 0; i < cz.n; i++ {
			x.SetVec(i, x.AtVec(i)+cz.g.At(i, j)*beta[j])
		}
	}

	return x
}

// apply runs the option list and fills in the default solver.
func (cz *ConZonotope) apply(opts []Option) {
	for _, o := range opts {
		o(cz)
	}
	if cz.solver == nil {
		cz.solver = defaultSolver
	}
}

// lp returns the effective solver.
func (cz *ConZonotope) lp() linprog.Solver {
	if cz.solver != nil {
		return cz.solver
	}

	return defaultSolver
}

// betaBounds builds the [I; -I] coefficient-box constraint matrix.
func betaBounds(gen int) *mat.Dense {
	a := mat.NewDense(2*gen, gen, nil)
	for i := 0; i < gen; i++ {
		a.Set(i, i, 1)
		a.Set(gen+i, i, -1)
	}

	return a
}

// blockDiag combines two coefficient constraint systems block-diagonally.
func blockDiag(a1 *mat.Dense, b1 *mat.VecDense, a2 *mat.Dense, b2 *mat.VecDense, g1, g2 int) (*mat.Dense, *mat.VecDense) {
	m1, m2 := 0, 0
	if a1 != nil {
		m1, _ = a1.Dims()
	}
	if a2 != nil {
		m2, _ = a2.Dims()
	}
	if m1+m2 == 0 {
		return nil, nil
	}

	a := mat.NewDense(m1+m2, g1+g2, nil)
	b := mat.NewVecDense(m1+m2, nil)
	for i := 0; i < m1; i++ {
		for j := 0; j < g1; j++ {
			a.Set(i, j, a1.At(i, j))
		}
		b.SetVec(i, b1.AtVec(i))
	}
	for i := 0; i < m2; i++ {
		for j := 0; j < g2; j++ {
			a.Set(m1+i, g1+j, a2.At(i, j))
		}
		b.SetVec(m1+i, b2.AtVec(i))
	}

	return a, b
}

// concatColumns builds [g1 | g2], tolerating nil blocks.
func concatColumns(n int, g1, g2 *mat.Dense) *mat.Dense {
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

func boolPtr(v bool) *bool { return &v }

func cloneDense(m *mat.Dense) *mat.Dense {
	if m == nil {
		return nil
	}

	return mat.DenseCopyOf(m)
}

func cloneVec(v *mat.VecDense) *mat.VecDense {
	if v == nil {
		return nil
	}

	return mat.VecDenseCopyOf(v)
}

// vecSlice copies a VecDense into a plain slice (nil-safe).
func vecSlice(v *mat.VecDense) []float64 {
	if v == nil {
		return nil
	}
	out := make([]float64, v.Len())
	for i := range out {
		out[i] = v.AtVec(i)
	}

	return out
}

// onesSlice returns a slice of k ones.
func onesSlice(k int) []float64 {
	out := make([]float64, k)
	for i := range out {
		out[i] = 1
	}

	return out
}
