// SPDX-License-Identifier: MIT

// This file declares the Polytope type, its functional options, the
// degenerate constructors (Empty, Origin, Inf), and raw accessors.
package polytope

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/interval"
	"github.com/katalvlaran/lvlset/linprog"
	"github.com/katalvlaran/lvlset/set"
)

// Numeric policy constants.
const (
	// DefaultContainsTol is the default containment tolerance.
	DefaultContainsTol = 1e-12

	// specialCaseTol is the tolerance for the fullspace/empty/origin
	// special-case checks in Minkowski addition.
	specialCaseTol = 1e-10

	// zeroRowTol is the threshold under which a constraint coefficient is
	// treated as structurally zero.
	zeroRowTol = 1e-12

	// featureTol is the feasibility tolerance for built-in vertex
	// enumeration and full-dimensionality checks.
	featureTol = 1e-9
)

// Sentinel errors local to polytope construction.
var (
	// ErrBadDimension indicates a non-positive ambient dimension.
	ErrBadDimension = errors.New("polytope: dimension must be positive")

	// ErrBadShape indicates constraint/vertex matrices whose shapes do not
	// line up.
	ErrBadShape = errors.New("polytope: matrix shapes do not line up")
)

// defaultSolver is shared by all polytopes without an explicit solver.
var defaultSolver linprog.Solver = linprog.NewSimplex()

// Polytope implements the shared capability interface.
var _ set.Set = (*Polytope)(nil)

// Polytope is a convex polytope with a lazily accumulated dual
// representation. Geometry is immutable after construction; only the
// memoized-facts cache is populated in place (idempotent, benign race).
type Polytope struct {
	n int

	// H-representation. A nil block means "no constraints of that kind";
	// hasH reports whether the H-representation as a whole is valid.
	hasH  bool
	a, ae *mat.Dense
	b, be *mat.VecDense

	// V-representation: columns of v are vertices. hasV with a nil v is
	// the zero-vertex (empty) V-representation.
	hasV bool
	v    *mat.Dense

	solver linprog.Solver
	venum  VertexEnumerator
	fenum  FacetEnumerator

	cache facts
}

// facts holds memoized derived facts; nil pointer = not yet known.
type facts struct {
	empty   *bool
	bounded *bool
	fullDim *bool

	// Axis-aligned bounds from the box enclosure; valid once boxDone.
	boxDone        bool
	boxInf, boxSup []float64
}

// Option configures a Polytope at construction.
type Option func(*Polytope)

// WithSolver overrides the linear-program solver used for support
// functions, emptiness checks and the Chebyshev center.
func WithSolver(s linprog.Solver) Option {
	return func(p *Polytope) { p.solver = s }
}

// WithVertexEnumerator plugs an external H→V enumeration capability for
// dimensions the built-ins do not cover.
func WithVertexEnumerator(e VertexEnumerator) Option {
	return func(p *Polytope) { p.venum = e }
}

// WithFacetEnumerator plugs an external V→H enumeration capability for
// dimensions the built-ins do not cover.
func WithFacetEnumerator(e FacetEnumerator) Option {
	return func(p *Polytope) { p.fenum = e }
}

// New constructs a polytope from inequality constraints A·x ≤ b.
// The ambient dimension is the column count of A.
func New(a *mat.Dense, b *mat.VecDense, opts ...Option) (*Polytope, error) {
	return NewWithEquality(a, b, nil, nil, opts...)
}

// NewWithEquality constructs a polytope from A·x ≤ b and Ae·x = be.
// Either block (but not both) may be nil.
func NewWithEquality(a *mat.Dense, b *mat.VecDense, ae *mat.Dense, be *mat.VecDense, opts ...Option) (*Polytope, error) {
	if a == nil && ae == nil {
		return nil, fmt.Errorf("%w: both constraint blocks are nil; use Inf for the full space", ErrBadShape)
	}

	n := 0
	if a != nil {
		_, n = a.Dims()
	} else {
		_, n = ae.Dims()
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: constraint matrices need at least one column", ErrBadDimension)
	}
	if err := checkHBlock(a, b, n, "inequality"); err != nil {
		return nil, err
	}
	if err := checkHBlock(ae, be, n, "equality"); err != nil {
		return nil, err
	}

	p := &Polytope{n: n, hasH: true}
	if a != nil {
		p.a = mat.DenseCopyOf(a)
		p.b = mat.VecDenseCopyOf(b)
	}
	if ae != nil {
		p.ae = mat.DenseCopyOf(ae)
		p.be = mat.VecDenseCopyOf(be)
	}
	p.apply(opts)

	return p, nil
}

// NewV constructs a polytope as the convex hull of the columns of v.
func NewV(v *mat.Dense, opts ...Option) (*Polytope, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil vertex matrix; use Empty for the empty set", ErrBadShape)
	}
	n, k := v.Dims()
	if n == 0 || k == 0 {
		return nil, fmt.Errorf("%w: vertex matrix must have at least one row and column", ErrBadShape)
	}

	p := &Polytope{n: n, hasV: true, v: mat.DenseCopyOf(v)}
	p.apply(opts)

	return p, nil
}

// Empty returns the canonical empty polytope in dimension n, described by
// the single infeasible constraint 0·x ≤ −1.
func Empty(n int, opts ...Option) (*Polytope, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}

	p := &Polytope{
		n:    n,
		hasH: true,
		a:    mat.NewDense(1, n, nil),
		b:    mat.NewVecDense(1, []float64{-1}),
	}
	p.cache.empty = boolPtr(true)
	p.apply(opts)

	return p, nil
}

// Origin returns the polytope holding exactly the origin of ℝⁿ, described
// by the n+1 halfspaces xᵢ ≤ 0 and −Σxᵢ ≤ 0.
func Origin(n int, opts ...Option) (*Polytope, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}

	a := mat.NewDense(n+1, n, nil)
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
		a.Set(n, i, -1)
	}

	p := &Polytope{n: n, hasH: true, a: a, b: mat.NewVecDense(n+1, nil)}
	p.cache.empty = boolPtr(false)
	p.cache.bounded = boolPtr(true)
	p.apply(opts)

	return p, nil
}

// Inf returns the full space ℝⁿ: a polytope with a zero-row constraint
// system.
func Inf(n int, opts ...Option) (*Polytope, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}

	p := &Polytope{n: n, hasH: true}
	p.cache.empty = boolPtr(false)
	p.cache.bounded = boolPtr(false)
	p.cache.fullDim = boolPtr(true)
	p.apply(opts)

	return p, nil
}

// FromInterval converts an axis-aligned interval into the H-polytope
// [I; −I]·x ≤ [sup; −inf].
func FromInterval(iv *interval.Interval, opts ...Option) (*Polytope, error) {
	if iv == nil {
		return nil, fmt.Errorf("%w: nil interval", set.ErrUnsupportedOperand)
	}
	if empty, _ := iv.IsEmpty(); empty {
		return Empty(iv.Dim(), opts...)
	}

	n := iv.Dim()
	a := mat.NewDense(2*n, n, nil)
	b := mat.NewVecDense(2*n, nil)
	inf, sup := iv.Inf(), iv.Sup()
	for i := 0; i < n; i++ {
		a.Set(i, i, 1)
		a.Set(n+i, i, -1)
		b.SetVec(i, sup.AtVec(i))
		b.SetVec(n+i, -inf.AtVec(i))
	}

	p := &Polytope{n: n, hasH: true, a: a, b: b}
	p.cache.empty = boolPtr(false)
	p.cache.bounded = boolPtr(true)
	p.apply(opts)

	return p, nil
}

// Dim returns the ambient dimension.
func (p *Polytope) Dim() int { return p.n }

// HasHRep reports whether a halfspace representation is currently held.
func (p *Polytope) HasHRep() bool { return p.hasH }

// HasVRep reports whether a vertex representation is currently held.
func (p *Polytope) HasVRep() bool { return p.hasV }

// A returns a copy of the inequality matrix, or nil when no inequality
// constraints are held.
func (p *Polytope) A() *mat.Dense { return cloneDense(p.a) }

// B returns a copy of the inequality offsets, or nil.
func (p *Polytope) B() *mat.VecDense { return cloneVec(p.b) }

// Ae returns a copy of the equality matrix, or nil.
func (p *Polytope) Ae() *mat.Dense { return cloneDense(p.ae) }

// Be returns a copy of the equality offsets, or nil.
func (p *Polytope) Be() *mat.VecDense { return cloneVec(p.be) }

// apply runs the option list and fills in the default solver.
func (p *Polytope) apply(opts []Option) {
	for _, o := range opts {
		o(p)
	}
	if p.solver == nil {
		p.solver = defaultSolver
	}
}

// child creates a derived polytope inheriting the receiver's solver and
// enumerator plugs.
func (p *Polytope) child(n int) *Polytope {
	return &Polytope{n: n, solver: p.solver, venum: p.venum, fenum: p.fenum}
}

// lp returns the effective solver.
func (p *Polytope) lp() linprog.Solver {
	if p.solver != nil {
		return p.solver
	}

	return defaultSolver
}

// checkHBlock validates one constraint block.
func checkHBlock(m *mat.Dense, offset *mat.VecDense, n int, kind string) error {
	if m == nil {
		if offset != nil {
			return fmt.Errorf("%w: %s offsets without a matrix", ErrBadShape, kind)
		}

		return nil
	}
	r, c := m.Dims()
	if c != n {
		return fmt.Errorf("%w: %s matrix has %d columns, expected %d", set.ErrWrongInputDimension, kind, c, n)
	}
	if offset == nil || offset.Len() != r {
		return fmt.Errorf("%w: %s matrix has %d rows but offsets disagree", ErrBadShape, kind, r)
	}

	return nil
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
