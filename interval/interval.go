// SPDX-License-Identifier: MIT

// This file declares the Interval type, its constructors, and all
// closed-form operations on it.
package interval

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/set"
)

// maxCornerDim bounds corner enumeration: 2^n vertices explode quickly.
const maxCornerDim = 16

// Sentinel errors for interval construction and operations.
var (
	// ErrBadBounds indicates inf > sup in at least one component.
	ErrBadBounds = errors.New("interval: lower bound exceeds upper bound")

	// ErrBadDimension indicates a non-positive ambient dimension.
	ErrBadDimension = errors.New("interval: dimension must be positive")
)

// Interval implements the shared capability interface.
var _ set.Set = (*Interval)(nil)

// Interval is an axis-aligned box { x ∈ ℝⁿ : inf ≤ x ≤ sup }.
//
// The zero Interval is not usable; construct via New or Empty. Geometry is
// immutable after construction.
type Interval struct {
	n        int
	inf, sup *mat.VecDense // nil for the empty sentinel
}

// New constructs an interval from elementwise bounds.
//
// Returns set.ErrWrongInputDimension if the bound vectors disagree in
// length, ErrBadBounds if inf > sup anywhere.
func New(inf, sup *mat.VecDense) (*Interval, error) {
	if inf == nil || sup == nil || inf.Len() != sup.Len() || inf.Len() == 0 {
		return nil, fmt.Errorf("%w: bound vectors must be non-nil and of equal length", set.ErrWrongInputDimension)
	}
	n := inf.Len()
	for i := 0; i < n; i++ {
		if inf.AtVec(i) > sup.AtVec(i) {
			return nil, fmt.Errorf("%w: component %d has [%g, %g]", ErrBadBounds, i, inf.AtVec(i), sup.AtVec(i))
		}
	}

	return &Interval{n: n, inf: mat.VecDenseCopyOf(inf), sup: mat.VecDenseCopyOf(sup)}, nil
}

// Point constructs the degenerate interval [p, p].
func Point(p *mat.VecDense) (*Interval, error) {
	return New(p, p)
}

// Empty returns the canonical empty interval in ambient dimension n:
// dimension preserved, point count zero.
func Empty(n int) (*Interval, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDimension, n)
	}

	return &Interval{n: n}, nil
}

// Dim returns the ambient dimension.
func (iv *Interval) Dim() int { return iv.n }

// IsEmpty reports whether the interval contains no points. Never errors;
// the error return satisfies set.Set.
func (iv *Interval) IsEmpty() (bool, error) { return iv.inf == nil, nil }

// Inf returns a copy of the lower bound vector, or nil for the empty interval.
func (iv *Interval) Inf() *mat.VecDense {
	if iv.inf == nil {
		return nil
	}

	return mat.VecDenseCopyOf(iv.inf)
}

// Sup returns a copy of the upper bound vector, or nil for the empty interval.
func (iv *Interval) Sup() *mat.VecDense {
	if iv.sup == nil {
		return nil
	}

	return mat.VecDenseCopyOf(iv.sup)
}

// Center returns the midpoint (inf+sup)/2.
// Returns set.ErrMissingRepresentation for the empty interval.
func (iv *Interval) Center() (*mat.VecDense, error) {
	if iv.inf == nil {
		return nil, fmt.Errorf("%w: empty interval has no center", set.ErrMissingRepresentation)
	}
	c := mat.NewVecDense(iv.n, nil)
	for i := 0; i < iv.n; i++ {
		c.SetVec(i, (iv.inf.AtVec(i)+iv.sup.AtVec(i))/2)
	}

	return c, nil
}

// Radius returns the elementwise half-width (sup-inf)/2.
func (iv *Interval) Radius() (*mat.VecDense, error) {
	if iv.inf == nil {
		return nil, fmt.Errorf("%w: empty interval has no radius", set.ErrMissingRepresentation)
	}
	r := mat.NewVecDense(iv.n, nil)
	for i := 0; i < iv.n; i++ {
		r.SetVec(i, (iv.sup.AtVec(i)-iv.inf.AtVec(i))/2)
	}

	return r, nil
}

// Vertices enumerates the 2ⁿ corners of the box as matrix columns.
//
// The empty interval yields a nil matrix. Dimensions above maxCornerDim
// return set.ErrNotImplemented rather than allocating 2ⁿ columns.
//
// Complexity: O(n·2ⁿ).
func (iv *Interval) Vertices() (*mat.Dense, error) {
	if iv.inf == nil {
		return nil, nil
	}
	if iv.n > maxCornerDim {
		return nil, fmt.Errorf("%w: corner enumeration in dimension %d", set.ErrNotImplemented, iv.n)
	}
	k := 1 << iv.n
	v := mat.NewDense(iv.n, k, nil)
	for j := 0; j < k; j++ {
		for i := 0; i < iv.n; i++ {
			if j&(1<<i) != 0 {
				v.Set(i, j, iv.sup.AtVec(i))
			} else {
				v.Set(i, j, iv.inf.AtVec(i))
			}
		}
	}

	return v, nil
}

// SupportFunc evaluates the support function in closed form: each
// coordinate independently picks sup (positive direction component) or inf.
//
// Empty interval: -Inf for Upper, +Inf for Lower (IEEE sentinels, no
// tolerance at this layer).
func (iv *Interval) SupportFunc(dir *mat.VecDense, mode set.SupportMode) (float64, *mat.VecDense, error) {
	if dir == nil || dir.Len() != iv.n {
		return 0, nil, fmt.Errorf("%w: direction length must equal dimension %d", set.ErrWrongInputDimension, iv.n)
	}
	if iv.inf == nil {
		if mode == set.Upper {
			return math.Inf(-1), nil, nil
		}

		return math.Inf(1), nil, nil
	}

	value := 0.0
	witness := mat.NewVecDense(iv.n, nil)
	for i := 0; i < iv.n; i++ {
		d := dir.AtVec(i)
		hi := d > 0
		if mode == set.Lower {
			hi = !hi
		}
		x := iv.inf.AtVec(i)
		if hi {
			x = iv.sup.AtVec(i)
		}
		witness.SetVec(i, x)
		value += d * x
	}

	return value, witness, nil
}

// Contains reports whether point p lies in the interval up to tol.
func (iv *Interval) Contains(p *mat.VecDense, tol float64) (bool, error) {
	if p == nil || p.Len() != iv.n {
		return false, fmt.Errorf("%w: point length must equal dimension %d", set.ErrWrongInputDimension, iv.n)
	}
	if iv.inf == nil {
		return false, nil
	}
	for i := 0; i < iv.n; i++ {
		if p.AtVec(i) < iv.inf.AtVec(i)-tol || p.AtVec(i) > iv.sup.AtVec(i)+tol {
			return false, nil
		}
	}

	return true, nil
}

// Plus returns the Minkowski sum of two intervals: bounds add elementwise.
// Either operand empty yields empty.
func (iv *Interval) Plus(other *Interval) (*Interval, error) {
	if other == nil || other.n != iv.n {
		return nil, fmt.Errorf("%w: interval sum needs equal dimensions", set.ErrWrongInputDimension)
	}
	if iv.inf == nil || other.inf == nil {
		return Empty(iv.n)
	}
	inf := mat.NewVecDense(iv.n, nil)
	sup := mat.NewVecDense(iv.n, nil)
	inf.AddVec(iv.inf, other.inf)
	sup.AddVec(iv.sup, other.sup)

	return &Interval{n: iv.n, inf: inf, sup: sup}, nil
}

// Translate shifts the interval by vector p.
func (iv *Interval) Translate(p *mat.VecDense) (*Interval, error) {
	if p == nil || p.Len() != iv.n {
		return nil, fmt.Errorf("%w: translation vector must be a column of dimension %d", set.ErrUnsupportedOperand, iv.n)
	}
	if iv.inf == nil {
		return Empty(iv.n)
	}
	inf := mat.NewVecDense(iv.n, nil)
	sup := mat.NewVecDense(iv.n, nil)
	inf.AddVec(iv.inf, p)
	sup.AddVec(iv.sup, p)

	return &Interval{n: iv.n, inf: inf, sup: sup}, nil
}

// LinearMap returns an interval enclosure of { M·x : x ∈ I } using the
// center/radius form: c' = M·c, r' = |M|·r. Exact when M is diagonal.
func (iv *Interval) LinearMap(m *mat.Dense) (*Interval, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", set.ErrUnsupportedOperand)
	}
	rows, cols := m.Dims()
	if cols != iv.n {
		return nil, fmt.Errorf("%w: matrix has %d columns, interval dimension is %d", set.ErrWrongInputDimension, cols, iv.n)
	}
	if iv.inf == nil {
		return Empty(rows)
	}

	c, _ := iv.Center()
	r, _ := iv.Radius()
	inf := mat.NewVecDense(rows, nil)
	sup := mat.NewVecDense(rows, nil)
	for i := 0; i < rows; i++ {
		ci, ri := 0.0, 0.0
		for j := 0; j < cols; j++ {
			ci += m.At(i, j) * c.AtVec(j)
			ri += math.Abs(m.At(i, j)) * r.AtVec(j)
		}
		inf.SetVec(i, ci-ri)
		sup.SetVec(i, ci+ri)
	}

	return &Interval{n: rows, inf: inf, sup: sup}, nil
}
