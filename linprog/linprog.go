// SPDX-License-Identifier: MIT

// This file declares the Problem/Result/Solver types and the gonum-backed
// Simplex implementation.
package linprog

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DefaultTol is the pivot tolerance handed to the underlying simplex method.
const DefaultTol = 1e-10

// Sentinel errors for linear-program solving.
var (
	// ErrBadProblem indicates inconsistent problem shapes (matrix/vector
	// dimensions that do not line up).
	ErrBadProblem = errors.New("linprog: malformed problem shapes")

	// ErrNumericalFailure indicates the underlying solver failed for a
	// reason other than infeasibility or unboundedness.
	ErrNumericalFailure = errors.New("linprog: solver failed numerically")
)

// Status reports the outcome of a solve.
type Status int

const (
	// Optimal — a finite optimum was found; Value and X are valid.
	Optimal Status = iota

	// Infeasible — the constraint system admits no point.
	Infeasible

	// Unbounded — the objective is unbounded over the feasible region.
	Unbounded
)

// String returns the conventional name of the status.
func (s Status) String() string {
	switch s {
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	default:
		return "optimal"
	}
}

// Problem is a general-form linear program
//
//	min / max  Cᵀx   s.t.  A·x ≤ B,  Ae·x = Be.
//
// A and Ae may be nil when the corresponding constraint block is absent;
// their offset slices must then be empty as well.
type Problem struct {
	// C is the objective vector, length n.
	C []float64

	// A, B are the inequality block: A is m×n (nil for m=0), B has length m.
	A *mat.Dense
	B []float64

	// Ae, Be are the equality block: Ae is me×n (nil for me=0), Be has length me.
	Ae *mat.Dense
	Be []float64

	// Maximize flips the objective sense; the default minimizes.
	Maximize bool
}

// Result carries the solve outcome. Value and X are meaningful only for
// Status == Optimal.
type Result struct {
	Status Status
	Value  float64
	X      []float64
}

// Solver solves general-form linear programs. Implementations must be safe
// for concurrent use.
type Solver interface {
	Solve(p Problem) (Result, error)
}

// Simplex is the default Solver, backed by gonum's dense simplex method.
// The zero value is ready to use with DefaultTol.
type Simplex struct {
	// Tol is the pivot tolerance; zero means DefaultTol.
	Tol float64
}

// NewSimplex returns a Simplex solver with the default tolerance.
func NewSimplex() *Simplex { return &Simplex{Tol: DefaultTol} }

// Solve converts p to standard form and runs the simplex method.
//
// Infeasible/unbounded outcomes are reported through Result.Status with a
// nil error; only numeric breakdown of the method is an error.
//
// Complexity: that of dense simplex — exponential worst case, fast for the
// small systems set operations produce.
func (s *Simplex) Solve(p Problem) (Result, error) {
	n := len(p.C)
	if n == 0 {
		return Result{}, fmt.Errorf("%w: empty objective", ErrBadProblem)
	}
	if err := checkBlock(p.A, p.B, n, "inequality"); err != nil {
		return Result{}, err
	}
	if err := checkBlock(p.Ae, p.Be, n, "equality"); err != nil {
		return Result{}, err
	}

	// Entirely unconstrained: optimal at the origin for a zero objective,
	// unbounded otherwise. Convert/Simplex require at least one row.
	if p.A == nil && p.Ae == nil {
		for _, ci := range p.C {
			if ci != 0 {
				return Result{Status: Unbounded}, nil
			}
		}

		return Result{Status: Optimal, Value: 0, X: make([]float64, n)}, nil
	}

	c := make([]float64, n)
	copy(c, p.C)
	if p.Maximize {
		for i := range c {
			c[i] = -c[i]
		}
	}

	var g mat.Matrix
	if p.A != nil {
		g = p.A
	}
	var a mat.Matrix
	if p.Ae != nil {
		a = p.Ae
	}

	cStd, aStd, bStd := lp.Convert(c, g, p.B, a, p.Be)

	tol := s.Tol
	if tol == 0 {
		tol = DefaultTol
	}

	opt, xStd, err := lp.Simplex(cStd, aStd, bStd, tol, nil)
	switch {
	case errors.Is(err, lp.ErrInfeasible):
		return Result{Status: Infeasible}, nil
	case errors.Is(err, lp.ErrUnbounded):
		return Result{Status: Unbounded}, nil
	case err != nil:
		return Result{}, fmt.Errorf("%w: %v", ErrNumericalFailure, err)
	}

	// Standard form splits every free variable v into v⁺ − v⁻; the split
	// pair occupies columns i and n+i of the converted system.
	x := make([]float64, n)
	for i := range x {
		x[i] = xStd[i] - xStd[n+i]
	}

	value := opt
	if p.Maximize {
		value = -opt
	}

	return Result{Status: Optimal, Value: value, X: x}, nil
}

// checkBlock validates one constraint block's shapes.
func checkBlock(m *mat.Dense, offset []float64, n int, kind string) error {
	if m == nil {
		if len(offset) != 0 {
			return fmt.Errorf("%w: %s offsets without a matrix", ErrBadProblem, kind)
		}

		return nil
	}
	r, c := m.Dims()
	if c != n {
		return fmt.Errorf("%w: %s matrix has %d columns, objective has %d", ErrBadProblem, kind, c, n)
	}
	if r != len(offset) {
		return fmt.Errorf("%w: %s matrix has %d rows, offset has %d", ErrBadProblem, kind, r, len(offset))
	}

	return nil
}
