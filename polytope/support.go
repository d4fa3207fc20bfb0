// SPDX-License-Identifier: MIT

// This file implements the support-function engine: the support value and
// witness point of a polytope in a given direction, using whichever
// representation is cheapest.
package polytope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/linprog"
	"github.com/katalvlaran/lvlset/set"
)

// SupportFunc computes the support value and witness point of the polytope
// in the given direction.
//
// With a vertex representation the value is a finite reduction over the
// columns of V — O(n·|V|), no solver. Otherwise one linear program
// max/min dir·x s.t. A·x ≤ b, Ae·x = be is solved.
//
// Result states:
//   - optimal:     finite value plus a witness point on the boundary.
//   - infeasible:  the polytope is empty — -Inf (Upper) / +Inf (Lower)
//     with a nil witness; callers interpret the sentinel as "empty".
//   - unbounded:   +Inf (Upper) / -Inf (Lower) with the direction itself
//     as witness ray.
//
// Comparisons against the infinities follow IEEE semantics; no tolerance
// is applied at this layer.
func (p *Polytope) SupportFunc(dir *mat.VecDense, mode set.SupportMode) (float64, *mat.VecDense, error) {
	if dir == nil || dir.Len() != p.n {
		return 0, nil, fmt.Errorf("%w: direction length must equal dimension %d", set.ErrWrongInputDimension, p.n)
	}

	if p.hasV {
		return p.supportFromVertices(dir, mode), p.supportWitnessV(dir, mode), nil
	}
	if !p.hasH {
		return 0, nil, fmt.Errorf("%w: polytope holds no representation", set.ErrMissingRepresentation)
	}

	res, err := p.lp().Solve(linprog.Problem{
		C:        vecSlice(dir),
		A:        p.a,
		B:        vecSlice(p.b),
		Ae:       p.ae,
		Be:       vecSlice(p.be),
		Maximize: mode == set.Upper,
	})
	if err != nil {
		return 0, nil, fmt.Errorf("polytope: support function: %w", err)
	}

	switch res.Status {
	case linprog.Infeasible:
		p.cache.empty = boolPtr(true)
		if mode == set.Upper {
			return math.Inf(-1), nil, nil
		}

		return math.Inf(1), nil, nil
	case linprog.Unbounded:
		p.cache.empty = boolPtr(false)
		if mode == set.Upper {
			return math.Inf(1), mat.VecDenseCopyOf(dir), nil
		}

		return math.Inf(-1), mat.VecDenseCopyOf(dir), nil
	default:
		p.cache.empty = boolPtr(false)

		return res.Value, mat.NewVecDense(p.n, res.X), nil
	}
}

// supportFromVertices reduces dir·v over the vertex columns.
func (p *Polytope) supportFromVertices(dir *mat.VecDense, mode set.SupportMode) float64 {
	if p.v == nil {
		if mode == set.Upper {
			return math.Inf(-1)
		}

		return math.Inf(1)
	}

	_, k := p.v.Dims()
	best := math.Inf(-1)
	if mode == set.Lower {
		best = math.Inf(1)
	}
	for j := 0; j < k; j++ {
		val := colDot(p.v, j, dir)
		if (mode == set.Upper && val > best) || (mode == set.Lower && val < best) {
			best = val
		}
	}

	return best
}

// supportWitnessV returns the extremal vertex, nil for the empty set.
func (p *Polytope) supportWitnessV(dir *mat.VecDense, mode set.SupportMode) *mat.VecDense {
	if p.v == nil {
		return nil
	}

	_, k := p.v.Dims()
	bestJ, best := 0, colDot(p.v, 0, dir)
	for j := 1; j < k; j++ {
		val := colDot(p.v, j, dir)
		if (mode == set.Upper && val > best) || (mode == set.Lower && val < best) {
			best, bestJ = val, j
		}
	}

	w := mat.NewVecDense(p.n, nil)
	for i := 0; i < p.n; i++ {
		w.SetVec(i, p.v.At(i, bestJ))
	}

	return w
}

// colDot computes dir · column j of m.
func colDot(m *mat.Dense, j int, dir *mat.VecDense) float64 {
	sum := 0.0
	for i := 0; i < dir.Len(); i++ {
		sum += dir.AtVec(i) * m.At(i, j)
	}

	return sum
}
