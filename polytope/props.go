// SPDX-License-Identifier: MIT

// This file implements the memoized derived facts of a polytope —
// emptiness, boundedness, full-dimensionality — and its center point.
// Each fact is computed at most once per instance; subsequent queries are
// O(1). Cache writes are a benign race: facts are pure functions of the
// immutable geometry.
package polytope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/linprog"
	"github.com/katalvlaran/lvlset/set"
)

// IsEmpty reports whether the polytope contains no points.
//
// V-representation emptiness is "zero vertices". H-representation
// emptiness first scans for a self-contradictory row (0·x ≤ negative,
// 0·x = nonzero) and otherwise solves one feasibility LP.
func (p *Polytope) IsEmpty() (bool, error) {
	if p.cache.empty != nil {
		return *p.cache.empty, nil
	}

	empty, err := p.computeEmpty()
	if err != nil {
		return false, err
	}
	p.cache.empty = boolPtr(empty)

	return empty, nil
}

func (p *Polytope) computeEmpty() (bool, error) {
	if p.hasV {
		return p.v == nil, nil
	}
	if !p.hasH {
		return false, fmt.Errorf("%w: polytope holds no representation", set.ErrMissingRepresentation)
	}

	// Trivially contradictory rows decide without a solver.
	if p.a != nil {
		m, _ := p.a.Dims()
		for i := 0; i < m; i++ {
			if rowIsZero(p.a, i) && p.b.AtVec(i) < -zeroRowTol {
				return true, nil
			}
		}
	}
	if p.ae != nil {
		me, _ := p.ae.Dims()
		for i := 0; i < me; i++ {
			if rowIsZero(p.ae, i) && math.Abs(p.be.AtVec(i)) > zeroRowTol {
				return true, nil
			}
		}
	}

	// Zero-row system is the full space.
	if p.a == nil && p.ae == nil {
		return false, nil
	}

	res, err := p.lp().Solve(linprog.Problem{
		C:  make([]float64, p.n),
		A:  p.a,
		B:  vecSlice(p.b),
		Ae: p.ae,
		Be: vecSlice(p.be),
	})
	if err != nil {
		return false, fmt.Errorf("polytope: feasibility check: %w", err)
	}

	return res.Status == linprog.Infeasible, nil
}

// IsBounded reports whether the polytope is bounded. A held vertex list is
// always bounded; an H-representation is bounded iff its box enclosure is
// finite (empty counts as bounded).
func (p *Polytope) IsBounded() (bool, error) {
	if p.cache.bounded != nil {
		return *p.cache.bounded, nil
	}

	bounded, err := p.computeBounded()
	if err != nil {
		return false, err
	}
	p.cache.bounded = boolPtr(bounded)

	return bounded, nil
}

func (p *Polytope) computeBounded() (bool, error) {
	if p.hasV {
		return true, nil
	}
	if empty, err := p.IsEmpty(); err != nil {
		return false, err
	} else if empty {
		return true, nil
	}
	if err := p.ensureBox(); err != nil {
		return false, err
	}
	if p.cache.boxInf == nil {
		// Box detected emptiness.
		return true, nil
	}
	for i := 0; i < p.n; i++ {
		if math.IsInf(p.cache.boxInf[i], -1) || math.IsInf(p.cache.boxSup[i], 1) {
			return false, nil
		}
	}

	return true, nil
}

// IsFullDim reports whether the polytope is full-dimensional in its
// ambient space. Empty sets and sets restricted by equality constraints
// are degenerate; otherwise the Chebyshev radius (H) or the vertex-span
// rank (V) decides.
func (p *Polytope) IsFullDim() (bool, error) {
	if p.cache.fullDim != nil {
		return *p.cache.fullDim, nil
	}

	fullDim, err := p.computeFullDim()
	if err != nil {
		return false, err
	}
	p.cache.fullDim = boolPtr(fullDim)

	return fullDim, nil
}

func (p *Polytope) computeFullDim() (bool, error) {
	if empty, err := p.IsEmpty(); err != nil {
		return false, err
	} else if empty {
		return false, nil
	}

	if p.hasH {
		if p.ae != nil {
			return false, nil
		}
		_, r, err := p.chebyshev()
		if err != nil {
			return false, err
		}

		return r > featureTol, nil
	}

	// V-representation: rank of the vertex span around the first vertex.
	_, k := p.v.Dims()
	if k == 1 {
		return p.n == 0, nil
	}
	d := mat.NewDense(p.n, k-1, nil)
	for j := 1; j < k; j++ {
		for i := 0; i < p.n; i++ {
			d.Set(i, j-1, p.v.At(i, j)-p.v.At(i, 0))
		}
	}
	var svd mat.SVD
	if ok := svd.Factorize(d, mat.SVDNone); !ok {
		return false, fmt.Errorf("polytope: SVD of vertex span failed: %w", linprog.ErrNumericalFailure)
	}
	rank := 0
	for _, s := range svd.Values(nil) {
		if s > featureTol {
			rank++
		}
	}

	return rank == p.n, nil
}

// Center returns a representative point: the vertex centroid when a
// V-representation is held, the Chebyshev center otherwise.
func (p *Polytope) Center() (*mat.VecDense, error) {
	if empty, err := p.IsEmpty(); err != nil {
		return nil, err
	} else if empty {
		return nil, fmt.Errorf("%w: empty polytope has no center", set.ErrMissingRepresentation)
	}

	if p.hasV {
		_, k := p.v.Dims()
		c := mat.NewVecDense(p.n, nil)
		for j := 0; j < k; j++ {
			for i := 0; i < p.n; i++ {
				c.SetVec(i, c.AtVec(i)+p.v.At(i, j)/float64(k))
			}
		}

		return c, nil
	}

	c, _, err := p.chebyshev()

	return c, err
}

// chebyshev solves max r s.t. A·x + ‖Aᵢ‖·r ≤ b, Ae·x = be, 0 ≤ r ≤ 1.
// The radius cap keeps the program bounded on unbounded polytopes; the
// returned radius therefore saturates at 1.
func (p *Polytope) chebyshev() (*mat.VecDense, float64, error) {
	m := 0
	if p.a != nil {
		m, _ = p.a.Dims()
	}

	// Variables: [x; r]. Rows: m halfspaces, r ≥ 0, r ≤ 1.
	rows := m + 2
	a := mat.NewDense(rows, p.n+1, nil)
	b := make([]float64, rows)
	for i := 0; i < m; i++ {
		norm := 0.0
		for j := 0; j < p.n; j++ {
			v := p.a.At(i, j)
			a.Set(i, j, v)
			norm += v * v
		}
		a.Set(i, p.n, math.Sqrt(norm))
		b[i] = p.b.AtVec(i)
	}
	a.Set(m, p.n, -1)
	a.Set(m+1, p.n, 1)
	b[m+1] = 1

	var ae *mat.Dense
	var be []float64
	if p.ae != nil {
		me, _ := p.ae.Dims()
		ae = mat.NewDense(me, p.n+1, nil)
		for i := 0; i < me; i++ {
			for j := 0; j < p.n; j++ {
				ae.Set(i, j, p.ae.At(i, j))
			}
		}
		be = vecSlice(p.be)
	}

	obj := make([]float64, p.n+1)
	obj[p.n] = 1
	res, err := p.lp().Solve(linprog.Problem{C: obj, A: a, B: b, Ae: ae, Be: be, Maximize: true})
	if err != nil {
		return nil, 0, fmt.Errorf("polytope: chebyshev center: %w", err)
	}
	if res.Status != linprog.Optimal {
		return nil, 0, fmt.Errorf("%w: chebyshev program reported %s on a non-empty polytope", linprog.ErrNumericalFailure, res.Status)
	}

	x := mat.NewVecDense(p.n, res.X[:p.n])

	return x, res.X[p.n], nil
}

// representsFullspace reports whether the polytope trivially describes ℝⁿ:
// a held H-representation whose rows are all structurally satisfied.
func (p *Polytope) representsFullspace(tol float64) bool {
	if !p.hasH {
		return false
	}
	if p.cache.empty != nil && *p.cache.empty {
		return false
	}
	if p.a != nil {
		m, _ := p.a.Dims()
		for i := 0; i < m; i++ {
			if !rowWithin(p.a, i, tol) || p.b.AtVec(i) < -tol {
				return false
			}
		}
	}
	if p.ae != nil {
		me, _ := p.ae.Dims()
		for i := 0; i < me; i++ {
			if !rowWithin(p.ae, i, tol) || math.Abs(p.be.AtVec(i)) > tol {
				return false
			}
		}
	}

	return true
}

// representsOrigin reports whether the polytope is exactly the origin up
// to tol: a single ~zero vertex, or axis bounds all within tol of zero.
func (p *Polytope) representsOrigin(tol float64) (bool, error) {
	if empty, err := p.IsEmpty(); err != nil || empty {
		return false, err
	}

	if p.hasV {
		_, k := p.v.Dims()
		for j := 0; j < k; j++ {
			for i := 0; i < p.n; i++ {
				if math.Abs(p.v.At(i, j)) > tol {
					return false, nil
				}
			}
		}

		return true, nil
	}

	if p.representsFullspace(tol) {
		return false, nil
	}
	if err := p.ensureBox(); err != nil {
		return false, err
	}
	if p.cache.boxInf == nil {
		return false, nil
	}
	for i := 0; i < p.n; i++ {
		if math.Abs(p.cache.boxInf[i]) > tol || math.Abs(p.cache.boxSup[i]) > tol {
			return false, nil
		}
	}

	return true, nil
}

// rowIsZero reports whether all coefficients of row i are structurally zero.
func rowIsZero(m *mat.Dense, i int) bool {
	return rowWithin(m, i, zeroRowTol)
}

// rowWithin reports whether all coefficients of row i are within tol of zero.
func rowWithin(m *mat.Dense, i int, tol float64) bool {
	_, c := m.Dims()
	for j := 0; j < c; j++ {
		if math.Abs(m.At(i, j)) > tol {
			return false
		}
	}

	return true
}
