// SPDX-License-Identifier: MIT

// This file implements containment checking of point clouds and sets, with
// optional certification and scaling-factor computation.
package polytope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/set"
)

// normSignificance is the ‖b‖ threshold below which the scaling heuristic
// drops the normalization term.
const normSignificance = 1e-9

// ContainsOptions configures containment checks.
//
// Fields:
//   - Tol         — per-constraint violation tolerance.
//   - Certificate — also report whether the result is exact. The halfspace
//     method implemented here is always exact, so the certificate is true;
//     false is reserved for approximate methods.
//   - Scaling     — also compute, per point, the smallest λ ≥ 1 such that
//     scaling the point toward the polytope by λ would satisfy it. This is
//     the documented best-effort heuristic 1 + maxViolation/‖b‖ (or
//     1 + maxViolation when ‖b‖ is numerically insignificant), not a
//     provably tight geometric factor. Contained points report 1.0.
type ContainsOptions struct {
	Tol         float64
	Certificate bool
	Scaling     bool
}

// DefaultContainsOptions returns the defaults: Tol=1e-12, no certificate,
// no scaling.
func DefaultContainsOptions() ContainsOptions {
	return ContainsOptions{Tol: DefaultContainsTol}
}

// ContainsPoint checks a single point. Returns (contained, certificate,
// scaling). The certificate is always true (exact halfspace method);
// scaling is 1.0 for contained points and +Inf when no inequality rows
// exist to scale against.
func (p *Polytope) ContainsPoint(pt *mat.VecDense, opts ContainsOptions) (bool, bool, float64, error) {
	if pt == nil || pt.Len() != p.n {
		return false, false, 0, fmt.Errorf("%w: point length must equal dimension %d", set.ErrWrongInputDimension, p.n)
	}

	cloud := mat.NewDense(p.n, 1, nil)
	for i := 0; i < p.n; i++ {
		cloud.Set(i, 0, pt.AtVec(i))
	}

	ok, cert, scaling, err := p.ContainsCloud(cloud, opts)
	if err != nil {
		return false, false, 0, err
	}
	s := 1.0
	if opts.Scaling {
		s = scaling[0]
	}

	return ok[0], cert, s, nil
}

// ContainsCloud checks every column of pts and returns parallel results.
//
// Containment-by-halfspace is the canonical test: the H-representation is
// forced (converting from V if needed) and each point is tested against
// the inequality residual A·x − b and the equality residual |Ae·x − be|.
// A point is contained iff no residual exceeds opts.Tol.
//
// Complexity: O(points · constraints · n) after the one-off conversion.
func (p *Polytope) ContainsCloud(pts *mat.Dense, opts ContainsOptions) ([]bool, bool, []float64, error) {
	if pts == nil {
		return nil, false, nil, fmt.Errorf("%w: nil point cloud", set.ErrUnsupportedOperand)
	}
	rows, k := pts.Dims()
	if rows != p.n {
		return nil, false, nil, fmt.Errorf("%w: cloud has %d rows, dimension is %d", set.ErrWrongInputDimension, rows, p.n)
	}

	// A known-empty polytope contains nothing; this also covers degenerate
	// zero-row empties whose H-system alone would accept every point.
	if p.cache.empty != nil && *p.cache.empty {
		return falseResults(k, opts)
	}

	if err := p.ensureH(); err != nil {
		return nil, false, nil, err
	}

	m := 0
	if p.a != nil {
		m, _ = p.a.Dims()
	}
	me := 0
	if p.ae != nil {
		me, _ = p.ae.Dims()
	}

	bNorm := 0.0
	if p.b != nil {
		bNorm = floats.Norm(vecSlice(p.b), 2)
	}

	results := make([]bool, k)
	var scaling []float64
	if opts.Scaling {
		scaling = make([]float64, k)
	}

	for j := 0; j < k; j++ {
		contained := true
		maxViolation := 0.0

		for i := 0; i < m; i++ {
			r := -p.b.AtVec(i)
			for c := 0; c < p.n; c++ {
				r += p.a.At(i, c) * pts.At(c, j)
			}
			if r > maxViolation {
				maxViolation = r
			}
			if r > opts.Tol {
				contained = false
			}
		}
		for i := 0; i < me; i++ {
			r := -p.be.AtVec(i)
			for c := 0; c < p.n; c++ {
				r += p.ae.At(i, c) * pts.At(c, j)
			}
			if math.Abs(r) > opts.Tol {
				contained = false
			}
		}

		results[j] = contained
		if opts.Scaling {
			switch {
			case contained:
				scaling[j] = 1.0
			case m == 0:
				// No inequality rows to scale against.
				scaling[j] = math.Inf(1)
			case bNorm > normSignificance:
				scaling[j] = 1.0 + maxViolation/bNorm
			default:
				scaling[j] = 1.0 + maxViolation
			}
		}
	}

	return results, true, scaling, nil
}

// ContainsSet checks whether the polytope contains another set.
//
// The set is first reduced to a point cloud via its vertex enumeration;
// when that capability is unavailable, its center point is used as a
// conservative approximation; when neither exists, the check conservatively
// reports non-containment with an infinite scaling factor.
func (p *Polytope) ContainsSet(s set.Set, opts ContainsOptions) (bool, bool, float64, error) {
	if s == nil {
		return false, false, 0, fmt.Errorf("%w: nil set operand", set.ErrUnsupportedOperand)
	}
	if s.Dim() != p.n {
		return false, false, 0, fmt.Errorf("%w: set dimension %d, polytope dimension %d", set.ErrWrongInputDimension, s.Dim(), p.n)
	}

	if empty, err := s.IsEmpty(); err == nil && empty {
		// The empty set is contained in everything.
		return true, true, 1.0, nil
	}

	cloud, err := s.Vertices()
	if err != nil || cloud == nil {
		c, cerr := s.Center()
		if cerr != nil || c == nil {
			// Conservative default: cannot certify containment.
			return false, true, math.Inf(1), nil
		}
		ok, cert, sc, perr := p.ContainsPoint(c, opts)

		return ok, cert, sc, perr
	}

	oks, cert, scalings, err := p.ContainsCloud(cloud, opts)
	if err != nil {
		return false, false, 0, err
	}

	all := true
	for _, ok := range oks {
		all = all && ok
	}
	worst := 1.0
	if opts.Scaling {
		worst = floats.Max(scalings)
	}

	return all, cert, worst, nil
}

// falseResults builds the all-points-outside answer for known-empty sets.
func falseResults(k int, opts ContainsOptions) ([]bool, bool, []float64, error) {
	results := make([]bool, k)
	var scaling []float64
	if opts.Scaling {
		scaling = make([]float64, k)
		for i := range scaling {
			scaling[i] = math.Inf(1)
		}
	}

	return results, true, scaling, nil
}
