// SPDX-License-Identifier: MIT

// This file implements Minkowski addition across representation
// combinations, plus translation by a point vector.
package polytope

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/set"
)

// Plus computes the Minkowski sum P ⊕ Q = { p + q : p ∈ P, q ∈ Q }.
//
// Special cases are checked first at tolerance 1e-10: either operand
// representing the full space yields the full space; either representing
// the empty set yields the empty set; either representing the origin
// returns the other operand unchanged (geometry is immutable, so sharing
// is safe).
//
// Representation paths, chosen from the operands' flags as held *before*
// any special-case check could populate them:
//   - V/V — the full pairwise vertex sum, |V1|·|V2| columns, unreduced; a
//     convex-hull reduction is the caller's responsibility.
//   - H/H — the lifted block system over [x; z] ∈ ℝ²ⁿ
//     A = [[A2, −A2], [0, A1]], b = [b2; b1]
//     (equality blocks analogous, each of the four presence combinations
//     handled independently), projected exactly onto the first n
//     coordinates.
//   - mixed — both operands are forced to H and the H/H path runs.
//
// The sum never changes the ambient dimension.
func (p *Polytope) Plus(q *Polytope) (*Polytope, error) {
	if q == nil {
		return nil, fmt.Errorf("%w: nil polytope operand", set.ErrUnsupportedOperand)
	}
	if q.n != p.n {
		return nil, fmt.Errorf("%w: %d vs %d", set.ErrWrongInputDimension, p.n, q.n)
	}

	// Capture representation flags before special-case checks: those may
	// populate further representations as a side effect.
	hasV1, hasV2 := p.hasV, q.hasV
	hasH1, hasH2 := p.hasH, q.hasH

	if p.representsFullspace(specialCaseTol) || q.representsFullspace(specialCaseTol) {
		return Inf(p.n)
	}
	if empty, err := p.IsEmpty(); err != nil {
		return nil, err
	} else if empty {
		return Empty(p.n)
	}
	if empty, err := q.IsEmpty(); err != nil {
		return nil, err
	} else if empty {
		return Empty(p.n)
	}
	if origin, err := p.representsOrigin(specialCaseTol); err != nil {
		return nil, err
	} else if origin {
		return q, nil
	}
	if origin, err := q.representsOrigin(specialCaseTol); err != nil {
		return nil, err
	} else if origin {
		return p, nil
	}

	switch {
	case hasV1 && hasV2:
		return p.plusVV(q)
	case hasH1 && hasH2:
		return p.plusHH(q)
	default:
		if err := p.ensureH(); err != nil {
			return nil, err
		}
		if err := q.ensureH(); err != nil {
			return nil, err
		}

		return p.plusHH(q)
	}
}

// plusVV sums every vertex pair; the output vertex set is not minimized.
func (p *Polytope) plusVV(q *Polytope) (*Polytope, error) {
	_, k1 := p.v.Dims()
	_, k2 := q.v.Dims()

	v := mat.NewDense(p.n, k1*k2, nil)
	idx := 0
	for i := 0; i < k2; i++ {
		for j := 0; j < k1; j++ {
			for r := 0; r < p.n; r++ {
				v.Set(r, idx, p.v.At(r, j)+q.v.At(r, i))
			}
			idx++
		}
	}

	out := p.child(p.n)
	out.hasV = true
	out.v = v

	return out, nil
}

// plusHH builds the lifted 2n-variable block system and projects it back
// onto the first n coordinates. The elimination of the auxiliary block is
// exact because the lifted system is affine in both coordinate blocks.
func (p *Polytope) plusHH(q *Polytope) (*Polytope, error) {
	n := p.n
	m1 := 0
	if p.a != nil {
		m1, _ = p.a.Dims()
	}
	m2 := 0
	if q.a != nil {
		m2, _ = q.a.Dims()
	}

	// Inequalities: rows [A2, −A2] over b2, then [0, A1] over b1.
	var a *mat.Dense
	var b *mat.VecDense
	if m1+m2 > 0 {
		a = mat.NewDense(m1+m2, 2*n, nil)
		b = mat.NewVecDense(m1+m2, nil)
		for i := 0; i < m2; i++ {
			for j := 0; j < n; j++ {
				a.Set(i, j, q.a.At(i, j))
				a.Set(i, n+j, -q.a.At(i, j))
			}
			b.SetVec(i, q.b.AtVec(i))
		}
		for i := 0; i < m1; i++ {
			for j := 0; j < n; j++ {
				a.Set(m2+i, n+j, p.a.At(i, j))
			}
			b.SetVec(m2+i, p.b.AtVec(i))
		}
	}

	// Equality blocks: the four presence combinations, independently.
	me1 := 0
	if p.ae != nil {
		me1, _ = p.ae.Dims()
	}
	me2 := 0
	if q.ae != nil {
		me2, _ = q.ae.Dims()
	}
	var ae *mat.Dense
	var be *mat.VecDense
	if me1+me2 > 0 {
		ae = mat.NewDense(me1+me2, 2*n, nil)
		be = mat.NewVecDense(me1+me2, nil)
		for i := 0; i < me2; i++ {
			for j := 0; j < n; j++ {
				ae.Set(i, j, q.ae.At(i, j))
				ae.Set(i, n+j, -q.ae.At(i, j))
			}
			be.SetVec(i, q.be.AtVec(i))
		}
		for i := 0; i < me1; i++ {
			for j := 0; j < n; j++ {
				ae.Set(me2+i, n+j, p.ae.At(i, j))
			}
			be.SetVec(me2+i, p.be.AtVec(i))
		}
	}

	lifted := p.child(2 * n)
	lifted.hasH = true
	lifted.a, lifted.b = a, b
	lifted.ae, lifted.be = ae, be

	dims := make([]int, n)
	for i := range dims {
		dims[i] = i
	}

	return lifted.Project(dims)
}

// Translate shifts the polytope by vector t. Every held representation is
// shifted, so both stay valid: b ← b + A·t (and be ← be + Ae·t) for H,
// per-vertex addition for V.
func (p *Polytope) Translate(t *mat.VecDense) (*Polytope, error) {
	if t == nil || t.Len() != p.n {
		return nil, fmt.Errorf("%w: translation vector must be a column of dimension %d", set.ErrUnsupportedOperand, p.n)
	}

	out := p.child(p.n)
	out.cache = p.cache // translation preserves every memoized fact except the box
	out.cache.boxDone = false
	out.cache.boxInf, out.cache.boxSup = nil, nil

	if p.hasH {
		out.hasH = true
		if p.a != nil {
			m, _ := p.a.Dims()
			out.a = cloneDense(p.a)
			out.b = mat.NewVecDense(m, nil)
			for i := 0; i < m; i++ {
				shift := 0.0
				for j := 0; j < p.n; j++ {
					shift += p.a.At(i, j) * t.AtVec(j)
				}
				out.b.SetVec(i, p.b.AtVec(i)+shift)
			}
		}
		if p.ae != nil {
			me, _ := p.ae.Dims()
			out.ae = cloneDense(p.ae)
			out.be = mat.NewVecDense(me, nil)
			for i := 0; i < me; i++ {
				shift := 0.0
				for j := 0; j < p.n; j++ {
					shift += p.ae.At(i, j) * t.AtVec(j)
				}
				out.be.SetVec(i, p.be.AtVec(i)+shift)
			}
		}
	}
	if p.hasV {
		out.hasV = true
		if p.v != nil {
			_, k := p.v.Dims()
			out.v = mat.NewDense(p.n, k, nil)
			for j := 0; j < k; j++ {
				for i := 0; i < p.n; i++ {
					out.v.Set(i, j, p.v.At(i, j)+t.AtVec(i))
				}
			}
		}
	}
	if !p.hasH && !p.hasV {
		return nil, fmt.Errorf("%w: polytope holds no representation", set.ErrMissingRepresentation)
	}

	return out, nil
}

// Minus translates the polytope by −t.
//
// Subtraction is deliberately not overloaded for set operands: the
// Minkowski difference of two sets is a distinct operation with its own
// semantics and must be requested through a dedicated function, not
// through Minus.
func (p *Polytope) Minus(t *mat.VecDense) (*Polytope, error) {
	if t == nil || t.Len() != p.n {
		return nil, fmt.Errorf("%w: subtrahend must be a column of dimension %d", set.ErrUnsupportedOperand, p.n)
	}

	neg := mat.NewVecDense(p.n, nil)
	for i := 0; i < p.n; i++ {
		neg.SetVec(i, -t.AtVec(i))
	}

	return p.Translate(neg)
}
