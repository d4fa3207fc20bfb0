// SPDX-License-Identifier: MIT

// This file implements the axis-aligned box enclosure: 2n support-function
// evaluations along the signed unit axes, with an empty-set short-circuit.
package polytope

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/interval"
	"github.com/katalvlaran/lvlset/set"
)

// Box computes the axis-aligned bounding box of the polytope as a new
// H-polytope [I; −I]·x ≤ [ub; −lb].
//
// If any upper support value is -Inf (the empty-set signal) the
// computation short-circuits and reports empty with a zero-row degenerate
// H-representation whose emptiness fact is pre-seeded. Unbounded axes keep
// their infinite bound in the cache but are rejected here, since a
// halfspace offset cannot be infinite: the corresponding rows are dropped,
// leaving the box unbounded in exactly those directions.
//
// Cost: 2n support evaluations — O(n·|V|) each with vertices, one LP solve
// each otherwise.
func (p *Polytope) Box() (*Polytope, error) {
	if err := p.ensureBox(); err != nil {
		return nil, err
	}

	if p.cache.boxInf == nil {
		// Empty short-circuit: zero-row H-representation, fact pre-seeded.
		out := p.child(p.n)
		out.hasH = true
		out.cache.empty = boolPtr(true)

		return out, nil
	}

	// Keep only the finite bounds as rows.
	type row struct {
		axis int
		sign float64
		off  float64
	}
	var rows []row
	for i := 0; i < p.n; i++ {
		if !math.IsInf(p.cache.boxSup[i], 1) {
			rows = append(rows, row{axis: i, sign: 1, off: p.cache.boxSup[i]})
		}
	}
	for i := 0; i < p.n; i++ {
		if !math.IsInf(p.cache.boxInf[i], -1) {
			rows = append(rows, row{axis: i, sign: -1, off: -p.cache.boxInf[i]})
		}
	}

	out := p.child(p.n)
	out.hasH = true
	out.cache.empty = boolPtr(false)
	if len(rows) > 0 {
		a := mat.NewDense(len(rows), p.n, nil)
		b := mat.NewVecDense(len(rows), nil)
		for i, r := range rows {
			a.Set(i, r.axis, r.sign)
			b.SetVec(i, r.off)
		}
		out.a, out.b = a, b
	}

	return out, nil
}

// BoxInterval returns the bounding box as an interval. Unbounded polytopes
// cannot be expressed as an interval and return set.ErrUnboundedConversion;
// empty polytopes yield the empty interval.
func (p *Polytope) BoxInterval() (*interval.Interval, error) {
	if err := p.ensureBox(); err != nil {
		return nil, err
	}
	if p.cache.boxInf == nil {
		return interval.Empty(p.n)
	}
	for i := 0; i < p.n; i++ {
		if math.IsInf(p.cache.boxInf[i], -1) || math.IsInf(p.cache.boxSup[i], 1) {
			return nil, set.ErrUnboundedConversion
		}
	}

	return interval.New(
		mat.NewVecDense(p.n, append([]float64(nil), p.cache.boxInf...)),
		mat.NewVecDense(p.n, append([]float64(nil), p.cache.boxSup...)),
	)
}

// ensureBox memoizes the per-axis support bounds. A nil boxInf with
// boxDone set records "box computation detected emptiness".
func (p *Polytope) ensureBox() error {
	if p.cache.boxDone {
		return nil
	}
	if empty, err := p.IsEmpty(); err != nil {
		return err
	} else if empty {
		p.cache.boxDone = true

		return nil
	}

	lo := make([]float64, p.n)
	hi := make([]float64, p.n)
	dir := mat.NewVecDense(p.n, nil)
	for i := 0; i < p.n; i++ {
		dir.Zero()
		dir.SetVec(i, 1)

		ub, _, err := p.SupportFunc(dir, set.Upper)
		if err != nil {
			return err
		}
		if math.IsInf(ub, -1) {
			// Empty-set signal: record and short-circuit.
			p.cache.empty = boolPtr(true)
			p.cache.boxDone = true

			return nil
		}
		hi[i] = ub

		lb, _, err := p.SupportFunc(dir, set.Lower)
		if err != nil {
			return err
		}
		lo[i] = lb
	}

	p.cache.boxInf, p.cache.boxSup = lo, hi
	p.cache.boxDone = true

	return nil
}
