// SPDX-License-Identifier: MIT

// This file implements coordinate projection. For H-representations the
// eliminated coordinates are removed by Fourier–Motzkin elimination, which
// is exact; for V-representations projection is row selection.
package polytope

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/set"
)

// hrow is one halfspace coef·x ≤ off during elimination.
type hrow struct {
	coef []float64
	off  float64
}

// Project returns the projection of the polytope onto the listed
// coordinates (0-based, distinct, in output order).
//
// A held V-representation projects by row selection. Otherwise the
// H-representation is used: equality rows are split into inequality
// pairs, every coordinate outside dims is eliminated by Fourier–Motzkin,
// and the surviving rows are restricted to dims.
//
// Complexity: each elimination step can square the row count in the worst
// case; rows are deduplicated after every step to curb the growth.
func (p *Polytope) Project(dims []int) (*Polytope, error) {
	if len(dims) == 0 {
		return nil, fmt.Errorf("%w: empty projection dimension list", set.ErrUnsupportedOperand)
	}
	seen := make(map[int]bool, len(dims))
	for _, d := range dims {
		if d < 0 || d >= p.n || seen[d] {
			return nil, fmt.Errorf("%w: projection dimension %d out of range or repeated", set.ErrUnsupportedOperand, d)
		}
		seen[d] = true
	}

	if p.hasV && !p.hasH {
		return p.projectV(dims)
	}
	if !p.hasH {
		return nil, fmt.Errorf("%w: polytope holds no representation", set.ErrMissingRepresentation)
	}

	rows := p.collectRows()
	for j := p.n - 1; j >= 0; j-- {
		if !seen[j] {
			rows = eliminate(rows, j)
		}
	}

	out := p.child(len(dims))
	out.hasH = true
	if len(rows) > 0 {
		a := mat.NewDense(len(rows), len(dims), nil)
		b := mat.NewVecDense(len(rows), nil)
		for i, r := range rows {
			for c, d := range dims {
				a.Set(i, c, r.coef[d])
			}
			b.SetVec(i, r.off)
		}
		out.a, out.b = a, b
	}

	return out, nil
}

// projectV selects the kept rows of the vertex matrix.
func (p *Polytope) projectV(dims []int) (*Polytope, error) {
	out := p.child(len(dims))
	out.hasV = true
	if p.v == nil {
		return out, nil
	}

	_, k := p.v.Dims()
	v := mat.NewDense(len(dims), k, nil)
	for j := 0; j < k; j++ {
		for i, d := range dims {
			v.Set(i, j, p.v.At(d, j))
		}
	}
	out.v = v

	return out, nil
}

// collectRows flattens the H-system into inequality rows, splitting each
// equality into a ≤/≥ pair.
func (p *Polytope) collectRows() []hrow {
	var rows []hrow
	if p.a != nil {
		m, _ := p.a.Dims()
		for i := 0; i < m; i++ {
			rows = append(rows, hrow{coef: rowSlice(p.a, i, p.n), off: p.b.AtVec(i)})
		}
	}
	if p.ae != nil {
		me, _ := p.ae.Dims()
		for i := 0; i < me; i++ {
			c := rowSlice(p.ae, i, p.n)
			neg := make([]float64, p.n)
			for j := range neg {
				neg[j] = -c[j]
			}
			rows = append(rows, hrow{coef: c, off: p.be.AtVec(i)}, hrow{coef: neg, off: -p.be.AtVec(i)})
		}
	}

	return rows
}

// eliminate removes variable j from the system: rows with a zero j-th
// coefficient survive unchanged; every positive/negative pair combines
// into one row with the coefficient cancelled.
func eliminate(rows []hrow, j int) []hrow {
	var zero, pos, neg []hrow
	for _, r := range rows {
		switch {
		case math.Abs(r.coef[j]) <= zeroRowTol:
			zero = append(zero, r)
		case r.coef[j] > 0:
			pos = append(pos, r)
		default:
			neg = append(neg, r)
		}
	}

	out := zero
	for _, rp := range pos {
		for _, rn := range neg {
			// r = rp/rp_j + rn/(−rn_j): the j-th coefficient cancels.
			wp, wn := 1/rp.coef[j], 1/-rn.coef[j]
			coef := make([]float64, len(rp.coef))
			for c := range coef {
				coef[c] = wp*rp.coef[c] + wn*rn.coef[c]
			}
			coef[j] = 0
			out = appendRow(out, hrow{coef: coef, off: wp*rp.off + wn*rn.off})
		}
	}

	return out
}

// appendRow drops structurally trivial rows (0 ≤ nonnegative) and exact
// duplicates; an infeasible 0 ≤ negative row is kept so emptiness
// survives the projection.
func appendRow(rows []hrow, r hrow) []hrow {
	allZero := true
	for _, c := range r.coef {
		if math.Abs(c) > zeroRowTol {
			allZero = false

			break
		}
	}
	if allZero && r.off >= -zeroRowTol {
		return rows
	}

	for _, have := range rows {
		if sameRow(have, r) {
			return rows
		}
	}

	return append(rows, r)
}

// sameRow compares two rows after normalizing by their largest coefficient
// magnitude.
func sameRow(a, b hrow) bool {
	sa, sb := rowScale(a), rowScale(b)
	if math.Abs(a.off/sa-b.off/sb) > featureTol {
		return false
	}
	for c := range a.coef {
		if math.Abs(a.coef[c]/sa-b.coef[c]/sb) > featureTol {
			return false
		}
	}

	return true
}

func rowScale(r hrow) float64 {
	s := 0.0
	for _, c := range r.coef {
		s = math.Max(s, math.Abs(c))
	}
	if s <= zeroRowTol {
		return 1
	}

	return s
}

// rowSlice copies row i of m into a slice of length n.
func rowSlice(m *mat.Dense, i, n int) []float64 {
	out := make([]float64, n)
	for j := 0; j < n; j++ {
		out[j] = m.At(i, j)
	}

	return out
}
