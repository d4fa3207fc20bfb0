// SPDX-License-Identifier: MIT

// This file implements the conversion engine between the halfspace and
// vertex representations. Conversions add a representation to the store,
// never remove one, and are idempotent: the second call returns the cached
// result.
//
// Exact enumeration in arbitrary dimension is NP-hard in general and is
// treated as an external solver capability: plug a VertexEnumerator /
// FacetEnumerator via the constructor options. The built-ins cover n ≤ 2.
package polytope

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/set"
)

// VertexEnumerator is the pluggable H→V capability: enumerate the vertices
// of the bounded, non-empty polytope A·x ≤ b, Ae·x = be as matrix columns.
type VertexEnumerator interface {
	EnumerateVertices(a *mat.Dense, b *mat.VecDense, ae *mat.Dense, be *mat.VecDense, n int) (*mat.Dense, error)
}

// FacetEnumerator is the pluggable V→H capability: compute a halfspace
// system equivalent to the convex hull of the columns of v.
type FacetEnumerator interface {
	EnumerateFacets(v *mat.Dense) (a *mat.Dense, b *mat.VecDense, ae *mat.Dense, be *mat.VecDense, err error)
}

// Vertices returns the vertex matrix (columns = vertices), computing it
// from the H-representation on first demand.
//
// Degenerate policy: the empty polytope yields a nil matrix; an unbounded
// polytope returns set.ErrUnboundedConversion. Dimensions above 2 without
// a plugged VertexEnumerator return set.ErrNotImplemented.
func (p *Polytope) Vertices() (*mat.Dense, error) {
	if p.hasV {
		return cloneDense(p.v), nil
	}
	if !p.hasH {
		return nil, fmt.Errorf("%w: polytope holds no representation", set.ErrMissingRepresentation)
	}

	if empty, err := p.IsEmpty(); err != nil {
		return nil, err
	} else if empty {
		p.v, p.hasV = nil, true

		return nil, nil
	}
	if bounded, err := p.IsBounded(); err != nil {
		return nil, err
	} else if !bounded {
		return nil, fmt.Errorf("%w: vertex enumeration of an unbounded polytope", set.ErrUnboundedConversion)
	}

	var v *mat.Dense
	var err error
	switch {
	case p.venum != nil:
		v, err = p.venum.EnumerateVertices(cloneDense(p.a), cloneVec(p.b), cloneDense(p.ae), cloneVec(p.be), p.n)
	case p.n == 1:
		v, err = p.vertices1D()
	case p.n == 2:
		v, err = p.vertices2D()
	default:
		err = fmt.Errorf("%w: vertex enumeration in dimension %d; plug a VertexEnumerator", set.ErrNotImplemented, p.n)
	}
	if err != nil {
		return nil, err
	}

	p.v, p.hasV = v, true

	return cloneDense(v), nil
}

// Constraints returns the halfspace system (A, b, Ae, be), computing it
// from the V-representation on first demand. A zero-vertex polytope yields
// the canonical infeasible constraint 0·x ≤ −1.
func (p *Polytope) Constraints() (*mat.Dense, *mat.VecDense, *mat.Dense, *mat.VecDense, error) {
	if err := p.ensureH(); err != nil {
		return nil, nil, nil, nil, err
	}

	return cloneDense(p.a), cloneVec(p.b), cloneDense(p.ae), cloneVec(p.be), nil
}

// ensureH populates the H-representation in place when only V is held.
func (p *Polytope) ensureH() error {
	if p.hasH {
		return nil
	}
	if !p.hasV {
		return fmt.Errorf("%w: polytope holds no representation", set.ErrMissingRepresentation)
	}

	if p.v == nil {
		// Empty V-polytope → canonical infeasible row in ambient dimension.
		p.a = mat.NewDense(1, p.n, nil)
		p.b = mat.NewVecDense(1, []float64{-1})
		p.hasH = true
		p.cache.empty = boolPtr(true)

		return nil
	}

	var a, ae *mat.Dense
	var b, be *mat.VecDense
	var err error
	switch {
	case p.fenum != nil:
		a, b, ae, be, err = p.fenum.EnumerateFacets(cloneDense(p.v))
	case p.n == 1:
		a, b = facets1D(p.v)
	case p.n == 2:
		a, b, ae, be = facets2D(p.v)
	default:
		err = fmt.Errorf("%w: facet enumeration in dimension %d; plug a FacetEnumerator", set.ErrNotImplemented, p.n)
	}
	if err != nil {
		return err
	}

	p.a, p.b, p.ae, p.be = a, b, ae, be
	p.hasH = true

	return nil
}

// vertices1D derives the two interval endpoints from the box bounds.
func (p *Polytope) vertices1D() (*mat.Dense, error) {
	if err := p.ensureBox(); err != nil {
		return nil, err
	}
	lo, hi := p.cache.boxInf[0], p.cache.boxSup[0]
	if math.Abs(hi-lo) <= featureTol {
		return mat.NewDense(1, 1, []float64{lo}), nil
	}

	return mat.NewDense(1, 2, []float64{lo, hi}), nil
}

// vertices2D intersects all pairs of constraint boundaries, keeps the
// feasible intersection points, and orders them counter-clockwise.
//
// Complexity: O(m²) candidate systems, O(m) feasibility filtering each.
func (p *Polytope) vertices2D() (*mat.Dense, error) {
	rows, offs := p.gatherRows()

	var pts [][2]float64
	for i := 0; i < len(rows); i++ {
		for j := i + 1; j < len(rows); j++ {
			x, y, ok := solve2x2(rows[i], offs[i], rows[j], offs[j])
			if !ok || !p.feasible2D(x, y, rows, offs) {
				continue
			}
			pts = appendUnique(pts, [2]float64{x, y})
		}
	}
	if len(pts) == 0 {
		// Feasible (checked by the caller) but no boundary intersections
		// exist only for degenerate inputs the built-in cannot resolve.
		return nil, fmt.Errorf("%w: 2D enumeration found no vertices", set.ErrNotImplemented)
	}

	sortCCW(pts)
	v := mat.NewDense(2, len(pts), nil)
	for j, q := range pts {
		v.Set(0, j, q[0])
		v.Set(1, j, q[1])
	}

	return v, nil
}

// gatherRows flattens inequality and equality rows into one boundary list;
// equality rows participate both as boundary lines and (twice-signed) as
// feasibility filters.
func (p *Polytope) gatherRows() ([][2]float64, []float64) {
	var rows [][2]float64
	var offs []float64
	if p.a != nil {
		m, _ := p.a.Dims()
		for i := 0; i < m; i++ {
			rows = append(rows, [2]float64{p.a.At(i, 0), p.a.At(i, 1)})
			offs = append(offs, p.b.AtVec(i))
		}
	}
	if p.ae != nil {
		me, _ := p.ae.Dims()
		for i := 0; i < me; i++ {
			r := [2]float64{p.ae.At(i, 0), p.ae.At(i, 1)}
			rows = append(rows, r, [2]float64{-r[0], -r[1]})
			offs = append(offs, p.be.AtVec(i), -p.be.AtVec(i))
		}
	}

	return rows, offs
}

// feasible2D checks a candidate point against every halfspace.
func (p *Polytope) feasible2D(x, y float64, rows [][2]float64, offs []float64) bool {
	for i, r := range rows {
		if r[0]*x+r[1]*y > offs[i]+featureTol {
			return false
		}
	}

	return true
}

// solve2x2 solves the 2×2 system of two boundary lines.
func solve2x2(r1 [2]float64, b1 float64, r2 [2]float64, b2 float64) (float64, float64, bool) {
	det := r1[0]*r2[1] - r1[1]*r2[0]
	if math.Abs(det) <= zeroRowTol {
		return 0, 0, false
	}

	return (b1*r2[1] - r1[1]*b2) / det, (r1[0]*b2 - b1*r2[0]) / det, true
}

// appendUnique adds q unless an equal point (within featureTol) exists.
func appendUnique(pts [][2]float64, q [2]float64) [][2]float64 {
	for _, p := range pts {
		if math.Abs(p[0]-q[0]) <= featureTol && math.Abs(p[1]-q[1]) <= featureTol {
			return pts
		}
	}

	return append(pts, q)
}

// sortCCW orders points counter-clockwise around their centroid.
func sortCCW(pts [][2]float64) {
	cx, cy := 0.0, 0.0
	for _, p := range pts {
		cx += p[0] / float64(len(pts))
		cy += p[1] / float64(len(pts))
	}
	sort.Slice(pts, func(i, j int) bool {
		return math.Atan2(pts[i][1]-cy, pts[i][0]-cx) < math.Atan2(pts[j][1]-cy, pts[j][0]-cx)
	})
}

// facets1D bounds the 1D hull: x ≤ max, −x ≤ −min.
func facets1D(v *mat.Dense) (*mat.Dense, *mat.VecDense) {
	_, k := v.Dims()
	lo, hi := v.At(0, 0), v.At(0, 0)
	for j := 1; j < k; j++ {
		lo = math.Min(lo, v.At(0, j))
		hi = math.Max(hi, v.At(0, j))
	}

	return mat.NewDense(2, 1, []float64{1, -1}), mat.NewVecDense(2, []float64{hi, -lo})
}

// facets2D computes the convex hull of the columns (Andrew monotone chain)
// and emits one outward halfspace per hull edge. Degenerate hulls fall
// back to equality descriptions: a single point becomes I·x = v, a segment
// becomes its carrier line plus two end bounds.
func facets2D(v *mat.Dense) (*mat.Dense, *mat.VecDense, *mat.Dense, *mat.VecDense) {
	_, k := v.Dims()
	var pts [][2]float64
	for j := 0; j < k; j++ {
		pts = appendUnique(pts, [2]float64{v.At(0, j), v.At(1, j)})
	}

	if len(pts) == 1 {
		ae := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
		be := mat.NewVecDense(2, []float64{pts[0][0], pts[0][1]})

		return nil, nil, ae, be
	}

	hull := monotoneChain(pts)
	if len(hull) == 2 {
		return segmentH(hull[0], hull[1])
	}

	a := mat.NewDense(len(hull), 2, nil)
	b := mat.NewVecDense(len(hull), nil)
	for i := range hull {
		p0, p1 := hull[i], hull[(i+1)%len(hull)]
		// Outward normal of a CCW edge (dx,dy) is (dy,−dx).
		nx, ny := p1[1]-p0[1], -(p1[0] - p0[0])
		norm := math.Hypot(nx, ny)
		a.Set(i, 0, nx/norm)
		a.Set(i, 1, ny/norm)
		b.SetVec(i, (nx*p0[0]+ny*p0[1])/norm)
	}

	return a, b, nil, nil
}

// segmentH describes the segment p0→p1: its carrier line as an equality
// and the two endpoints as inequality bounds along the direction.
func segmentH(p0, p1 [2]float64) (*mat.Dense, *mat.VecDense, *mat.Dense, *mat.VecDense) {
	dx, dy := p1[0]-p0[0], p1[1]-p0[1]

	a := mat.NewDense(2, 2, []float64{dx, dy, -dx, -dy})
	b := mat.NewVecDense(2, []float64{
		dx*p1[0] + dy*p1[1],
		-(dx*p0[0] + dy*p0[1]),
	})
	ae := mat.NewDense(1, 2, []float64{dy, -dx})
	be := mat.NewVecDense(1, []float64{dy*p0[0] - dx*p0[1]})

	return a, b, ae, be
}

// monotoneChain returns the CCW convex hull of at least two distinct points.
func monotoneChain(pts [][2]float64) [][2]float64 {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i][0] != pts[j][0] {
			return pts[i][0] < pts[j][0]
		}

		return pts[i][1] < pts[j][1]
	})

	cross := func(o, a, b [2]float64) float64 {
		return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
	}

	var lower [][2]float64
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	var upper [][2]float64
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	return append(lower[:len(lower)-1], upper[:len(upper)-1]...)
}
