// SPDX-License-Identifier: MIT

// This file implements the affine image { M·x : x ∈ P }.
package polytope

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlset/set"
)

// LinearMap returns the image of the polytope under the linear map M
// (rows×n).
//
// A held V-representation maps vertex-wise: V' = M·V. With only an
// H-representation, a square invertible M maps the constraint system
// directly (A' = A·M⁻¹, Ae' = Ae·M⁻¹); a singular or non-square M needs
// the vertex representation and inherits its conversion errors
// (set.ErrUnboundedConversion, set.ErrNotImplemented).
func (p *Polytope) LinearMap(m *mat.Dense) (*Polytope, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil matrix", set.ErrUnsupportedOperand)
	}
	rows, cols := m.Dims()
	if cols != p.n {
		return nil, fmt.Errorf("%w: matrix has %d columns, polytope dimension is %d", set.ErrWrongInputDimension, cols, p.n)
	}

	if p.hasV {
		return p.mapVertices(m, rows)
	}
	if !p.hasH {
		return nil, fmt.Errorf("%w: polytope holds no representation", set.ErrMissingRepresentation)
	}

	if rows == cols {
		var inv mat.Dense
		if err := inv.Inverse(m); err == nil {
			out := p.child(rows)
			out.hasH = true
			if p.a != nil {
				var a mat.Dense
				a.Mul(p.a, &inv)
				out.a = &a
				out.b = cloneVec(p.b)
			}
			if p.ae != nil {
				var ae mat.Dense
				ae.Mul(p.ae, &inv)
				out.ae = &ae
				out.be = cloneVec(p.be)
			}

			return out, nil
		}
	}

	// Singular or dimension-changing map: go through the vertices.
	if _, err := p.Vertices(); err != nil {
		return nil, err
	}

	return p.mapVertices(m, rows)
}

// mapVertices applies M to every vertex column.
func (p *Polytope) mapVertices(m *mat.Dense, rows int) (*Polytope, error) {
	out := p.child(rows)
	out.hasV = true
	if p.v == nil {
		return out, nil
	}

	var v mat.Dense
	v.Mul(m, p.v)
	out.v = &v

	return out, nil
}
