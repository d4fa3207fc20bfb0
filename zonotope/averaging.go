// SPDX-License-Identifier: MIT

// This file implements the averaging-based intersection enclosure of a
// list of zonotopes: a convex combination of their centers and scaled
// generators, with the combination weights chosen analytically or by
// derivative-free minimization.
package zonotope

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/lvlset/set"
)

// Method selects the weight objective for AveragingIntersection.
type Method int

const (
	// NormGen minimizes the Frobenius norm of the combined generator
	// matrix (combined generator energy).
	NormGen Method = iota

	// Radius minimizes the resulting zonotope's radius.
	Radius

	// Volume minimizes the resulting zonotope's volume.
	Volume
)

// String implements fmt.Stringer.
func (m Method) String() string {
	switch m {
	case NormGen:
		return "normGen"
	case Radius:
		return "radius"
	case Volume:
		return "volume"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Sentinel errors for the averaging intersection.
var (
	// ErrBadWeightSum indicates a negative weight-sum parameter.
	ErrBadWeightSum = errors.New("zonotope: weight sum must be non-negative")

	// ErrZeroGeneratorEnergy indicates a closed-form weight computation
	// over an operand with no generator energy (a point zonotope), whose
	// reciprocal trace is undefined.
	ErrZeroGeneratorEnergy = errors.New("zonotope: closed-form weights need operands with non-zero generator energy")
)

// AveragingOptions configures AveragingIntersection.
//
// Fields:
//   - Method     — the weight objective (default NormGen).
//   - ClosedForm — use the analytic NormGen minimizer instead of the
//     numeric optimizer; ignored for the other methods. The closed form
//     divides by each operand's generator energy trace(GᵢGᵢᵀ), so a point
//     operand (zero energy) is rejected with ErrZeroGeneratorEnergy; use
//     the numeric path for lists containing points.
//   - WeightSum  — free parameter of the closed form (the weights sum to
//     this value before normalization).
type AveragingOptions struct {
	Method     Method
	ClosedForm bool
	WeightSum  float64
}

// DefaultAveragingOptions returns the defaults: NormGen, closed form,
// weight sum 1.
func DefaultAveragingOptions() AveragingOptions {
	return AveragingOptions{Method: NormGen, ClosedForm: true, WeightSum: 1}
}

// AveragingIntersection computes a single zonotope enclosing the
// intersection of the listed zonotopes via a convex combination of their
// centers and scaled generators.
//
// With Method NormGen and ClosedForm the weights are the analytic
// minimizer of combined generator energy,
// wᵢ = WeightSum / (tᵢ · Σⱼ 1/tⱼ) with tᵢ = trace(GᵢGᵢᵀ). Otherwise the
// objective is minimized by Nelder–Mead seeded at uniform weights; the
// optimizer's weights are used as returned, without projection onto the
// simplex (the result stays an enclosure since catWeighted normalizes by
// the weight sum).
//
// Output: center Σwᵢcᵢ/Σw, generators [w₁G₁ | w₂G₂ | …]/Σw, concatenated
// without reduction.
func AveragingIntersection(zs []*Zonotope, opts AveragingOptions) (*Zonotope, error) {
	if len(zs) == 0 {
		return nil, ErrNoZonotopes
	}
	if opts.WeightSum < 0 {
		return nil, fmt.Errorf("%w: got %g", ErrBadWeightSum, opts.WeightSum)
	}
	n := zs[0].n
	for i, z := range zs {
		if z == nil || z.c == nil {
			return nil, fmt.Errorf("%w: operand %d is empty", set.ErrMissingRepresentation, i)
		}
		if z.n != n {
			return nil, fmt.Errorf("%w: operand %d has dimension %d, expected %d", set.ErrWrongInputDimension, i, z.n, n)
		}
	}

	var w []float64
	var err error
	if opts.Method == NormGen && opts.ClosedForm {
		w, err = normGenWeights(zs, opts.WeightSum)
	} else {
		w, err = optimizeWeights(zs, opts.Method)
	}
	if err != nil {
		return nil, err
	}

	return catWeighted(zs, w)
}

// normGenWeights is the analytic minimizer of the combined generator
// energy: wᵢ = sumOfW / (tᵢ · Σⱼ 1/tⱼ), tᵢ = trace(GᵢGᵢᵀ). A zero-energy
// operand would make the reciprocal sum infinite and every weight NaN, so
// it is rejected up front.
func normGenWeights(zs []*Zonotope, sumOfW float64) ([]float64, error) {
	t := make([]float64, len(zs))
	invSum := 0.0
	for i, z := range zs {
		t[i] = generatorEnergy(z)
		if t[i] == 0 {
			return nil, fmt.Errorf("%w: operand %d", ErrZeroGeneratorEnergy, i)
		}
		invSum += 1 / t[i]
	}

	w := make([]float64, len(zs))
	for i := range w {
		w[i] = sumOfW / (t[i] * invSum)
	}

	return w, nil
}

// optimizeWeights minimizes the selected objective over the weight vector
// by Nelder–Mead, seeded at uniform weights.
func optimizeWeights(zs []*Zonotope, method Method) ([]float64, error) {
	objective := func(w []float64) float64 {
		z, err := catWeighted(zs, w)
		if err != nil {
			return infObjective
		}
		switch method {
		case Radius:
			r, _ := z.Radius()

			return r
		case Volume:
			v, _ := z.Volume()

			return v
		default:
			if z.g == nil {
				return 0
			}

			return mat.Norm(z.g, 2)
		}
	}

	w0 := make([]float64, len(zs))
	for i := range w0 {
		w0[i] = 1 / float64(len(zs))
	}

	res, err := optimize.Minimize(optimize.Problem{Func: objective}, w0, nil, &optimize.NelderMead{})
	if err != nil {
		return nil, fmt.Errorf("zonotope: weight optimization: %w", err)
	}

	return res.X, nil
}

// infObjective penalizes weight vectors whose sum degenerates.
const infObjective = 1e300

// catWeighted adds the weighted centers and concatenates the weighted
// generator blocks, then normalizes both by the weight sum.
func catWeighted(zs []*Zonotope, w []float64) (*Zonotope, error) {
	n := zs[0].n
	wSum := 0.0
	for _, wi := range w {
		wSum += wi
	}
	if wSum == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrBadWeightSum)
	}

	c := mat.NewVecDense(n, nil)
	total := 0
	for _, z := range zs {
		total += z.Generators()
	}

	var g *mat.Dense
	if total > 0 {
		g = mat.NewDense(n, total, nil)
	}
	col := 0
	for i, z := range zs {
		for r := 0; r < n; r++ {
			c.SetVec(r, c.AtVec(r)+w[i]*z.c.AtVec(r)/wSum)
		}
		for j := 0; j < z.Generators(); j++ {
			for r := 0; r < n; r++ {
				g.Set(r, col, w[i]*z.g.At(r, j)/wSum)
			}
			col++
		}
	}

	return &Zonotope{n: n, c: c, g: g}, nil
}

// generatorEnergy returns trace(G·Gᵀ), the sum of squared generator
// entries. A point zonotope contributes zero energy.
func generatorEnergy(z *Zonotope) float64 {
	t := 0.0
	for j := 0; j < z.Generators(); j++ {
		for i := 0; i < z.n; i++ {
			v := z.g.At(i, j)
			t += v * v
		}
	}

	return t
}
