// SPDX-License-Identifier: MIT

// This file declares the Set capability interface, the SupportMode enum,
// and the sentinel errors shared across all set packages.
//
// Errors:
//
//	ErrWrongInputDimension   - operand ambient dimensions do not match.
//	ErrMissingRepresentation - neither H- nor V-representation available.
//	ErrUnboundedConversion   - H→V conversion attempted on an unbounded set.
//	ErrUnsupportedOperand    - operand type or shape the operation cannot handle.
//	ErrNotImplemented        - capability not provided by this set variant.
package set

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors shared by every set kind.
var (
	// ErrWrongInputDimension indicates mismatched ambient dimensions between operands.
	ErrWrongInputDimension = errors.New("set: operand ambient dimensions do not match")

	// ErrMissingRepresentation indicates neither H- nor V-representation is
	// available and conversion is impossible.
	ErrMissingRepresentation = errors.New("set: no representation available and conversion impossible")

	// ErrUnboundedConversion indicates an H→V conversion was attempted on an
	// unbounded set; a vertex list cannot express unboundedness.
	ErrUnboundedConversion = errors.New("set: cannot enumerate vertices of an unbounded set")

	// ErrUnsupportedOperand indicates an operand type or shape the operation
	// cannot handle (e.g. a wrong-dimension translation vector).
	ErrUnsupportedOperand = errors.New("set: unsupported operand type or shape")

	// ErrNotImplemented indicates a capability not provided by this set
	// variant. It replaces console warnings: an unsupported capability is a
	// typed result, never a print.
	ErrNotImplemented = errors.New("set: operation not implemented for this set variant")
)

// SupportMode selects which side of the support function to evaluate.
//
//   - Upper — maximize direction·x over the set.
//   - Lower — minimize direction·x over the set.
type SupportMode int

const (
	// Upper mode: maximize direction·x over the set.
	Upper SupportMode = iota

	// Lower mode: minimize direction·x over the set.
	Lower
)

// String returns the conventional name of the mode.
func (m SupportMode) String() string {
	if m == Lower {
		return "lower"
	}

	return "upper"
}

// Set is the closed capability interface implemented by every convex-set
// kind in lvlset.
//
// All geometry is immutable after construction; the only in-place mutation
// any implementation performs is idempotent memoization of derived facts,
// which is a benign race under concurrent reads (recomputation yields the
// identical value).
//
// Methods:
//   - Dim          — ambient dimension n.
//   - IsEmpty      — whether the set contains no points. May cost a
//     feasibility LP on first call for halfspace polytopes; memoized after.
//   - Center       — a representative interior/center point.
//   - Vertices     — n×k matrix whose columns are the vertices.
//     ErrUnboundedConversion for unbounded sets, ErrNotImplemented where
//     enumeration is not provided.
//   - SupportFunc  — support value and witness point in a direction.
//     Infeasible sets yield -Inf (Upper) / +Inf (Lower); unbounded
//     directions yield the opposite infinity with the direction as witness
//     ray. Comparisons against these sentinels use IEEE semantics; no
//     tolerance is applied at this layer.
type Set interface {
	Dim() int
	IsEmpty() (bool, error)
	Center() (*mat.VecDense, error)
	Vertices() (*mat.Dense, error)
	SupportFunc(dir *mat.VecDense, mode SupportMode) (float64, *mat.VecDense, error)
}
