// Package linprog is the linear-programming seam of lvlset: a narrow
// Solver interface for problems of the form
//
//	min / max  cᵀx
//	s.t.       A·x  ≤ b
//	           Ae·x = be
//
// and a default implementation backed by gonum's simplex method
// (gonum.org/v1/gonum/optimize/convex/lp).
//
// ⚙️ Contract:
//
//   - Infeasible and unbounded are *statuses* on the Result, not errors;
//     callers branch on Result.Status. Only genuine numeric failure of the
//     underlying solver surfaces as an error (ErrNumericalFailure).
//   - Solves are synchronous and run to completion; callers needing a time
//     budget wrap the call externally.
//   - A Solver must be safe for concurrent use; the default Simplex is
//     stateless apart from its tolerance.
//
// Swap in another implementation (an exact-rational solver, an interior
// point method) by satisfying Solver; the set packages only ever see the
// interface.
package linprog
