// Package polytope implements the dual-representation engine for convex
// polytopes: a polytope is described by halfspace constraints
// (H-representation: A·x ≤ b, Ae·x = be) or by an explicit vertex list
// (V-representation), and every operation uses whichever form is cheapest.
//
// 🚀 What is in here?
//
//   - Representation store: lazy H ⇄ V accumulation — conversions add a
//     representation, never remove one, because geometry is immutable
//   - Support functions: witness points via vertex reduction or one LP
//   - Box enclosures: 2n support evaluations along the signed unit axes
//   - Containment: point clouds & sets with certificates and scaling factors
//   - Minkowski algebra: V/V pairwise sums, H/H lifted-block construction
//     with exact Fourier–Motzkin projection, translations
//   - Linear maps & coordinate projections
//
// ⚙️ Degenerate policy (uniform across operations):
//
//   - Empty(n) is the canonical empty set: one infeasible row 0·x ≤ −1.
//   - Inf(n) is the full space: a zero-row constraint system.
//   - H→V conversion of an unbounded polytope fails with
//     set.ErrUnboundedConversion; V→H of a zero-vertex polytope yields the
//     canonical infeasible row.
//   - Vertex/facet enumeration beyond the built-in n ≤ 2 algorithms is a
//     pluggable capability (VertexEnumerator / FacetEnumerator); without a
//     plugged solver, higher dimensions return set.ErrNotImplemented.
//
// Memoized facts (emptiness, boundedness, full-dimensionality, axis
// bounds) are computed at most once per instance and cached; cache writes
// are a benign race because each fact is a pure function of the immutable
// geometry.
//
// LP solving goes through linprog.Solver (gonum simplex by default);
// override per polytope with WithSolver.
package polytope
