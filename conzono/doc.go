// Package conzono implements constrained zonotopes: zonotopes whose
// generator coefficients are further restricted by linear equalities,
// CZ = { c + G·β : A·β = b, β ∈ [-1,1]^g }.
//
// The constraint block is what the plain zonotope lacks — it makes the
// representation closed under intersection — but it also moves every
// nontrivial query (emptiness, support values, a feasible center) from
// closed form into a small linear program over the coefficient polytope
// { β : A·β = b, |β| ≤ 1 }. Those programs run through the linprog
// package; plug a custom solver with WithSolver.
//
// Degenerate policy mirrors the zonotope package: Empty(n) is the nil
// center sentinel, a nil generator matrix is a point, and a nil (A, b)
// pair degenerates to an ordinary zonotope (FromZonotope/ToZonotope
// bridge the two types; ToZonotope is the constraint-dropping enclosure).
//
// Geometry is immutable; the memoized emptiness fact follows the benign
// race policy of the polytope cache.
package conzono
