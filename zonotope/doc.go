// Package zonotope implements the center/generator representation of
// centrally symmetric convex sets: Z = { c + G·β : β ∈ [-1,1]^g }.
//
// Zonotopes trade exactness for closed forms: Minkowski addition is
// generator concatenation, linear maps apply directly to c and G, and the
// tightest interval enclosure is c ± rowwise Σ|G| — all without any solver
// involvement. The price is that intersection is not closed: the package
// offers AveragingIntersection, a convex-combination enclosure of the
// intersection of several zonotopes with analytically or numerically
// optimized weights.
//
// Degenerate policy:
//
//   - Empty(n) is a distinguished sentinel: ambient dimension preserved,
//     point count zero, nil center. Operations map empty → empty.
//   - A nil generator matrix with a valid center is the point zonotope.
//
// Conversion bridges: FromInterval and Interval link to the interval
// package; ToPolytope enumerates corner points into a vertex-represented
// polytope (capped generator count — sign enumeration is exponential).
//
// Geometry is immutable: all operations return new zonotopes.
package zonotope
