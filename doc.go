// Package lvlset is an in-memory library of convex-set representations —
// polytopes, zonotopes, intervals, constrained zonotopes — and the
// operations on them used to bound reachable states of dynamical systems.
//
// 🚀 What is lvlset?
//
//	A numeric library built on gonum that brings together:
//		• Polytopes: lazy dual (halfspace ⇄ vertex) representation engine
//		• Support functions: witness points, box enclosures, emptiness
//		• Containment: point clouds & sets, certificates, scaling factors
//		• Minkowski algebra: sums, translations, projections, linear maps
//		• Zonotopes: generator algebra, averaging-based intersection
//		• Intervals & constrained zonotopes: the remaining set kinds
//
// ✨ Why choose lvlset?
//
//   - Predictable degenerate handling – empty, unbounded and
//     lower-dimensional sets follow one documented policy everywhere
//   - Immutable geometry – operations return new sets, caches only grow
//   - Typed errors – every invariant violation is an errors.Is-able sentinel
//   - Narrow solver seams – LP solving and vertex enumeration sit behind
//     small interfaces you can swap out
//
// Under the hood, everything is organized under six subpackages:
//
//	set/      — the capability interface shared by all set kinds + sentinels
//	linprog/  — the linear-program solver seam (gonum simplex by default)
//	polytope/ — the dual-representation engine and its algebra
//	zonotope/ — center-plus-generators sets and averaging intersection
//	interval/ — axis-aligned boxes with elementwise bounds
//	conzono/  — zonotopes with linear constraints on generator coefficients
//
// Quick ASCII example:
//
//	┌───────┐        the unit box [-1,1]² is one polytope in two
//	│   •   │        representations: 4 halfspaces, or 4 vertices —
//	└───────┘        lvlset converts between them lazily.
//
// Dive into each package's doc.go for contracts, degenerate-case policies
// and complexity notes.
//
//	go get github.com/katalvlaran/lvlset
package lvlset
