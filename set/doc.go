// Package set declares the capability interface shared by every convex-set
// representation in lvlset, together with the sentinel errors common to all
// of them.
//
// Every concrete set kind (polytope.Polytope, zonotope.Zonotope,
// interval.Interval, conzono.ConZonotope) implements set.Set. Operations
// that accept "any set" — polytope containment of another set, convex-hull
// enclosures — take a set.Set and dispatch through a single virtual call;
// there is no runtime type-name branching anywhere in the library.
//
// A set kind that does not provide a capability (e.g. exact vertex
// enumeration for a constrained zonotope) returns ErrNotImplemented from
// the corresponding method. Callers that can tolerate the gap (documented
// per call site) fall back to a conservative approximation; everyone else
// propagates the error unchanged.
package set
