// Package interval implements axis-aligned boxes with elementwise lower
// and upper bound vectors: I = { x : inf ≤ x ≤ sup }.
//
// Intervals are the cheapest set kind in lvlset — every operation here is
// closed-form, O(n) or O(n·m), with no solver involvement. They are the
// natural output of box enclosures and the natural input for coarse
// pre-checks before more expensive polytope work.
//
// Degenerate policy:
//
//   - Empty(n) is the canonical empty interval: ambient dimension n is
//     preserved, point count is zero. Operations on it map empty → empty.
//   - A non-empty interval requires inf ≤ sup elementwise at construction;
//     violating bounds return ErrBadBounds instead of silently swapping.
//
// Geometry is immutable: all operations return new intervals.
package interval
