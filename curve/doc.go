// Package curve orders the cells of a square 2-D grid along three space
// filling curves: Z-order (Morton), Gray order and double Gray order.
//
// Each ordering is realised by an order key, a uint64 computed from a cell's
// (x, y) coordinate with the primitives in package bitops. Sorting a
// CoordinateSet by one of these keys gives the path the curve takes through
// the grid, and TraversalSegments yields that path as consecutive pairs.
//
// Keys are not stored on a Coordinate. They are computed on demand through a
// dispatch table keyed by OrderKind, so adding an ordering does not change
// the shape of Coordinate. Range checking happens when a CoordinateSet is
// built, which means sorting a set can only fail for an unknown OrderKind.
//
// All functions are pure. A CoordinateSet is immutable once built and may be
// shared between goroutines.
package curve
