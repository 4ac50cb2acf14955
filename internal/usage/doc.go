// Package usage builds the reference-counter table over a declaration
// snapshot.
//
// The table records how many times each module-owned declared type is
// referenced by base-type links, implemented capabilities, and member
// signatures across the module, unwrapping arrays and generic
// instantiations. Only zero-vs-nonzero matters to callers, so the structure
// is a flat ordinal-indexed counter array rather than a general graph.
package usage
