// Package metadata models the declaration surface of an audited library
// module and loads it from a YAML snapshot produced by a build-time
// extraction step.
//
// It exposes Snapshot as the immutable per-run view of every declared type,
// Loader for constructing snapshots, ParseTypeReference for decoding the
// textual type-reference syntax used in member signatures, and Violation as
// the shared finding record consumed by the analyzers and rules.
package metadata
