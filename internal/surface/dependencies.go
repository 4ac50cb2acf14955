package surface

import "declaudit/internal/metadata"

// SnapshotLoader loads a declaration snapshot from disk.
type SnapshotLoader interface {
	Load(snapshotPath string) (*metadata.Snapshot, error)
}

// ReachabilityAnalyzer reports declarations the module surface never references.
type ReachabilityAnalyzer interface {
	Analyze(snapshot *metadata.Snapshot) ([]metadata.Violation, error)
}

// ConventionEvaluator reports convention violations over the snapshot.
type ConventionEvaluator interface {
	Evaluate(snapshot *metadata.Snapshot) []metadata.Violation
}
