package reachability

import (
	"fmt"
	"sort"

	"declaudit/internal/metadata"
	"declaudit/internal/usage"
)

const (
	rootSetErrorTemplateConstant       = "malformed root set: %w"
	unreferencedReasonTemplateConstant = "public %s is never referenced by the module surface"
)

// Analyzer finds public enum and capability declarations with a zero
// reference count.
type Analyzer struct{}

// NewAnalyzer constructs an Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze builds the usage graph for the snapshot, seeds the root set, and
// returns unreferenced-declaration violations ordered by full name
// ascending. An empty list means the reachability audit passed. A root set
// entry naming a declaration absent from the snapshot is a defect in the
// auditor itself and aborts the run.
func (analyzer *Analyzer) Analyze(snapshot *metadata.Snapshot) ([]metadata.Violation, error) {
	graph := usage.BuildGraph(snapshot)

	for _, rootName := range rootSetMembers {
		if seedError := graph.Seed(rootName); seedError != nil {
			return nil, fmt.Errorf(rootSetErrorTemplateConstant, seedError)
		}
	}

	violations := make([]metadata.Violation, 0)
	declaredTypes := snapshot.Types()
	for typeIndex := range declaredTypes {
		declaredType := &declaredTypes[typeIndex]
		if !isTracked(declaredType) {
			continue
		}
		if graph.ReferenceCount(declaredType.FullName) > 0 {
			continue
		}
		violations = append(violations, metadata.Violation{
			Subject: declaredType.FullName,
			Reason:  fmt.Sprintf(unreferencedReasonTemplateConstant, declaredType.Kind),
		})
	}

	sort.Slice(violations, func(firstIndex, secondIndex int) bool {
		return violations[firstIndex].Subject < violations[secondIndex].Subject
	})

	return violations, nil
}

// isTracked reports whether the declaration participates in the reference
// requirement: public enums and capabilities only.
func isTracked(declaredType *metadata.DeclaredType) bool {
	if !declaredType.IsPublic() {
		return false
	}
	return declaredType.Kind == metadata.TypeKindEnum || declaredType.Kind == metadata.TypeKindCapability
}
