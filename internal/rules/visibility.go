package rules

import (
	"strings"

	"declaudit/internal/metadata"
)

const (
	visibilityLocalityRuleNameConstant = "visibility-locality"
	internalNamespaceSegmentConstant   = "Internal"
	internalLeakReasonMessageConstant  = "type declared under an internal namespace must not be externally visible"
	namespaceSegmentSeparatorConstant  = "."
)

// visibilityAllowList names declarations that intentionally remain public
// inside internal namespaces, typically swap-in points for tests.
var visibilityAllowList = map[string]struct{}{
	"Prism.Internal.Fakeables.TimeSource": {},
	"Prism.Internal.PlatformProbe":        {},
}

// VisibilityLocalityRule flags public, non-nested declarations whose
// namespace path contains an internal segment.
type VisibilityLocalityRule struct{}

// Name identifies the rule in reports.
func (VisibilityLocalityRule) Name() string {
	return visibilityLocalityRuleNameConstant
}

// Evaluate applies the rule to every declaration in the snapshot.
func (VisibilityLocalityRule) Evaluate(snapshot *metadata.Snapshot) []metadata.Violation {
	violations := make([]metadata.Violation, 0)
	declaredTypes := snapshot.Types()
	for typeIndex := range declaredTypes {
		declaredType := &declaredTypes[typeIndex]
		if !declaredType.IsPublic() || declaredType.IsNested {
			continue
		}
		if !namespaceContainsSegment(declaredType.Namespace, internalNamespaceSegmentConstant) {
			continue
		}
		if _, allowed := visibilityAllowList[declaredType.FullName]; allowed {
			continue
		}
		violations = append(violations, metadata.Violation{
			Subject: declaredType.FullName,
			Reason:  internalLeakReasonMessageConstant,
		})
	}
	return violations
}

func namespaceContainsSegment(namespacePath string, segment string) bool {
	for _, namespaceSegment := range strings.Split(namespacePath, namespaceSegmentSeparatorConstant) {
		if namespaceSegment == segment {
			return true
		}
	}
	return false
}
