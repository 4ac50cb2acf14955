package rules

import (
	"fmt"

	"declaudit/internal/metadata"
)

const (
	defaultOptionRuleNameConstant              = "single-default-option"
	duplicateDefaultOptionMessageConstant      = "type declares more than one default-option member"
	defaultOptionOutsideFamilyMessage          = "default-option annotation is only valid on renderer family subclasses"
	defaultOptionMemberSubjectTemplateConstant = "%s.%s"
)

// DefaultOptionRule enforces that a declaring type annotates at most one
// member as the default option, and only within the renderer plug-in family.
type DefaultOptionRule struct{}

// Name identifies the rule in reports.
func (DefaultOptionRule) Name() string {
	return defaultOptionRuleNameConstant
}

// Evaluate applies the rule to every declaration in the snapshot. When a
// type declares several default-option members, the first-declared annotated
// member is reported.
func (DefaultOptionRule) Evaluate(snapshot *metadata.Snapshot) []metadata.Violation {
	violations := make([]metadata.Violation, 0)
	declaredTypes := snapshot.Types()
	for typeIndex := range declaredTypes {
		declaredType := &declaredTypes[typeIndex]

		annotatedMembers := make([]*metadata.MemberSignature, 0, 1)
		for memberIndex := range declaredType.Members {
			if declaredType.Members[memberIndex].HasAnnotation(metadata.AnnotationKindDefaultOption) {
				annotatedMembers = append(annotatedMembers, &declaredType.Members[memberIndex])
			}
		}
		if len(annotatedMembers) == 0 {
			continue
		}

		if !isRendererFamilyMember(snapshot, declaredType) {
			violations = append(violations, metadata.Violation{
				Subject: declaredType.FullName,
				Reason:  defaultOptionOutsideFamilyMessage,
			})
		}

		if len(annotatedMembers) > 1 {
			violations = append(violations, metadata.Violation{
				Subject: fmt.Sprintf(defaultOptionMemberSubjectTemplateConstant, declaredType.FullName, annotatedMembers[0].Name),
				Reason:  duplicateDefaultOptionMessageConstant,
			})
		}
	}
	return violations
}
