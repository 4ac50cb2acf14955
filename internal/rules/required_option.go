package rules

import (
	"fmt"

	"declaudit/internal/metadata"
)

const (
	requiredOptionRuleNameConstant      = "required-option-typing"
	requiredOptionReasonMessageConstant = "required-option member must have a reference-semantic type"
	memberSubjectTemplateConstant       = "%s.%s"
)

// foreignValueTypeNames lists well-known runtime value types. References to
// any other foreign type are treated as reference-semantic.
var foreignValueTypeNames = map[string]struct{}{
	"System.Boolean":  {},
	"System.Byte":     {},
	"System.SByte":    {},
	"System.Char":     {},
	"System.Int16":    {},
	"System.UInt16":   {},
	"System.Int32":    {},
	"System.UInt32":   {},
	"System.Int64":    {},
	"System.UInt64":   {},
	"System.Single":   {},
	"System.Double":   {},
	"System.Decimal":  {},
	"System.DateTime": {},
	"System.TimeSpan": {},
	"System.Guid":     {},
}

// RequiredOptionTypingRule flags members annotated required-option whose
// type has value semantics: a required option must admit an unset state, so
// enums and runtime value types cannot carry the annotation.
type RequiredOptionTypingRule struct{}

// Name identifies the rule in reports.
func (RequiredOptionTypingRule) Name() string {
	return requiredOptionRuleNameConstant
}

// Evaluate applies the rule to every annotated member in the snapshot.
func (RequiredOptionTypingRule) Evaluate(snapshot *metadata.Snapshot) []metadata.Violation {
	violations := make([]metadata.Violation, 0)
	declaredTypes := snapshot.Types()
	for typeIndex := range declaredTypes {
		declaredType := &declaredTypes[typeIndex]
		for memberIndex := range declaredType.Members {
			member := &declaredType.Members[memberIndex]
			if !member.HasAnnotation(metadata.AnnotationKindRequiredOption) {
				continue
			}
			if !hasValueSemantics(snapshot, member.Returns) {
				continue
			}
			violations = append(violations, metadata.Violation{
				Subject: fmt.Sprintf(memberSubjectTemplateConstant, declaredType.FullName, member.Name),
				Reason:  requiredOptionReasonMessageConstant,
			})
		}
	}
	return violations
}

// hasValueSemantics resolves the semantic category of a member type. Arrays
// and generic instantiations are reference-semantic; module-owned enums and
// well-known foreign value types are value-semantic.
func hasValueSemantics(snapshot *metadata.Snapshot, reference metadata.TypeReference) bool {
	if reference.IsArray() {
		return false
	}
	if reference.IsInstantiation() {
		return false
	}

	if declaredType, found := snapshot.Lookup(reference.Name); found {
		return declaredType.Kind == metadata.TypeKindEnum
	}

	_, isValueType := foreignValueTypeNames[reference.Name]
	return isValueType
}
