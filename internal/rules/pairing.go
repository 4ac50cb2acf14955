package rules

import "declaudit/internal/metadata"

const (
	capabilityPairingRuleNameConstant        = "capability-annotation-pairing"
	rawValueNeedsThreadAgnosticMessage       = "raw-value capable type must carry the thread-agnostic annotation"
	stringRendererFixedOutputMessageConstant = "string-value renderer must not carry the app-domain-fixed-output annotation"
	fixedOutputNeedsThreadAgnosticMessage    = "app-domain-fixed-output annotation requires the thread-agnostic annotation"
)

// CapabilityPairingRule enforces the pairing between implemented
// capabilities and the annotations a declaration carries.
type CapabilityPairingRule struct{}

// Name identifies the rule in reports.
func (CapabilityPairingRule) Name() string {
	return capabilityPairingRuleNameConstant
}

// Evaluate applies the rule to every declaration in the snapshot.
//
// A concrete class implementing a capability annotated raw-value-capable
// must be thread-agnostic. A concrete class implementing a capability
// annotated string-value-renderer must not declare app-domain-fixed-output.
// Abstract classes are exempt from both clauses; their concrete subclasses
// are evaluated with the inherited capabilities. Any declaration carrying
// app-domain-fixed-output must also be thread-agnostic.
func (CapabilityPairingRule) Evaluate(snapshot *metadata.Snapshot) []metadata.Violation {
	violations := make([]metadata.Violation, 0)
	declaredTypes := snapshot.Types()
	for typeIndex := range declaredTypes {
		declaredType := &declaredTypes[typeIndex]

		if isConcreteClass(declaredType) {
			capabilities := snapshot.CapabilityClosure(declaredType)

			if capabilityCarries(capabilities, metadata.AnnotationKindRawValueCapable) && !declaredType.HasAnnotation(metadata.AnnotationKindThreadAgnostic) {
				violations = append(violations, metadata.Violation{
					Subject: declaredType.FullName,
					Reason:  rawValueNeedsThreadAgnosticMessage,
				})
			}

			if capabilityCarries(capabilities, metadata.AnnotationKindStringValueRenderer) && declaredType.HasAnnotation(metadata.AnnotationKindFixedOutput) {
				violations = append(violations, metadata.Violation{
					Subject: declaredType.FullName,
					Reason:  stringRendererFixedOutputMessageConstant,
				})
			}
		}

		if declaredType.HasAnnotation(metadata.AnnotationKindFixedOutput) && !declaredType.HasAnnotation(metadata.AnnotationKindThreadAgnostic) {
			violations = append(violations, metadata.Violation{
				Subject: declaredType.FullName,
				Reason:  fixedOutputNeedsThreadAgnosticMessage,
			})
		}
	}
	return violations
}

func capabilityCarries(capabilities []*metadata.DeclaredType, kind metadata.AnnotationKind) bool {
	for _, capability := range capabilities {
		if capability.HasAnnotation(kind) {
			return true
		}
	}
	return false
}
