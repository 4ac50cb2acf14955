package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"declaudit/internal/metadata"
	"declaudit/internal/rules"
)

func TestCapabilityPairingRuleRawValueRequiresThreadAgnostic(testInstance *testing.T) {
	snapshot := metadata.NewSnapshot("Prism", []metadata.DeclaredType{
		{
			FullName:    "Prism.Render.IRawValueSource",
			Kind:        metadata.TypeKindCapability,
			Visibility:  metadata.VisibilityPublic,
			Annotations: []metadata.Annotation{{Kind: metadata.AnnotationKindRawValueCapable}},
		},
		{
			FullName:   "Prism.Render.ScalarRenderer",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			Implements: []string{"Prism.Render.IRawValueSource"},
		},
		{
			FullName:    "Prism.Render.TaggedScalarRenderer",
			Kind:        metadata.TypeKindClass,
			Visibility:  metadata.VisibilityPublic,
			Implements:  []string{"Prism.Render.IRawValueSource"},
			Annotations: []metadata.Annotation{{Kind: metadata.AnnotationKindThreadAgnostic}},
		},
	})

	violations := rules.CapabilityPairingRule{}.Evaluate(snapshot)

	require.Len(testInstance, violations, 1)
	require.Equal(testInstance, "Prism.Render.ScalarRenderer", violations[0].Subject)
	require.Equal(testInstance, "raw-value capable type must carry the thread-agnostic annotation", violations[0].Reason)
}

func TestCapabilityPairingRuleSeesCapabilitiesInheritedThroughBases(testInstance *testing.T) {
	snapshot := metadata.NewSnapshot("Prism", []metadata.DeclaredType{
		{
			FullName:    "Prism.Render.IRawValueSource",
			Kind:        metadata.TypeKindCapability,
			Visibility:  metadata.VisibilityPublic,
			Annotations: []metadata.Annotation{{Kind: metadata.AnnotationKindRawValueCapable}},
		},
		{
			FullName:   "Prism.Render.ScalarRendererBase",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			IsAbstract: true,
			Implements: []string{"Prism.Render.IRawValueSource"},
			Annotations: []metadata.Annotation{
				{Kind: metadata.AnnotationKindThreadAgnostic},
			},
		},
		{
			FullName:   "Prism.Render.DerivedScalarRenderer",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			BaseName:   "Prism.Render.ScalarRendererBase",
		},
	})

	violations := rules.CapabilityPairingRule{}.Evaluate(snapshot)

	require.Len(testInstance, violations, 1)
	require.Equal(testInstance, "Prism.Render.DerivedScalarRenderer", violations[0].Subject)
}

func TestCapabilityPairingRuleExemptsAbstractClasses(testInstance *testing.T) {
	snapshot := metadata.NewSnapshot("Prism", []metadata.DeclaredType{
		{
			FullName:    "Prism.Render.IRawValueSource",
			Kind:        metadata.TypeKindCapability,
			Visibility:  metadata.VisibilityPublic,
			Annotations: []metadata.Annotation{{Kind: metadata.AnnotationKindRawValueCapable}},
		},
		{
			FullName:   "Prism.Render.ScalarRendererBase",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			IsAbstract: true,
			Implements: []string{"Prism.Render.IRawValueSource"},
		},
	})

	require.Empty(testInstance, rules.CapabilityPairingRule{}.Evaluate(snapshot))
}

func TestCapabilityPairingRuleStringRendererForbidsFixedOutput(testInstance *testing.T) {
	snapshot := metadata.NewSnapshot("Prism", []metadata.DeclaredType{
		{
			FullName:    "Prism.Render.IRenderer",
			Kind:        metadata.TypeKindCapability,
			Visibility:  metadata.VisibilityPublic,
			Annotations: []metadata.Annotation{{Kind: metadata.AnnotationKindStringValueRenderer}},
		},
		{
			FullName:   "Prism.Render.PinnedRenderer",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			Implements: []string{"Prism.Render.IRenderer"},
			Annotations: []metadata.Annotation{
				{Kind: metadata.AnnotationKindFixedOutput},
				{Kind: metadata.AnnotationKindThreadAgnostic},
			},
		},
	})

	violations := rules.CapabilityPairingRule{}.Evaluate(snapshot)

	require.Len(testInstance, violations, 1)
	require.Equal(testInstance, "Prism.Render.PinnedRenderer", violations[0].Subject)
	require.Equal(testInstance, "string-value renderer must not carry the app-domain-fixed-output annotation", violations[0].Reason)
}

func TestCapabilityPairingRuleFixedOutputRequiresThreadAgnostic(testInstance *testing.T) {
	snapshot := metadata.NewSnapshot("Prism", []metadata.DeclaredType{
		{
			FullName:    "Prism.Render.StickyRenderer",
			Kind:        metadata.TypeKindClass,
			Visibility:  metadata.VisibilityPublic,
			Annotations: []metadata.Annotation{{Kind: metadata.AnnotationKindFixedOutput}},
		},
	})

	violations := rules.CapabilityPairingRule{}.Evaluate(snapshot)

	require.Len(testInstance, violations, 1)
	require.Equal(testInstance, "Prism.Render.StickyRenderer", violations[0].Subject)
	require.Equal(testInstance, "app-domain-fixed-output annotation requires the thread-agnostic annotation", violations[0].Reason)
}
