package rules_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"declaudit/internal/metadata"
	"declaudit/internal/rules"
)

func defaultOptionMember(memberName string) metadata.MemberSignature {
	return metadata.MemberSignature{
		Name:        memberName,
		Returns:     metadata.TypeReference{Name: "System.String"},
		Annotations: []metadata.Annotation{{Kind: metadata.AnnotationKindDefaultOption}},
	}
}

func TestDefaultOptionRuleAcceptsSingleAnnotatedFamilyMember(testInstance *testing.T) {
	declaredTypes := append(rendererFamilyScaffold(),
		metadata.DeclaredType{
			FullName:   "Prism.Render.PlainRenderer",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			BaseName:   "Prism.Render.RendererBase",
			Members:    []metadata.MemberSignature{defaultOptionMember("Template")},
		},
	)
	snapshot := metadata.NewSnapshot("Prism", declaredTypes)

	require.Empty(testInstance, rules.DefaultOptionRule{}.Evaluate(snapshot))
}

func TestDefaultOptionRuleReportsFirstDuplicateMember(testInstance *testing.T) {
	declaredTypes := append(rendererFamilyScaffold(),
		metadata.DeclaredType{
			FullName:   "Prism.Render.PlainRenderer",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			BaseName:   "Prism.Render.RendererBase",
			Members: []metadata.MemberSignature{
				defaultOptionMember("Template"),
				defaultOptionMember("Fallback"),
			},
		},
	)
	snapshot := metadata.NewSnapshot("Prism", declaredTypes)

	violations := rules.DefaultOptionRule{}.Evaluate(snapshot)

	require.Len(testInstance, violations, 1)
	require.Equal(testInstance, "Prism.Render.PlainRenderer.Template", violations[0].Subject)
	require.Equal(testInstance, "type declares more than one default-option member", violations[0].Reason)
}

func TestDefaultOptionRuleRejectsAnnotationOutsideRendererFamily(testInstance *testing.T) {
	snapshot := metadata.NewSnapshot("Prism", []metadata.DeclaredType{
		{
			FullName:   "Prism.Config.Settings",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			Members:    []metadata.MemberSignature{defaultOptionMember("Template")},
		},
	})

	violations := rules.DefaultOptionRule{}.Evaluate(snapshot)

	require.Len(testInstance, violations, 1)
	require.Equal(testInstance, "Prism.Config.Settings", violations[0].Subject)
	require.Equal(testInstance, "default-option annotation is only valid on renderer family subclasses", violations[0].Reason)
}
