package reachability_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"declaudit/internal/metadata"
	"declaudit/internal/reachability"
)

func rootSetTypes() []metadata.DeclaredType {
	return []metadata.DeclaredType{
		{
			FullName:   "Prism.Config.StartupPhase",
			Kind:       metadata.TypeKindEnum,
			Visibility: metadata.VisibilityPublic,
		},
		{
			FullName:   "Prism.Render.IDiagnosticSource",
			Kind:       metadata.TypeKindCapability,
			Visibility: metadata.VisibilityPublic,
		},
	}
}

func TestAnalyzeReportsUnreferencedPublicDeclarations(testInstance *testing.T) {
	returnsReference, parseError := metadata.ParseTypeReference("Prism.Render.OutputMode")
	require.NoError(testInstance, parseError)

	declaredTypes := append(rootSetTypes(),
		metadata.DeclaredType{
			FullName:   "Prism.Render.OutputMode",
			Kind:       metadata.TypeKindEnum,
			Visibility: metadata.VisibilityPublic,
		},
		metadata.DeclaredType{
			FullName:   "Prism.Render.IZebraStriper",
			Kind:       metadata.TypeKindCapability,
			Visibility: metadata.VisibilityPublic,
		},
		metadata.DeclaredType{
			FullName:   "Prism.Render.AlarmPhase",
			Kind:       metadata.TypeKindEnum,
			Visibility: metadata.VisibilityPublic,
		},
		metadata.DeclaredType{
			FullName:   "Prism.Render.InternalPhase",
			Kind:       metadata.TypeKindEnum,
			Visibility: metadata.VisibilityNonPublic,
		},
		metadata.DeclaredType{
			FullName:   "Prism.Render.PlainRenderer",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			Members: []metadata.MemberSignature{
				{Name: "Mode", Returns: returnsReference},
			},
		},
	)
	snapshot := metadata.NewSnapshot("Prism", declaredTypes)

	analyzer := reachability.NewAnalyzer()

	violations, analyzeError := analyzer.Analyze(snapshot)
	require.NoError(testInstance, analyzeError)
	require.Len(testInstance, violations, 2)
	require.Equal(testInstance, "Prism.Render.AlarmPhase", violations[0].Subject)
	require.Equal(testInstance, "public enum is never referenced by the module surface", violations[0].Reason)
	require.Equal(testInstance, "Prism.Render.IZebraStriper", violations[1].Subject)
	require.Equal(testInstance, "public capability is never referenced by the module surface", violations[1].Reason)
}

func TestAnalyzePassesWhenEveryTrackedDeclarationIsReferenced(testInstance *testing.T) {
	returnsReference, parseError := metadata.ParseTypeReference("Prism.Render.OutputMode")
	require.NoError(testInstance, parseError)

	declaredTypes := append(rootSetTypes(),
		metadata.DeclaredType{
			FullName:   "Prism.Render.OutputMode",
			Kind:       metadata.TypeKindEnum,
			Visibility: metadata.VisibilityPublic,
		},
		metadata.DeclaredType{
			FullName:   "Prism.Render.PlainRenderer",
			Kind:       metadata.TypeKindClass,
			Visibility: metadata.VisibilityPublic,
			Members: []metadata.MemberSignature{
				{Name: "Mode", Returns: returnsReference},
			},
		},
	)
	snapshot := metadata.NewSnapshot("Prism", declaredTypes)

	analyzer := reachability.NewAnalyzer()

	violations, analyzeError := analyzer.Analyze(snapshot)
	require.NoError(testInstance, analyzeError)
	require.Empty(testInstance, violations)
}

func TestAnalyzeFailsWhenRootSetNamesMissingDeclaration(testInstance *testing.T) {
	snapshot := metadata.NewSnapshot("Prism", []metadata.DeclaredType{
		{
			FullName:   "Prism.Config.StartupPhase",
			Kind:       metadata.TypeKindEnum,
			Visibility: metadata.VisibilityPublic,
		},
	})

	analyzer := reachability.NewAnalyzer()

	_, analyzeError := analyzer.Analyze(snapshot)
	require.Error(testInstance, analyzeError)
	require.Contains(testInstance, analyzeError.Error(), "malformed root set")
}

func TestRootSetReturnsDefensiveCopy(testInstance *testing.T) {
	firstCopy := reachability.RootSet()
	require.Equal(testInstance, []string{"Prism.Config.StartupPhase", "Prism.Render.IDiagnosticSource"}, firstCopy)

	firstCopy[0] = "Prism.Config.Mutated"
	require.Equal(testInstance, "Prism.Config.StartupPhase", reachability.RootSet()[0])
}
