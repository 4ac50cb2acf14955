package metadata_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"declaudit/internal/metadata"
)

func TestParseTypeReference(testInstance *testing.T) {
	testCases := []struct {
		name              string
		rawReference      string
		expectedReference metadata.TypeReference
	}{
		{
			name:              "plain_name",
			rawReference:      "Prism.Render.RenderContext",
			expectedReference: metadata.TypeReference{Name: "Prism.Render.RenderContext"},
		},
		{
			name:         "array",
			rawReference: "Prism.Tokens.Token[]",
			expectedReference: metadata.TypeReference{
				Element: &metadata.TypeReference{Name: "Prism.Tokens.Token"},
			},
		},
		{
			name:         "nested_array",
			rawReference: "System.Byte[][]",
			expectedReference: metadata.TypeReference{
				Element: &metadata.TypeReference{
					Element: &metadata.TypeReference{Name: "System.Byte"},
				},
			},
		},
		{
			name:         "generic_instantiation",
			rawReference: "Prism.Collections.ValuePool<Prism.Tokens.Token>",
			expectedReference: metadata.TypeReference{
				Name: "Prism.Collections.ValuePool",
				Arguments: []metadata.TypeReference{
					{Name: "Prism.Tokens.Token"},
				},
			},
		},
		{
			name:         "nested_generic_with_arrays",
			rawReference: "Prism.Collections.Registry<System.String, Prism.Collections.ValuePool<Prism.Tokens.Token>[]>",
			expectedReference: metadata.TypeReference{
				Name: "Prism.Collections.Registry",
				Arguments: []metadata.TypeReference{
					{Name: "System.String"},
					{
						Element: &metadata.TypeReference{
							Name: "Prism.Collections.ValuePool",
							Arguments: []metadata.TypeReference{
								{Name: "Prism.Tokens.Token"},
							},
						},
					},
				},
			},
		},
		{
			name:         "array_of_instantiation",
			rawReference: "Prism.Collections.ValuePool<Prism.Tokens.Token>[]",
			expectedReference: metadata.TypeReference{
				Element: &metadata.TypeReference{
					Name: "Prism.Collections.ValuePool",
					Arguments: []metadata.TypeReference{
						{Name: "Prism.Tokens.Token"},
					},
				},
			},
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subTest *testing.T) {
			parsedReference, parseError := metadata.ParseTypeReference(testCase.rawReference)
			require.NoError(subTest, parseError)
			require.Equal(subTest, testCase.expectedReference, parsedReference)
		})
	}
}

func TestParseTypeReferenceRejectsMalformedInput(testInstance *testing.T) {
	testCases := []struct {
		name         string
		rawReference string
	}{
		{name: "empty", rawReference: ""},
		{name: "blank", rawReference: "   "},
		{name: "unterminated_generic", rawReference: "Prism.Collections.ValuePool<Prism.Tokens.Token"},
		{name: "missing_argument", rawReference: "Prism.Collections.ValuePool<>"},
		{name: "dangling_close", rawReference: "Prism.Tokens.Token>"},
		{name: "malformed_array_suffix", rawReference: "Prism.Tokens.Token["},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf("%d_%s", testCaseIndex, testCase.name), func(subTest *testing.T) {
			_, parseError := metadata.ParseTypeReference(testCase.rawReference)
			require.Error(subTest, parseError)
		})
	}
}

func TestTypeReferenceUnwrap(testInstance *testing.T) {
	parsedReference, parseError := metadata.ParseTypeReference("Prism.Tokens.Token[][]")
	require.NoError(testInstance, parseError)
	require.True(testInstance, parsedReference.IsArray())

	unwrapped := parsedReference.Unwrap()
	require.False(testInstance, unwrapped.IsArray())
	require.Equal(testInstance, "Prism.Tokens.Token", unwrapped.Name)
}
