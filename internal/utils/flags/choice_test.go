package flags_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"declaudit/internal/utils/flags"
)

func TestFormatChoiceUsage(testInstance *testing.T) {
	usage := flags.FormatChoiceUsage("csv", []string{"csv", "text"}, "Violation report format.")
	require.Equal(testInstance, "`<CSV|text>` Violation report format.", usage)
}

func TestFormatChoiceUsageWithoutDescription(testInstance *testing.T) {
	usage := flags.FormatChoiceUsage("text", []string{"csv", "text"}, "   ")
	require.Equal(testInstance, "`<csv|TEXT>`", usage)
}

func TestFormatChoiceUsageDropsBlankAndDuplicateChoices(testInstance *testing.T) {
	usage := flags.FormatChoiceUsage("csv", []string{"csv", "", "CSV", "text"}, "Formats.")
	require.Equal(testInstance, "`<CSV|text>` Formats.", usage)
}
