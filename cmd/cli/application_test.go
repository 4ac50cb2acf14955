package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"declaudit/cmd/cli"
	"declaudit/internal/surface"
)

const passingSnapshotDocumentConstant = `
module: Prism
types:
  - name: Prism.Config.StartupPhase
    kind: enum
    visibility: public
  - name: Prism.Render.IDiagnosticSource
    kind: capability
    visibility: public
`

func writeSnapshotFile(testInstance *testing.T, document string) string {
	testInstance.Helper()
	snapshotPath := filepath.Join(testInstance.TempDir(), "surface.yaml")
	require.NoError(testInstance, os.WriteFile(snapshotPath, []byte(document), 0o644))
	return snapshotPath
}

func TestApplicationConfigurationDecodesDefaults(testInstance *testing.T) {
	viperInstance := viper.New()
	viperInstance.SetDefault("common.log_level", "info")
	viperInstance.SetDefault("common.log_format", "structured")
	for configurationKey, configurationValue := range surface.DefaultConfigurationValues("tools.audit") {
		viperInstance.SetDefault(configurationKey, configurationValue)
	}

	var configuration cli.ApplicationConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &configuration,
		TagName: "mapstructure",
	})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(viperInstance.AllSettings()))

	require.Equal(testInstance, "info", configuration.Common.LogLevel)
	require.Equal(testInstance, "structured", configuration.Common.LogFormat)
	require.Equal(testInstance, "", configuration.Tools.Audit.Snapshot)
	require.Equal(testInstance, string(surface.ReportFormatCSV), configuration.Tools.Audit.Format)
}

func TestApplicationExecutesAuditCommand(testInstance *testing.T) {
	snapshotPath := writeSnapshotFile(testInstance, passingSnapshotDocumentConstant)

	application := cli.NewApplication()
	outputBuffer := &bytes.Buffer{}
	rootCommand := application.RootCommand()
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	rootCommand.SetArgs([]string{"audit", "--snapshot", snapshotPath, "--log-level", "error"})

	require.NoError(testInstance, application.Execute())
	require.Equal(testInstance, "category,subject,reason\n", outputBuffer.String())
}

func TestApplicationReadsAuditSettingsFromConfigurationFile(testInstance *testing.T) {
	snapshotPath := writeSnapshotFile(testInstance, passingSnapshotDocumentConstant)

	configurationDirectory := testInstance.TempDir()
	configurationPath := filepath.Join(configurationDirectory, "config.yaml")
	configurationDocument := "common:\n" +
		"  log_level: error\n" +
		"  log_format: structured\n" +
		"tools:\n" +
		"  audit:\n" +
		"    snapshot: " + snapshotPath + "\n" +
		"    format: text\n"
	require.NoError(testInstance, os.WriteFile(configurationPath, []byte(configurationDocument), 0o644))

	application := cli.NewApplication()
	outputBuffer := &bytes.Buffer{}
	rootCommand := application.RootCommand()
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	rootCommand.SetArgs([]string{"--config", configurationPath, "audit"})

	require.NoError(testInstance, application.Execute())
	require.Empty(testInstance, outputBuffer.String())
}

func TestApplicationRejectsUnsupportedLogLevel(testInstance *testing.T) {
	snapshotPath := writeSnapshotFile(testInstance, passingSnapshotDocumentConstant)

	application := cli.NewApplication()
	outputBuffer := &bytes.Buffer{}
	rootCommand := application.RootCommand()
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	rootCommand.SetArgs([]string{"audit", "--snapshot", snapshotPath, "--log-level", "verbose"})

	executionError := application.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unsupported log level")
}

func TestApplicationRootCommandShowsHelp(testInstance *testing.T) {
	application := cli.NewApplication()
	outputBuffer := &bytes.Buffer{}
	rootCommand := application.RootCommand()
	rootCommand.SetOut(outputBuffer)
	rootCommand.SetErr(outputBuffer)
	rootCommand.SetArgs([]string{})

	require.NoError(testInstance, application.Execute())
	require.Contains(testInstance, outputBuffer.String(), "audit")
}
