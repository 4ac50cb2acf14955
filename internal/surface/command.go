package surface

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"declaudit/internal/metadata"
	"declaudit/internal/reachability"
	"declaudit/internal/rules"
	"declaudit/internal/utils"
	"declaudit/internal/utils/flags"
	pathutils "declaudit/internal/utils/path"
)

const (
	commandNameConstant            = "audit"
	commandShortDescription        = "Audit the declaration surface of a compiled library module"
	commandLongDescription         = "Audit loads a declaration snapshot, reports public enum and capability types never referenced by the module surface, and enforces annotation conventions."
	flagSnapshotName               = "snapshot"
	flagSnapshotDescription        = "Path to the declaration snapshot (YAML)."
	flagFormatName                 = "format"
	flagFormatDescription          = "Violation report format."
	missingSnapshotMessageConstant = "no declaration snapshot provided; specify --snapshot or configure a default"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider supplies the persisted audit command configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Loader                SnapshotLoader
	Analyzer              ReachabilityAnalyzer
	Evaluator             ConventionEvaluator
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the cobra command for declaration surface audits.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:           commandNameConstant,
		Short:         commandShortDescription,
		Long:          commandLongDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          builder.run,
	}

	formatUsage := flags.FormatChoiceUsage(
		string(ReportFormatCSV),
		[]string{string(ReportFormatCSV), string(ReportFormatText)},
		flagFormatDescription,
	)

	command.Flags().String(flagSnapshotName, "", flagSnapshotDescription)
	command.Flags().String(flagFormatName, "", formatUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	options, optionsError := builder.parseOptions(command)
	if optionsError != nil {
		if helpError := builder.displayCommandHelp(command); helpError != nil {
			return helpError
		}
		return optionsError
	}

	logger := builder.resolveLogger()
	service := NewService(
		builder.resolveLoader(logger),
		builder.resolveAnalyzer(),
		builder.resolveEvaluator(),
		utils.NewFlushingWriter(command.OutOrStdout()),
		logger,
	)

	return service.Run(command.Context(), options)
}

func (builder *CommandBuilder) parseOptions(command *cobra.Command) (CommandOptions, error) {
	configuration := builder.resolveConfiguration()

	snapshotFlagValue, _ := command.Flags().GetString(flagSnapshotName)
	formatFlagValue, _ := command.Flags().GetString(flagFormatName)

	snapshotPath := configuration.Snapshot
	if command.Flags().Changed(flagSnapshotName) {
		snapshotPath = snapshotFlagValue
	}
	snapshotPath = builder.resolveHomeExpander().Expand(strings.TrimSpace(snapshotPath))
	if len(snapshotPath) == 0 {
		return CommandOptions{}, errors.New(missingSnapshotMessageConstant)
	}

	reportFormat := configuration.Format
	if command.Flags().Changed(flagFormatName) {
		reportFormat = formatFlagValue
	}

	options := CommandOptions{
		SnapshotPath: snapshotPath,
		Format:       ReportFormat(strings.TrimSpace(reportFormat)),
	}

	return options, nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration().sanitize()
	}
	return builder.ConfigurationProvider().sanitize()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveLoader(logger *zap.Logger) SnapshotLoader {
	if builder.Loader != nil {
		return builder.Loader
	}
	return metadata.NewLoader(logger)
}

func (builder *CommandBuilder) resolveAnalyzer() ReachabilityAnalyzer {
	if builder.Analyzer != nil {
		return builder.Analyzer
	}
	return reachability.NewAnalyzer()
}

func (builder *CommandBuilder) resolveEvaluator() ConventionEvaluator {
	if builder.Evaluator != nil {
		return builder.Evaluator
	}
	return rules.NewEngine()
}

func (builder *CommandBuilder) resolveHomeExpander() *pathutils.HomeExpander {
	if builder.HomeExpander != nil {
		return builder.HomeExpander
	}
	return pathutils.NewHomeExpander()
}

func (builder *CommandBuilder) displayCommandHelp(command *cobra.Command) error {
	if command == nil {
		return nil
	}
	return command.Help()
}
