package surface

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"

	"go.uber.org/zap"

	"declaudit/internal/metadata"
)

const (
	csvHeaderCategoryConstant         = "category"
	csvHeaderSubjectConstant          = "subject"
	csvHeaderReasonConstant           = "reason"
	textRowTemplateConstant           = "%s: %s: %s\n"
	unsupportedFormatTemplateConstant = "unsupported report format %q"
	auditFailedTemplateConstant       = "declaration audit failed with %d violation(s)"
	auditPassedMessageConstant        = "declaration audit passed"
	auditCompletedMessageConstant     = "declaration audit completed"
	logFieldModuleConstant            = "module"
	logFieldUnusedCountConstant       = "unused_declaration_count"
	logFieldConventionCountConstant   = "convention_violation_count"
)

// Service coordinates snapshot loading, reachability analysis, and
// convention evaluation for one audit invocation.
type Service struct {
	loader       SnapshotLoader
	analyzer     ReachabilityAnalyzer
	evaluator    ConventionEvaluator
	outputWriter io.Writer
	logger       *zap.Logger
}

// NewService constructs a Service using the provided collaborators.
func NewService(loader SnapshotLoader, analyzer ReachabilityAnalyzer, evaluator ConventionEvaluator, outputWriter io.Writer, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		loader:       loader,
		analyzer:     analyzer,
		evaluator:    evaluator,
		outputWriter: outputWriter,
		logger:       logger,
	}
}

// Run executes the audit according to the provided options. Violations are
// accumulated across the whole run and reported together; any violation
// makes the run fail. Structural errors in the audit itself abort the run
// immediately.
func (service *Service) Run(executionContext context.Context, options CommandOptions) error {
	if contextError := executionContext.Err(); contextError != nil {
		return contextError
	}

	snapshot, loadError := service.loader.Load(options.SnapshotPath)
	if loadError != nil {
		return loadError
	}

	unusedViolations, analysisError := service.analyzer.Analyze(snapshot)
	if analysisError != nil {
		return analysisError
	}

	conventionViolations := service.evaluator.Evaluate(snapshot)

	service.logger.Info(
		auditCompletedMessageConstant,
		zap.String(logFieldModuleConstant, snapshot.ModuleName),
		zap.Int(logFieldUnusedCountConstant, len(unusedViolations)),
		zap.Int(logFieldConventionCountConstant, len(conventionViolations)),
	)

	rows := make([]ReportRow, 0, len(unusedViolations)+len(conventionViolations))
	rows = appendRows(rows, CategoryUnusedDeclaration, unusedViolations)
	rows = appendRows(rows, CategoryConvention, conventionViolations)

	if writeError := service.writeReport(rows, options.Format); writeError != nil {
		return writeError
	}

	if len(rows) > 0 {
		return fmt.Errorf(auditFailedTemplateConstant, len(rows))
	}

	service.logger.Info(auditPassedMessageConstant, zap.String(logFieldModuleConstant, snapshot.ModuleName))
	return nil
}

func (service *Service) writeReport(rows []ReportRow, format ReportFormat) error {
	switch format {
	case ReportFormatCSV:
		return service.writeCSVReport(rows)
	case ReportFormatText:
		return service.writeTextReport(rows)
	default:
		return fmt.Errorf(unsupportedFormatTemplateConstant, format)
	}
}

func (service *Service) writeCSVReport(rows []ReportRow) error {
	csvWriter := csv.NewWriter(service.outputWriter)

	header := []string{
		csvHeaderCategoryConstant,
		csvHeaderSubjectConstant,
		csvHeaderReasonConstant,
	}
	if writeError := csvWriter.Write(header); writeError != nil {
		return writeError
	}

	for _, row := range rows {
		if writeError := csvWriter.Write(row.CSVRecord()); writeError != nil {
			return writeError
		}
	}

	csvWriter.Flush()
	return csvWriter.Error()
}

func (service *Service) writeTextReport(rows []ReportRow) error {
	for _, row := range rows {
		if _, writeError := fmt.Fprintf(service.outputWriter, textRowTemplateConstant, row.Category, row.Subject, row.Reason); writeError != nil {
			return writeError
		}
	}
	return nil
}

func appendRows(rows []ReportRow, category ViolationCategory, violations []metadata.Violation) []ReportRow {
	for _, violation := range violations {
		rows = append(rows, ReportRow{
			Category: category,
			Subject:  violation.Subject,
			Reason:   violation.Reason,
		})
	}
	return rows
}
