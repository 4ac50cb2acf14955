package surface

// ReportFormat enumerates supported violation report encodings.
type ReportFormat string

// Report formats supported by the audit command.
const (
	ReportFormatCSV  ReportFormat = "csv"
	ReportFormatText ReportFormat = "text"
)

// ViolationCategory distinguishes the two audit outputs.
type ViolationCategory string

// Categories reported by the audit.
const (
	CategoryUnusedDeclaration ViolationCategory = "unused-declaration"
	CategoryConvention        ViolationCategory = "convention"
)

// CommandOptions captures the configurable parameters for one audit run.
type CommandOptions struct {
	SnapshotPath string
	Format       ReportFormat
}

// ReportRow models a single violation result.
type ReportRow struct {
	Category ViolationCategory
	Subject  string
	Reason   string
}

// CSVRecord returns the row formatted for CSV encoding.
func (row ReportRow) CSVRecord() []string {
	return []string{
		string(row.Category),
		row.Subject,
		row.Reason,
	}
}
