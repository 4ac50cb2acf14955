package surface

import "strings"

const (
	snapshotConfigurationKeySuffixConstant = ".snapshot"
	formatConfigurationKeySuffixConstant   = ".format"
)

// CommandConfiguration captures persistent settings for the audit command.
type CommandConfiguration struct {
	Snapshot string `mapstructure:"snapshot"`
	Format   string `mapstructure:"format"`
}

// DefaultCommandConfiguration returns baseline configuration values for the audit command.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		Snapshot: "",
		Format:   string(ReportFormatCSV),
	}
}

// DefaultConfigurationValues exposes the baseline values keyed for the
// configuration loader under the provided prefix.
func DefaultConfigurationValues(configurationKeyPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationKeyPrefix + snapshotConfigurationKeySuffixConstant: defaults.Snapshot,
		configurationKeyPrefix + formatConfigurationKeySuffixConstant:   defaults.Format,
	}
}

// sanitize trims whitespace and applies defaults to unset configuration values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.Snapshot = strings.TrimSpace(configuration.Snapshot)
	sanitized.Format = strings.TrimSpace(configuration.Format)
	if len(sanitized.Format) == 0 {
		sanitized.Format = string(ReportFormatCSV)
	}
	return sanitized
}
