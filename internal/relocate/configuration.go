package relocate

import "strings"

const (
	configurationCopyKeyConstant           = "copy"
	configurationIgnoreFileNameKeyConstant = "ignore_file_name"
	configurationKeySeparatorConstant      = "."
	defaultIgnoreFileNameConstant          = ".gitignore"
)

// CommandConfiguration describes configuration values for the relocate command.
type CommandConfiguration struct {
	CopyOnly       bool   `mapstructure:"copy"`
	IgnoreFileName string `mapstructure:"ignore_file_name"`
}

// DefaultCommandConfiguration returns baseline configuration values for relocation.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		CopyOnly:       false,
		IgnoreFileName: defaultIgnoreFileNameConstant,
	}
}

// DefaultConfigurationValues produces Viper defaults for the relocate command.
func DefaultConfigurationValues(rootKey string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		rootKey + configurationKeySeparatorConstant + configurationCopyKeyConstant:           defaults.CopyOnly,
		rootKey + configurationKeySeparatorConstant + configurationIgnoreFileNameKeyConstant: defaults.IgnoreFileName,
	}
}

// Sanitize normalizes configuration values, restoring defaults for blanks.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := configuration
	sanitized.IgnoreFileName = strings.TrimSpace(configuration.IgnoreFileName)
	if len(sanitized.IgnoreFileName) == 0 {
		sanitized.IgnoreFileName = defaultIgnoreFileNameConstant
	}
	return sanitized
}
