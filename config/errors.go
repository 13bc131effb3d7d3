package config

import "github.com/TFMV/nowgen/pkg/errors"

// Config-specific error codes
var (
	ErrConfigFileReadFailed   = errors.MustNewCode("config.file_read_failed")
	ErrConfigFileParseFailed  = errors.MustNewCode("config.file_parse_failed")
	ErrConfigValidationFailed = errors.MustNewCode("config.validation_failed")
	ErrOutputDirRequired      = errors.MustNewCode("config.output_dir_required")
	ErrNoCasesConfigured      = errors.MustNewCode("config.no_cases_configured")
	ErrCaseFilenameRequired   = errors.MustNewCode("config.case_filename_required")
	ErrCaseValidationFailed   = errors.MustNewCode("config.case_validation_failed")

	// Logging-specific error codes
	ErrLogDirectoryCreationFailed = errors.MustNewCode("config.log_directory_creation_failed")
	ErrLogFileOpenFailed          = errors.MustNewCode("config.log_file_open_failed")
	ErrLogLevelInvalid            = errors.MustNewCode("config.log_level_invalid")
)
