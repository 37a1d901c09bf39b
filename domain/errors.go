package domain

import "fmt"

// Error codes for the closed set of failure conditions
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodePluginLoad        = "PLUGIN_LOAD_ERROR"
	ErrCodeNoRulesLoaded     = "NO_RULES_LOADED"
	ErrCodeReporterNotFound  = "REPORTER_NOT_FOUND"
	ErrCodeReportOutput      = "REPORT_OUTPUT_ERROR"
	ErrCodeProcessingError   = "PROCESSING_ERROR"
	ErrCodeReportingError    = "REPORTING_ERROR"
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
)

// DomainError represents an error with a code, message, and optional cause
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

// Error implements the error interface
func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e DomainError) Unwrap() error {
	return e.Cause
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{Code: code, Message: message, Cause: cause}
}

// NewInvalidInputError creates an error for invalid input
func NewInvalidInputError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidInput, message, cause)
}

// NewPluginLoadError creates an error for a rule or reporter artifact that
// failed to load
func NewPluginLoadError(path string, cause error) error {
	return NewDomainError(ErrCodePluginLoad, fmt.Sprintf("cannot load plugin: %s", path), cause)
}

// NewNoRulesLoadedError creates the error for an empty rule registry after
// all configured paths were processed
func NewNoRulesLoadedError() error {
	return NewDomainError(ErrCodeNoRulesLoaded, "no rule loaded", nil)
}

// NewReporterNotFoundError creates an error for an unresolved reporter name
func NewReporterNotFoundError(name string) error {
	return NewDomainError(ErrCodeReporterNotFound, fmt.Sprintf("cannot find reporter: %s", name), nil)
}

// NewReportOutputError creates an error for a report output path that could
// not be opened
func NewReportOutputError(path string, cause error) error {
	return NewDomainError(ErrCodeReportOutput, fmt.Sprintf("cannot open report output file %s", path), cause)
}

// NewProcessingError creates an error for a failed analysis phase
func NewProcessingError(message string, cause error) error {
	return NewDomainError(ErrCodeProcessingError, message, cause)
}

// NewReportingError creates an error for a reporter that failed while writing
func NewReportingError(reporter string, cause error) error {
	return NewDomainError(ErrCodeReportingError, fmt.Sprintf("reporter %s failed", reporter), cause)
}

// NewConfigError creates an error for configuration issues
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewUnsupportedFormatError creates an error for an unknown format name
func NewUnsupportedFormatError(format string) error {
	return NewDomainError(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported format: %s", format), nil)
}
