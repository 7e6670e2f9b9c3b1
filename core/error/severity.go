// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and log-level selection. Most errors the
//              engine produces are recoverable and therefore low severity.
// Version: v0.1.0
// Created: 2025-11-12

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: unsupported language code, no pattern matched the input
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: a single profile file failed to load, invalid pattern skipped
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: engine misconfiguration, registry in an unusable state
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the system unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines the appropriate severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityHigh
	case CodeInvalidProfile, CodeProfileLoad, CodeInvalidPattern,
		CodeDuplicatePattern, CodeConfigError, CodeInvalidConfig:
		return SeverityMedium
	case CodeLanguageNotSupported, CodeCommandNotSupported,
		CodeParseFailure, CodeEmptyInput, CodeInputTooLong,
		CodeInvalidInput, CodeScanFailure:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
