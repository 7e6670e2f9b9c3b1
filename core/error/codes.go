// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the semantic engine, scanner, CLI,
//              and HTTP service. These codes enable structured error
//              handling and API response formatting.
// Version: v0.1.0
// Created: 2025-11-12

package error

// Code represents a structured error code for categorizing errors
type Code string

// Error codes for the semantic engine
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Language and command support
	CodeLanguageNotSupported Code = "LANGUAGE_NOT_SUPPORTED"
	CodeCommandNotSupported  Code = "COMMAND_NOT_SUPPORTED"

	// Parsing
	CodeParseFailure  Code = "PARSE_FAILURE"
	CodeEmptyInput    Code = "EMPTY_INPUT"
	CodeInputTooLong  Code = "INPUT_TOO_LONG"

	// Profiles and patterns
	CodeInvalidProfile  Code = "INVALID_PROFILE"
	CodeProfileLoad     Code = "PROFILE_LOAD"
	CodeInvalidPattern  Code = "INVALID_PATTERN"
	CodeDuplicatePattern Code = "DUPLICATE_PATTERN"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Scanner
	CodeScanFailure Code = "SCAN_FAILURE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid returns true if the code is a known error code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeInvalidInput,
		CodeLanguageNotSupported, CodeCommandNotSupported,
		CodeParseFailure, CodeEmptyInput, CodeInputTooLong,
		CodeInvalidProfile, CodeProfileLoad, CodeInvalidPattern,
		CodeDuplicatePattern, CodeConfigError, CodeInvalidConfig,
		CodeScanFailure:
		return true
	default:
		return false
	}
}

// IsRecoverable returns true if the caller is expected to recover from
// an error with this code by trying another language or command
func (c Code) IsRecoverable() bool {
	switch c {
	case CodeLanguageNotSupported, CodeCommandNotSupported:
		return true
	default:
		return false
	}
}
