// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger picks its level
//              from the severity when logging a structured error.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-18 v0.2.0: Severity mapping for markup codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad user input such as malformed markup
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation that can be retried
	SeverityMedium

	// SeverityHigh indicates misconfiguration that blocks all work
	SeverityHigh

	// SeverityCritical indicates a broken invariant inside the toolchain
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

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeSyntax, CodeInvalidInput, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
