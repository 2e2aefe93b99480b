// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across the markup toolchain for
//              classification in logs and CLI exit handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-18 v0.2.0: Markup syntax and render codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"
	CodeIO           Code = "IO_ERROR"

	// Markup processing
	CodeSyntax       Code = "MARKUP_SYNTAX"
	CodeRenderFailed Code = "RENDER_FAILED"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeCanceled, CodeIO,
		CodeSyntax, CodeRenderFailed,
		CodeConfigError, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeRenderFailed:
		return "markup"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeIO, CodeNotFound:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode maps an error code to a process exit status for the CLI
func (c Code) ExitCode() int {
	switch c {
	case CodeSyntax:
		return 2
	case CodeConfigError, CodeInvalidConfig:
		return 3
	case CodeNotFound, CodeIO:
		return 4
	case CodeInternal:
		return 70
	default:
		return 1
	}
}
