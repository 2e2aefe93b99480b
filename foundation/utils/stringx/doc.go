// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package stringx holds the small string helpers used across
//              the ecmarkdown packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-18 v0.2.0: Reduced to helpers used by markup and CLI

// Package stringx provides string helpers that extend the standard library:
// blank checks, indentation measurement, tab expansion for diagnostics and
// rune-safe truncation and padding.
package stringx
