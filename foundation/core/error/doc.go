// Package error provides structured errors for the ecmarkdown toolchain.
//
// Package: error
// Title: Structured Error Handling
// Description: Implements coded errors carrying severity, operation, details,
//              and an optional cause. Used for configuration failures, render
//              failures, and internal invariant violations. Syntax errors of
//              the markup parser are wrapped into this type by the renderer so
//              that logs and the CLI see a uniform shape.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-18 v0.2.0: Reduced to the codes used by the markup toolchain
//
// Usage:
//
//	import mderror "github.com/msto63/ecmarkdown/foundation/core/error"
//
//	err := mderror.New("config file not found").
//		WithCode(mderror.CodeNotFound).
//		WithOperation("config.Load").
//		WithDetail("path", path)
//
//	wrapped := mderror.Wrap(err, "cannot start renderer").
//		WithCode(mderror.CodeConfigError)
//
//	if mderror.HasCode(wrapped, mderror.CodeConfigError) {
//		// ...
//	}
//
// The package name shadows the builtin error type; import it under an alias.
package error
