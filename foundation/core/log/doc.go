// Package log provides structured logging for the ecmarkdown toolchain.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with persistent context fields,
//              correlation IDs, JSON/text/logfmt output, and operation
//              timers. Loggers are immutable: every With* call returns a
//              configured copy, so a logger can be shared between goroutines
//              that render documents concurrently.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-18 v0.2.0: Deterministic field order, discard logger, no async mode
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Output: os.Stderr,
//		Name:   "ecmarkdown",
//	})
//
//	logger.WithField("component", "parser").Debug("parse started", log.Fields{
//		"length": len(src),
//	})
//
//	timer := logger.StartTimer("render")
//	defer timer.Stop()
package log
