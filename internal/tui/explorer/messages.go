// ============================================================================
// ecmarkdown - Markup Rendering Toolkit
// ============================================================================
//
// Package:     explorer
// Description: Message types for async operations in the explorer
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"time"
)

// loadedMsg is sent when the source was read and analyzed
type loadedMsg struct {
	doc     *Document
	modTime time.Time
	err     error // read failure; syntax errors live in doc
}

// tickMsg drives the polling file watch. Ticks from an earlier
// generation are dropped.
type tickMsg struct {
	gen int
	at  time.Time
}

// fileEventMsg is sent when the watcher saw the file change or failed
type fileEventMsg struct {
	err error
}

// watchClosedMsg is sent once the watcher was closed
type watchClosedMsg struct{}

// changedMsg reports whether the watched file changed on disk
type changedMsg struct {
	modTime time.Time
	changed bool
}
