// ============================================================================
// ecmarkdown - Markup Rendering Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants for all ecmarkdown components
const (
	// Toolkit version
	Toolkit = "0.1.0"

	// Component versions
	Parser   = "0.1.0"
	Emitter  = "0.1.0"
	Renderer = "0.1.0"
	CLI      = "0.1.0"
)

// Build metadata, set with -ldflags "-X ...version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "parser":
		return Parser
	case "emitter":
		return Emitter
	case "renderer":
		return Renderer
	case "cli":
		return CLI
	default:
		return Toolkit
	}
}

// String returns the toolkit version with build metadata
func String() string {
	return fmt.Sprintf("ecmarkdown %s (commit %s, built %s)", Toolkit, Commit, BuildDate)
}
