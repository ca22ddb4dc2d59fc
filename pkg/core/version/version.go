// ============================================================================
// textkit - Inflection and line editing toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for textkit components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for textkit components
const (
	// Toolkit version
	Toolkit = "0.2.0"

	// Component versions
	Inflector = "0.2.0"
	Editor    = "0.2.0"
	Recipe    = "0.1.0"
	TUI       = "0.1.0"
)

// Build metadata, set via -ldflags "-X".
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "inflector":
		return Inflector
	case "editor":
		return Editor
	case "recipe":
		return Recipe
	case "tui":
		return TUI
	default:
		return Toolkit
	}
}

// Components lists the named components in display order
func Components() []string {
	return []string{"inflector", "editor", "recipe", "tui"}
}

// Info describes the running build
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information
func Get() Info {
	return Info{
		Version:   Toolkit,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// String returns a one line summary
func (i Info) String() string {
	return fmt.Sprintf("textkit v%s (%s, %s, %s)", i.Version, i.GitCommit, i.GoVersion, i.Platform)
}
