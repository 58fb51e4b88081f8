// ============================================================================
// dandelion - ordered mapping toolkit
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and the CLI
// Author:      hellerve
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants per component
const (
	// Platform is the release version of the module
	Platform = "0.1.0"

	Mapx   = "0.1.0"
	Config = "0.1.0"
	Log    = "0.1.0"
	CLI    = "0.1.0"
)

// Set at build time with -ldflags "-X ...version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "mapx":
		return Mapx
	case "config":
		return Config
	case "log":
		return Log
	case "cli", "dandelion":
		return CLI
	default:
		return Platform
	}
}

// Info describes the build in the form printed by "dandelion version"
func Info() string {
	return fmt.Sprintf("dandelion v%s\n  Git Commit: %s\n  Build Date: %s\n  Go Version: %s\n  OS/Arch:    %s/%s\n",
		Platform, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
