// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// BuildInfo carries immutable build-time metadata injected via linker flags.
// Shown on startup and in the TUI for release traceability.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo normalizes the linker-injected values, substituting "N/A" for
// anything left empty by a local (non-CI) build.
func NewBuildInfo(version, date, commit string) BuildInfo {
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}
	return BuildInfo{Version: version, Date: date, Commit: commit}
}

// String renders the build metadata as a single display line.
func (b BuildInfo) String() string {
	return fmt.Sprintf("version %s (built %s, commit %s)", b.Version, b.Date, b.Commit)
}
