// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The EasyLearn Authors

package models

import "fmt"

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// BuildInfo is the build-time metadata injected into binaries with
// -ldflags "-X main.buildVersion=...".
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo returns a [BuildInfo] with every empty value replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNotAvailable(version),
		Date:    orNotAvailable(date),
		Commit:  orNotAvailable(commit),
	}
}

// Lines renders the metadata the way binaries print it on startup.
func (b BuildInfo) Lines() []string {
	return []string{
		fmt.Sprintf("Build version: %s", b.Version),
		fmt.Sprintf("Build date: %s", b.Date),
		fmt.Sprintf("Build commit: %s", b.Commit),
	}
}

func orNotAvailable(v string) string {
	if v == "" {
		return notAvailable
	}
	return v
}
