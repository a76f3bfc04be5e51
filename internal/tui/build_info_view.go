// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/MKhiriev/go-form-builder/models"
)

const notAvailable = "N/A"

// toolchainInfo is the build metadata the Go toolchain embeds in the binary.
// It fills in what -ldflags left out, e.g. after a plain `go install`.
type toolchainInfo struct {
	goVersion string
	version   string
	revision  string
	time      string
	modified  bool
}

func readToolchainInfo() toolchainInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return toolchainInfo{}
	}

	info := toolchainInfo{goVersion: bi.GoVersion}
	if bi.Main.Version != "(devel)" {
		info.version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.revision = s.Value
		case "vcs.time":
			info.time = s.Value
		case "vcs.modified":
			info.modified = s.Value == "true"
		}
	}
	return info
}

type buildInfoRow struct {
	label string
	value string
}

func buildInfoRows(info models.AppBuildInfo, tc toolchainInfo) []buildInfoRow {
	commit := info.BuildCommit()
	if commit == notAvailable && tc.revision != "" {
		commit = tc.revision
		if tc.modified {
			commit += " (modified)"
		}
	}

	rows := []buildInfoRow{
		{label: "Application", value: "Form Builder"},
		{label: "Version", value: orToolchain(info.BuildVersion(), tc.version)},
		{label: "Date", value: orToolchain(info.BuildDate(), tc.time)},
		{label: "Commit", value: commit},
	}
	if tc.goVersion != "" {
		rows = append(rows, buildInfoRow{label: "Go", value: tc.goVersion})
	}
	return rows
}

func orToolchain(injected, embedded string) string {
	if injected == notAvailable && embedded != "" {
		return embedded
	}
	return injected
}

func renderBuildInfoWindow(info models.AppBuildInfo, tc toolchainInfo) string {
	rows := buildInfoRows(info, tc)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-12s %s", row.label+":", row.value))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "v / esc: back")
}
