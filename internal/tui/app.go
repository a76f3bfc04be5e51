// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-builder/models"
)

// RootModel wraps the builder:
// 1) handles global Ctrl+C quit
// 2) toggles the build info window from the forms list
// 3) delegates all other messages to the builder
type RootModel struct {
	builder   builderModel
	buildInfo models.AppBuildInfo
	toolchain toolchainInfo

	showBuildInfo bool
	quitByUser    bool
}

func NewRootModel(builder builderModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		builder:   builder,
		buildInfo: buildInfo,
		toolchain: readToolchainInfo(),
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.builder.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo) && (r.showBuildInfo || r.builder.acceptsShortcuts()):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(keyMsg, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	updated, cmd := r.builder.Update(msg)
	r.builder = updated.(builderModel)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.toolchain))
	}
	return r.builder.View()
}
