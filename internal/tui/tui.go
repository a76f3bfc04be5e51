// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-builder/internal/config"
	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/internal/service"
	"github.com/MKhiriev/go-form-builder/models"
)

var ErrNoFormService = errors.New("form service is not configured")

type TUI struct {
	forms     service.FormService
	buildInfo models.AppBuildInfo
	altScreen bool
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, cfg config.ClientUI, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.FormService == nil {
		return nil, ErrNoFormService
	}

	return &TUI{
		forms:     services.FormService,
		buildInfo: buildInfo,
		altScreen: cfg.AltScreen,
		logger:    logger,
	}, nil
}

// Run shows the form builder until the user quits or ctx is cancelled.
// Cancellation is not an error.
func (t *TUI) Run(ctx context.Context) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if t.altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	root := NewRootModel(newBuilderModel(ctx, t.forms, t.logger), t.buildInfo)
	finalModel, err := tea.NewProgram(root, opts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			t.logger.Info().Str("func", "TUI.Run").Msg("stopped by signal")
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}

	if result, ok := finalModel.(RootModel); ok && result.quitByUser {
		t.logger.Info().Str("func", "TUI.Run").Msg("quit by ctrl+c")
	}
	return nil
}
