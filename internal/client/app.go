// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-form-builder/internal/logger"
)

var (
	ErrNoUI      = errors.New("client ui is not configured")
	ErrNoStorage = errors.New("client storage is not configured")
)

type App struct {
	ui      UI
	storage io.Closer
	logger  *logger.Logger

	signals []os.Signal
}

func NewApp(ui UI, storage io.Closer, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}
	if storage == nil {
		return nil, ErrNoStorage
	}

	return &App{
		ui:      ui,
		storage: storage,
		logger:  logger,
		signals: []os.Signal{syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT},
	}, nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), a.signals...)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := a.storage.Close(); closeErr != nil {
			a.logger.Error().Err(closeErr).Str("func", "App.run").Msg("failed to close storage")
			err = errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
		}
	}()

	a.logger.Info().Str("func", "App.run").Msg("client started")
	if err = a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	a.logger.Info().Str("func", "App.run").Msg("client stopped")
	return nil
}
