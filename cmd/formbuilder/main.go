// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-form-builder/internal/client"
	"github.com/MKhiriev/go-form-builder/internal/config"
	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/internal/service"
	"github.com/MKhiriev/go-form-builder/internal/store"
	"github.com/MKhiriev/go-form-builder/internal/tui"
	"github.com/MKhiriev/go-form-builder/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger("formbuilder", cfg.App.LogFile, cfg.App.Debug)
	defer log.Close()

	log.Debug().Any("config", cfg).Msg("received configs")

	app, err := setup(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("client setup error")
		return err
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
		return fmt.Errorf("client run error: %w", err)
	}
	return nil
}

// setup wires storage, services and the UI into a client app. Storage opened
// here is closed again when a later step fails.
func setup(cfg *config.ClientConfig, log *logger.Logger) (*client.App, error) {
	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storage: %w", err)
	}

	services := service.NewClientServices(storages, cfg.App, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), cfg.UI, log)
	if err != nil {
		return nil, abort(fmt.Errorf("error creating ui: %w", err), storages)
	}

	app, err := client.NewApp(ui, storages, log)
	if err != nil {
		return nil, abort(fmt.Errorf("init client app error: %w", err), storages)
	}
	return app, nil
}

// abort closes opened and returns err, joined with the close error if any.
func abort(err error, opened io.Closer) error {
	if closeErr := opened.Close(); closeErr != nil {
		return errors.Join(err, fmt.Errorf("close storage: %w", closeErr))
	}
	return err
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
