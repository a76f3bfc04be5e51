// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// parseEnv reads a [StructuredConfig] from environment variables named by
// its `env` and `envPrefix` tags.
//
// A leading "~/" in the log file, the config file or the DSN is expanded to
// the home directory: env files and service managers pass it on literally.
func parseEnv() (*StructuredConfig, error) {
	cfg, err := env.ParseAs[StructuredConfig]()
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	for _, path := range []*string{&cfg.App.LogFile, &cfg.JSONFilePath, &cfg.Storage.DB.DSN} {
		if *path, err = expandHome(*path); err != nil {
			return nil, fmt.Errorf("error getting env configs: %w", err)
		}
	}

	return &cfg, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~/")
	if !ok {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("expand %q: %w", path, err)
	}
	return filepath.Join(home, rest), nil
}
