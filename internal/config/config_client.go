// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// ClientApp holds application-level client settings.
type ClientApp struct {
	// LogFile is the path the client logger appends to.
	LogFile string
	// Debug enables debug level logging.
	Debug bool
	// PreserveFieldIDs keeps stored field ids across edits.
	PreserveFieldIDs bool
}

// ClientDB contains the key-value backend settings for the client.
type ClientDB struct {
	// DSN is the SQLite path, PostgreSQL URL, or JSON file the forms live in.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientUI contains terminal presentation settings.
type ClientUI struct {
	AltScreen bool
}

// ClientConfig is the configuration of the form builder client, assembled
// from [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Storage ClientStorage
	UI      ClientUI
}

// GetClientConfig builds and validates the client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			LogFile:          cfg.App.LogFile,
			Debug:            cfg.App.Debug,
			PreserveFieldIDs: cfg.App.PreserveFieldIDs,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: strings.TrimSpace(cfg.Storage.DB.DSN)},
		},
		UI: ClientUI{
			AltScreen: cfg.UI.AltScreen == nil || *cfg.UI.AltScreen,
		},
	}

	if err := clientCfg.validate(); err != nil {
		return nil, err
	}
	return clientCfg, nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Storage.DB.DSN {
	case "", ":memory:", "memory":
		return ErrInvalidStorageConfigs
	}

	if strings.TrimSpace(cfg.App.LogFile) == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
