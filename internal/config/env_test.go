// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_LOG_FILE":            "/tmp/fb.log",
		"APP_DEBUG":               "true",
		"APP_PRESERVE_FIELD_IDS":  "true",
		"STORAGE_DB_DATABASE_URI": "postgres://u:p@localhost:5432/forms",
		"UI_ALT_SCREEN":           "false",
		"CONFIG":                  "/etc/formbuilder.json",
	})

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/fb.log", cfg.App.LogFile)
	assert.True(t, cfg.App.Debug)
	assert.True(t, cfg.App.PreserveFieldIDs)
	assert.Equal(t, "postgres://u:p@localhost:5432/forms", cfg.Storage.DB.DSN)
	require.NotNil(t, cfg.UI.AltScreen)
	assert.False(t, *cfg.UI.AltScreen)
	assert.Equal(t, "/etc/formbuilder.json", cfg.JSONFilePath)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg, err := parseEnv()
	require.NoError(t, err)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestParseEnv_InvalidBool(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "debug", key: "APP_DEBUG"},
		{name: "preserve field ids", key: "APP_PRESERVE_FIELD_IDS"},
		{name: "alt screen", key: "UI_ALT_SCREEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnvVars(t)
			t.Setenv(tt.key, "not-a-bool")

			_, err := parseEnv()
			assert.Error(t, err)
		})
	}
}

func TestParseEnv_ExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	setEnvVars(t, map[string]string{
		"APP_LOG_FILE":            "~/logs/fb.log",
		"STORAGE_DB_DATABASE_URI": "~/forms.json",
		"CONFIG":                  "~/.config/formbuilder.json",
	})

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "logs", "fb.log"), cfg.App.LogFile)
	assert.Equal(t, filepath.Join(home, "forms.json"), cfg.Storage.DB.DSN)
	assert.Equal(t, filepath.Join(home, ".config", "formbuilder.json"), cfg.JSONFilePath)
}

func TestExpandHome(t *testing.T) {
	t.Setenv("HOME", "/home/ann")

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"forms.json", "forms.json"},
		{"/var/lib/forms.json", "/var/lib/forms.json"},
		{"~user/forms.json", "~user/forms.json"},
		{"postgres://u:p@localhost/forms", "postgres://u:p@localhost/forms"},
		{"~/forms.json", "/home/ann/forms.json"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := expandHome(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars blanks every variable the config reads. t.Setenv restores
// the previous values after the test.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_LOG_FILE", "APP_DEBUG", "APP_PRESERVE_FIELD_IDS",
		"STORAGE_DB_DATABASE_URI", "UI_ALT_SCREEN", "CONFIG",
	} {
		t.Setenv(k, "")
	}
}
