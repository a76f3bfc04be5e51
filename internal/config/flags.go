// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

// optionalBool is a boolean flag.Value that remembers whether it was set.
type optionalBool struct {
	value *bool
}

func (b *optionalBool) String() string {
	if b == nil || b.value == nil {
		return ""
	}
	return strconv.FormatBool(*b.value)
}

func (b *optionalBool) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	b.value = &v
	return nil
}

// IsBoolFlag lets the flag be given without a value.
func (b *optionalBool) IsBoolFlag() bool { return true }

// parseFlags parses the configuration flags from args.
//
// Flags:
//
//	-d database DSN (SQLite path, postgres:// URL, or JSON file)
//	-c/-config json file path with configs
//	-log-file log file path
//	-debug enable debug logging
//	-preserve-field-ids keep field ids when a form is saved again
//	-alt-screen run in the alternate screen buffer
func parseFlags(args []string) (*StructuredConfig, error) {
	var (
		databaseDSN      string
		jsonConfigPath   string
		logFile          string
		debug            bool
		preserveFieldIDs bool
		altScreen        optionalBool
	)

	fs := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.BoolVar(&debug, "debug", false, "Enable debug logging")
	fs.BoolVar(&preserveFieldIDs, "preserve-field-ids", false, "Keep field ids when a form is saved again")
	fs.Var(&altScreen, "alt-screen", "Run in the alternate screen buffer (default true)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogFile:          logFile,
			Debug:            debug,
			PreserveFieldIDs: preserveFieldIDs,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		UI:           UI{AltScreen: altScreen.value},
		JSONFilePath: jsonConfigPath,
	}, nil
}
