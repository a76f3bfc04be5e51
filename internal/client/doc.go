// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI until the user quits or the process receives
// SIGINT, SIGTERM or SIGQUIT, then releases the storage backend.
package client
