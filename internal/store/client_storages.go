// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/go-form-builder/internal/config"
	"github.com/MKhiriev/go-form-builder/internal/logger"
)

// Backend names the kind of key-value store a DSN selects.
type Backend string

const (
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendJSONFile Backend = "json"
	BackendMemory   Backend = "memory"
)

const connectTimeout = 10 * time.Second

// ParseDSN resolves dsn into a backend and the location handed to it.
//
//   - postgres:// and postgresql:// URLs select PostgreSQL;
//   - a file: prefix or a .json suffix selects the JSON file backend, with
//     the prefix stripped from the path;
//   - [MemoryDSN] selects the in-memory map;
//   - anything else is a SQLite database file.
func ParseDSN(dsn string) (Backend, string, error) {
	dsn = strings.TrimSpace(dsn)

	switch {
	case dsn == "":
		return "", "", fmt.Errorf("%w: empty dsn", ErrUnsupportedDSN)
	case dsn == MemoryDSN:
		return BackendMemory, dsn, nil
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return BackendPostgres, dsn, nil
	case strings.HasPrefix(dsn, "file:"):
		path := strings.TrimPrefix(dsn, "file:")
		if path == "" {
			return "", "", fmt.Errorf("%w: %q has no path", ErrUnsupportedDSN, dsn)
		}
		return BackendJSONFile, path, nil
	case strings.HasSuffix(strings.ToLower(dsn), ".json"):
		return BackendJSONFile, dsn, nil
	default:
		return BackendSQLite, dsn, nil
	}
}

// ClientStorages groups the storage components of the form builder into a
// single value that can be passed to the service layer.
type ClientStorages struct {
	// Forms is the storage service of forms and responses on top of the
	// key-value backend selected by the DSN.
	Forms FormStorage

	closer io.Closer
}

// NewClientStorages initialises the storage layer from the configured DSN.
// It performs the following steps:
//  1. Picks the backend with [ParseDSN].
//  2. For SQL backends, connects and runs pending migrations via [DB.Migrate].
//  3. Wraps the key-value backend in a [FormStorage].
//
// Returns an error if the DSN is unsupported, the database connection cannot
// be established, or migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	backend, location, err := ParseDSN(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	var (
		kv     KeyValueStore
		closer io.Closer
	)

	switch backend {
	case BackendSQLite, BackendPostgres:
		db, err := connectSQL(ctx, backend, location, logger)
		if err != nil {
			return nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		kv, closer = NewKeyValueRepository(db, logger), db
	case BackendJSONFile, BackendMemory:
		kv, err = NewFileKeyValueStore(location, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
	}

	logger.Info().Str("backend", string(backend)).Msg("storages created")

	return &ClientStorages{
		Forms:  NewFormStorage(kv, logger),
		closer: closer,
	}, nil
}

func connectSQL(ctx context.Context, backend Backend, dsn string, logger *logger.Logger) (*DB, error) {
	if backend == BackendPostgres {
		db, err := NewConnectPostgres(ctx, dsn, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	}

	db, err := NewConnectSQLite(ctx, dsn, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	return db, nil
}

// Close releases the database connection, if the backend holds one.
func (c *ClientStorages) Close() error {
	if c == nil || c.closer == nil {
		return nil
	}
	return c.closer.Close()
}
