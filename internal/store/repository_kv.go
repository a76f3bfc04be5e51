// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/models"
)

// keyValueRepository implements [KeyValueStore] on the kv_items table of a
// SQLite or PostgreSQL database.
type keyValueRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewKeyValueRepository returns a [KeyValueStore] backed by db. The schema
// must already be migrated (see [DB.Migrate]).
func NewKeyValueRepository(db *DB, logger *logger.Logger) KeyValueStore {
	return &keyValueRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(r.builder(), key)
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Get").Str("key", key).Msg("failed to build query")
		return "", false, err
	}

	var (
		value string
		found bool
	)
	err = r.withRetry(ctx, func(ctx context.Context) error {
		scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(&value)
		switch {
		case errors.Is(scanErr, sql.ErrNoRows):
			found = false
			return nil
		case scanErr != nil:
			return scanErr
		}
		found = true
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Get").Str("key", key).Msg("failed to read value")
		return "", false, fmt.Errorf("%w: get %q: %w", ErrExecutingQuery, key, err)
	}

	return value, found, nil
}

func (r *keyValueRepository) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	updatedAt := models.NewTimestamp(r.now()).String()
	query, args, err := buildSetValueQuery(r.builder(), key, value, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Set").Str("key", key).Msg("failed to build query")
		return err
	}

	err = r.withRetry(ctx, func(ctx context.Context) error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Set").Str("key", key).Msg("failed to execute upsert")
		return fmt.Errorf("%w: set %q: %w", ErrExecutingStatement, key, err)
	}

	return nil
}

func (r *keyValueRepository) Keys(ctx context.Context) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListKeysQuery(r.builder())
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Keys").Msg("failed to build query")
		return nil, err
	}

	var keys []string
	err = r.withRetry(ctx, func(ctx context.Context) error {
		keys = keys[:0]

		rows, queryErr := r.DB.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return queryErr
		}
		defer rows.Close()

		for rows.Next() {
			var key string
			if scanErr := rows.Scan(&key); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
			}
			keys = append(keys, key)
		}
		return rows.Err()
	})
	if err != nil {
		log.Err(err).Str("func", "keyValueRepository.Keys").Msg("failed to list keys")
		return nil, fmt.Errorf("%w: list keys: %w", ErrExecutingQuery, err)
	}

	return keys, nil
}
