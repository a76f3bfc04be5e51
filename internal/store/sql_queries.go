// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	kvTable        = "kv_items"
	kvKeyColumn    = "item_key"
	kvValueColumn  = "item_value"
	kvUpdatedAtCol = "updated_at"

	// upsertSuffix is understood by both SQLite (3.24+) and PostgreSQL.
	upsertSuffix = "ON CONFLICT (" + kvKeyColumn + ") DO UPDATE SET " +
		kvValueColumn + " = excluded." + kvValueColumn + ", " +
		kvUpdatedAtCol + " = excluded." + kvUpdatedAtCol
)

func buildGetValueQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	query, args, err := b.
		Select(kvValueColumn).
		From(kvTable).
		Where(sq.Eq{kvKeyColumn: key}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildSetValueQuery(b sq.StatementBuilderType, key, value, updatedAt string) (string, []any, error) {
	query, args, err := b.
		Insert(kvTable).
		Columns(kvKeyColumn, kvValueColumn, kvUpdatedAtCol).
		Values(key, value, updatedAt).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildListKeysQuery(b sq.StatementBuilderType) (string, []any, error) {
	query, args, err := b.
		Select(kvKeyColumn).
		From(kvTable).
		OrderBy(kvKeyColumn).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
