// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/migrations"
)

var fixedNow = time.Date(2026, 3, 4, 5, 6, 7, 8, time.UTC)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newSQLiteDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            migrations.DialectSQLite,
		placeholder:        sq.Question,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newPostgresDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		dialect:            migrations.DialectPostgres,
		placeholder:        sq.Dollar,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}
}

func newTestRepo(t *testing.T, db *DB) *keyValueRepository {
	t.Helper()
	repo := NewKeyValueRepository(db, logger.Nop()).(*keyValueRepository)
	repo.now = func() time.Time { return fixedNow }
	return repo
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestKeyValueRepository_Get(t *testing.T) {
	const getSQL = "SELECT item_value FROM kv_items WHERE item_key = ?"

	tests := []struct {
		name      string
		setup     func(mock sqlmock.Sqlmock)
		wantValue string
		wantOK    bool
		wantErr   error
	}{
		{
			name: "found",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getSQL)).
					WithArgs("forms").
					WillReturnRows(sqlmock.NewRows([]string{"item_value"}).AddRow(`[{"id":"f1"}]`))
			},
			wantValue: `[{"id":"f1"}]`,
			wantOK:    true,
		},
		{
			name: "absent",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getSQL)).
					WithArgs("forms").
					WillReturnRows(sqlmock.NewRows([]string{"item_value"}))
			},
			wantOK: false,
		},
		{
			name: "query error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(getSQL)).
					WithArgs("forms").
					WillReturnError(errors.New("disk I/O error"))
			},
			wantErr: ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sqlDB, mock := newTestDB(t)
			repo := newTestRepo(t, newSQLiteDBFromSQL(sqlDB))
			tt.setup(mock)

			value, ok, err := repo.Get(testContext(), "forms")
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantValue, value)
			assert.Equal(t, tt.wantOK, ok)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// ── Set ──────────────────────────────────────────────────────────────────────

func TestKeyValueRepository_Set_Upserts(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := newTestRepo(t, newSQLiteDBFromSQL(sqlDB))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_items (item_key,item_value,updated_at) VALUES (?,?,?) ON CONFLICT (item_key) DO UPDATE")).
		WithArgs("forms", "[]", "2026-03-04T05:06:07.000000008Z").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(testContext(), "forms", "[]"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Set_Error(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := newTestRepo(t, newSQLiteDBFromSQL(sqlDB))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_items")).
		WillReturnError(errors.New("readonly database"))

	err := repo.Set(testContext(), "forms", "[]")
	require.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Set_RetriesTransientPostgresError(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := newTestRepo(t, newPostgresDBFromSQL(sqlDB))

	upsert := regexp.QuoteMeta("INSERT INTO kv_items (item_key,item_value,updated_at) VALUES ($1,$2,$3)")
	mock.ExpectExec(upsert).
		WithArgs("forms", "[]", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.SerializationFailure})
	mock.ExpectExec(upsert).
		WithArgs("forms", "[]", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Set(testContext(), "forms", "[]"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Set_DoesNotRetryPermanentPostgresError(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := newTestRepo(t, newPostgresDBFromSQL(sqlDB))

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO kv_items")).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UndefinedTable})

	err := repo.Set(testContext(), "forms", "[]")
	require.ErrorIs(t, err, ErrExecutingStatement)

	var pgErr *pgconn.PgError
	require.ErrorAs(t, err, &pgErr)
	assert.Equal(t, pgerrcode.UndefinedTable, pgErr.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Keys ─────────────────────────────────────────────────────────────────────

func TestKeyValueRepository_Keys(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := newTestRepo(t, newSQLiteDBFromSQL(sqlDB))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT item_key FROM kv_items ORDER BY item_key")).
		WillReturnRows(sqlmock.NewRows([]string{"item_key"}).
			AddRow("form_responses_f1").
			AddRow("forms"))

	keys, err := repo.Keys(testContext())
	require.NoError(t, err)
	assert.Equal(t, []string{"form_responses_f1", "forms"}, keys)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestKeyValueRepository_Keys_RowError(t *testing.T) {
	sqlDB, mock := newTestDB(t)
	repo := newTestRepo(t, newSQLiteDBFromSQL(sqlDB))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT item_key FROM kv_items")).
		WillReturnRows(sqlmock.NewRows([]string{"item_key"}).
			AddRow("forms").
			RowError(0, errors.New("row failure")))

	_, err := repo.Keys(testContext())
	require.ErrorIs(t, err, ErrExecutingQuery)
}

// ── error classification ─────────────────────────────────────────────────────

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "deadlock", err: &pgconn.PgError{Code: pgerrcode.DeadlockDetected}, want: Retryable},
		{name: "connection failure", err: &pgconn.PgError{Code: pgerrcode.ConnectionFailure}, want: Retryable},
		{name: "cannot connect now", err: &pgconn.PgError{Code: pgerrcode.CannotConnectNow}, want: Retryable},
		{name: "unique violation", err: &pgconn.PgError{Code: pgerrcode.UniqueViolation}, want: NonRetryable},
		{name: "wrapped serialization failure", err: errors.Join(errors.New("ctx"), &pgconn.PgError{Code: pgerrcode.SerializationFailure}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier_Classify(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("x"), want: NonRetryable},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Retryable},
		{name: "locked", err: sqlite3.Error{Code: sqlite3.ErrLocked}, want: Retryable},
		{name: "constraint", err: sqlite3.Error{Code: sqlite3.ErrConstraint}, want: NonRetryable},
		{name: "wrapped busy", err: fmt.Errorf("exec: %w", sqlite3.Error{Code: sqlite3.ErrBusy}), want: Retryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}
