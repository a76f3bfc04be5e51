// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by the storage layer. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrUnsupportedDSN is returned when the configured DSN does not select
	// any known backend.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")

	// ErrEncodingCollection is returned when a forms or responses collection
	// cannot be serialized before it is written.
	ErrEncodingCollection = errors.New("error encoding collection")
)

// Low-level backend errors. These wrap the driver or file system error that
// caused them.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT against the key-value
	// table fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE against the
	// key-value table fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRows is returned when reading the result set fails.
	ErrScanningRows = errors.New("failed to scan key-value rows")

	// ErrReadingFile is returned when the JSON file backend cannot read its
	// file.
	ErrReadingFile = errors.New("failed to read storage file")

	// ErrWritingFile is returned when the JSON file backend cannot persist
	// its file.
	ErrWritingFile = errors.New("failed to write storage file")
)
