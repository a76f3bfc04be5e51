// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-form-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is a durable, string-keyed store of string values. It is the
// only thing [FormStorage] needs from a backend.
//
// Implementations:
//   - SQL repository over SQLite or PostgreSQL (see [NewKeyValueRepository]);
//   - JSON file and in-memory map (see [NewFileKeyValueStore]).
type KeyValueStore interface {
	// Get returns the value stored under key. ok is false when the key is
	// absent; that is not an error.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Keys lists all stored keys in ascending order.
	Keys(ctx context.Context) ([]string, error)
}

// FormStorage persists forms and their submitted responses on top of a
// [KeyValueStore].
//
// All forms live as one JSON array under the "forms" key. The responses of
// a form live as one JSON array under "form_responses_{formId}". Every write
// rewrites the whole collection under its key, so writers to the same key
// are serialized.
//
// Stored data that cannot be decoded is treated as an empty collection and
// logged. Only backend failures are returned as errors.
type FormStorage interface {
	// SaveForm replaces the form with the same ID in place, or appends form
	// to the end of the collection when no form has that ID.
	SaveForm(ctx context.Context, form models.Form) error

	// GetAllForms returns every stored form in collection order. A missing
	// or malformed collection yields an empty slice.
	GetAllForms(ctx context.Context) ([]models.Form, error)

	// GetFormByID returns the form with the given id. ok is false when no
	// such form exists.
	GetFormByID(ctx context.Context, id string) (form models.Form, ok bool, err error)

	// DeleteForm removes the form with the given id. Deleting a missing id
	// leaves the collection unchanged and returns nil. Responses of the form
	// are kept.
	DeleteForm(ctx context.Context, id string) error

	// SaveFormResponse appends response to the collection of its form.
	SaveFormResponse(ctx context.Context, response models.FormResponse) error

	// GetFormResponses returns the responses of a form in submission order.
	// A missing or malformed collection yields an empty slice.
	GetFormResponses(ctx context.Context, formID string) ([]models.FormResponse, error)

	// CountResponses returns the number of stored responses per form id.
	// Forms without responses are absent from the map. Responses of deleted
	// forms are counted too.
	CountResponses(ctx context.Context) (map[string]int, error)
}
