// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-form-builder/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// FormService defines the operations the form builder UI performs on forms
// and responses. It owns the rules that turn editor and preview input into
// stored documents, so they can be tested without a terminal.
type FormService interface {
	// List returns every stored form in collection order.
	// Returns an error only if the storage backend fails.
	List(ctx context.Context) ([]models.Form, error)

	// Get returns the form with the given id. ok is false when the form does
	// not exist, for example because it was deleted in the meantime.
	Get(ctx context.Context, id string) (form models.Form, ok bool, err error)

	// Save turns the editor draft into a form and persists it.
	//
	// Field rows become fields in visual order, with Order set to the row
	// index. Options are taken from the row's options text, one per
	// non-blank line, and only for radio and checkbox rows. Texts are stored
	// as typed. The form keeps its id and creation time when
	// the draft edits a stored form; otherwise both are new.
	//
	// Returns an error wrapping [ErrInvalidForm] when the title or a label is
	// blank, or the storage error if persisting fails.
	Save(ctx context.Context, draft models.FormDraft) (models.Form, error)

	// Delete removes the form with the given id. Deleting a missing form is
	// not an error. Responses of the form are kept.
	Delete(ctx context.Context, id string) error

	// Submit collects a response from the values entered in a preview of
	// form and stores it.
	//
	// Answers follow the stored field order. A checkbox field always yields
	// an answer holding the checked options, which may be none. A text or
	// radio field yields an answer only when its value is non-empty.
	//
	// Returns an error wrapping [ErrInvalidSubmission] when a required text
	// field, or a required radio group with options, has no value.
	Submit(ctx context.Context, form models.Form, submission models.Submission) (models.FormResponse, error)

	// Responses returns the stored responses of a form in submission order.
	Responses(ctx context.Context, formID string) ([]models.FormResponse, error)

	// ResponseCounts returns how many responses are stored per form id.
	ResponseCounts(ctx context.Context) (map[string]int, error)
}

// IDGenerator produces unique identifiers for forms, fields and responses.
type IDGenerator interface {
	Generate() string
}
