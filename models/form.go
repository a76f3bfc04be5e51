// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Form is a named, ordered collection of fields plus metadata.
//
// ID is unique across all stored forms. Fields are kept in the order their
// Order values describe; the storage layer does not re-sort them.
type Form struct {
	// ID is the stable identifier of the form. It is preserved across edits.
	ID string `json:"id"`

	// Title is the display name shown in the forms list and preview header.
	Title string `json:"title"`

	// Description is free text shown under the title.
	Description string `json:"description"`

	// Fields is the ordered list of input definitions.
	Fields []Field `json:"fields"`

	// CreatedAt is set on first save and never changed afterwards.
	CreatedAt Timestamp `json:"createdAt"`

	// UpdatedAt is refreshed on every save.
	UpdatedAt Timestamp `json:"updatedAt"`
}

// FieldByID returns the field with the given id.
func (f Form) FieldByID(id string) (Field, bool) {
	for _, field := range f.Fields {
		if field.ID == id {
			return field, true
		}
	}
	return Field{}, false
}
