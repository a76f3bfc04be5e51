// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FormDraft is the editor's in-memory state of a form being created or
// edited. The editor renders from it and the save path reads it directly.
type FormDraft struct {
	// Original is the stored form being edited, or nil when creating.
	Original *Form

	Title       string
	Description string
	Rows        []FieldDraft
}

// IsNew reports whether the draft creates a new form.
func (d FormDraft) IsNew() bool {
	return d.Original == nil
}

// FieldDraft is one editable field row.
type FieldDraft struct {
	// OriginalID is the id of the stored field the row was loaded from.
	// Empty for rows added in the editor.
	OriginalID string

	Label    string
	Type     FieldType
	Required bool

	// OptionsText holds one option per line, as typed.
	OptionsText string
}

// Submission is the raw input collected from a preview, keyed by field id.
// Single-value fields use the first element; checkbox fields use all of them.
type Submission map[string][]string

// Get returns the first value for fieldID, or "".
func (s Submission) Get(fieldID string) string {
	values := s[fieldID]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values for fieldID.
func (s Submission) Values(fieldID string) []string {
	return s[fieldID]
}

// Set replaces the values for fieldID.
func (s Submission) Set(fieldID string, values ...string) {
	s[fieldID] = values
}
