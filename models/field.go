// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// FieldType defines how a field is rendered in a preview and how its
// submitted value is collected.
type FieldType string

const (
	// FieldText is a single-line free text input.
	FieldText FieldType = "text"

	// FieldRadio is a single choice out of the field's options.
	FieldRadio FieldType = "radio"

	// FieldCheckbox is any subset of the field's options.
	FieldCheckbox FieldType = "checkbox"
)

// FieldTypes lists every supported field type in the order the editor
// cycles through them.
var FieldTypes = []FieldType{FieldText, FieldRadio, FieldCheckbox}

// Valid reports whether t is one of the supported field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldText, FieldRadio, FieldCheckbox:
		return true
	default:
		return false
	}
}

// RequiresOptions reports whether a field of this type carries an option list.
func (t FieldType) RequiresOptions() bool {
	return t == FieldRadio || t == FieldCheckbox
}

// Next returns the type following t in [FieldTypes], wrapping around.
func (t FieldType) Next() FieldType {
	for i, ft := range FieldTypes {
		if ft == t {
			return FieldTypes[(i+1)%len(FieldTypes)]
		}
	}
	return FieldText
}

// Title returns a human readable name of the type.
func (t FieldType) Title() string {
	switch t {
	case FieldText:
		return "Text"
	case FieldRadio:
		return "Radio Group"
	case FieldCheckbox:
		return "Checkbox"
	default:
		return string(t)
	}
}

// Field is a single input definition within a [Form].
//
// Options is non-nil if and only if Type is radio or checkbox. The JSON
// encoding keeps this invariant: text fields never carry an "options" key and
// choice fields always do, even when the list is empty.
type Field struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Options  []string  `json:"options,omitempty"`
	Required bool      `json:"required"`
	Order    int       `json:"order"`
}

// NeedsValue reports whether a submission must carry a non-empty value for f.
// Required checkbox groups are never enforced, and neither is a required
// radio group that has no options to pick from.
func (f Field) NeedsValue() bool {
	switch {
	case !f.Required:
		return false
	case f.Type == FieldCheckbox:
		return false
	case f.Type == FieldRadio && len(f.Options) == 0:
		return false
	default:
		return true
	}
}

type fieldJSON struct {
	ID       string    `json:"id"`
	Type     FieldType `json:"type"`
	Label    string    `json:"label"`
	Options  *[]string `json:"options,omitempty"`
	Required bool      `json:"required"`
	Order    int       `json:"order"`
}

// MarshalJSON implements json.Marshaler.
func (f Field) MarshalJSON() ([]byte, error) {
	out := fieldJSON{
		ID:       f.ID,
		Type:     f.Type,
		Label:    f.Label,
		Required: f.Required,
		Order:    f.Order,
	}
	if f.Type.RequiresOptions() {
		opts := f.Options
		if opts == nil {
			opts = []string{}
		}
		out.Options = &opts
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler and normalizes Options so that
// the presence invariant holds for the decoded value.
func (f *Field) UnmarshalJSON(b []byte) error {
	var in fieldJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return fmt.Errorf("decode field: %w", err)
	}

	*f = Field{
		ID:       in.ID,
		Type:     in.Type,
		Label:    in.Label,
		Required: in.Required,
		Order:    in.Order,
	}
	if in.Type.RequiresOptions() {
		f.Options = []string{}
		if in.Options != nil {
			f.Options = append(f.Options, (*in.Options)...)
		}
	}
	return nil
}
