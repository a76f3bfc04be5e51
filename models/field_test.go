// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldType_RequiresOptions(t *testing.T) {
	assert.False(t, FieldText.RequiresOptions())
	assert.True(t, FieldRadio.RequiresOptions())
	assert.True(t, FieldCheckbox.RequiresOptions())
}

func TestField_NeedsValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  bool
	}{
		{"optional text", Field{Type: FieldText}, false},
		{"required text", Field{Type: FieldText, Required: true}, true},
		{"required radio", Field{Type: FieldRadio, Options: []string{"a"}, Required: true}, true},
		{"required radio without options", Field{Type: FieldRadio, Options: []string{}, Required: true}, false},
		{"required checkbox", Field{Type: FieldCheckbox, Options: []string{"a"}, Required: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.NeedsValue())
		})
	}
}

func TestFieldType_Next(t *testing.T) {
	assert.Equal(t, FieldRadio, FieldText.Next())
	assert.Equal(t, FieldCheckbox, FieldRadio.Next())
	assert.Equal(t, FieldText, FieldCheckbox.Next())
	assert.Equal(t, FieldText, FieldType("bogus").Next())
}

func TestFieldType_Valid(t *testing.T) {
	for _, ft := range FieldTypes {
		assert.True(t, ft.Valid(), ft)
	}
	assert.False(t, FieldType("select").Valid())
	assert.False(t, FieldType("").Valid())
}

func TestField_MarshalJSON_OptionsPresence(t *testing.T) {
	tests := []struct {
		name        string
		field       Field
		wantOptions bool
		wantValue   []any
	}{
		{
			name:        "text field drops options even if set",
			field:       Field{ID: "f1", Type: FieldText, Label: "Name", Options: []string{"stray"}},
			wantOptions: false,
		},
		{
			name:        "radio field with nil options encodes empty list",
			field:       Field{ID: "f2", Type: FieldRadio, Label: "Pick"},
			wantOptions: true,
			wantValue:   []any{},
		},
		{
			name:        "checkbox keeps option order",
			field:       Field{ID: "f3", Type: FieldCheckbox, Label: "Colors", Options: []string{"Red", "Blue"}},
			wantOptions: true,
			wantValue:   []any{"Red", "Blue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := json.Marshal(tt.field)
			require.NoError(t, err)

			var decoded map[string]any
			require.NoError(t, json.Unmarshal(raw, &decoded))

			opts, ok := decoded["options"]
			assert.Equal(t, tt.wantOptions, ok)
			if tt.wantOptions {
				assert.Equal(t, tt.wantValue, opts)
			}
			assert.Equal(t, tt.field.ID, decoded["id"])
			assert.Equal(t, string(tt.field.Type), decoded["type"])
		})
	}
}

func TestField_UnmarshalJSON_NormalizesOptions(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "text field ignores options key",
			raw:  `{"id":"a","type":"text","label":"L","options":["x"],"required":true,"order":0}`,
			want: nil,
		},
		{
			name: "radio without options key gets empty list",
			raw:  `{"id":"b","type":"radio","label":"L","required":false,"order":1}`,
			want: []string{},
		},
		{
			name: "checkbox keeps options",
			raw:  `{"id":"c","type":"checkbox","label":"L","options":["Red","Blue"],"required":false,"order":2}`,
			want: []string{"Red", "Blue"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Field
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &f))
			assert.Equal(t, tt.want, f.Options)
		})
	}
}

func TestField_UnmarshalJSON_Malformed(t *testing.T) {
	var f Field
	err := json.Unmarshal([]byte(`{"id": 5}`), &f)
	require.Error(t, err)
}

func TestForm_FieldByID(t *testing.T) {
	form := Form{Fields: []Field{{ID: "a", Label: "A"}, {ID: "b", Label: "B"}}}

	f, ok := form.FieldByID("b")
	require.True(t, ok)
	assert.Equal(t, "B", f.Label)

	_, ok = form.FieldByID("missing")
	assert.False(t, ok)
}
