// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-form-builder/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validForm() models.Form {
	return models.Form{
		ID:    "form-1",
		Title: "Survey",
		Fields: []models.Field{
			{ID: "name", Type: models.FieldText, Label: "Name", Required: true, Order: 0},
			{ID: "size", Type: models.FieldRadio, Label: "Size", Options: []string{"S", "M"}, Required: true, Order: 1},
			{ID: "colors", Type: models.FieldCheckbox, Label: "Colors", Options: []string{"Red", "Blue"}, Required: true, Order: 2},
		},
	}
}

// ---------------------------------------------------------------------------
// Validate dispatch
// ---------------------------------------------------------------------------

func TestFormValidator_UnsupportedType(t *testing.T) {
	v := NewFormValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "form"), ErrUnsupportedType)
}

func TestFormValidator_UnknownField(t *testing.T) {
	v := NewFormValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), validForm(), "colour"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(context.Background(), Submission{}, "colour"), ErrUnknownField)
}

func TestFormValidator_AcceptsPointers(t *testing.T) {
	v := NewFormValidator()
	form := validForm()
	require.NoError(t, v.Validate(context.Background(), &form))
	require.NoError(t, v.Validate(context.Background(), &Submission{
		Form:   form,
		Values: models.Submission{"name": {"Ann"}, "size": {"S"}},
	}))
}

// ---------------------------------------------------------------------------
// Forms
// ---------------------------------------------------------------------------

func TestFormValidator_Form(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f *models.Form)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(f *models.Form) {}},
		{name: "no fields is fine", mutate: func(f *models.Form) { f.Fields = nil }},
		{name: "blank title", mutate: func(f *models.Form) { f.Title = "  \t" }, wantErr: ErrEmptyTitle},
		{name: "blank label", mutate: func(f *models.Form) { f.Fields[1].Label = " " }, wantErr: ErrEmptyFieldLabel},
		{name: "bad type", mutate: func(f *models.Form) { f.Fields[0].Type = "select" }, wantErr: ErrInvalidFieldType},
		{name: "text with options", mutate: func(f *models.Form) { f.Fields[0].Options = []string{} }, wantErr: ErrOptionsMismatch},
		{name: "radio without options", mutate: func(f *models.Form) { f.Fields[1].Options = nil }, wantErr: ErrOptionsMismatch},
		{name: "duplicate ids", mutate: func(f *models.Form) { f.Fields[2].ID = "name" }, wantErr: ErrDuplicateFieldID},
		{
			name:   "only selected checks run",
			mutate: func(f *models.Form) { f.Title = "" },
			fields: []string{FieldLabels},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := NewFormValidator().Validate(context.Background(), form, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ---------------------------------------------------------------------------
// Submissions
// ---------------------------------------------------------------------------

func TestFormValidator_Submission(t *testing.T) {
	tests := []struct {
		name    string
		values  models.Submission
		wantErr error
	}{
		{
			name:   "all required present, checkbox empty",
			values: models.Submission{"name": {"Ann"}, "size": {"M"}},
		},
		{
			name:    "required text empty",
			values:  models.Submission{"name": {""}, "size": {"M"}},
			wantErr: ErrRequiredFieldMissing,
		},
		{
			name:    "required radio unselected",
			values:  models.Submission{"name": {"Ann"}},
			wantErr: ErrRequiredFieldMissing,
		},
		{
			name:   "whitespace counts as a value",
			values: models.Submission{"name": {" "}, "size": {"S"}},
		},
		{
			name:    "radio value outside options",
			values:  models.Submission{"name": {"Ann"}, "size": {"XL"}},
			wantErr: ErrUnknownOption,
		},
		{
			name:    "checkbox value outside options",
			values:  models.Submission{"name": {"Ann"}, "size": {"S"}, "colors": {"Red", "Green"}},
			wantErr: ErrUnknownOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewFormValidator().Validate(context.Background(), Submission{Form: validForm(), Values: tt.values})
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFormValidator_Submission_RequiredRadioWithoutOptions(t *testing.T) {
	form := models.Form{
		ID:    "form-1",
		Title: "Poll",
		Fields: []models.Field{
			{ID: "pick", Type: models.FieldRadio, Label: "Pick", Options: []string{}, Required: true},
		},
	}

	err := NewFormValidator().Validate(context.Background(), Submission{Form: form, Values: models.Submission{}})
	assert.NoError(t, err)
}
