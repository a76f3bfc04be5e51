// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-form-builder/models"
)

// Checks run on a [models.Form].
const (
	FieldTitle    = "title"
	FieldLabels   = "labels"
	FieldTypes    = "types"
	FieldOptions  = "options"
	FieldFieldIDs = "field_ids"
)

// Checks run on a [Submission].
const (
	FieldRequired = "required"
	FieldChoices  = "choices"
)

// Submission pairs the raw values collected from a preview with the form
// they were collected for.
type Submission struct {
	Form   models.Form
	Values models.Submission
}

// FormValidator validates forms before they are saved and submissions
// before their response is stored.
type FormValidator struct {
}

func NewFormValidator() Validator {
	return &FormValidator{}
}

func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Form:
		return v.validateForm(ctx, value, fields...)
	case *models.Form:
		return v.validateForm(ctx, *value, fields...)

	case Submission:
		return v.validateSubmission(ctx, value, fields...)
	case *Submission:
		return v.validateSubmission(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateForm(_ context.Context, form models.Form, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldLabels, FieldTypes, FieldOptions, FieldFieldIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(form.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldLabels:
			for i, field := range form.Fields {
				if strings.TrimSpace(field.Label) == "" {
					return fmt.Errorf("%w: field #%d", ErrEmptyFieldLabel, i+1)
				}
			}
		case FieldTypes:
			for i, field := range form.Fields {
				if !field.Type.Valid() {
					return fmt.Errorf("%w: field #%d has type %q", ErrInvalidFieldType, i+1, field.Type)
				}
			}
		case FieldOptions:
			for i, field := range form.Fields {
				if field.Type.RequiresOptions() != (field.Options != nil) {
					return fmt.Errorf("%w: field #%d", ErrOptionsMismatch, i+1)
				}
			}
		case FieldFieldIDs:
			seen := make(map[string]struct{}, len(form.Fields))
			for _, field := range form.Fields {
				if _, dup := seen[field.ID]; dup {
					return fmt.Errorf("%w: %s", ErrDuplicateFieldID, field.ID)
				}
				seen[field.ID] = struct{}{}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// validateSubmission enforces what the preview controls enforce: every field
// that [models.Field.NeedsValue] needs a non-empty value.
func (v *FormValidator) validateSubmission(_ context.Context, sub Submission, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRequired, FieldChoices}
	}

	for _, f := range fields {
		switch f {
		case FieldRequired:
			for _, field := range sub.Form.Fields {
				if !field.NeedsValue() {
					continue
				}
				if sub.Values.Get(field.ID) == "" {
					return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, field.Label)
				}
			}
		case FieldChoices:
			for _, field := range sub.Form.Fields {
				if !field.Type.RequiresOptions() {
					continue
				}
				for _, value := range sub.Values.Values(field.ID) {
					if value != "" && !slices.Contains(field.Options, value) {
						return fmt.Errorf("%w: %s", ErrUnknownOption, field.Label)
					}
				}
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}
