// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-form-builder/internal/service"
)

func TestDescribeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty title", fmt.Errorf("%w: %w", service.ErrInvalidForm, service.ErrValidationEmptyTitle), "The form needs a title."},
		{"empty label", fmt.Errorf("%w: %w", service.ErrInvalidForm, service.ErrValidationEmptyFieldLabel), "Every field needs a label."},
		{"required", fmt.Errorf("%w: %w", service.ErrInvalidSubmission, service.ErrRequiredFieldMissing), "Please fill in all required fields."},
		{"other validation", fmt.Errorf("%w: duplicate field id", service.ErrInvalidForm), "invalid form: duplicate field id"},
		{"locked sqlite", errors.New("save form x: database is locked"), "Storage is unavailable right now, try again."},
		{"postgres down", errors.New("dial: connection refused"), "Storage is unavailable right now, try again."},
		{"anything else", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, describeError(tt.err))
		})
	}
}
