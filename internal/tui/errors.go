// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-form-builder/internal/service"
)

// describeError turns a service error into the message shown in the error
// overlay.
func describeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrValidationEmptyTitle):
		return "The form needs a title."
	case errors.Is(err, service.ErrValidationEmptyFieldLabel):
		return "Every field needs a label."
	case errors.Is(err, service.ErrRequiredFieldMissing):
		return "Please fill in all required fields."
	case errors.Is(err, service.ErrInvalidForm), errors.Is(err, service.ErrInvalidSubmission):
		return err.Error()
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "database is locked") ||
		strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Storage is unavailable right now, try again."
	}

	return err.Error()
}
