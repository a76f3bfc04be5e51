// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-form-builder/internal/validators"
)

var (
	// ErrInvalidForm wraps every validation failure of [FormService.Save].
	ErrInvalidForm = errors.New("invalid form")

	// ErrInvalidSubmission wraps every validation failure of [FormService.Submit].
	ErrInvalidSubmission = errors.New("invalid submission")
)

// Validation causes, matched with errors.Is on errors returned by the service.
var (
	ErrValidationEmptyTitle      = validators.ErrEmptyTitle
	ErrValidationEmptyFieldLabel = validators.ErrEmptyFieldLabel
	ErrRequiredFieldMissing      = validators.ErrRequiredFieldMissing
)
