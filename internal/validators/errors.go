// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyTitle           = errors.New("form title is required")
	ErrEmptyFieldLabel      = errors.New("field label is required")
	ErrInvalidFieldType     = errors.New("invalid field type")
	ErrOptionsMismatch      = errors.New("options must be present exactly on radio and checkbox fields")
	ErrDuplicateFieldID     = errors.New("duplicate field id")
	ErrRequiredFieldMissing = errors.New("required field is missing a value")
	ErrUnknownOption        = errors.New("value is not one of the field options")
)
