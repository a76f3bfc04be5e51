// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "context"

// Validator checks a value before it is persisted.
type Validator interface {
	// Validate checks obj. fields narrows the checks to the named ones;
	// with no fields every check of the type runs. Returns
	// [ErrUnsupportedType] for values the validator does not know.
	Validate(ctx context.Context, obj any, fields ...string) error
}
