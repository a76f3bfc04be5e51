// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Key layout of the key-value backend.
const (
	formsKey             = "forms"
	formResponsesKeyBase = "form_responses_"
)

func formResponsesKey(formID string) string {
	return formResponsesKeyBase + formID
}
