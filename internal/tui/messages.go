// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-form-builder/models"
)

type formsLoadedMsg struct {
	items []formSummary
	err   error
}

// formOpenedMsg carries a form loaded for the editor or the preview.
// ok is false when the form no longer exists.
type formOpenedMsg struct {
	target openTarget
	form   models.Form
	ok     bool
	err    error
}

type formSavedMsg struct {
	form models.Form
	err  error
}

type formDeletedMsg struct {
	id  string
	err error
}

type responseSubmittedMsg struct {
	response models.FormResponse
	err      error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
