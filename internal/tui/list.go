// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-builder/models"
)

// formSummary is one row of the forms list.
type formSummary struct {
	form      models.Form
	responses int
}

type listModel struct {
	items   []formSummary
	idx     int
	loading bool
	status  string
}

func newListModel() listModel {
	return listModel{loading: true}
}

func (m listModel) current() (formSummary, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return formSummary{}, false
	}
	return m.items[m.idx], true
}

func (m *listModel) setItems(items []formSummary) {
	m.items = items
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.items)-1 {
		m.idx++
	}
}

func (m listModel) View() string {
	var b strings.Builder

	switch {
	case m.loading:
		b.WriteString("Loading...\n")
	case len(m.items) == 0:
		b.WriteString("No forms yet. Press n to create one.\n")
	default:
		for i, item := range m.items {
			line := fmt.Sprintf("%s%-32s %s  %s",
				cursor(i == m.idx),
				fitText(displayText(item.form.Title), 32),
				plural(len(item.form.Fields), "field"),
				plural(item.responses, "response"),
			)
			if i == m.idx {
				line = focusedStyle.Render(line)
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}

	return renderPage("FORMS", b.String(),
		"n: new │ e: edit │ p: preview │ d: delete │ c: copy id │ v: about │ q: quit")
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
