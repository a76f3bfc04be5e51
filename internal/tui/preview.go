// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-builder/models"
)

// previewField is the fillable control of one field.
type previewField struct {
	field models.Field

	input textinput.Model // text

	cursor   int    // option under the cursor
	selected int    // radio choice, -1 when nothing is chosen
	checked  []bool // checkbox state per option
}

func newPreviewField(field models.Field) previewField {
	f := previewField{field: field, selected: -1}

	switch field.Type {
	case models.FieldCheckbox:
		f.checked = make([]bool, len(field.Options))
	case models.FieldRadio:
	default:
		f.input = textinput.New()
		f.input.Width = inputWidth
		f.input.Placeholder = displayText(field.Label)
	}
	return f
}

func (f previewField) isChoice() bool {
	return f.field.Type.RequiresOptions()
}

func (f *previewField) moveCursor(delta int) {
	n := len(f.field.Options)
	if n == 0 {
		return
	}
	f.cursor = (f.cursor + delta + n) % n
}

// toggle selects the option under the cursor of a radio field, or flips it
// on a checkbox field.
func (f *previewField) toggle() {
	if f.cursor < 0 || f.cursor >= len(f.field.Options) {
		return
	}
	switch f.field.Type {
	case models.FieldRadio:
		f.selected = f.cursor
	case models.FieldCheckbox:
		f.checked[f.cursor] = !f.checked[f.cursor]
	}
}

func (f previewField) values() []string {
	switch f.field.Type {
	case models.FieldRadio:
		if f.selected >= 0 && f.selected < len(f.field.Options) {
			return []string{f.field.Options[f.selected]}
		}
		return nil
	case models.FieldCheckbox:
		values := make([]string, 0, len(f.checked))
		for i, on := range f.checked {
			if on {
				values = append(values, f.field.Options[i])
			}
		}
		return values
	default:
		return []string{f.input.Value()}
	}
}

// previewModel renders a fillable instance of a stored form.
type previewModel struct {
	form   models.Form
	fields []previewField
	focus  int

	submitting bool
}

func newPreviewModel(form models.Form) previewModel {
	m := previewModel{form: form, fields: make([]previewField, 0, len(form.Fields))}
	for _, field := range form.Fields {
		m.fields = append(m.fields, newPreviewField(field))
	}
	m.setFocus(0)
	return m
}

func (m *previewModel) setFocus(i int) {
	if len(m.fields) == 0 {
		return
	}
	for idx := range m.fields {
		m.fields[idx].input.Blur()
	}
	m.focus = (i + len(m.fields)) % len(m.fields)
	if !m.fields[m.focus].isChoice() {
		m.fields[m.focus].input.Focus()
	}
}

func (m *previewModel) next() { m.setFocus(m.focus + 1) }
func (m *previewModel) prev() { m.setFocus(m.focus - 1) }

func (m previewModel) focusedField() (*previewField, bool) {
	if m.focus < 0 || m.focus >= len(m.fields) {
		return nil, false
	}
	return &m.fields[m.focus], true
}

func (m *previewModel) moveOption(delta int) {
	if f, ok := m.focusedField(); ok && f.isChoice() {
		f.moveCursor(delta)
	}
}

// toggleOption reports whether the focused field consumed the toggle.
func (m *previewModel) toggleOption() bool {
	f, ok := m.focusedField()
	if !ok || !f.isChoice() {
		return false
	}
	f.toggle()
	return true
}

func (m previewModel) submission() models.Submission {
	submission := make(models.Submission, len(m.fields))
	for _, f := range m.fields {
		submission.Set(f.field.ID, f.values()...)
	}
	return submission
}

// update forwards msg to the focused text input.
func (m previewModel) update(msg tea.Msg) (previewModel, tea.Cmd) {
	f, ok := m.focusedField()
	if !ok || f.isChoice() {
		return m, nil
	}
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return m, cmd
}

func (m previewModel) View() string {
	var b strings.Builder

	if strings.TrimSpace(m.form.Description) != "" {
		b.WriteString(displayText(m.form.Description))
		b.WriteString("\n\n")
	}
	if len(m.fields) == 0 {
		b.WriteString(helpStyle.Render("This form has no fields."))
		b.WriteString("\n")
	}

	for i, f := range m.fields {
		focused := i == m.focus
		label := cursor(focused) + displayText(f.field.Label)
		if f.field.NeedsValue() {
			label += " *"
		}
		if focused {
			label = focusedStyle.Render(label)
		}
		b.WriteString(label)
		b.WriteString("\n")

		switch f.field.Type {
		case models.FieldRadio:
			for o, option := range f.field.Options {
				mark := "( )"
				if o == f.selected {
					mark = "(•)"
				}
				b.WriteString("  " + cursor(focused && o == f.cursor) + mark + " " + displayText(option) + "\n")
			}
		case models.FieldCheckbox:
			for o, option := range f.field.Options {
				mark := "[ ]"
				if f.checked[o] {
					mark = "[x]"
				}
				b.WriteString("  " + cursor(focused && o == f.cursor) + mark + " " + displayText(option) + "\n")
			}
		default:
			b.WriteString("  " + f.input.View() + "\n")
		}
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("Submitting...\n")
	}

	return renderPage("PREVIEW: "+fitText(displayText(m.form.Title), 40), b.String(),
		"tab/shift+tab: move │ up/down: option │ space: select │ ctrl+s: submit │ esc: close")
}
