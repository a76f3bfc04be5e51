// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-builder/models"
)

const (
	inputWidth   = 48
	optionsLines = 4
)

// fieldRowModel is one editable field row. The options editor exists for
// every row but is only shown and focusable for radio and checkbox rows.
type fieldRowModel struct {
	originalID string
	label      textinput.Model
	fieldType  models.FieldType
	required   bool
	options    textarea.Model
}

func newFieldRow(field *models.Field) fieldRowModel {
	label := textinput.New()
	label.Placeholder = "Label"
	label.Width = inputWidth

	options := textarea.New()
	options.Placeholder = "One option per line"
	options.ShowLineNumbers = false
	options.CharLimit = 0
	options.SetWidth(inputWidth)
	options.SetHeight(optionsLines)

	row := fieldRowModel{label: label, fieldType: models.FieldText, options: options}
	if field == nil {
		return row
	}

	row.originalID = field.ID
	row.label.SetValue(field.Label)
	row.fieldType = field.Type
	if !row.fieldType.Valid() {
		row.fieldType = models.FieldText
	}
	row.required = field.Required
	row.options.SetValue(strings.Join(field.Options, "\n"))
	return row
}

func (r fieldRowModel) showsOptions() bool {
	return r.fieldType.RequiresOptions()
}

type editorPart int

const (
	partTitle editorPart = iota
	partDescription
	partLabel
	partOptions
)

// focusTarget addresses one focusable input of the editor. row is only
// meaningful for partLabel and partOptions.
type focusTarget struct {
	part editorPart
	row  int
}

// editorModel is the view-model of the Edit mode. The view renders from it
// and the save path reads it through toDraft.
type editorModel struct {
	original *models.Form

	title       textinput.Model
	description textarea.Model
	rows        []fieldRowModel

	focus  int
	saving bool
}

func newEditorModel(original *models.Form) editorModel {
	title := textinput.New()
	title.Placeholder = "Form title"
	title.Width = inputWidth

	description := textarea.New()
	description.Placeholder = "Description"
	description.ShowLineNumbers = false
	description.CharLimit = 0
	description.SetWidth(inputWidth)
	description.SetHeight(2)

	m := editorModel{title: title, description: description}
	if original != nil {
		form := *original
		m.original = &form
		m.title.SetValue(form.Title)
		m.description.SetValue(form.Description)
		for i := range form.Fields {
			m.rows = append(m.rows, newFieldRow(&form.Fields[i]))
		}
	}

	m.setFocus(0)
	return m
}

func (m editorModel) isNew() bool {
	return m.original == nil
}

func (m editorModel) targets() []focusTarget {
	targets := []focusTarget{{part: partTitle}, {part: partDescription}}
	for i, row := range m.rows {
		targets = append(targets, focusTarget{part: partLabel, row: i})
		if row.showsOptions() {
			targets = append(targets, focusTarget{part: partOptions, row: i})
		}
	}
	return targets
}

func (m editorModel) focused() focusTarget {
	targets := m.targets()
	if m.focus < 0 || m.focus >= len(targets) {
		return targets[0]
	}
	return targets[m.focus]
}

// focusedRow returns the index of the row holding focus, or -1.
func (m editorModel) focusedRow() int {
	t := m.focused()
	if t.part == partLabel || t.part == partOptions {
		return t.row
	}
	return -1
}

func (m *editorModel) setFocus(i int) {
	targets := m.targets()
	if i < 0 {
		i = 0
	}
	if i >= len(targets) {
		i = len(targets) - 1
	}

	m.title.Blur()
	m.description.Blur()
	for r := range m.rows {
		m.rows[r].label.Blur()
		m.rows[r].options.Blur()
	}

	m.focus = i
	switch t := targets[i]; t.part {
	case partTitle:
		m.title.Focus()
	case partDescription:
		m.description.Focus()
	case partLabel:
		m.rows[t.row].label.Focus()
	case partOptions:
		m.rows[t.row].options.Focus()
	}
}

// focusOn moves focus to the given target if it exists.
func (m *editorModel) focusOn(target focusTarget) {
	for i, t := range m.targets() {
		if t == target {
			m.setFocus(i)
			return
		}
	}
}

func (m *editorModel) next() {
	m.setFocus((m.focus + 1) % len(m.targets()))
}

func (m *editorModel) prev() {
	n := len(m.targets())
	m.setFocus((m.focus - 1 + n) % n)
}

// addRow appends an empty text row and focuses its label.
func (m *editorModel) addRow() {
	m.rows = append(m.rows, newFieldRow(nil))
	m.focusOn(focusTarget{part: partLabel, row: len(m.rows) - 1})
}

// removeFocusedRow drops the row holding focus. Focus moves to the label of
// the row that took its place, or to the previous row.
func (m *editorModel) removeFocusedRow() {
	row := m.focusedRow()
	if row < 0 {
		return
	}

	m.rows = slices.Delete(slices.Clone(m.rows), row, row+1)
	switch {
	case row < len(m.rows):
		m.focusOn(focusTarget{part: partLabel, row: row})
	case len(m.rows) > 0:
		m.focusOn(focusTarget{part: partLabel, row: len(m.rows) - 1})
	default:
		m.setFocus(1)
	}
}

func (m *editorModel) cycleType() {
	row := m.focusedRow()
	if row < 0 {
		return
	}
	m.rows[row].fieldType = m.rows[row].fieldType.Next()
	// the options editor may have disappeared under the cursor
	m.focusOn(focusTarget{part: partLabel, row: row})
}

func (m *editorModel) toggleRequired() {
	if row := m.focusedRow(); row >= 0 {
		m.rows[row].required = !m.rows[row].required
	}
}

func (m editorModel) toDraft() models.FormDraft {
	draft := models.FormDraft{
		Original:    m.original,
		Title:       m.title.Value(),
		Description: m.description.Value(),
		Rows:        make([]models.FieldDraft, 0, len(m.rows)),
	}
	for _, row := range m.rows {
		draft.Rows = append(draft.Rows, models.FieldDraft{
			OriginalID:  row.originalID,
			Label:       row.label.Value(),
			Type:        row.fieldType,
			Required:    row.required,
			OptionsText: row.options.Value(),
		})
	}
	return draft
}

// update forwards msg to the focused input.
func (m editorModel) update(msg tea.Msg) (editorModel, tea.Cmd) {
	var cmd tea.Cmd
	switch t := m.focused(); t.part {
	case partTitle:
		m.title, cmd = m.title.Update(msg)
	case partDescription:
		m.description, cmd = m.description.Update(msg)
	case partLabel:
		m.rows[t.row].label, cmd = m.rows[t.row].label.Update(msg)
	case partOptions:
		m.rows[t.row].options, cmd = m.rows[t.row].options.Update(msg)
	}
	return m, cmd
}

func (m editorModel) View() string {
	var b strings.Builder

	b.WriteString("Title:\n")
	b.WriteString(m.title.View())
	b.WriteString("\n\nDescription:\n")
	b.WriteString(m.description.View())
	b.WriteString("\n\n")

	if len(m.rows) == 0 {
		b.WriteString(helpStyle.Render("No fields. Press ctrl+n to add one."))
		b.WriteString("\n")
	}

	focusedRow := m.focusedRow()
	for i, row := range m.rows {
		header := fmt.Sprintf("%sField #%d  [%s]", cursor(i == focusedRow), i+1, row.fieldType.Title())
		if row.required {
			header += "  *required"
		}
		if i == focusedRow {
			header = focusedStyle.Render(header)
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString("  Label: ")
		b.WriteString(row.label.View())
		b.WriteString("\n")
		if row.showsOptions() {
			b.WriteString("  Options:\n")
			b.WriteString(row.options.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.saving {
		b.WriteString("Saving...\n")
	}

	title := "NEW FORM"
	if !m.isNew() {
		title = "EDIT FORM: " + fitText(displayText(m.original.Title), 40)
	}
	return renderPage(title, b.String(),
		"tab/shift+tab: move │ ctrl+n: add field │ ctrl+x: remove │ ctrl+t: type │ ctrl+r: required │ ctrl+s: save │ esc: cancel")
}
