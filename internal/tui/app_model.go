// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/internal/service"
	"github.com/MKhiriev/go-form-builder/internal/utils"
	"github.com/MKhiriev/go-form-builder/models"
)

const (
	statusSaved     = "Form saved"
	statusDeleted   = "Form deleted"
	statusSubmitted = "Form submitted successfully!"
	statusCopied    = "Form id copied to clipboard"

	defaultStatusTTL = 3 * time.Second
)

// mode is the active UI mode. Exactly one is active at a time.
type mode interface {
	name() string
}

type modeList struct{}

// modeEdit edits the form with formID, or a new form when formID is empty.
type modeEdit struct {
	formID string
}

type modePreview struct {
	formID string
}

func (modeList) name() string    { return "list" }
func (modeEdit) name() string    { return "edit" }
func (modePreview) name() string { return "preview" }

type openTarget int

const (
	openEditor openTarget = iota
	openPreview
)

// builderModel is the form builder controller: it owns the UI mode and the
// view-models of every mode and talks to the form service through commands.
type builderModel struct {
	ctx      context.Context
	forms    service.FormService
	copyText func(string) error
	logger   *logger.Logger

	mode    mode
	list    listModel
	editor  editorModel
	preview previewModel

	showConfirm  bool
	confirm      confirmModel
	showError    bool
	errorOverlay errorOverlayModel

	statusSeq int
	statusTTL time.Duration
}

func newBuilderModel(ctx context.Context, forms service.FormService, logger *logger.Logger) builderModel {
	return builderModel{
		ctx:       ctx,
		forms:     forms,
		copyText:  clipboard.WriteAll,
		logger:    logger,
		mode:      modeList{},
		list:      newListModel(),
		statusTTL: defaultStatusTTL,
	}
}

func (m builderModel) Init() tea.Cmd {
	return m.cmdLoadForms()
}

// acceptsShortcuts reports whether global single-key shortcuts may be
// handled, which is only true on a bare list.
func (m builderModel) acceptsShortcuts() bool {
	_, isList := m.mode.(modeList)
	return isList && !m.showConfirm && !m.showError
}

func (m builderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m, m.cmdDeleteForm(m.confirm.formID)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}
	case formsLoadedMsg:
		m.list.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.list.setItems(msg.items)
		return m, nil
	case formOpenedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		if !msg.ok {
			// the form was deleted in the meantime
			m.logger.Debug().Str("func", "builderModel.Update").Msg("form to open is gone")
			return m, m.cmdLoadForms()
		}
		switch msg.target {
		case openEditor:
			m.startEdit(&msg.form)
		case openPreview:
			m.startPreview(msg.form)
		}
		return m, nil
	case formSavedMsg:
		m.editor.saving = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.mode = modeList{}
		m.editor = editorModel{}
		tick := m.setStatus(statusSaved)
		return m, tea.Batch(tick, m.cmdLoadForms())
	case formDeletedMsg:
		m.confirm = confirmModel{}
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		tick := m.setStatus(statusDeleted)
		return m, tea.Batch(tick, m.cmdLoadForms())
	case responseSubmittedMsg:
		m.preview.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err)
			return m, nil
		}
		m.mode = modeList{}
		m.preview = previewModel{}
		tick := m.setStatus(statusSubmitted)
		return m, tea.Batch(tick, m.cmdLoadForms())
	case copiedMsg:
		if msg.err != nil {
			m.showErrorf(fmt.Errorf("copy to clipboard: %w", msg.err))
			return m, nil
		}
		tick := m.setStatus(statusCopied)
		return m, tick
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.list.status = ""
		}
		return m, nil
	}

	switch m.mode.(type) {
	case modeEdit:
		return m.updateEdit(msg)
	case modePreview:
		return m.updatePreview(msg)
	default:
		return m.updateList(msg)
	}
}

func (m builderModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.up):
		m.list.moveUp()
	case key.Matches(keyMsg, keys.down):
		m.list.moveDown()
	case key.Matches(keyMsg, keys.newForm):
		m.startEdit(nil)
	case key.Matches(keyMsg, keys.edit):
		if item, ok := m.list.current(); ok {
			return m, m.cmdOpenForm(item.form.ID, openEditor)
		}
	case key.Matches(keyMsg, keys.preview):
		if item, ok := m.list.current(); ok {
			return m, m.cmdOpenForm(item.form.ID, openPreview)
		}
	case key.Matches(keyMsg, keys.delete):
		if item, ok := m.list.current(); ok {
			m.confirm = confirmModel{formID: item.form.ID, title: item.form.Title}
			m.showConfirm = true
		}
	case key.Matches(keyMsg, keys.copy):
		if item, ok := m.list.current(); ok {
			return m, m.cmdCopy(item.form.ID)
		}
	}

	return m, nil
}

func (m builderModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.cancelEdit()
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.editor.saving {
				return m, nil
			}
			m.editor.saving = true
			return m, m.cmdSaveForm(m.editor.toDraft())
		case key.Matches(keyMsg, keys.tab):
			m.editor.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.editor.prev()
			return m, nil
		case key.Matches(keyMsg, keys.addRow):
			m.editor.addRow()
			return m, nil
		case key.Matches(keyMsg, keys.removeRow):
			m.editor.removeFocusedRow()
			return m, nil
		case key.Matches(keyMsg, keys.cycleType):
			m.editor.cycleType()
			return m, nil
		case key.Matches(keyMsg, keys.required):
			m.editor.toggleRequired()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.update(msg)
	return m, cmd
}

func (m builderModel) updatePreview(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.mode = modeList{}
			m.preview = previewModel{}
			return m, nil
		case key.Matches(keyMsg, keys.submit):
			if m.preview.submitting {
				return m, nil
			}
			m.preview.submitting = true
			return m, m.cmdSubmit(m.preview.form, m.preview.submission())
		case key.Matches(keyMsg, keys.tab):
			m.preview.next()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.preview.prev()
			return m, nil
		case key.Matches(keyMsg, optionKeys.up):
			m.preview.moveOption(-1)
			return m, nil
		case key.Matches(keyMsg, optionKeys.down):
			m.preview.moveOption(1)
			return m, nil
		case key.Matches(keyMsg, keys.toggle):
			if m.preview.toggleOption() {
				return m, nil
			}
		}
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.update(msg)
	return m, cmd
}

// startEdit switches to Edit mode for form, or for a new form when nil.
func (m *builderModel) startEdit(form *models.Form) {
	m.editor = newEditorModel(form)
	if form == nil {
		m.mode = modeEdit{}
		return
	}
	m.mode = modeEdit{formID: form.ID}
}

// cancelEdit discards the editor state and clears the current form.
func (m *builderModel) cancelEdit() {
	m.editor = editorModel{}
	m.mode = modeList{}
}

func (m *builderModel) startPreview(form models.Form) {
	m.preview = newPreviewModel(form)
	m.mode = modePreview{formID: form.ID}
}

func (m *builderModel) showErrorf(err error) {
	m.logger.Error().Err(err).Str("func", "builderModel.Update").Str("mode", m.mode.name()).Msg("action failed")
	m.showError = true
	m.errorOverlay.message = describeError(err)
}

// setStatus shows a notice on the list and schedules its removal.
func (m *builderModel) setStatus(status string) tea.Cmd {
	m.statusSeq++
	m.list.status = status

	seq := m.statusSeq
	return tea.Tick(m.statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m builderModel) View() string {
	var body string
	switch m.mode.(type) {
	case modeEdit:
		body = m.editor.View()
	case modePreview:
		body = m.preview.View()
	default:
		body = m.list.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m builderModel) cmdLoadForms() tea.Cmd {
	ctx := utils.WithAction(m.ctx, "load_forms")
	svc := m.forms
	return func() tea.Msg {
		forms, err := svc.List(ctx)
		if err != nil {
			return formsLoadedMsg{err: err}
		}

		counts, err := svc.ResponseCounts(ctx)
		if err != nil {
			return formsLoadedMsg{err: err}
		}

		items := make([]formSummary, 0, len(forms))
		for _, form := range forms {
			items = append(items, formSummary{form: form, responses: counts[form.ID]})
		}
		return formsLoadedMsg{items: items}
	}
}

func (m builderModel) cmdOpenForm(id string, target openTarget) tea.Cmd {
	ctx := utils.WithAction(m.ctx, "open_form")
	svc := m.forms
	return func() tea.Msg {
		form, ok, err := svc.Get(ctx, id)
		return formOpenedMsg{target: target, form: form, ok: ok, err: err}
	}
}

func (m builderModel) cmdSaveForm(draft models.FormDraft) tea.Cmd {
	ctx := utils.WithAction(m.ctx, "save_form")
	svc := m.forms
	return func() tea.Msg {
		form, err := svc.Save(ctx, draft)
		return formSavedMsg{form: form, err: err}
	}
}

func (m builderModel) cmdDeleteForm(id string) tea.Cmd {
	ctx := utils.WithAction(m.ctx, "delete_form")
	svc := m.forms
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return formDeletedMsg{id: id, err: err}
	}
}

func (m builderModel) cmdSubmit(form models.Form, submission models.Submission) tea.Cmd {
	ctx := utils.WithAction(m.ctx, "submit_response")
	svc := m.forms
	return func() tea.Msg {
		response, err := svc.Submit(ctx, form, submission)
		return responseSubmittedMsg{response: response, err: err}
	}
}

func (m builderModel) cmdCopy(text string) tea.Cmd {
	copyText := m.copyText
	return func() tea.Msg {
		return copiedMsg{err: copyText(text)}
	}
}
