// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-form-builder/models"
)

// collectFields turns editor rows into fields, in row order.
func (s *formService) collectFields(rows []models.FieldDraft) []models.Field {
	fields := make([]models.Field, 0, len(rows))

	for i, row := range rows {
		fieldType := row.Type
		if fieldType == "" {
			fieldType = models.FieldText
		}

		field := models.Field{
			ID:       s.fieldID(row),
			Type:     fieldType,
			Label:    row.Label,
			Required: row.Required,
			Order:    i,
		}
		if fieldType.RequiresOptions() {
			field.Options = splitOptions(row.OptionsText)
		}

		fields = append(fields, field)
	}

	return fields
}

func (s *formService) fieldID(row models.FieldDraft) string {
	if s.preserveFieldIDs && row.OriginalID != "" {
		return row.OriginalID
	}
	return s.ids.Generate()
}

// splitOptions splits the options text on newlines and drops blank lines.
// Kept lines are stored exactly as typed. The result is never nil.
func splitOptions(text string) []string {
	options := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		options = append(options, line)
	}
	return options
}

// collectAnswers builds the answers of a response in stored field order.
func collectAnswers(form models.Form, submission models.Submission) []models.Answer {
	answers := make([]models.Answer, 0, len(form.Fields))

	for _, field := range form.Fields {
		switch field.Type {
		case models.FieldCheckbox:
			checked := make([]string, 0)
			for _, value := range submission.Values(field.ID) {
				if value != "" {
					checked = append(checked, value)
				}
			}
			answers = append(answers, models.Answer{
				FieldID: field.ID,
				Value:   models.MultiValue(checked...),
			})
		default:
			if value := submission.Get(field.ID); value != "" {
				answers = append(answers, models.Answer{
					FieldID: field.ID,
					Value:   models.SingleValue(value),
				})
			}
		}
	}

	return answers
}
