// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-form-builder/internal/config"
	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/internal/store"
	"github.com/MKhiriev/go-form-builder/internal/utils"
	"github.com/MKhiriev/go-form-builder/internal/validators"
	"github.com/MKhiriev/go-form-builder/models"
)

type formService struct {
	storage   store.FormStorage
	validator validators.Validator
	ids       IDGenerator
	now       func() time.Time

	preserveFieldIDs bool

	logger *logger.Logger
}

func NewFormService(storage store.FormStorage, validator validators.Validator, ids IDGenerator, cfg config.ClientApp, logger *logger.Logger) FormService {
	return &formService{
		storage:          storage,
		validator:        validator,
		ids:              ids,
		now:              time.Now,
		preserveFieldIDs: cfg.PreserveFieldIDs,
		logger:           logger,
	}
}

func (s *formService) List(ctx context.Context) ([]models.Form, error) {
	forms, err := s.storage.GetAllForms(ctx)
	if err != nil {
		s.log(ctx, "formService.List").Err(err).Msg("failed to list forms")
		return nil, fmt.Errorf("list forms: %w", err)
	}
	return forms, nil
}

func (s *formService) Get(ctx context.Context, id string) (models.Form, bool, error) {
	form, ok, err := s.storage.GetFormByID(ctx, id)
	if err != nil {
		s.log(ctx, "formService.Get").Err(err).Str("form_id", id).Msg("failed to get form")
		return models.Form{}, false, fmt.Errorf("get form %s: %w", id, err)
	}
	return form, ok, nil
}

func (s *formService) Save(ctx context.Context, draft models.FormDraft) (models.Form, error) {
	now := models.NewTimestamp(s.now())

	form := models.Form{
		Title:       draft.Title,
		Description: draft.Description,
		Fields:      s.collectFields(draft.Rows),
		UpdatedAt:   now,
	}
	if draft.IsNew() {
		form.ID = s.ids.Generate()
		form.CreatedAt = now
	} else {
		form.ID = draft.Original.ID
		form.CreatedAt = draft.Original.CreatedAt
	}

	if err := s.validator.Validate(ctx, form); err != nil {
		s.log(ctx, "formService.Save").Err(err).Str("form_id", form.ID).Msg("form rejected")
		return models.Form{}, fmt.Errorf("%w: %w", ErrInvalidForm, err)
	}

	if err := s.storage.SaveForm(ctx, form); err != nil {
		s.log(ctx, "formService.Save").Err(err).Str("form_id", form.ID).Msg("failed to save form")
		return models.Form{}, fmt.Errorf("save form %s: %w", form.ID, err)
	}

	s.logger.Info().
		Str("func", "formService.Save").
		Str("form_id", form.ID).
		Bool("new", draft.IsNew()).
		Int("fields", len(form.Fields)).
		Msg("form saved")
	return form, nil
}

func (s *formService) Delete(ctx context.Context, id string) error {
	if err := s.storage.DeleteForm(ctx, id); err != nil {
		s.log(ctx, "formService.Delete").Err(err).Str("form_id", id).Msg("failed to delete form")
		return fmt.Errorf("delete form %s: %w", id, err)
	}

	s.logger.Info().Str("func", "formService.Delete").Str("form_id", id).Msg("form deleted")
	return nil
}

func (s *formService) Submit(ctx context.Context, form models.Form, submission models.Submission) (models.FormResponse, error) {
	if submission == nil {
		submission = models.Submission{}
	}

	err := s.validator.Validate(ctx, validators.Submission{Form: form, Values: submission},
		validators.FieldRequired, validators.FieldChoices)
	if err != nil {
		s.log(ctx, "formService.Submit").Err(err).Str("form_id", form.ID).Msg("submission rejected")
		return models.FormResponse{}, fmt.Errorf("%w: %w", ErrInvalidSubmission, err)
	}

	response := models.FormResponse{
		ID:          s.ids.Generate(),
		FormID:      form.ID,
		Responses:   collectAnswers(form, submission),
		SubmittedAt: models.NewTimestamp(s.now()),
	}

	if err = s.storage.SaveFormResponse(ctx, response); err != nil {
		s.log(ctx, "formService.Submit").Err(err).Str("form_id", form.ID).Msg("failed to save response")
		return models.FormResponse{}, fmt.Errorf("save response for form %s: %w", form.ID, err)
	}

	s.logger.Info().
		Str("func", "formService.Submit").
		Str("form_id", form.ID).
		Str("response_id", response.ID).
		Int("answers", len(response.Responses)).
		Msg("response submitted")
	return response, nil
}

func (s *formService) Responses(ctx context.Context, formID string) ([]models.FormResponse, error) {
	responses, err := s.storage.GetFormResponses(ctx, formID)
	if err != nil {
		s.log(ctx, "formService.Responses").Err(err).Str("form_id", formID).Msg("failed to get responses")
		return nil, fmt.Errorf("get responses of form %s: %w", formID, err)
	}
	return responses, nil
}

func (s *formService) ResponseCounts(ctx context.Context) (map[string]int, error) {
	counts, err := s.storage.CountResponses(ctx)
	if err != nil {
		s.log(ctx, "formService.ResponseCounts").Err(err).Msg("failed to count responses")
		return nil, fmt.Errorf("count responses: %w", err)
	}
	return counts, nil
}

// log starts an error entry tagged with the UI action found in ctx.
func (s *formService) log(ctx context.Context, fn string) *zerolog.Event {
	event := s.logger.Error().Str("func", fn)
	if action, ok := utils.GetActionFromContext(ctx); ok {
		event = event.Str("action", action)
	}
	return event
}
