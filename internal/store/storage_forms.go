// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/models"
)

// formStorage is the default implementation of [FormStorage].
//
// Reads go straight to the key-value store. Every read-modify-write holds
// the per-key lock of the collection it rewrites, so concurrent saves to the
// same collection never lose each other's updates.
type formStorage struct {
	kv     KeyValueStore
	locks  *keyLocker
	logger *logger.Logger
}

// NewFormStorage returns a [FormStorage] persisting into kv.
func NewFormStorage(kv KeyValueStore, logger *logger.Logger) FormStorage {
	logger.Debug().Msg("creating form storage")

	return &formStorage{
		kv:     kv,
		locks:  newKeyLocker(),
		logger: logger,
	}
}

func (s *formStorage) SaveForm(ctx context.Context, form models.Form) error {
	unlock := s.locks.Lock(formsKey)
	defer unlock()

	forms, err := s.loadForms(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range forms {
		if forms[i].ID == form.ID {
			forms[i] = form
			replaced = true
			break
		}
	}
	if !replaced {
		forms = append(forms, form)
	}

	if err = s.storeCollection(ctx, formsKey, forms); err != nil {
		return fmt.Errorf("failed to save form (id=%s): %w", form.ID, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "formStorage.SaveForm").
		Str("form_id", form.ID).
		Bool("replaced", replaced).
		Msg("form saved")
	return nil
}

func (s *formStorage) GetAllForms(ctx context.Context) ([]models.Form, error) {
	return s.loadForms(ctx)
}

func (s *formStorage) GetFormByID(ctx context.Context, id string) (models.Form, bool, error) {
	forms, err := s.loadForms(ctx)
	if err != nil {
		return models.Form{}, false, err
	}

	for _, form := range forms {
		if form.ID == id {
			return form, true, nil
		}
	}
	return models.Form{}, false, nil
}

func (s *formStorage) DeleteForm(ctx context.Context, id string) error {
	unlock := s.locks.Lock(formsKey)
	defer unlock()

	forms, err := s.loadForms(ctx)
	if err != nil {
		return err
	}

	kept := make([]models.Form, 0, len(forms))
	for _, form := range forms {
		if form.ID != id {
			kept = append(kept, form)
		}
	}

	if err = s.storeCollection(ctx, formsKey, kept); err != nil {
		return fmt.Errorf("failed to delete form (id=%s): %w", id, err)
	}

	logger.FromContext(ctx).Debug().
		Str("func", "formStorage.DeleteForm").
		Str("form_id", id).
		Bool("found", len(kept) != len(forms)).
		Msg("form deleted")
	return nil
}

func (s *formStorage) SaveFormResponse(ctx context.Context, response models.FormResponse) error {
	key := formResponsesKey(response.FormID)

	unlock := s.locks.Lock(key)
	defer unlock()

	responses, err := s.loadResponses(ctx, key)
	if err != nil {
		return err
	}
	responses = append(responses, response)

	if err = s.storeCollection(ctx, key, responses); err != nil {
		return fmt.Errorf("failed to save response (form_id=%s): %w", response.FormID, err)
	}
	return nil
}

func (s *formStorage) GetFormResponses(ctx context.Context, formID string) ([]models.FormResponse, error) {
	return s.loadResponses(ctx, formResponsesKey(formID))
}

func (s *formStorage) CountResponses(ctx context.Context) (map[string]int, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "formStorage.CountResponses").Msg("failed to list keys")
		return nil, fmt.Errorf("failed to list response collections: %w", err)
	}

	counts := make(map[string]int)
	for _, key := range keys {
		formID, ok := strings.CutPrefix(key, formResponsesKeyBase)
		if !ok {
			continue
		}
		responses, err := s.loadResponses(ctx, key)
		if err != nil {
			return nil, err
		}
		if len(responses) > 0 {
			counts[formID] = len(responses)
		}
	}
	return counts, nil
}

func (s *formStorage) loadForms(ctx context.Context) ([]models.Form, error) {
	raw, err := s.readKey(ctx, formsKey)
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.Form](raw, formsKey, s.logger), nil
}

func (s *formStorage) loadResponses(ctx context.Context, key string) ([]models.FormResponse, error) {
	raw, err := s.readKey(ctx, key)
	if err != nil {
		return nil, err
	}
	return decodeCollection[models.FormResponse](raw, key, s.logger), nil
}

// readKey returns the raw value under key, or "" when the key is absent.
func (s *formStorage) readKey(ctx context.Context, key string) (string, error) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "formStorage.readKey").Str("key", key).Msg("failed to read collection")
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	if !ok {
		return "", nil
	}
	return raw, nil
}

// decodeCollection decodes a stored JSON array. Empty or malformed data
// yields an empty, non-nil slice.
func decodeCollection[T any](raw, key string, log *logger.Logger) []T {
	items := make([]T, 0)
	if raw == "" {
		return items
	}

	var decoded []T
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		log.Warn().Err(err).
			Str("func", "decodeCollection").
			Str("key", key).
			Msg("stored collection is malformed, treating it as empty")
		return items
	}
	return append(items, decoded...)
}

func (s *formStorage) storeCollection(ctx context.Context, key string, collection any) error {
	payload, err := json.Marshal(collection)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingCollection, err)
	}

	if err = s.kv.Set(ctx, key, string(payload)); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "formStorage.storeCollection").Str("key", key).Msg("failed to write collection")
		return err
	}
	return nil
}
