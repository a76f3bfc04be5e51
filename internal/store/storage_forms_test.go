// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-form-builder/internal/logger"
	"github.com/MKhiriev/go-form-builder/internal/mock"
	"github.com/MKhiriev/go-form-builder/models"
)

var timestampComparer = cmp.Comparer(func(a, b models.Timestamp) bool {
	return a.Equal(b.Time)
})

func newMemoryFormStorage(t *testing.T) (FormStorage, KeyValueStore) {
	t.Helper()
	kv, err := NewFileKeyValueStore(MemoryDSN, logger.Nop())
	require.NoError(t, err)
	return NewFormStorage(kv, logger.Nop()), kv
}

func sampleForm(id, title string) models.Form {
	at := models.NewTimestamp(time.Date(2026, 5, 1, 10, 0, 0, 123, time.UTC))
	return models.Form{
		ID:          id,
		Title:       title,
		Description: "desc",
		Fields: []models.Field{
			{ID: id + "-name", Type: models.FieldText, Label: "Name", Required: true, Order: 0},
			{ID: id + "-color", Type: models.FieldCheckbox, Label: "Colors", Options: []string{"Red", "Blue"}, Order: 1},
			{ID: id + "-size", Type: models.FieldRadio, Label: "Size", Options: []string{}, Order: 2},
		},
		CreatedAt: at,
		UpdatedAt: at,
	}
}

// ── forms ────────────────────────────────────────────────────────────────────

func TestFormStorage_SaveAndGetRoundTrip(t *testing.T) {
	ctx := testContext()
	s, _ := newMemoryFormStorage(t)
	form := sampleForm("f1", "Survey")

	require.NoError(t, s.SaveForm(ctx, form))

	got, ok, err := s.GetFormByID(ctx, "f1")
	require.NoError(t, err)
	require.True(t, ok)
	if diff := cmp.Diff(form, got, timestampComparer); diff != "" {
		t.Errorf("form mismatch (-want +got):\n%s", diff)
	}
}

func TestFormStorage_GetAllForms_EmptyWhenMissing(t *testing.T) {
	s, _ := newMemoryFormStorage(t)

	forms, err := s.GetAllForms(testContext())
	require.NoError(t, err)
	assert.NotNil(t, forms)
	assert.Empty(t, forms)
}

func TestFormStorage_GetFormByID_Missing(t *testing.T) {
	s, _ := newMemoryFormStorage(t)
	require.NoError(t, s.SaveForm(testContext(), sampleForm("f1", "A")))

	_, ok, err := s.GetFormByID(testContext(), "nope")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFormStorage_SaveForm_ReplacesInPlace(t *testing.T) {
	ctx := testContext()
	s, _ := newMemoryFormStorage(t)

	require.NoError(t, s.SaveForm(ctx, sampleForm("a", "A")))
	require.NoError(t, s.SaveForm(ctx, sampleForm("b", "B")))
	require.NoError(t, s.SaveForm(ctx, sampleForm("c", "C")))

	require.NoError(t, s.SaveForm(ctx, sampleForm("b", "B2")))

	forms, err := s.GetAllForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 3)

	titles := make([]string, 0, len(forms))
	for _, f := range forms {
		titles = append(titles, f.Title)
	}
	assert.Equal(t, []string{"A", "B2", "C"}, titles)
}

func TestFormStorage_DeleteForm(t *testing.T) {
	ctx := testContext()
	s, _ := newMemoryFormStorage(t)

	require.NoError(t, s.SaveForm(ctx, sampleForm("a", "A")))
	require.NoError(t, s.SaveForm(ctx, sampleForm("b", "B")))

	require.NoError(t, s.DeleteForm(ctx, "a"))

	forms, err := s.GetAllForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1)
	assert.Equal(t, "b", forms[0].ID)
}

func TestFormStorage_DeleteForm_MissingIsIdempotent(t *testing.T) {
	ctx := testContext()
	s, _ := newMemoryFormStorage(t)
	require.NoError(t, s.SaveForm(ctx, sampleForm("a", "A")))

	before, err := s.GetAllForms(ctx)
	require.NoError(t, err)

	require.NoError(t, s.DeleteForm(ctx, "missing"))
	require.NoError(t, s.DeleteForm(ctx, "missing"))

	after, err := s.GetAllForms(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(before, after, timestampComparer); diff != "" {
		t.Errorf("collection changed (-before +after):\n%s", diff)
	}
}

func TestFormStorage_DeleteForm_KeepsResponses(t *testing.T) {
	ctx := testContext()
	s, _ := newMemoryFormStorage(t)

	require.NoError(t, s.SaveForm(ctx, sampleForm("a", "A")))
	require.NoError(t, s.SaveFormResponse(ctx, models.FormResponse{ID: "r1", FormID: "a"}))
	require.NoError(t, s.DeleteForm(ctx, "a"))

	responses, err := s.GetFormResponses(ctx, "a")
	require.NoError(t, err)
	assert.Len(t, responses, 1)
}

func TestFormStorage_MalformedDataIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{definitely not json"},
		{name: "object instead of array", raw: `{"id":"x"}`},
		{name: "null", raw: "null"},
		{name: "empty string", raw: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			s, kv := newMemoryFormStorage(t)
			require.NoError(t, kv.Set(ctx, formsKey, tt.raw))
			require.NoError(t, kv.Set(ctx, formResponsesKey("f1"), tt.raw))

			forms, err := s.GetAllForms(ctx)
			require.NoError(t, err)
			assert.NotNil(t, forms)
			assert.Empty(t, forms)

			responses, err := s.GetFormResponses(ctx, "f1")
			require.NoError(t, err)
			assert.NotNil(t, responses)
			assert.Empty(t, responses)
		})
	}
}

func TestFormStorage_SaveForm_OverwritesMalformedCollection(t *testing.T) {
	ctx := testContext()
	s, kv := newMemoryFormStorage(t)
	require.NoError(t, kv.Set(ctx, formsKey, "garbage"))

	require.NoError(t, s.SaveForm(ctx, sampleForm("a", "A")))

	forms, err := s.GetAllForms(ctx)
	require.NoError(t, err)
	require.Len(t, forms, 1)
}

func TestFormStorage_StoredJSONShape(t *testing.T) {
	ctx := testContext()
	s, kv := newMemoryFormStorage(t)
	require.NoError(t, s.SaveForm(ctx, sampleForm("f1", "Survey")))

	raw, ok, err := kv.Get(ctx, "forms")
	require.NoError(t, err)
	require.True(t, ok)

	assert.JSONEq(t, `[{
		"id": "f1",
		"title": "Survey",
		"description": "desc",
		"fields": [
			{"id": "f1-name", "type": "text", "label": "Name", "required": true, "order": 0},
			{"id": "f1-color", "type": "checkbox", "label": "Colors", "options": ["Red", "Blue"], "required": false, "order": 1},
			{"id": "f1-size", "type": "radio", "label": "Size", "options": [], "required": false, "order": 2}
		],
		"createdAt": "2026-05-01T10:00:00.000000123Z",
		"updatedAt": "2026-05-01T10:00:00.000000123Z"
	}]`, raw)
}

// ── responses ────────────────────────────────────────────────────────────────

func TestFormStorage_ResponsesAppendInOrderPerForm(t *testing.T) {
	ctx := testContext()
	s, kv := newMemoryFormStorage(t)

	require.NoError(t, s.SaveFormResponse(ctx, models.FormResponse{ID: "r1", FormID: "a"}))
	require.NoError(t, s.SaveFormResponse(ctx, models.FormResponse{ID: "r2", FormID: "b"}))
	require.NoError(t, s.SaveFormResponse(ctx, models.FormResponse{ID: "r3", FormID: "a"}))

	responses, err := s.GetFormResponses(ctx, "a")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "r1", responses[0].ID)
	assert.Equal(t, "r3", responses[1].ID)

	keys, err := kv.Keys(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"form_responses_a", "form_responses_b"}, keys)
}

func TestFormStorage_CountResponses(t *testing.T) {
	ctx := testContext()
	s, kv := newMemoryFormStorage(t)

	counts, err := s.CountResponses(ctx)
	require.NoError(t, err)
	assert.Empty(t, counts)

	require.NoError(t, s.SaveForm(ctx, sampleForm("a", "A")))
	require.NoError(t, s.SaveFormResponse(ctx, models.FormResponse{ID: "r1", FormID: "a"}))
	require.NoError(t, s.SaveFormResponse(ctx, models.FormResponse{ID: "r2", FormID: "a"}))
	require.NoError(t, s.SaveFormResponse(ctx, models.FormResponse{ID: "r3", FormID: "b"}))
	require.NoError(t, kv.Set(ctx, "form_responses_broken", "{not json"))
	require.NoError(t, kv.Set(ctx, "form_responses_empty", "[]"))

	counts, err = s.CountResponses(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"a": 2, "b": 1}, counts)
}

func TestFormStorage_ConcurrentResponsesAreNotLost(t *testing.T) {
	ctx := testContext()
	s, _ := newMemoryFormStorage(t)

	const writers = 50
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := s.SaveFormResponse(ctx, models.FormResponse{ID: fmt.Sprintf("r%d", i), FormID: "f1"})
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	responses, err := s.GetFormResponses(ctx, "f1")
	require.NoError(t, err)
	assert.Len(t, responses, writers)
}

func TestFormStorage_ConcurrentFormSavesAreNotLost(t *testing.T) {
	ctx := testContext()
	s, _ := newMemoryFormStorage(t)

	const writers = 30
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, s.SaveForm(ctx, sampleForm(fmt.Sprintf("f%d", i), "T")))
		}(i)
	}
	wg.Wait()

	forms, err := s.GetAllForms(ctx)
	require.NoError(t, err)
	assert.Len(t, forms, writers)
}

// ── backend failures ─────────────────────────────────────────────────────────

func TestFormStorage_BackendErrors(t *testing.T) {
	backendErr := errors.New("backend down")

	tests := []struct {
		name  string
		setup func(kv *mock.MockKeyValueStore)
		call  func(ctx context.Context, s FormStorage) error
	}{
		{
			name: "GetAllForms read error",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Get(gomock.Any(), "forms").Return("", false, backendErr)
			},
			call: func(ctx context.Context, s FormStorage) error {
				_, err := s.GetAllForms(ctx)
				return err
			},
		},
		{
			name: "CountResponses list error",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Keys(gomock.Any()).Return(nil, backendErr)
			},
			call: func(ctx context.Context, s FormStorage) error {
				_, err := s.CountResponses(ctx)
				return err
			},
		},
		{
			name: "CountResponses read error",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Keys(gomock.Any()).Return([]string{"form_responses_a", "forms"}, nil)
				kv.EXPECT().Get(gomock.Any(), "form_responses_a").Return("", false, backendErr)
			},
			call: func(ctx context.Context, s FormStorage) error {
				_, err := s.CountResponses(ctx)
				return err
			},
		},
		{
			name: "GetFormByID read error",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Get(gomock.Any(), "forms").Return("", false, backendErr)
			},
			call: func(ctx context.Context, s FormStorage) error {
				_, _, err := s.GetFormByID(ctx, "x")
				return err
			},
		},
		{
			name: "SaveForm write error",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Get(gomock.Any(), "forms").Return("", false, nil)
				kv.EXPECT().Set(gomock.Any(), "forms", gomock.Any()).Return(backendErr)
			},
			call: func(ctx context.Context, s FormStorage) error {
				return s.SaveForm(ctx, sampleForm("a", "A"))
			},
		},
		{
			name: "DeleteForm read error skips write",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Get(gomock.Any(), "forms").Return("", false, backendErr)
			},
			call: func(ctx context.Context, s FormStorage) error {
				return s.DeleteForm(ctx, "a")
			},
		},
		{
			name: "SaveFormResponse write error",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Get(gomock.Any(), "form_responses_a").Return("[]", true, nil)
				kv.EXPECT().Set(gomock.Any(), "form_responses_a", gomock.Any()).Return(backendErr)
			},
			call: func(ctx context.Context, s FormStorage) error {
				return s.SaveFormResponse(ctx, models.FormResponse{ID: "r", FormID: "a"})
			},
		},
		{
			name: "GetFormResponses read error",
			setup: func(kv *mock.MockKeyValueStore) {
				kv.EXPECT().Get(gomock.Any(), "form_responses_a").Return("", false, backendErr)
			},
			call: func(ctx context.Context, s FormStorage) error {
				_, err := s.GetFormResponses(ctx, "a")
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			kv := mock.NewMockKeyValueStore(ctrl)
			tt.setup(kv)

			s := NewFormStorage(kv, logger.Nop())
			err := tt.call(testContext(), s)
			require.Error(t, err)
			assert.ErrorIs(t, err, backendErr)
		})
	}
}
