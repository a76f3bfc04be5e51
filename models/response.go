// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// FormResponse is one submitted set of answers to a form.
//
// FormID is a weak reference: deleting the form leaves its responses in
// storage.
type FormResponse struct {
	ID          string    `json:"id"`
	FormID      string    `json:"formId"`
	Responses   []Answer  `json:"responses"`
	SubmittedAt Timestamp `json:"submittedAt"`
}

// Answer is the value submitted for a single field.
type Answer struct {
	FieldID string      `json:"fieldId"`
	Value   AnswerValue `json:"value"`
}

// AnswerValue is either a single string (text and radio fields) or a set of
// strings (checkbox fields). It encodes as a JSON string or a JSON array.
type AnswerValue struct {
	text    string
	choices []string
	multi   bool
}

// SingleValue builds a single-string answer value.
func SingleValue(s string) AnswerValue {
	return AnswerValue{text: s}
}

// MultiValue builds a set answer value. A nil or empty slice yields an empty
// set, which is still a valid answer.
func MultiValue(values ...string) AnswerValue {
	choices := make([]string, 0, len(values))
	choices = append(choices, values...)
	return AnswerValue{choices: choices, multi: true}
}

// IsMulti reports whether the value is a set.
func (v AnswerValue) IsMulti() bool {
	return v.multi
}

// Text returns the single string value. It is empty for sets.
func (v AnswerValue) Text() string {
	return v.text
}

// Choices returns the set value. It is nil for single values.
func (v AnswerValue) Choices() []string {
	if !v.multi {
		return nil
	}
	return append([]string{}, v.choices...)
}

// String renders the value for display.
func (v AnswerValue) String() string {
	if !v.multi {
		return v.text
	}
	return fmt.Sprintf("%v", v.choices)
}

// Equal reports whether two values hold the same data.
func (v AnswerValue) Equal(o AnswerValue) bool {
	if v.multi != o.multi || v.text != o.text || len(v.choices) != len(o.choices) {
		return false
	}
	for i := range v.choices {
		if v.choices[i] != o.choices[i] {
			return false
		}
	}
	return true
}

// MarshalJSON implements json.Marshaler.
func (v AnswerValue) MarshalJSON() ([]byte, error) {
	if v.multi {
		choices := v.choices
		if choices == nil {
			choices = []string{}
		}
		return json.Marshal(choices)
	}
	return json.Marshal(v.text)
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *AnswerValue) UnmarshalJSON(b []byte) error {
	trimmed := bytes.TrimSpace(b)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var choices []string
		if err := json.Unmarshal(trimmed, &choices); err != nil {
			return fmt.Errorf("decode answer choices: %w", err)
		}
		*v = MultiValue(choices...)
		return nil
	}

	var text string
	if err := json.Unmarshal(trimmed, &text); err != nil {
		return fmt.Errorf("decode answer text: %w", err)
	}
	*v = SingleValue(text)
	return nil
}
