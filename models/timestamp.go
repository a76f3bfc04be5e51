// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the fixed-width UTC layout used to serialize
// [Timestamp]. Because every component has a fixed width the encoded text
// sorts in the same order as the instants it represents.
const TimestampLayout = "2006-01-02T15:04:05.000000000Z"

// Timestamp is a point in time that serializes to sortable text.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalizing it to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// String returns the serialized form of the timestamp.
func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements json.Unmarshaler. Any RFC 3339 value is accepted,
// not only the layout produced by MarshalJSON.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("decode timestamp: %w", err)
	}
	if s == "" {
		*t = Timestamp{}
		return nil
	}

	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	*t = NewTimestamp(parsed)
	return nil
}
