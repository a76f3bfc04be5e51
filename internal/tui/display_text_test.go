// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain", "plain"},
		{"  padded  ", "  padded  "},
		{"Tom & Jerry", "Tom & Jerry"},
		{"Tom &lt; Jerry", "Tom &lt; Jerry"},
		{"<b>bold</b>", "bold"},
		{"<script>alert(1)</script>ok", "ok"},
		{"<none>", "<none>"},
		{"<br>", "<br>"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, displayText(tt.in))
		})
	}
}
