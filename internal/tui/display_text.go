// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	displayPolicyOnce sync.Once
	displayPolicy     *bluemonday.Policy
)

// displayText renders stored text without HTML elements. Stored values are
// never changed by it. Text without markup, and text that is nothing but
// markup, is shown as typed.
func displayText(s string) string {
	if !strings.ContainsRune(s, '<') {
		return s
	}
	// the strict policy escapes what it keeps; unescape back to plain text
	text := html.UnescapeString(displaySanitizer().Sanitize(s))
	if strings.TrimSpace(text) == "" {
		return s
	}
	return text
}

func displaySanitizer() *bluemonday.Policy {
	displayPolicyOnce.Do(func() {
		displayPolicy = bluemonday.StrictPolicy()
	})
	return displayPolicy
}
