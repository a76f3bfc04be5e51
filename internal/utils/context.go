// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the service and
// UI layers: id generation and typed context keys.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// ActionCtxKey is the key under which the UI stores the name of the user
// action a call belongs to (for example "save_form"). Services add it to
// their log entries.
//
//	ctx = utils.WithAction(ctx, "save_form")
var ActionCtxKey = contextKey("action")

// WithAction returns a copy of ctx carrying the action name.
func WithAction(ctx context.Context, action string) context.Context {
	return context.WithValue(ctx, ActionCtxKey, action)
}

// GetActionFromContext retrieves the action name stored by [WithAction].
//
// Returns the action and an ok flag:
//   - ok == true:  value is found and is a string
//   - ok == false: value is missing or has an unexpected type
func GetActionFromContext(ctx context.Context) (string, bool) {
	action, ok := ctx.Value(ActionCtxKey).(string)
	return action, ok
}
