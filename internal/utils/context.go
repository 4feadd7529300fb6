// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys and
// operation identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperationIDCtxKey is the key used to store the identifier of the current
// vault operation in the context.
var OperationIDCtxKey = contextKey("operationID")

// WithOperationID returns a copy of ctx carrying opID.
func WithOperationID(ctx context.Context, opID string) context.Context {
	return context.WithValue(ctx, OperationIDCtxKey, opID)
}

// GetOperationIDFromContext retrieves the operation identifier from the
// context.
//
// Returns the identifier and an ok flag:
//   - ok == true  — value is found and is a non-empty string
//   - ok == false — value is missing, empty or has an unexpected type
func GetOperationIDFromContext(ctx context.Context) (string, bool) {
	opID, ok := ctx.Value(OperationIDCtxKey).(string)
	return opID, ok && opID != ""
}
