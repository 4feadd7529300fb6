// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyLabel   = errors.New("label is required")
	ErrEmptyHost    = errors.New("host is required")
	ErrEmptyAccount = errors.New("account is required")
	ErrEmptySecret  = errors.New("secret is required")
)

// RecordError locates a failed rule inside a list of records.
type RecordError struct {
	// Index is the position of the record in the list, -1 for a single record.
	Index int
	// Field is the name of the failing field.
	Field string
	Err   error
}

func (e *RecordError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("record %d: %s: %v", e.Index, e.Field, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
