// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-server-vault/internal/app"
)

var (
	// ErrVaultUnreadable is returned by Load and Get when a stored secret
	// cannot be decrypted with this machine's key.
	ErrVaultUnreadable = errors.New("vault unreadable")

	// ErrServerNotFound is returned by Get for an unknown host.
	ErrServerNotFound = errors.New("server not found")

	// ErrInvalidInput matches every [*InvalidInputError].
	ErrInvalidInput = errors.New("invalid input")
)

// InvalidInputError names the record and field that failed validation.
type InvalidInputError struct {
	// Index is the position of the record in the saved list.
	Index int
	// Field is the name of the empty field.
	Field string
	Err   error
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("%s: record %d: %s is empty", ErrInvalidInput, e.Index, e.Field)
}

// Message returns the text shown to the user.
func (e *InvalidInputError) Message() string {
	return fmt.Sprintf(app.MsgFieldRequired, e.Index+1, e.Field)
}

// Is makes errors.Is(err, ErrInvalidInput) true.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *InvalidInputError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned by Get when no server has Host.
type NotFoundError struct {
	Host string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrServerNotFound, e.Host)
}

// Message returns the text shown to the user.
func (e *NotFoundError) Message() string {
	return fmt.Sprintf(app.MsgServerNotFound, e.Host)
}

// Is makes errors.Is(err, ErrServerNotFound) true.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrServerNotFound
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// SaveError is returned by Save when the store rejected the new set. Message
// is meant for the user; the structured cause is reachable with errors.As.
type SaveError struct {
	Message string
	Err     error
}

func (e *SaveError) Error() string {
	return e.Message
}

func (e *SaveError) Unwrap() error {
	return e.Err
}
