// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-server-vault/internal/app"
	"github.com/MKhiriev/go-server-vault/internal/store"
)

// mapStoreSaveError translates a ReplaceAll failure into a service error with
// a user-facing message.
func mapStoreSaveError(err error) error {
	if err == nil {
		return nil
	}

	var cve *store.ConstraintViolationError
	switch {
	case errors.As(err, &cve):
		switch cve.Field {
		case store.FieldHost:
			return &SaveError{Message: app.MsgHostAlreadyExists, Err: err}
		case store.FieldLabel:
			return &SaveError{Message: app.MsgLabelAlreadyExists, Err: err}
		default:
			return &SaveError{Message: app.MsgRuleViolated, Err: err}
		}

	case errors.Is(err, store.ErrEmptyField):
		return &SaveError{Message: app.MsgRuleViolated, Err: err}
	}

	return fmt.Errorf("replace servers: %w", err)
}
