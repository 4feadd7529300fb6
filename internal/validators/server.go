// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-server-vault/models"
)

// Field name constants used to specify which fields should be validated.
const (
	FieldLabel   = "label"
	FieldHost    = "host"
	FieldAccount = "account"
	FieldSecret  = "secret"
)

var allServerFields = []string{FieldLabel, FieldHost, FieldAccount, FieldSecret}

// ServerValidator checks that server records carry every required field.
// It accepts a single [models.Server] (or pointer) and a []models.Server;
// the latter reports the index of the first failing record.
type ServerValidator struct {
}

func NewServerValidator() Validator {
	return &ServerValidator{}
}

func (v *ServerValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	if len(fields) == 0 {
		fields = allServerFields
	}

	switch value := obj.(type) {
	case models.Server:
		return v.validateServer(ctx, -1, value, fields...)
	case *models.Server:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateServer(ctx, -1, *value, fields...)
	case []models.Server:
		for i, s := range value {
			if err := v.validateServer(ctx, i, s, fields...); err != nil {
				return err
			}
		}
		return nil
	default:
		return ErrUnsupportedType
	}
}

// validateServer checks fields in the given order and stops at the first
// failure.
func (v *ServerValidator) validateServer(_ context.Context, index int, s models.Server, fields ...string) error {
	for _, field := range fields {
		var err error

		switch field {
		case FieldLabel:
			if s.Label == "" {
				err = ErrEmptyLabel
			}
		case FieldHost:
			if s.Host == "" {
				err = ErrEmptyHost
			}
		case FieldAccount:
			if s.Account == "" {
				err = ErrEmptyAccount
			}
		case FieldSecret:
			if s.Secret == "" {
				err = ErrEmptySecret
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}

		if err != nil {
			return &RecordError{Index: index, Field: field, Err: err}
		}
	}

	return nil
}
