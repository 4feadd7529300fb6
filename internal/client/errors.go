// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-server-vault/internal/app"
	"github.com/MKhiriev/go-server-vault/internal/service"
)

var (
	// ErrUsage is returned for a missing or malformed subcommand.
	ErrUsage = errors.New("usage error")
	// ErrUnknownCommand is returned for an unsupported subcommand.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrClipboardUnavailable is returned when no clipboard utility is found.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)

// UserMessage returns the text to show for err. Errors without a dedicated
// message fall back to err.Error().
func UserMessage(err error) string {
	var (
		saveErr    *service.SaveError
		invalidErr *service.InvalidInputError
		missingErr *service.NotFoundError
	)

	switch {
	case err == nil:
		return ""
	case errors.As(err, &saveErr):
		return saveErr.Message
	case errors.As(err, &invalidErr):
		return invalidErr.Message()
	case errors.As(err, &missingErr):
		return missingErr.Message()
	case errors.Is(err, service.ErrVaultUnreadable):
		return app.MsgVaultUnreadable
	}

	return fmt.Sprint(err)
}
