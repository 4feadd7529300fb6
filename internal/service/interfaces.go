// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-server-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// VaultService is the boundary between callers holding plaintext servers and
// the encrypted store. Secrets are sealed on the way in and opened on the way
// out; nothing else about a record is transformed except normalisation on
// save.
type VaultService interface {
	// Load returns every stored server with its secret decrypted. If any
	// secret cannot be opened the whole load fails with [ErrVaultUnreadable].
	Load(ctx context.Context) ([]models.Server, error)

	// Save replaces the stored set with servers. Fields are normalised
	// (label, host and account trimmed and lower-cased, secret trimmed) and
	// must be non-empty. Uniqueness failures come back as [*SaveError].
	Save(ctx context.Context, servers []models.Server) error

	// Delete removes the servers with the given hosts. Unknown hosts are
	// ignored.
	Delete(ctx context.Context, hosts []string) error

	// Get returns the server stored under host with its secret decrypted, or
	// [ErrServerNotFound].
	Get(ctx context.Context, host string) (models.Server, error)
}

// IDGenerator produces operation identifiers for log correlation.
type IDGenerator interface {
	Generate() string
}
