// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-server-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// ServerRepository is the durable store of the server set. Secrets reach it
// already sealed; it never sees plaintext.
type ServerRepository interface {
	// LoadAll returns every stored server in insertion order.
	LoadAll(ctx context.Context) ([]models.StoredServer, error)
	// GetByHost returns the server stored under host or [ErrServerNotFound].
	GetByHost(ctx context.Context, host string) (models.StoredServer, error)
	// ReplaceAll atomically swaps the whole stored set for servers. On any
	// failure the previous set stays in place.
	ReplaceAll(ctx context.Context, servers ...models.StoredServer) error
	// DeleteByHosts atomically removes the servers with the given hosts.
	// Unknown hosts are ignored; no hosts is a no-op.
	DeleteByHosts(ctx context.Context, hosts ...string) error
}

// ServerFileStorage reads and writes plaintext server lists to files for
// import and export.
type ServerFileStorage interface {
	SaveServersToFile(ctx context.Context, fileName string, servers ...models.Server) error
	LoadServersFromFile(ctx context.Context, fileName string) ([]models.Server, error)
}
