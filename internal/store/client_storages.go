// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-server-vault/internal/config"
	"github.com/MKhiriev/go-server-vault/internal/logger"
)

// ClientStorages groups the storage components the vault needs into a single
// value that can be passed around the service layer.
type ClientStorages struct {
	// ServerRepository is the SQLite-backed store of sealed server records.
	ServerRepository ServerRepository
	// ServerFileStorage imports and exports plaintext server lists.
	ServerFileStorage ServerFileStorage

	db *DB
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the file (mode 0600) and its directories (mode 0700) if they
//     do not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to a fresh
//     [ServerRepository].
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Debug().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ServerRepository:  NewServerRepository(db, logger),
		ServerFileStorage: NewServerFileStorage(),
		db:                db,
	}, nil
}

// Close releases the database handle.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
