// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/MKhiriev/go-server-vault/internal/logger"
	"github.com/MKhiriev/go-server-vault/models"
)

// ErrReadingServersFile is returned when an import file cannot be read or
// decoded.
var ErrReadingServersFile = errors.New("failed to read servers file")

// ErrWritingServersFile is returned when an export file cannot be written.
var ErrWritingServersFile = errors.New("failed to write servers file")

// serverFileStorage is the default implementation of [ServerFileStorage].
// Files hold a YAML sequence of servers; since YAML is a superset of JSON a
// JSON array is accepted as well.
type serverFileStorage struct{}

// NewServerFileStorage constructs a new [ServerFileStorage] instance.
func NewServerFileStorage() ServerFileStorage {
	return &serverFileStorage{}
}

// SaveServersToFile writes servers to fileName as YAML. The file holds
// plaintext secrets, so it is left with mode 0600 even if it already existed
// with wider permissions.
func (f *serverFileStorage) SaveServersToFile(ctx context.Context, fileName string, servers ...models.Server) error {
	log := logger.FromContext(ctx)

	if dir := filepath.Dir(fileName); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "serverFileStorage.SaveServersToFile").Msg("failed to create export directory")
			return fmt.Errorf("%w: %w", ErrWritingServersFile, err)
		}
	}

	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		log.Err(err).Str("func", "serverFileStorage.SaveServersToFile").Msg("failed to open export file")
		return fmt.Errorf("%w: %w", ErrWritingServersFile, err)
	}
	defer file.Close()

	// O_CREATE only applies the mode to new files.
	if err = file.Chmod(0o600); err != nil {
		log.Err(err).Str("func", "serverFileStorage.SaveServersToFile").Msg("failed to restrict export file mode")
		return fmt.Errorf("%w: %w", ErrWritingServersFile, err)
	}

	if servers == nil {
		servers = []models.Server{}
	}

	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)
	if err = enc.Encode(servers); err != nil {
		log.Err(err).Str("func", "serverFileStorage.SaveServersToFile").Msg("failed to encode servers")
		return fmt.Errorf("%w: %w", ErrWritingServersFile, err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWritingServersFile, err)
	}

	return file.Close()
}

// LoadServersFromFile reads a server list from fileName. An empty file
// yields an empty list.
func (f *serverFileStorage) LoadServersFromFile(ctx context.Context, fileName string) ([]models.Server, error) {
	log := logger.FromContext(ctx)

	file, err := os.Open(fileName)
	if err != nil {
		log.Err(err).Str("func", "serverFileStorage.LoadServersFromFile").Msg("failed to open import file")
		return nil, fmt.Errorf("%w: %w", ErrReadingServersFile, err)
	}
	defer file.Close()

	dec := yaml.NewDecoder(file)
	dec.KnownFields(true)

	servers := make([]models.Server, 0)
	if err = dec.Decode(&servers); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "serverFileStorage.LoadServersFromFile").Msg("failed to decode servers")
		return nil, fmt.Errorf("%w: %w", ErrReadingServersFile, err)
	}

	return servers, nil
}
