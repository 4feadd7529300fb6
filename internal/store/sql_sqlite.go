// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-server-vault/internal/config"
	"github.com/MKhiriev/go-server-vault/internal/logger"
)

// connection parameters appended to every DSN unless already present
var sqliteParams = []string{
	"_journal_mode=WAL",
	"_busy_timeout=5000",
}

func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	path, dsn := sqliteDSN(cfg.DSN)

	// db will be in file
	if err := createLocalDBFileIfNotExists(path); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("path", path).Msg("connected to database successfully")

	// construct a DB struct
	db := &DB{
		DB:              conn,
		errorClassifier: NewSQLiteErrorClassifier(),
		logger:          log,
	}

	return db, nil
}

// sqliteDSN splits a DSN into the database file path and the connection
// string handed to the driver.
func sqliteDSN(raw string) (path, dsn string) {
	base, query, _ := strings.Cut(raw, "?")
	path = strings.TrimPrefix(base, "file:")

	params := make([]string, 0, len(sqliteParams)+1)
	if query != "" {
		params = append(params, query)
	}
	for _, p := range sqliteParams {
		key, _, _ := strings.Cut(p, "=")
		if !strings.Contains(query, key+"=") {
			params = append(params, p)
		}
	}

	return path, base + "?" + strings.Join(params, "&")
}

func createLocalDBFileIfNotExists(dbFile string) error {
	if err := os.MkdirAll(filepath.Dir(dbFile), 0o700); err != nil {
		return fmt.Errorf("error creating DB directory: %w", err)
	}

	if _, err := os.Stat(dbFile); errors.Is(err, os.ErrNotExist) {
		// if not found - create
		f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	// file already exists
	return nil
}
