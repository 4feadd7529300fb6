// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-server-vault/internal/config"
	"github.com/MKhiriev/go-server-vault/internal/logger"
	"github.com/MKhiriev/go-server-vault/models"
)

func newSQLiteStorages(t *testing.T) (*ClientStorages, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "nested", "vault", "servers.db")
	storages, err := NewClientStorages(testContext(), config.ClientStorage{DB: config.ClientDB{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { storages.Close() })

	return storages, path
}

func storedLabels(t *testing.T, repo ServerRepository) []string {
	t.Helper()

	servers, err := repo.LoadAll(testContext())
	require.NoError(t, err)

	labels := make([]string, 0, len(servers))
	for _, s := range servers {
		labels = append(labels, s.Label)
	}
	return labels
}

func TestNewClientStorages_CreatesPrivateFile(t *testing.T) {
	_, path := newSQLiteStorages(t)

	info, err := os.Stat(path)
	require.NoError(t, err)
	if runtime.GOOS != "windows" {
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		dirInfo, err := os.Stat(filepath.Dir(path))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
	}
}

func TestNewClientStorages_ReopenKeepsData(t *testing.T) {
	storages, path := newSQLiteStorages(t)
	require.NoError(t, storages.ServerRepository.ReplaceAll(testContext(), sampleServers()...))
	require.NoError(t, storages.Close())

	reopened, err := NewClientStorages(testContext(), config.ClientStorage{DB: config.ClientDB{DSN: path}}, logger.Nop())
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ServerRepository.LoadAll(testContext())
	require.NoError(t, err)
	assert.Equal(t, sampleServers(), got)
}

func TestSQLiteRepository_ReplaceAllAtomicity(t *testing.T) {
	storages, _ := newSQLiteStorages(t)
	repo := storages.ServerRepository
	ctx := testContext()

	require.NoError(t, repo.ReplaceAll(ctx,
		models.StoredServer{Label: "a", Host: "h1", Account: "u", Secret: "s1"},
		models.StoredServer{Label: "b", Host: "h2", Account: "u", Secret: "s2"},
	))

	// label collision inside the new set
	err := repo.ReplaceAll(ctx,
		models.StoredServer{Label: "a", Host: "h1", Account: "u", Secret: "s1"},
		models.StoredServer{Label: "a", Host: "h3", Account: "u", Secret: "s3"},
	)
	var cve *ConstraintViolationError
	require.ErrorAs(t, err, &cve)
	assert.Equal(t, FieldLabel, cve.Field)
	assert.Equal(t, []string{"a", "b"}, storedLabels(t, repo))

	// empty field rejected by the table itself
	err = repo.ReplaceAll(ctx,
		models.StoredServer{Label: "c", Host: "h4", Account: "u", Secret: "s4"},
		models.StoredServer{Label: "d", Host: "h5", Account: "", Secret: "s5"},
	)
	assert.ErrorIs(t, err, ErrEmptyField)
	assert.Equal(t, []string{"a", "b"}, storedLabels(t, repo))

	require.NoError(t, repo.ReplaceAll(ctx, models.StoredServer{Label: "c", Host: "h3", Account: "u", Secret: "s3"}))
	assert.Equal(t, []string{"c"}, storedLabels(t, repo))
}

func TestSQLiteRepository_InsertionOrder(t *testing.T) {
	storages, _ := newSQLiteStorages(t)
	repo := storages.ServerRepository

	servers := []models.StoredServer{
		{Label: "zeta", Host: "z", Account: "u", Secret: "s"},
		{Label: "alpha", Host: "a", Account: "u", Secret: "s"},
		{Label: "mu", Host: "m", Account: "u", Secret: "s"},
	}
	require.NoError(t, repo.ReplaceAll(testContext(), servers...))

	got, err := repo.LoadAll(testContext())
	require.NoError(t, err)
	assert.Equal(t, servers, got)
}

func TestSQLiteRepository_DeleteByHosts(t *testing.T) {
	storages, _ := newSQLiteStorages(t)
	repo := storages.ServerRepository
	ctx := testContext()

	require.NoError(t, repo.ReplaceAll(ctx,
		models.StoredServer{Label: "a", Host: "h1", Account: "u", Secret: "s1"},
		models.StoredServer{Label: "b", Host: "h2", Account: "u", Secret: "s2"},
		models.StoredServer{Label: "c", Host: "h3", Account: "u", Secret: "s3"},
	))

	require.NoError(t, repo.DeleteByHosts(ctx, "h1", "h3", "unknown"))
	assert.Equal(t, []string{"b"}, storedLabels(t, repo))

	require.NoError(t, repo.DeleteByHosts(ctx))
	assert.Equal(t, []string{"b"}, storedLabels(t, repo))

	_, err := repo.GetByHost(ctx, "h1")
	assert.ErrorIs(t, err, ErrServerNotFound)

	got, err := repo.GetByHost(ctx, "h2")
	require.NoError(t, err)
	assert.Equal(t, "b", got.Label)
}

func TestSQLiteErrorClassifier_RealDriverCodes(t *testing.T) {
	storages, _ := newSQLiteStorages(t)
	db := storages.db
	ctx := testContext()

	insert := func(label, host string) error {
		_, err := db.ExecContext(ctx, insertServerSQL, label, host, "u", "s")
		return err
	}
	require.NoError(t, insert("a", "h1"))

	assert.Equal(t, PrimaryKeyViolation, db.errorClassifier.Classify(insert("b", "h1")))
	assert.Equal(t, UniqueViolation, db.errorClassifier.Classify(insert("a", "h2")))
	assert.Equal(t, EmptyValueViolation, db.errorClassifier.Classify(insert("", "h3")))
}

func Test_sqliteDSN(t *testing.T) {
	path, dsn := sqliteDSN("/tmp/servers.db")
	assert.Equal(t, "/tmp/servers.db", path)
	assert.Equal(t, "/tmp/servers.db?_journal_mode=WAL&_busy_timeout=5000", dsn)

	path, dsn = sqliteDSN("file:/tmp/servers.db?_journal_mode=DELETE")
	assert.Equal(t, "/tmp/servers.db", path)
	assert.Equal(t, "file:/tmp/servers.db?_journal_mode=DELETE&_busy_timeout=5000", dsn)
}
