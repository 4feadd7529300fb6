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

	"github.com/MKhiriev/go-server-vault/models"
)

func TestServerFileStorage_SaveAndLoad(t *testing.T) {
	fs := NewServerFileStorage()
	path := filepath.Join(t.TempDir(), "export", "servers.yaml")

	servers := []models.Server{
		{Label: "db", Host: "10.0.0.1", Account: "root", Secret: "hunter2"},
		{Label: "web", Host: "10.0.0.2", Account: "deploy", Secret: "p@ss: with colon"},
	}

	require.NoError(t, fs.SaveServersToFile(testContext(), path, servers...))

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	}

	got, err := fs.LoadServersFromFile(testContext(), path)
	require.NoError(t, err)
	assert.Equal(t, servers, got)
}

func TestServerFileStorage_SaveTightensExistingFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stale\n"), 0o644))
	require.NoError(t, os.Chmod(path, 0o644))

	fs := NewServerFileStorage()
	err := fs.SaveServersToFile(testContext(), path, models.Server{Label: "db", Host: "10.0.0.1", Account: "root", Secret: "TOPSECRET"})
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := fs.LoadServersFromFile(testContext(), path)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "TOPSECRET", got[0].Secret)
}

func TestServerFileStorage_LoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "servers.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"label":"db","host":"10.0.0.1","account":"root","secret":"x"}]`), 0o600))

	got, err := NewServerFileStorage().LoadServersFromFile(testContext(), path)
	require.NoError(t, err)
	assert.Equal(t, []models.Server{{Label: "db", Host: "10.0.0.1", Account: "root", Secret: "x"}}, got)
}

func TestServerFileStorage_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := NewServerFileStorage().LoadServersFromFile(testContext(), path)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestServerFileStorage_LoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewServerFileStorage().LoadServersFromFile(testContext(), filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, ErrReadingServersFile)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("- label: db\n  password: x\n"), 0o600))
	_, err = NewServerFileStorage().LoadServersFromFile(testContext(), unknown)
	assert.ErrorIs(t, err, ErrReadingServersFile)
}
