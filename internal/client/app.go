// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-server-vault/internal/config"
	"github.com/MKhiriev/go-server-vault/internal/crypto"
	"github.com/MKhiriev/go-server-vault/internal/fingerprint"
	"github.com/MKhiriev/go-server-vault/internal/logger"
	"github.com/MKhiriev/go-server-vault/internal/service"
	"github.com/MKhiriev/go-server-vault/internal/store"
	"github.com/MKhiriev/go-server-vault/internal/workers"
	"github.com/MKhiriev/go-server-vault/models"
)

// vaultCommands need the machine key; the rest run without probing the host
// or opening the database.
var vaultCommands = map[string]bool{
	"list":        true,
	"save":        true,
	"export":      true,
	"delete":      true,
	"copy":        true,
	"fingerprint": true,
}

// TouchesVault reports whether the command line needs the machine key or the
// database.
func TouchesVault(args []string) bool {
	return len(args) > 0 && vaultCommands[args[0]]
}

// App is the vault command-line runtime.
type App struct {
	cfg *config.ClientConfig

	vault     service.VaultService
	files     store.ServerFileStorage
	clipboard workers.Clipboard
	source    fingerprint.Source
	cipher    string
	out       io.Writer
	build     models.AppBuildInfo

	// key and aead are set by identify and handed to the vault service by
	// open, which then drops the key reference.
	key  *crypto.KeyMaterial
	aead crypto.Cipher

	closer io.Closer
	logger *logger.Logger
}

// NewApp returns the vault runtime. Nothing is probed or opened here: the
// fingerprint is collected and the store opened on the first command that
// needs them.
func NewApp(cfg *config.ClientConfig, build models.AppBuildInfo, log *logger.Logger) Client {
	return &App{
		cfg:       cfg,
		clipboard: systemClipboard{},
		out:       os.Stdout,
		build:     build,
		logger:    log,
	}
}

// identify collects the machine fingerprint, derives the vault key and
// creates the configured cipher.
func (a *App) identify(ctx context.Context) error {
	if a.cipher != "" {
		return nil
	}

	fp := fingerprint.NewCollector(a.logger).Collect(ctx)
	a.logger.Debug().Str("func", "App.identify").Stringer("fingerprint_source", fp.Source()).Msg("machine fingerprint collected")

	aead, err := crypto.NewCipher(a.cfg.App.Cipher)
	if err != nil {
		return fmt.Errorf("create cipher: %w", err)
	}

	a.key = crypto.DeriveKey(fp.Bytes())
	a.aead = aead
	a.source = fp.Source()
	a.cipher = aead.Name()
	return nil
}

// open wires the store and the vault service. The key is derived exactly once
// and afterwards lives only inside the vault service.
func (a *App) open(ctx context.Context) error {
	if a.vault != nil {
		return nil
	}
	if err := a.identify(ctx); err != nil {
		return err
	}

	storages, err := store.NewClientStorages(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, a.aead, a.key, a.logger)
	a.key = nil

	a.vault = services.VaultService
	a.files = storages.ServerFileStorage
	a.closer = storages
	return nil
}

// Close releases the database handle.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

// Run executes one subcommand.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	ctx = a.logger.WithContext(ctx)
	name, rest := args[0], args[1:]

	switch name {
	case "version":
		a.printBuildInfo()
		return nil
	case "help", "-h", "-help", "--help":
		a.printUsage()
		return nil
	case "fingerprint":
		if err := a.identify(ctx); err != nil {
			return err
		}
		return a.runFingerprint(ctx, rest)
	}

	if !vaultCommands[name] {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}

	if err := a.open(ctx); err != nil {
		return err
	}

	switch name {
	case "list":
		return a.runList(ctx, rest)
	case "save":
		return a.runSave(ctx, rest)
	case "export":
		return a.runExport(ctx, rest)
	case "delete":
		return a.runDelete(ctx, rest)
	default:
		return a.runCopy(ctx, rest)
	}
}

func (a *App) printUsage() {
	fmt.Fprint(a.out, `Usage: vault [flags] <command> [args]

Commands:
  list [-show]            list stored servers (secrets masked unless -show)
  save -f <file>          replace the stored set with servers from a YAML/JSON file
  export -f <file>        write the decrypted set to a YAML file (mode 0600)
  delete <host>...        delete servers by host
  copy [-clear d] <host>  copy a server's secret to the clipboard
  fingerprint             show which machine attributes the key is bound to
  version                 print build information

Flags:
  -d <path>               vault database file (STORAGE_DB_DSN)
  -cipher <name>          aes-256-gcm | chacha20-poly1305 (APP_CIPHER)
  -log-level <level>      log level (APP_LOG_LEVEL)
  -log-file <path>        log file (APP_LOG_FILE)
  -c, -config <file>      JSON config file (CONFIG)
`)
}

func (a *App) printBuildInfo() {
	fmt.Fprintf(a.out, "Build version: %s\n", a.build.BuildVersion())
	fmt.Fprintf(a.out, "Build date: %s\n", a.build.BuildDate())
	fmt.Fprintf(a.out, "Build commit: %s\n", a.build.BuildCommit())
}
