// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-server-vault/internal/client"
	"github.com/MKhiriev/go-server-vault/internal/config"
	"github.com/MKhiriev/go-server-vault/internal/logger"
	"github.com/MKhiriev/go-server-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log := logger.Nop()
	if client.TouchesVault(cfg.Args) {
		log = logger.NewClientLogger("vault", cfg.App.LogFile, cfg.App.LogLevel)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(cfg, buildInfo(), log)
	defer app.Close()

	if err = app.Run(ctx, cfg.Args); err != nil {
		log.Error().Err(err).Msg("vault command error")
		fmt.Fprintln(os.Stderr, client.UserMessage(err))
		if errors.Is(err, client.ErrUsage) || errors.Is(err, client.ErrUnknownCommand) {
			return 2
		}
		return 1
	}

	return 0
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
