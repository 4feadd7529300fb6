// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-server-vault/internal/workers"
)

const maskedSecret = "********"

func newCommandFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func (a *App) runList(ctx context.Context, args []string) error {
	fs := newCommandFlagSet("list")
	show := fs.Bool("show", false, "show secrets in clear text")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	servers, err := a.vault.Load(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LABEL\tHOST\tACCOUNT\tSECRET")
	for _, s := range servers {
		secret := maskedSecret
		if *show {
			secret = s.Secret
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Label, s.Host, s.Account, secret)
	}
	return tw.Flush()
}

func (a *App) runSave(ctx context.Context, args []string) error {
	fs := newCommandFlagSet("save")
	file := fs.String("f", "", "YAML or JSON file with the full server list")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if *file == "" {
		return fmt.Errorf("%w: save requires -f <file>", ErrUsage)
	}

	servers, err := a.files.LoadServersFromFile(ctx, *file)
	if err != nil {
		return err
	}

	if err = a.vault.Save(ctx, servers); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Saved %d server(s).\n", len(servers))
	return nil
}

func (a *App) runExport(ctx context.Context, args []string) error {
	fs := newCommandFlagSet("export")
	file := fs.String("f", "", "destination YAML file")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if *file == "" {
		return fmt.Errorf("%w: export requires -f <file>", ErrUsage)
	}

	servers, err := a.vault.Load(ctx)
	if err != nil {
		return err
	}

	if err = a.files.SaveServersToFile(ctx, *file, servers...); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Exported %d server(s) to %s.\n", len(servers), *file)
	return nil
}

func (a *App) runDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: delete requires at least one host", ErrUsage)
	}

	if err := a.vault.Delete(ctx, args); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted: %s\n", strings.Join(args, ", "))
	return nil
}

func (a *App) runCopy(ctx context.Context, args []string) error {
	fs := newCommandFlagSet("copy")
	clearAfter := fs.Duration("clear", 0, "clear the clipboard after this delay (0 keeps it)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("%w: copy requires exactly one host", ErrUsage)
	}
	if _, ok := a.clipboard.(systemClipboard); ok && clipboard.Unsupported {
		return ErrClipboardUnavailable
	}

	server, err := a.vault.Get(ctx, fs.Arg(0))
	if err != nil {
		return err
	}

	if err = a.clipboard.WriteAll(server.Secret); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	fmt.Fprintf(a.out, "Secret of %s copied to clipboard.\n", server.Host)

	var jobs []workers.Worker
	if *clearAfter > 0 {
		fmt.Fprintf(a.out, "Clipboard will be cleared in %s.\n", clearAfter.Round(time.Second))
		jobs = append(jobs, workers.NewClipboardClearer(a.clipboard, server.Secret, *clearAfter, a.logger))
	}
	workers.NewWorkers(jobs...).Run()

	return nil
}

func (a *App) runFingerprint(_ context.Context, args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("%w: fingerprint takes no arguments", ErrUsage)
	}

	fmt.Fprintf(a.out, "Key bound to: machine attributes + %s\n", a.source)
	fmt.Fprintf(a.out, "Cipher: %s\n", a.cipher)
	return nil
}
