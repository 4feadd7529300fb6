// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line vault runtime.
//
// It dispatches the vault subcommands (list, save, export, delete, copy,
// fingerprint, version). The machine key is derived and the store opened
// only on the first command that needs them.
package client
