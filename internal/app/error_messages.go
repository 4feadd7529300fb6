// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// vault service and the command-line client.
//
// All Msg* constants are human-readable message strings shown to the user or
// written into log entries to describe the outcome of an operation. Keeping
// them in one place ensures consistent wording.
package app

const (
	// MsgHostAlreadyExists is shown when a save contains two servers with the
	// same host.
	MsgHostAlreadyExists = "A server with this hostname already exists."

	// MsgLabelAlreadyExists is shown when a save contains two servers with the
	// same label.
	MsgLabelAlreadyExists = "A server with this nickname already exists."

	// MsgRuleViolated is shown for any other rejected row.
	MsgRuleViolated = "Invalid data: a database rule was violated."

	// MsgVaultUnreadable is shown when stored secrets cannot be decrypted on
	// this machine.
	MsgVaultUnreadable = "The vault cannot be read on this machine: invalid key or corrupted data."

	// MsgFieldRequired is the format of the message shown for an empty field;
	// it takes the 1-based record number and the field name.
	MsgFieldRequired = "Server %d: %s is required."

	// MsgServerNotFound is the format of the message shown when no server has
	// the requested host.
	MsgServerNotFound = "No server with host %q."
)
