// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package fingerprint collects machine characteristics into a deterministic
// string from which the vault key is derived.
//
// The fingerprint is the concatenation, separated by "|", of:
//
//	OS kind | OS version | CPU architecture | CPU model | logical CPU count | storage serial
//
// CPU model and count are omitted together when no CPU information is
// available. When no storage serial can be read the user's home directory
// takes its place. Collection never fails.
package fingerprint
