// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Server is a remote-access record in its plaintext form, as it crosses the
// vault service boundary.
type Server struct {
	// Label is the human-friendly name of the record. Unique across the vault.
	Label string `json:"label" yaml:"label"`

	// Host is the address of the remote machine. It is the primary key.
	Host string `json:"host" yaml:"host"`

	// Account is the login name used on the remote host.
	Account string `json:"account" yaml:"account"`

	// Secret is the plaintext password. It only exists in memory and is
	// sealed before it reaches the store.
	Secret string `json:"secret" yaml:"secret"`
}

// StoredServer is the at-rest form of [Server]: every column is plain text
// except Secret, which holds the encrypted payload.
type StoredServer struct {
	Label   string
	Host    string
	Account string
	Secret  CipheredSecret
}

// TableName returns the name of the database table
// associated with the StoredServer model.
func (s StoredServer) TableName() string {
	return "servers"
}
