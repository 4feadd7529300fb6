// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-server-vault/internal/crypto"
	"github.com/MKhiriev/go-server-vault/internal/logger"
	"github.com/MKhiriev/go-server-vault/internal/store"
	"github.com/MKhiriev/go-server-vault/internal/utils"
	"github.com/MKhiriev/go-server-vault/internal/validators"
)

// ClientServices groups the services used by the command-line client.
type ClientServices struct {
	VaultService VaultService
}

func NewClientServices(storages *store.ClientStorages, cipher crypto.Cipher, key *crypto.KeyMaterial, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		VaultService: NewVaultService(
			storages.ServerRepository,
			cipher,
			key,
			validators.NewServerValidator(),
			utils.NewUUIDGenerator(),
			logger,
		),
	}
}
