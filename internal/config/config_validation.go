// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-server-vault/internal/crypto"
)

// Cipher names accepted in App.Cipher.
const (
	CipherAESGCM           = crypto.AESGCM
	CipherChaCha20Poly1305 = crypto.ChaCha20Poly1305
)

var allowedCiphers = []string{CipherAESGCM, CipherChaCha20Poly1305}

// validate checks the merged [StructuredConfig] before defaults are applied.
// Only values that were actually provided are checked.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Cipher != "" && !slices.Contains(allowedCiphers, cfg.App.Cipher) {
		return fmt.Errorf("%w: unknown cipher %q", ErrInvalidAppConfigs, cfg.App.Cipher)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if !slices.Contains(allowedCiphers, cfg.App.Cipher) {
		return fmt.Errorf("%w: unknown cipher %q", ErrInvalidAppConfigs, cfg.App.Cipher)
	}

	return nil
}
