// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/go-server-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher seals and opens individual secret values with a 256-bit key.
//
// Payload layout (base64, standard encoding):
//
//	nonce (12 bytes) ‖ tag (16 bytes) ‖ ciphertext
//
// A fresh random nonce is drawn for every Seal call, so sealing the same
// plaintext twice yields two different payloads.
type Cipher interface {
	// Name returns the configuration name of the algorithm.
	Name() string

	// Seal encrypts plaintext under key. Returns [ErrInvalidInput] for an
	// empty plaintext or a nil key.
	Seal(key *KeyMaterial, plaintext string) (models.CipheredSecret, error)

	// Open authenticates and decrypts payload under key. Returns
	// [ErrInvalidInput] when the payload is empty, not base64, or too short
	// to hold nonce and tag, and [ErrDecryption] when authentication fails
	// for any reason.
	Open(key *KeyMaterial, payload models.CipheredSecret) (string, error)
}
