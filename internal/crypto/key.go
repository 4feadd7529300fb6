// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "crypto/sha256"

// KeySize is the length of the derived key in bytes (256 bits).
const KeySize = sha256.Size

// KeyMaterial holds the vault key derived from the machine fingerprint.
// It lives only in memory: it has no exported accessor and formats as a
// redacted placeholder, so it cannot end up in logs or on disk by accident.
type KeyMaterial struct {
	key [KeySize]byte
}

// DeriveKey hashes the fingerprint bytes with SHA-256 into a 256-bit key.
// The same fingerprint always yields the same key.
func DeriveKey(fingerprint []byte) *KeyMaterial {
	return &KeyMaterial{key: sha256.Sum256(fingerprint)}
}

// String implements fmt.Stringer without revealing the key.
func (k *KeyMaterial) String() string {
	return "KeyMaterial(redacted)"
}

// GoString implements fmt.GoStringer without revealing the key.
func (k *KeyMaterial) GoString() string {
	return k.String()
}
