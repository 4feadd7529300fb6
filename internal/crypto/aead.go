// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/MKhiriev/go-server-vault/models"
)

const (
	// NonceSize is the nonce length of the payload layout (96 bits).
	NonceSize = 12
	// TagSize is the authentication tag length of the payload layout (128 bits).
	TagSize = 16
)

// Cipher names understood by [NewCipher].
const (
	AESGCM           = "aes-256-gcm"
	ChaCha20Poly1305 = "chacha20-poly1305"
)

// aeadCipher implements [Cipher] on top of any cipher.AEAD with a 12-byte
// nonce and a 16-byte tag.
type aeadCipher struct {
	name    string
	newAEAD func(key []byte) (cipher.AEAD, error)
}

// NewCipher returns the [Cipher] registered under name.
func NewCipher(name string) (Cipher, error) {
	switch name {
	case AESGCM:
		return NewAESGCMCipher(), nil
	case ChaCha20Poly1305:
		return NewChaCha20Poly1305Cipher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCipher, name)
	}
}

// NewAESGCMCipher returns a [Cipher] backed by AES-256-GCM.
func NewAESGCMCipher() Cipher {
	return &aeadCipher{
		name: AESGCM,
		newAEAD: func(key []byte) (cipher.AEAD, error) {
			block, err := aes.NewCipher(key)
			if err != nil {
				return nil, err
			}
			return cipher.NewGCM(block)
		},
	}
}

// NewChaCha20Poly1305Cipher returns a [Cipher] backed by ChaCha20-Poly1305
// (RFC 8439).
func NewChaCha20Poly1305Cipher() Cipher {
	return &aeadCipher{
		name:    ChaCha20Poly1305,
		newAEAD: chacha20poly1305.New,
	}
}

func (c *aeadCipher) Name() string {
	return c.name
}

// Seal implements [Cipher].
func (c *aeadCipher) Seal(key *KeyMaterial, plaintext string) (models.CipheredSecret, error) {
	if key == nil {
		return "", fmt.Errorf("%w: missing key material", ErrInvalidInput)
	}
	if plaintext == "" {
		return "", fmt.Errorf("%w: cannot encrypt empty string", ErrInvalidInput)
	}

	aead, err := c.newAEAD(key.key[:])
	if err != nil {
		return "", fmt.Errorf("create %s: %w", c.name, err)
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// aead.Seal returns ciphertext ‖ tag; the payload stores the tag first.
	sealed := aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext, tag := sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:]

	blob := make([]byte, 0, NonceSize+TagSize+len(ciphertext))
	blob = append(blob, nonce...)
	blob = append(blob, tag...)
	blob = append(blob, ciphertext...)

	return models.CipheredSecret(base64.StdEncoding.EncodeToString(blob)), nil
}

// Open implements [Cipher].
func (c *aeadCipher) Open(key *KeyMaterial, payload models.CipheredSecret) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: missing key material", ErrInvalidInput)
	}
	if payload == "" {
		return "", fmt.Errorf("%w: cannot decrypt empty payload", ErrInvalidInput)
	}

	blob, err := base64.StdEncoding.DecodeString(string(payload))
	if err != nil {
		return "", fmt.Errorf("%w: payload is not base64", ErrInvalidInput)
	}
	if len(blob) < NonceSize+TagSize {
		return "", fmt.Errorf("%w: payload too short", ErrInvalidInput)
	}

	aead, err := c.newAEAD(key.key[:])
	if err != nil {
		return "", fmt.Errorf("create %s: %w", c.name, err)
	}

	nonce := blob[:NonceSize]
	tag := blob[NonceSize : NonceSize+TagSize]
	ciphertext := blob[NonceSize+TagSize:]

	sealed := make([]byte, 0, len(ciphertext)+TagSize)
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, nonce, sealed, nil)
	if err != nil {
		return "", ErrDecryption
	}

	return string(plaintext), nil
}
