// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidInput is returned for inputs the caller can correct: an
	// empty plaintext, an empty or malformed payload, a missing key.
	ErrInvalidInput = errors.New("invalid cipher input")

	// ErrDecryption is returned when a payload fails authentication. It
	// deliberately does not say whether the key was wrong or the data was
	// corrupted.
	ErrDecryption = errors.New("decryption failed: invalid key or corrupted data")

	// ErrUnknownCipher is returned by [NewCipher] for an unsupported name.
	ErrUnknownCipher = errors.New("unknown cipher")
)
