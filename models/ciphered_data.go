// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipheredSecret is the text form of an encrypted secret as stored in the
// servers table: base64(nonce || tag || ciphertext). Its content is opaque to
// the store.
type CipheredSecret string
