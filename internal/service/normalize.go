// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strings"

	"github.com/MKhiriev/go-server-vault/models"
)

// normalizeKey trims and lower-cases label, host and account values.
func normalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// normalizeServer returns s with label, host and account trimmed and
// lower-cased. The secret is only trimmed.
func normalizeServer(s models.Server) models.Server {
	return models.Server{
		Label:   normalizeKey(s.Label),
		Host:    normalizeKey(s.Host),
		Account: normalizeKey(s.Account),
		Secret:  strings.TrimSpace(s.Secret),
	}
}
