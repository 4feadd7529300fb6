// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"time"

	"github.com/MKhiriev/go-server-vault/internal/logger"
)

// ClipboardClearer wipes a copied secret from the clipboard after a delay.
// The clipboard is left alone if its content changed in the meantime.
type ClipboardClearer struct {
	clipboard Clipboard
	value     string
	after     time.Duration
	sleep     func(time.Duration)

	logger *logger.Logger
}

func NewClipboardClearer(clipboard Clipboard, value string, after time.Duration, logger *logger.Logger) *ClipboardClearer {
	return &ClipboardClearer{
		clipboard: clipboard,
		value:     value,
		after:     after,
		sleep:     time.Sleep,
		logger:    logger,
	}
}

// Run blocks for the configured delay, then clears the clipboard.
func (c *ClipboardClearer) Run() {
	c.sleep(c.after)

	current, err := c.clipboard.ReadAll()
	if err != nil {
		c.logger.Err(err).Str("func", "ClipboardClearer.Run").Msg("failed to read clipboard")
		return
	}
	if current != c.value {
		c.logger.Debug().Str("func", "ClipboardClearer.Run").Msg("clipboard changed, not clearing")
		return
	}

	if err = c.clipboard.WriteAll(""); err != nil {
		c.logger.Err(err).Str("func", "ClipboardClearer.Run").Msg("failed to clear clipboard")
		return
	}
	c.logger.Debug().Str("func", "ClipboardClearer.Run").Msg("clipboard cleared")
}
