// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fingerprint

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-server-vault/internal/logger"
)

// Separator joins the fingerprint components.
const Separator = "|"

// Source tells which value closes the fingerprint.
type Source int

const (
	// SourceCollected means a storage serial was read from the OS.
	SourceCollected Source = iota
	// SourceFallback means the home directory was used instead of a serial.
	SourceFallback
)

func (s Source) String() string {
	switch s {
	case SourceCollected:
		return "storage serial"
	case SourceFallback:
		return "home directory"
	default:
		return "unknown"
	}
}

// Fingerprint is the collected machine description.
type Fingerprint struct {
	value  string
	source Source
}

// String returns the joined fingerprint.
func (f Fingerprint) String() string {
	return f.value
}

// Bytes returns the fingerprint as key-derivation input.
func (f Fingerprint) Bytes() []byte {
	return []byte(f.value)
}

// Source reports which branch supplied the last component.
func (f Fingerprint) Source() Source {
	return f.source
}

// Collector builds a [Fingerprint] from the attributes reported by a [Probe].
type Collector struct {
	probe  Probe
	logger *logger.Logger
}

// NewCollector returns a Collector reading the current host.
func NewCollector(log *logger.Logger) *Collector {
	return NewCollectorWithProbe(NewSystemProbe(), log)
}

// NewCollectorWithProbe returns a Collector over the given probe.
func NewCollectorWithProbe(probe Probe, log *logger.Logger) *Collector {
	return &Collector{probe: probe, logger: log}
}

// Collect gathers the fingerprint. It never fails: attributes that cannot be
// read are left empty, a missing storage serial is replaced with the home
// directory.
func (c *Collector) Collect(ctx context.Context) Fingerprint {
	osKind := c.probe.OSKind()

	parts := []string{
		osKind,
		c.probe.OSVersion(ctx),
		c.probe.Arch(),
	}

	if model, count, ok := c.probe.CPU(ctx); ok {
		parts = append(parts, model, strconv.Itoa(count))
	}

	source := SourceCollected
	serial, err := c.probe.StorageSerialOutput(ctx)
	if err == nil {
		serial = parseSerial(osKind, serial)
	}
	if err != nil || serial == "" {
		c.logger.Debug().Str("func", "Collector.Collect").Err(err).
			Msg("storage serial unavailable, falling back to home directory")
		serial = c.probe.HomeDir()
		source = SourceFallback
	}
	parts = append(parts, serial)

	return Fingerprint{value: strings.Join(parts, Separator), source: source}
}

// parseSerial picks the serial out of the raw tool output. Lines are trimmed
// and blank lines dropped. On Windows the first line is the column header.
// On Linux only fixed (RM="0") whole disks count, so plugging in a USB stick
// does not change the fingerprint.
func parseSerial(osKind, output string) string {
	lines := nonBlankLines(output)

	switch osKind {
	case "windows":
		if len(lines) < 2 {
			return ""
		}
		return lines[1]
	case "darwin":
		for _, line := range lines {
			if !strings.Contains(line, "IOPlatformSerialNumber") {
				continue
			}
			_, value, found := strings.Cut(line, "=")
			if !found {
				return ""
			}
			return strings.Trim(strings.TrimSpace(value), `"`)
		}
		return ""
	default:
		for _, line := range lines {
			attrs := lsblkAttrs(line)
			if attrs["RM"] == "0" && attrs["TYPE"] == "disk" && attrs["SERIAL"] != "" {
				return attrs["SERIAL"]
			}
		}
		return ""
	}
}

var lsblkPair = regexp.MustCompile(`([A-Z-]+)="([^"]*)"`)

// lsblkAttrs parses one line of `lsblk -P` output.
func lsblkAttrs(line string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range lsblkPair.FindAllStringSubmatch(line, -1) {
		attrs[m[1]] = strings.TrimSpace(m[2])
	}
	return attrs
}

func nonBlankLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
