// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package fingerprint

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
)

//go:generate mockgen -source=probe.go -destination=../mock/probe_mock.go -package=mock

// Probe reads raw host attributes.
type Probe interface {
	// OSKind returns the operating system family.
	OSKind() string
	// OSVersion returns the kernel release, or "" when unknown.
	OSVersion(ctx context.Context) string
	// Arch returns the CPU architecture.
	Arch() string
	// CPU returns the first CPU's model name and the logical CPU count.
	// ok is false when no CPU information is available.
	CPU(ctx context.Context) (model string, count int, ok bool)
	// StorageSerialOutput runs the OS storage-serial utility and returns its
	// raw output.
	StorageSerialOutput(ctx context.Context) (string, error)
	// HomeDir returns the current user's home directory, or "" when unknown.
	HomeDir() string
}

// serialTimeout bounds a single run of the storage-serial utility.
const serialTimeout = 5 * time.Second

var errNoSerialTool = errors.New("no storage serial utility for this OS")

type systemProbe struct {
	goos string
}

// NewSystemProbe returns a [Probe] backed by gopsutil and the OS utilities.
func NewSystemProbe() Probe {
	return &systemProbe{goos: runtime.GOOS}
}

func (p *systemProbe) OSKind() string {
	return p.goos
}

func (p *systemProbe) OSVersion(ctx context.Context) string {
	v, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return ""
	}
	return v
}

func (p *systemProbe) Arch() string {
	return runtime.GOARCH
}

func (p *systemProbe) CPU(ctx context.Context) (string, int, bool) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil || len(infos) == 0 {
		return "", 0, false
	}
	count, err := cpu.CountsWithContext(ctx, true)
	if err != nil {
		count = len(infos)
	}
	return strings.TrimSpace(infos[0].ModelName), count, true
}

func (p *systemProbe) StorageSerialOutput(ctx context.Context) (string, error) {
	name, args, err := serialCommand(p.goos)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, serialTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func (p *systemProbe) HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

func serialCommand(goos string) (string, []string, error) {
	switch goos {
	case "windows":
		return "wmic", []string{"diskdrive", "get", "serialnumber"}, nil
	case "linux":
		return "lsblk", []string{"-dnP", "-o", "SERIAL,RM,TYPE"}, nil
	case "darwin":
		return "ioreg", []string{"-rd1", "-c", "IOPlatformExpertDevice"}, nil
	default:
		return "", nil, errNoSerialTool
	}
}
