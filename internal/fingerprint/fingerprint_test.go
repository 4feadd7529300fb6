package fingerprint_test

import (
	"context"
	"errors"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-server-vault/internal/fingerprint"
	"github.com/MKhiriev/go-server-vault/internal/logger"
	"github.com/MKhiriev/go-server-vault/internal/mock"
)

func expectHost(p *mock.MockProbe, osKind string) {
	p.EXPECT().OSKind().Return(osKind).AnyTimes()
	p.EXPECT().OSVersion(gomock.Any()).Return("6.1.0-18-amd64").AnyTimes()
	p.EXPECT().Arch().Return("amd64").AnyTimes()
}

func TestCollect_WithStorageSerial(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockProbe(ctrl)
	expectHost(p, "linux")
	p.EXPECT().CPU(gomock.Any()).Return("Intel(R) Core(TM) i7-8550U", 8, true)
	p.EXPECT().StorageSerialOutput(gomock.Any()).Return(`SERIAL="S3Z9NX0M" RM="0" TYPE="disk"`+"\n", nil)

	fp := fingerprint.NewCollectorWithProbe(p, logger.Nop()).Collect(context.Background())

	assert.Equal(t, "linux|6.1.0-18-amd64|amd64|Intel(R) Core(TM) i7-8550U|8|S3Z9NX0M", fp.String())
	assert.Equal(t, fingerprint.SourceCollected, fp.Source())
	assert.Equal(t, []byte(fp.String()), fp.Bytes())
}

func TestCollect_WindowsHeaderSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockProbe(ctrl)
	expectHost(p, "windows")
	p.EXPECT().CPU(gomock.Any()).Return("AMD Ryzen 7 5800X", 16, true)
	p.EXPECT().StorageSerialOutput(gomock.Any()).Return("SerialNumber\r\n0025_38B4_71B0_1234.\r\n\r\n", nil)

	fp := fingerprint.NewCollectorWithProbe(p, logger.Nop()).Collect(context.Background())

	assert.Equal(t, "windows|6.1.0-18-amd64|amd64|AMD Ryzen 7 5800X|16|0025_38B4_71B0_1234.", fp.String())
	assert.Equal(t, fingerprint.SourceCollected, fp.Source())
}

func TestCollect_FallsBackToHomeDir(t *testing.T) {
	tests := []struct {
		name   string
		output string
		err    error
	}{
		{name: "tool missing", err: exec.ErrNotFound},
		{name: "non-zero exit", err: errors.New("exit status 1")},
		{name: "empty output", output: "\n  \n"},
		{name: "header only", output: "SerialNumber\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			p := mock.NewMockProbe(ctrl)
			expectHost(p, "windows")
			p.EXPECT().CPU(gomock.Any()).Return("cpu", 4, true)
			p.EXPECT().StorageSerialOutput(gomock.Any()).Return(tt.output, tt.err)
			p.EXPECT().HomeDir().Return(`C:\Users\alice`)

			fp := fingerprint.NewCollectorWithProbe(p, logger.Nop()).Collect(context.Background())

			assert.Equal(t, `windows|6.1.0-18-amd64|amd64|cpu|4|C:\Users\alice`, fp.String())
			assert.Equal(t, fingerprint.SourceFallback, fp.Source())
		})
	}
}

func TestCollect_NoCPUInfoOmitsModelAndCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockProbe(ctrl)
	expectHost(p, "linux")
	p.EXPECT().CPU(gomock.Any()).Return("", 0, false)
	p.EXPECT().StorageSerialOutput(gomock.Any()).Return(`SERIAL="SERIAL" RM="0" TYPE="disk"`+"\n", nil)

	fp := fingerprint.NewCollectorWithProbe(p, logger.Nop()).Collect(context.Background())

	assert.Equal(t, "linux|6.1.0-18-amd64|amd64|SERIAL", fp.String())
}

func TestCollect_Deterministic(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := mock.NewMockProbe(ctrl)
	expectHost(p, "linux")
	p.EXPECT().CPU(gomock.Any()).Return("cpu", 2, true).AnyTimes()
	p.EXPECT().StorageSerialOutput(gomock.Any()).Return(`SERIAL="SERIAL" RM="0" TYPE="disk"`+"\n", nil).AnyTimes()

	c := fingerprint.NewCollectorWithProbe(p, logger.Nop())
	first := c.Collect(context.Background())
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, c.Collect(context.Background()))
	}
}

func TestCollect_SystemProbeNeverPanics(t *testing.T) {
	fp := fingerprint.NewCollector(logger.Nop()).Collect(context.Background())
	assert.NotEmpty(t, fp.String())
	assert.Equal(t, fp, fingerprint.NewCollector(logger.Nop()).Collect(context.Background()))
}
