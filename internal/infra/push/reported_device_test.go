package push

import (
	"context"
	"testing"

	"homeradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportedDevice_PermissionStatus(t *testing.T) {
	tests := []struct {
		name  string
		state DeviceState
		want  service.PermissionStatus
	}{
		{name: "granted", state: DeviceState{Permission: service.PermissionGranted}, want: service.PermissionGranted},
		{name: "denied", state: DeviceState{Permission: service.PermissionDenied}, want: service.PermissionDenied},
		{name: "unreported defaults to undetermined", state: DeviceState{}, want: service.PermissionUndetermined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := NewReportedDevice(tt.state, nil)

			status, err := device.PermissionStatus(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestReportedDevice_RequestPermission(t *testing.T) {
	tests := []struct {
		name  string
		state DeviceState
		want  service.PermissionStatus
	}{
		{
			name:  "prompt result wins",
			state: DeviceState{Permission: service.PermissionUndetermined, PromptResult: service.PermissionGranted},
			want:  service.PermissionGranted,
		},
		{
			name:  "no prompt keeps reported grant",
			state: DeviceState{Permission: service.PermissionDenied},
			want:  service.PermissionDenied,
		},
		{
			name:  "nothing reported stays undetermined",
			state: DeviceState{},
			want:  service.PermissionUndetermined,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			device := NewReportedDevice(tt.state, nil)

			status, err := device.RequestPermission(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, status)
		})
	}
}

func TestReportedDevice_IsPhysicalDevice(t *testing.T) {
	assert.True(t, NewReportedDevice(DeviceState{PhysicalDevice: true}, nil).IsPhysicalDevice())
	assert.False(t, NewReportedDevice(DeviceState{}, nil).IsPhysicalDevice())
}

func TestReportedDevice_EnsureDefaultChannel(t *testing.T) {
	device := NewReportedDevice(DeviceState{DefaultChannelSet: true}, nil)

	assert.NoError(t, device.EnsureDefaultChannel(context.Background()))
}
