package push

import (
	"context"

	"homeradar/internal/domain/service"
)

// DeviceState is the device snapshot a client reports when saving settings:
// whether it is real hardware, the current permission grant, and the grant
// the client observed after prompting (if it prompted).
type DeviceState struct {
	PhysicalDevice    bool
	Permission        service.PermissionStatus
	PromptResult      service.PermissionStatus
	DefaultChannelSet bool
}

// reportedDevice adapts a client-reported device snapshot to the PushPlatform
// interface. The server cannot touch the device directly; prompting and
// channel creation happen client-side and are replayed here, while token
// registration goes through the relay.
type reportedDevice struct {
	state DeviceState
	relay *RelayClient
}

// NewReportedDevice builds a per-request PushPlatform from a reported device
// snapshot and the relay client.
func NewReportedDevice(state DeviceState, relay *RelayClient) service.PushPlatform {
	return &reportedDevice{
		state: state,
		relay: relay,
	}
}

// IsPhysicalDevice reports whether the client runs on real hardware.
func (d *reportedDevice) IsPhysicalDevice() bool {
	return d.state.PhysicalDevice
}

// PermissionStatus returns the grant state the client reported.
func (d *reportedDevice) PermissionStatus(_ context.Context) (service.PermissionStatus, error) {
	if d.state.Permission == "" {
		return service.PermissionUndetermined, nil
	}

	return d.state.Permission, nil
}

// RequestPermission returns the grant the client observed after prompting.
// A client that never prompted reports the unchanged grant.
func (d *reportedDevice) RequestPermission(_ context.Context) (service.PermissionStatus, error) {
	if d.state.PromptResult == "" {
		if d.state.Permission == "" {
			return service.PermissionUndetermined, nil
		}

		return d.state.Permission, nil
	}

	return d.state.PromptResult, nil
}

// EnsureDefaultChannel is satisfied by the client having created the channel.
// Repeated calls are harmless.
func (d *reportedDevice) EnsureDefaultChannel(_ context.Context) error {
	return nil
}

// RegisterDevice requests a fresh push token from the relay.
func (d *reportedDevice) RegisterDevice(ctx context.Context, projectID string) (string, error) {
	return d.relay.RegisterToken(ctx, projectID)
}
