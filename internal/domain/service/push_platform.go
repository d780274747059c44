package service

import (
	"context"
)

// PermissionStatus is the device's push-permission grant state.
type PermissionStatus string

const (
	// PermissionGranted means the user allowed push notifications.
	PermissionGranted PermissionStatus = "granted"
	// PermissionDenied means the user refused push notifications.
	PermissionDenied PermissionStatus = "denied"
	// PermissionUndetermined means the user has not been asked yet.
	PermissionUndetermined PermissionStatus = "undetermined"
)

// PushPlatform is the narrow surface of the device platform and the relay's
// registration endpoint that the token lifecycle depends on. Screen-side
// concerns (notification display, tap routing) stay with the client.
type PushPlatform interface {
	// IsPhysicalDevice reports whether the runtime can receive pushes at all.
	// Simulators and emulators cannot.
	IsPhysicalDevice() bool

	// PermissionStatus returns the current push-permission grant.
	PermissionStatus(ctx context.Context) (PermissionStatus, error)

	// RequestPermission prompts the user once and returns the resulting grant.
	RequestPermission(ctx context.Context) (PermissionStatus, error)

	// EnsureDefaultChannel idempotently creates the default notification
	// channel, which must exist before a token is requested.
	EnsureDefaultChannel(ctx context.Context) error

	// RegisterDevice requests a fresh push token from the relay's
	// registration endpoint, scoped to the given project ID.
	RegisterDevice(ctx context.Context, projectID string) (string, error)
}
