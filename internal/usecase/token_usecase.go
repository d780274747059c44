package usecase

import (
	"context"

	"homeradar/internal/domain/service"
)

// PushTokenUsecase defines the interface for the push-token lifecycle.
type PushTokenUsecase interface {
	// FreshPushToken walks the acquisition ladder against the given platform:
	// physical device, permission granted (prompting once if undetermined),
	// default channel, then token registration. Every failure degrades to nil
	// with a logged diagnostic; the caller proceeds tokenless.
	FreshPushToken(ctx context.Context, platform service.PushPlatform) *string
}
