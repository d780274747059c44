package impl

import (
	"context"
	"log/slog"

	"homeradar/config"
	"homeradar/internal/domain/service"
	"homeradar/internal/usecase"
)

type pushTokenService struct {
	projectID string
	logger    *slog.Logger
}

// NewPushTokenService creates a new push token service instance
func NewPushTokenService(cfg *config.Config, logger *slog.Logger) usecase.PushTokenUsecase {
	return &pushTokenService{
		projectID: cfg.PushRelay.ProjectID,
		logger:    logger,
	}
}

// FreshPushToken walks the acquisition ladder and returns the registered
// token, or nil when any rung fails. Failures are diagnostics, not errors:
// the caller saves a tokenless row and the user simply receives no pushes.
func (s *pushTokenService) FreshPushToken(ctx context.Context, platform service.PushPlatform) *string {
	if !platform.IsPhysicalDevice() {
		s.logger.Info("push token skipped: not a physical device")

		return nil
	}

	status, err := platform.PermissionStatus(ctx)
	if err != nil {
		s.logger.Error("failed to read push permission status", slog.Any("error", err))

		return nil
	}

	if status != service.PermissionGranted {
		status, err = platform.RequestPermission(ctx)
		if err != nil {
			s.logger.Error("failed to request push permission", slog.Any("error", err))

			return nil
		}
	}

	if status != service.PermissionGranted {
		s.logger.Info("push token skipped: permission not granted",
			slog.String("status", string(status)),
		)

		return nil
	}

	if err := platform.EnsureDefaultChannel(ctx); err != nil {
		s.logger.Error("failed to ensure default notification channel", slog.Any("error", err))

		return nil
	}

	token, err := platform.RegisterDevice(ctx, s.projectID)
	if err != nil {
		s.logger.Error("failed to register device for push token", slog.Any("error", err))

		return nil
	}
	if token == "" {
		s.logger.Error("device registration returned empty push token")

		return nil
	}

	return &token
}
