package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"homeradar/config"
	"homeradar/internal/domain/service"
	mockSvc "homeradar/internal/mocks/service"
	"homeradar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProjectID = "homeradar-project"

func createTestPushTokenService(t *testing.T) (usecase.PushTokenUsecase, *mockSvc.MockPushPlatform) {
	platform := mockSvc.NewMockPushPlatform(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewPushTokenService(&config.Config{
		PushRelay: &config.PushRelayConfig{ProjectID: testProjectID},
	}, logger)

	return svc, platform
}

func TestPushTokenService_FreshPushToken_Granted(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	ctx := context.Background()

	platform.EXPECT().IsPhysicalDevice().Return(true)
	platform.EXPECT().PermissionStatus(ctx).Return(service.PermissionGranted, nil)
	platform.EXPECT().EnsureDefaultChannel(ctx).Return(nil)
	platform.EXPECT().RegisterDevice(ctx, testProjectID).Return("ExponentPushToken[abc]", nil)

	token := svc.FreshPushToken(ctx, platform)

	require.NotNil(t, token)
	assert.Equal(t, "ExponentPushToken[abc]", *token)
}

func TestPushTokenService_FreshPushToken_PromptsWhenUndetermined(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	ctx := context.Background()

	platform.EXPECT().IsPhysicalDevice().Return(true)
	platform.EXPECT().PermissionStatus(ctx).Return(service.PermissionUndetermined, nil)
	platform.EXPECT().RequestPermission(ctx).Return(service.PermissionGranted, nil)
	platform.EXPECT().EnsureDefaultChannel(ctx).Return(nil)
	platform.EXPECT().RegisterDevice(ctx, testProjectID).Return("ExponentPushToken[xyz]", nil)

	token := svc.FreshPushToken(ctx, platform)

	require.NotNil(t, token)
	assert.Equal(t, "ExponentPushToken[xyz]", *token)
}

func TestPushTokenService_FreshPushToken_Simulator(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	platform.EXPECT().IsPhysicalDevice().Return(false)

	assert.Nil(t, svc.FreshPushToken(context.Background(), platform))
}

func TestPushTokenService_FreshPushToken_StatusError(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	ctx := context.Background()

	platform.EXPECT().IsPhysicalDevice().Return(true)
	platform.EXPECT().PermissionStatus(ctx).Return(service.PermissionStatus(""), errors.New("bridge unavailable"))

	assert.Nil(t, svc.FreshPushToken(ctx, platform))
}

func TestPushTokenService_FreshPushToken_PromptDenied(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	ctx := context.Background()

	platform.EXPECT().IsPhysicalDevice().Return(true)
	platform.EXPECT().PermissionStatus(ctx).Return(service.PermissionUndetermined, nil)
	platform.EXPECT().RequestPermission(ctx).Return(service.PermissionDenied, nil)

	assert.Nil(t, svc.FreshPushToken(ctx, platform))
}

func TestPushTokenService_FreshPushToken_PromptError(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	ctx := context.Background()

	platform.EXPECT().IsPhysicalDevice().Return(true)
	platform.EXPECT().PermissionStatus(ctx).Return(service.PermissionDenied, nil)
	platform.EXPECT().RequestPermission(ctx).Return(service.PermissionStatus(""), errors.New("prompt failed"))

	assert.Nil(t, svc.FreshPushToken(ctx, platform))
}

func TestPushTokenService_FreshPushToken_ChannelError(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	ctx := context.Background()

	platform.EXPECT().IsPhysicalDevice().Return(true)
	platform.EXPECT().PermissionStatus(ctx).Return(service.PermissionGranted, nil)
	platform.EXPECT().EnsureDefaultChannel(ctx).Return(errors.New("channel create failed"))

	assert.Nil(t, svc.FreshPushToken(ctx, platform))
}

func TestPushTokenService_FreshPushToken_RegisterError(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	ctx := context.Background()

	platform.EXPECT().IsPhysicalDevice().Return(true)
	platform.EXPECT().PermissionStatus(ctx).Return(service.PermissionGranted, nil)
	platform.EXPECT().EnsureDefaultChannel(ctx).Return(nil)
	platform.EXPECT().RegisterDevice(ctx, testProjectID).Return("", errors.New("relay 502"))

	assert.Nil(t, svc.FreshPushToken(ctx, platform))
}

func TestPushTokenService_FreshPushToken_EmptyToken(t *testing.T) {
	svc, platform := createTestPushTokenService(t)

	ctx := context.Background()

	platform.EXPECT().IsPhysicalDevice().Return(true)
	platform.EXPECT().PermissionStatus(ctx).Return(service.PermissionGranted, nil)
	platform.EXPECT().EnsureDefaultChannel(ctx).Return(nil)
	platform.EXPECT().RegisterDevice(ctx, testProjectID).Return("", nil)

	assert.Nil(t, svc.FreshPushToken(ctx, platform))
}
