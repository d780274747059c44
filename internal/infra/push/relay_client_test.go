package push

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"homeradar/config"
	"homeradar/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRelayClient(t *testing.T, sendEndpoint, registerEndpoint string) *RelayClient {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRelayClient(&config.Config{
		PushRelay: &config.PushRelayConfig{
			SendEndpoint:     sendEndpoint,
			RegisterEndpoint: registerEndpoint,
			Timeout:          5 * time.Second,
		},
	}, logger)
}

func TestRelayClient_SendBatch_Success(t *testing.T) {
	var (
		gotContentType string
		gotAccept      string
		gotMessages    []service.PushMessage
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAccept = r.Header.Get("Accept")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotMessages))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestRelayClient(t, server.URL, "")
	messages := []service.PushMessage{
		{To: "ExponentPushToken[a]", Sound: "default", Title: "New home near you!", Body: "body"},
		{To: "ExponentPushToken[b]", Sound: "default", Title: "New home near you!", Body: "body"},
	}

	err := client.SendBatch(context.Background(), messages)

	require.NoError(t, err)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, "application/json", gotAccept)
	require.Len(t, gotMessages, 2)
	assert.Equal(t, "ExponentPushToken[a]", gotMessages[0].To)
}

func TestRelayClient_SendBatch_EmptyBatchSkipsRequest(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := newTestRelayClient(t, server.URL, "")

	require.NoError(t, client.SendBatch(context.Background(), nil))
	assert.False(t, called)
}

func TestRelayClient_SendBatch_RejectsOversizedBatch(t *testing.T) {
	client := newTestRelayClient(t, "http://relay.invalid/send", "")

	messages := make([]service.PushMessage, service.RelayBatchLimit+1)

	err := client.SendBatch(context.Background(), messages)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "batch size exceeds relay limit")
}

func TestRelayClient_SendBatch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"error":"upstream unavailable"}`))
	}))
	defer server.Close()

	client := newTestRelayClient(t, server.URL, "")

	err := client.SendBatch(context.Background(), []service.PushMessage{{To: "ExponentPushToken[a]"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), "upstream unavailable")
}

func TestRelayClient_RegisterToken_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			ProjectID string `json:"project_id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "homeradar-project", req.ProjectID)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":"ExponentPushToken[fresh]"}`))
	}))
	defer server.Close()

	client := newTestRelayClient(t, "", server.URL)

	token, err := client.RegisterToken(context.Background(), "homeradar-project")

	require.NoError(t, err)
	assert.Equal(t, "ExponentPushToken[fresh]", token)
}

func TestRelayClient_RegisterToken_EmptyToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"token":""}`))
	}))
	defer server.Close()

	client := newTestRelayClient(t, "", server.URL)

	_, err := client.RegisterToken(context.Background(), "homeradar-project")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty token")
}

func TestRelayClient_RegisterToken_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestRelayClient(t, "", server.URL)

	_, err := client.RegisterToken(context.Background(), "homeradar-project")

	assert.Error(t, err)
}
