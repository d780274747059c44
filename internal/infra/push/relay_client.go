// Package push provides the HTTP client for the external push relay and the
// device-state adapter backing the token lifecycle.
package push

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"homeradar/config"
	"homeradar/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultRelayTimeout = 10 * time.Second

// RelayClient talks to the push relay's HTTP API: batch sends and device
// token registration.
type RelayClient struct {
	sendEndpoint     string
	registerEndpoint string
	httpClient       *http.Client
	logger           *slog.Logger
}

// NewRelayClient creates a relay client from configuration.
func NewRelayClient(cfg *config.Config, logger *slog.Logger) *RelayClient {
	timeout := cfg.PushRelay.Timeout
	if timeout <= 0 {
		timeout = defaultRelayTimeout
	}

	return &RelayClient{
		sendEndpoint:     cfg.PushRelay.SendEndpoint,
		registerEndpoint: cfg.PushRelay.RegisterEndpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// NewPushRelay exposes the relay client as the domain's PushRelay interface.
func NewPushRelay(client *RelayClient) service.PushRelay {
	return client
}

// SendBatch submits a batch of push messages to the relay's send endpoint.
// The relay accepts a JSON array of at most service.RelayBatchLimit messages.
func (c *RelayClient) SendBatch(ctx context.Context, messages []service.PushMessage) error {
	if len(messages) == 0 {
		return nil
	}
	if len(messages) > service.RelayBatchLimit {
		return errors.Errorf("batch size exceeds relay limit: %d (max %d)", len(messages), service.RelayBatchLimit)
	}

	body, err := json.Marshal(messages)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.sendEndpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to reach push relay")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return errors.Errorf("push relay returned non-success status: %d (%s)", resp.StatusCode, string(respBody))
	}

	return nil
}

// registerRequest is the wire format for the relay's token registration endpoint.
type registerRequest struct {
	ProjectID string `json:"project_id"`
}

// registerResponse is the relay's answer to a registration request.
type registerResponse struct {
	Token string `json:"token"`
}

// RegisterToken requests a fresh push token from the relay's registration
// endpoint, scoped to the given project ID.
func (c *RelayClient) RegisterToken(ctx context.Context, projectID string) (string, error) {
	body, err := json.Marshal(registerRequest{ProjectID: projectID})
	if err != nil {
		return "", errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.registerEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to reach push relay registration endpoint")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.Errorf("push relay registration returned non-success status: %d", resp.StatusCode)
	}

	var parsed registerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", errors.Wrap(err, "failed to decode registration response")
	}
	if parsed.Token == "" {
		return "", errors.New("push relay registration returned empty token")
	}

	return parsed.Token, nil
}
