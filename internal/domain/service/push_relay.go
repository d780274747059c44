// Package service defines interfaces for external collaborators consumed by
// the use cases.
package service

import (
	"context"
)

// RelayBatchLimit is the maximum number of messages the push relay accepts in
// one request.
const RelayBatchLimit = 100

// PushMessage is a composed, addressable unit of delivery in the relay's wire
// format: a JSON array of these objects is POSTed to the relay's send endpoint.
type PushMessage struct {
	To    string         `json:"to"`
	Sound string         `json:"sound"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data"`
}

// PushRelay defines the interface for the external push relay that forwards
// composed messages to device push services. Delivery receipts are out of
// scope; a nil error means the batch was accepted by the relay.
type PushRelay interface {
	// SendBatch submits up to RelayBatchLimit messages in one relay call.
	SendBatch(ctx context.Context, messages []PushMessage) error
}
