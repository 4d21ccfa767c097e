// Package service defines the interfaces for external-facing infrastructure
// services consumed by the use case layer.
package service

import (
	"context"

	"quaidirect/internal/domain/entity"
)

// PushMessage is a channel-agnostic push payload.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// BatchResult reports the outcome of a batch push send.
type BatchResult struct {
	SuccessCount int
	FailureCount int
	// InvalidTokens lists tokens the provider reported as unregistered or
	// malformed. Callers should deactivate the matching registrations.
	InvalidTokens []string
}

// PushSender defines the interface for sending push notifications to devices.
type PushSender interface {
	// SendBatch sends one message to many registrations, chunking the token
	// list as the provider requires. Transport failures of individual tokens
	// are reported in the result, not as an error.
	SendBatch(ctx context.Context, registrations []*entity.PushRegistration, message *PushMessage) (*BatchResult, error)

	// SendSingle sends one message to a single token.
	SendSingle(ctx context.Context, token string, message *PushMessage) error
}
