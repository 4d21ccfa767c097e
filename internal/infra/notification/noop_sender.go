package notification

import (
	"context"
	"log/slog"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/domain/service"
)

// noopSender is a no-op implementation when Firebase is not configured
type noopSender struct {
	logger *slog.Logger
}

// NewNoopSender creates a push sender that drops every message. Used in
// environments without Firebase credentials.
func NewNoopSender(logger *slog.Logger) service.PushSender {
	return &noopSender{logger: logger}
}

func (s *noopSender) SendSingle(ctx context.Context, token string, message *service.PushMessage) error {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping")

	return nil
}

func (s *noopSender) SendBatch(ctx context.Context, registrations []*entity.PushRegistration, message *service.PushMessage) (*service.BatchResult, error) {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping batch",
		slog.Int("registrations", len(registrations)),
	)

	return &service.BatchResult{}, nil
}
