// Package notification contains the FCM-backed push sender.
package notification

import (
	"context"
	"fmt"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// Firebase limits multicast sends to 500 tokens per request.
const multicastBatchLimit = 500

type firebaseSender struct {
	client *messaging.Client
}

// NewFirebaseSender creates a new FCM-backed push sender instance
func NewFirebaseSender(ctx context.Context, credentialsPath string) (service.PushSender, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseSender{
		client: client,
	}, nil
}

// SendSingle sends a push notification to a single device token
func (s *firebaseSender) SendSingle(ctx context.Context, token string, message *service.PushMessage) error {
	fcmMessage := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data: message.Data,
	}

	_, err := s.client.Send(ctx, fcmMessage)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// SendBatch sends one message to many registrations, chunking the token list
// to Firebase's 500-token multicast limit.
func (s *firebaseSender) SendBatch(ctx context.Context, registrations []*entity.PushRegistration, message *service.PushMessage) (*service.BatchResult, error) {
	result := &service.BatchResult{}
	if len(registrations) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(registrations))
	for _, registration := range registrations {
		tokens = append(tokens, registration.FCMToken)
	}

	for start := 0; start < len(tokens); start += multicastBatchLimit {
		end := min(start+multicastBatchLimit, len(tokens))
		chunk := tokens[start:end]

		fcmMessage := &messaging.MulticastMessage{
			Tokens: chunk,
			Notification: &messaging.Notification{
				Title: message.Title,
				Body:  message.Body,
			},
			Data: message.Data,
		}

		response, err := s.client.SendEachForMulticast(ctx, fcmMessage)
		if err != nil {
			return nil, fmt.Errorf("failed to send multicast notification: %w", err)
		}

		result.SuccessCount += response.SuccessCount
		result.FailureCount += response.FailureCount

		// Collect invalid tokens so callers can deactivate the registrations
		for idx, sendResponse := range response.Responses {
			if sendResponse.Error != nil {
				if messaging.IsInvalidArgument(sendResponse.Error) ||
					messaging.IsUnregistered(sendResponse.Error) {
					result.InvalidTokens = append(result.InvalidTokens, chunk[idx])
				}
			}
		}
	}

	return result, nil
}
