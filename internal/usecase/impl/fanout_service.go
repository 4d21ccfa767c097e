// Package impl contains the concrete implementations of the use case layer.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/domain/service"
	"quaidirect/internal/geo"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"golang.org/x/sync/errgroup"
)

const (
	// Port followers qualify when their port lies within this distance of the
	// drop's sale location. The boundary is inclusive.
	defaultProximityRadiusKm = 10.0

	// Species shown in the email subject line and body are capped.
	emailSpeciesLimit = 3

	defaultEmailConcurrency = 8
)

type fanoutService struct {
	dropRepo         repository.DropRepository
	followRepo       repository.FollowRepository
	subscriptionRepo repository.SubscriptionRepository
	deviceRepo       repository.DeviceRepository
	notificationRepo repository.NotificationRepository
	pushSender       service.PushSender
	emailSender      service.EmailSender
	logger           *slog.Logger
	proximityKm      float64
	emailConcurrency int
	publicBaseURL    string
}

// NewFanoutService creates a new fan-out service instance
func NewFanoutService(
	dropRepo repository.DropRepository,
	followRepo repository.FollowRepository,
	subscriptionRepo repository.SubscriptionRepository,
	deviceRepo repository.DeviceRepository,
	notificationRepo repository.NotificationRepository,
	pushSender service.PushSender,
	emailSender service.EmailSender,
	logger *slog.Logger,
	proximityKm float64,
	emailConcurrency int,
	publicBaseURL string,
) usecase.FanoutUsecase {
	if proximityKm <= 0 {
		proximityKm = defaultProximityRadiusKm
	}
	if emailConcurrency <= 0 {
		emailConcurrency = defaultEmailConcurrency
	}

	return &fanoutService{
		dropRepo:         dropRepo,
		followRepo:       followRepo,
		subscriptionRepo: subscriptionRepo,
		deviceRepo:       deviceRepo,
		notificationRepo: notificationRepo,
		pushSender:       pushSender,
		emailSender:      emailSender,
		logger:           logger,
		proximityKm:      proximityKm,
		emailConcurrency: emailConcurrency,
		publicBaseURL:    publicBaseURL,
	}
}

// DispatchDropNotifications resolves the audience of a published drop and
// delivers push notifications and premium email alerts.
func (s *fanoutService) DispatchDropNotifications(ctx context.Context, dropID uuid.UUID) (*usecase.FanoutResult, error) {
	// A missing or unjoinable drop aborts the whole operation before any
	// notification is attempted.
	detail, err := s.dropRepo.FindDropDetail(ctx, dropID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch drop: %w", err)
	}

	pushAudience, err := s.resolvePushAudience(ctx, detail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve push audience: %w", err)
	}

	emailAudience, err := s.resolveEmailAudience(ctx, detail)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve email audience: %w", err)
	}

	// Open the fan-out report. The ledger is supplemental: losing it must not
	// block delivery, so failures here only log.
	notification := &entity.DropNotification{
		ID:          uuid.New(),
		DropID:      detail.ID,
		FishermanID: detail.FishermanID,
		StartedAt:   time.Now(),
	}
	ledgerOK := true
	if err := s.notificationRepo.CreateDropNotification(ctx, notification); err != nil {
		ledgerOK = false
		s.logger.Warn("failed to create fan-out report, continuing without ledger",
			slog.String("drop_id", dropID.String()),
			slog.String("error", err.Error()),
		)
	}

	pushSent, pushLogs := s.dispatchPush(ctx, detail, notification.ID, pushAudience)
	emailSent, emailLogs := s.dispatchEmail(ctx, detail, notification.ID, emailAudience)

	if ledgerOK {
		logs := append(pushLogs, emailLogs...)
		if err := s.notificationRepo.BatchCreateNotificationLogs(ctx, logs); err != nil {
			s.logger.Warn("failed to persist notification logs",
				slog.String("drop_id", dropID.String()),
				slog.String("error", err.Error()),
			)
		}

		if err := s.notificationRepo.UpdateNotificationCounts(ctx, notification.ID,
			len(pushAudience), pushSent, len(emailAudience), emailSent); err != nil {
			s.logger.Warn("failed to update fan-out counts",
				slog.String("drop_id", dropID.String()),
				slog.String("error", err.Error()),
			)
		}
	}

	return &usecase.FanoutResult{
		NotificationID: notification.ID,
		PushTargeted:   len(pushAudience),
		PushSent:       pushSent,
		EmailTargeted:  len(emailAudience),
		EmailSent:      emailSent,
	}, nil
}

// resolvePushAudience computes the deduplicated union of direct fisherman
// followers and port followers within the proximity radius.
func (s *fanoutService) resolvePushAudience(ctx context.Context, detail *entity.DropDetail) ([]uuid.UUID, error) {
	directIDs, err := s.followRepo.FindFishermanFollowerIDs(ctx, detail.FishermanID)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(directIDs))
	audience := make([]uuid.UUID, 0, len(directIDs))
	for _, id := range directIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		audience = append(audience, id)
	}

	// Unresolvable coordinates degrade silently to an empty proximity set.
	if detail.Coordinate == nil {
		return audience, nil
	}

	portFollows, err := s.followRepo.FindAllPortFollows(ctx)
	if err != nil {
		return nil, err
	}

	for _, follow := range portFollows {
		portPoint := orb.Point{follow.Longitude, follow.Latitude}
		if !geo.WithinRadius(*detail.Coordinate, portPoint, s.proximityKm) {
			continue
		}
		if _, ok := seen[follow.UserID]; ok {
			continue
		}
		seen[follow.UserID] = struct{}{}
		audience = append(audience, follow.UserID)
	}

	return audience, nil
}

// resolveEmailAudience computes the deduplicated set of users following any
// offered species who hold an entitled premium-plus subscription.
func (s *fanoutService) resolveEmailAudience(ctx context.Context, detail *entity.DropDetail) ([]*entity.EmailRecipient, error) {
	followerIDs, err := s.followRepo.FindSpeciesFollowerIDs(ctx, detail.SpeciesIDList)
	if err != nil {
		return nil, err
	}
	if len(followerIDs) == 0 {
		return nil, nil
	}

	recipients, err := s.subscriptionRepo.FindPremiumPlusRecipients(ctx, followerIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(recipients))
	deduped := make([]*entity.EmailRecipient, 0, len(recipients))
	for _, recipient := range recipients {
		if _, ok := seen[recipient.UserID]; ok {
			continue
		}
		seen[recipient.UserID] = struct{}{}
		deduped = append(deduped, recipient)
	}

	return deduped, nil
}

// dispatchPush delivers the drop announcement to every active device of the
// push audience. Provider failures degrade to counts, never errors.
func (s *fanoutService) dispatchPush(ctx context.Context, detail *entity.DropDetail, notificationID uuid.UUID, audience []uuid.UUID) (int, []*entity.NotificationLog) {
	if len(audience) == 0 {
		return 0, nil
	}

	registrations, err := s.deviceRepo.FindActiveForUsers(ctx, audience)
	if err != nil {
		s.logger.Error("failed to fetch push registrations",
			slog.String("drop_id", detail.ID.String()),
			slog.String("error", err.Error()),
		)

		return 0, nil
	}
	if len(registrations) == 0 {
		return 0, nil
	}

	message := &service.PushMessage{
		Title: detail.FishermanName,
		Body:  fmt.Sprintf("%s — sale starts %s at %s", detail.Title, detail.SaleStartAt.Format("15:04"), detail.LocationName),
		Data: map[string]string{
			"drop_id":      detail.ID.String(),
			"fisherman_id": detail.FishermanID.String(),
		},
	}

	result, err := s.pushSender.SendBatch(ctx, registrations, message)
	if err != nil {
		s.logger.Error("push dispatch failed",
			slog.String("drop_id", detail.ID.String()),
			slog.String("error", err.Error()),
		)

		return 0, nil
	}

	invalidTokens := make(map[string]struct{}, len(result.InvalidTokens))
	for _, token := range result.InvalidTokens {
		invalidTokens[token] = struct{}{}
	}

	logs := make([]*entity.NotificationLog, 0, len(registrations))
	for _, registration := range registrations {
		status := "sent"
		errorMsg := ""
		if _, invalid := invalidTokens[registration.FCMToken]; invalid {
			status = "failed"
			errorMsg = "invalid or unregistered token"

			// Retire registrations the provider rejected so the next fan-out
			// does not target them again.
			if err := s.deviceRepo.DeleteRegistration(ctx, registration.ID); err != nil {
				s.logger.Warn("failed to remove invalid registration",
					slog.String("registration_id", registration.ID.String()),
					slog.String("error", err.Error()),
				)
			}
		}

		logs = append(logs, &entity.NotificationLog{
			ID:             uuid.New(),
			NotificationID: notificationID,
			UserID:         registration.UserID,
			Channel:        entity.ChannelPush,
			Status:         status,
			ErrorMessage:   errorMsg,
			SentAt:         time.Now(),
		})
	}

	return result.SuccessCount, logs
}

// dispatchEmail sends one alert per premium recipient with bounded
// parallelism. One recipient's failure never aborts the others.
func (s *fanoutService) dispatchEmail(ctx context.Context, detail *entity.DropDetail, notificationID uuid.UUID, audience []*entity.EmailRecipient) (int, []*entity.NotificationLog) {
	if len(audience) == 0 {
		return 0, nil
	}

	speciesNames := detail.SpeciesNames
	if len(speciesNames) > emailSpeciesLimit {
		speciesNames = speciesNames[:emailSpeciesLimit]
	}

	alert := &service.DropAlertEmail{
		FishermanName: detail.FishermanName,
		DropTitle:     detail.Title,
		LocationName:  detail.LocationName,
		SpeciesNames:  speciesNames,
		SaleStartAt:   detail.SaleStartAt,
		DropURL:       s.dropURL(detail.ID),
	}

	var (
		mu   sync.Mutex
		sent int
		logs = make([]*entity.NotificationLog, 0, len(audience))
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(s.emailConcurrency)

	for _, recipient := range audience {
		group.Go(func() error {
			status := "sent"
			errorMsg := ""

			if err := s.emailSender.SendDropAlert(groupCtx, recipient.Email, alert); err != nil {
				status = "failed"
				errorMsg = err.Error()
				s.logger.Warn("email dispatch failed for recipient",
					slog.String("drop_id", detail.ID.String()),
					slog.String("user_id", recipient.UserID.String()),
					slog.String("error", err.Error()),
				)
			}

			mu.Lock()
			defer mu.Unlock()
			if status == "sent" {
				sent++
			}
			logs = append(logs, &entity.NotificationLog{
				ID:             uuid.New(),
				NotificationID: notificationID,
				UserID:         recipient.UserID,
				Channel:        entity.ChannelEmail,
				Status:         status,
				ErrorMessage:   errorMsg,
				SentAt:         time.Now(),
			})

			// Per-recipient failures are absorbed; never cancel the group.
			return nil
		})
	}

	// Goroutines only return nil; Wait is for completion, not errors.
	_ = group.Wait()

	return sent, logs
}

func (s *fanoutService) dropURL(dropID uuid.UUID) string {
	if s.publicBaseURL == "" {
		return ""
	}

	return fmt.Sprintf("%s/drops/%s", s.publicBaseURL, dropID)
}
