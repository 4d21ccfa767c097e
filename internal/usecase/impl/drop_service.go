package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "quaidirect/internal/delivery/context"
	"quaidirect/internal/domain/entity"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/domain/service"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrInvalidSaleLocation is returned when the input does not reference
	// exactly one of a port or a sale point.
	ErrInvalidSaleLocation = errors.New("exactly one of portId or salePointId must be provided")
)

const defaultEarlyAccessLead = time.Hour

type dropService struct {
	dropRepo         repository.DropRepository
	notificationRepo repository.NotificationRepository
	eventPublisher   service.EventPublisher
	logger           *slog.Logger
	earlyAccessLead  time.Duration
}

// NewDropService creates a new drop service instance
func NewDropService(
	dropRepo repository.DropRepository,
	notificationRepo repository.NotificationRepository,
	eventPublisher service.EventPublisher,
	logger *slog.Logger,
	earlyAccessLead time.Duration,
) usecase.DropUsecase {
	if earlyAccessLead <= 0 {
		earlyAccessLead = defaultEarlyAccessLead
	}

	return &dropService{
		dropRepo:         dropRepo,
		notificationRepo: notificationRepo,
		eventPublisher:   eventPublisher,
		logger:           logger,
		earlyAccessLead:  earlyAccessLead,
	}
}

// CreateDrop creates a draft drop with its visibility windows computed from
// the fisherman's premium standing.
func (s *dropService) CreateDrop(ctx context.Context, input *usecase.CreateDropInput) (*entity.Drop, error) {
	// The sale location is a tagged variant: port or sale point, never both.
	if (input.PortID == nil) == (input.SalePointID == nil) {
		return nil, ErrInvalidSaleLocation
	}

	fisherman, err := s.dropRepo.FindFishermanByID(ctx, input.FishermanID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch fisherman: %w", err)
	}

	location := entity.SaleLocation{}
	if input.PortID != nil {
		location.Kind = entity.LocationKindPort
		location.PortID = input.PortID
	} else {
		location.Kind = entity.LocationKindSalePoint
		location.SalePointID = input.SalePointID
	}

	// Premium fishermen get a follower-only head start: the drop is visible
	// to followers immediately and to everyone after the lead elapses.
	now := time.Now()
	visibleAt := now
	publicVisibleAt := now
	if fisherman.Premium {
		publicVisibleAt = now.Add(s.earlyAccessLead)
	}

	drop := &entity.Drop{
		ID:              uuid.New(),
		FishermanID:     input.FishermanID,
		Title:           input.Title,
		SaleStartAt:     input.SaleStartAt,
		Premium:         fisherman.Premium,
		Status:          entity.DropStatusDraft,
		VisibleAt:       visibleAt,
		PublicVisibleAt: publicVisibleAt,
		Location:        location,
		SpeciesIDs:      input.SpeciesIDs,
	}

	if err := s.dropRepo.CreateDrop(ctx, drop); err != nil {
		return nil, err
	}

	return drop, nil
}

// PublishDrop transitions a draft drop to published and enqueues the
// notification fan-out event.
func (s *dropService) PublishDrop(ctx context.Context, fishermanID, dropID uuid.UUID) error {
	if err := s.dropRepo.MarkPublished(ctx, fishermanID, dropID); err != nil {
		if errors.Is(err, repository.ErrDropNotFound) {
			return domainerrors.ErrDropNotPublishable.WrapMessage("no draft drop for this fisherman")
		}

		return err
	}

	event := &service.DropEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		DropID:    dropID,
	}

	// Publication already happened; a publish failure only delays the
	// fan-out, so it degrades to a log instead of rolling back.
	if err := s.eventPublisher.PublishDropEvent(ctx, event); err != nil {
		s.logger.Error("failed to publish drop event",
			slog.String("drop_id", dropID.String()),
			slog.String("error", err.Error()),
		)
	}

	return nil
}

// GetFishermanDrops retrieves a fisherman's drops with pagination
func (s *dropService) GetFishermanDrops(ctx context.Context, fishermanID uuid.UUID, limit, offset int) ([]*entity.Drop, error) {
	return s.dropRepo.FindDropsByFisherman(ctx, fishermanID, limit, offset)
}

// GetNotificationHistory retrieves fan-out run reports for a fisherman with pagination
func (s *dropService) GetNotificationHistory(ctx context.Context, fishermanID uuid.UUID, limit, offset int) ([]*entity.DropNotification, error) {
	return s.notificationRepo.FindNotificationsByFisherman(ctx, fishermanID, limit, offset)
}
