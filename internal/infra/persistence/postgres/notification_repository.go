package postgres

import (
	"context"

	"quaidirect/internal/domain/entity"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationLogBatchSize = 200

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateDropNotification persists a new fan-out run record.
func (repo *notificationRepository) CreateDropNotification(ctx context.Context, notification *entity.DropNotification) error {
	notificationM := fromNotificationDomain(notification)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrFanoutFailed.WrapMessage("invalid drop reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create drop notification")
	}

	// Update the entity with generated values
	notification.ID = notificationM.ID
	notification.CreatedAt = notificationM.CreatedAt
	notification.UpdatedAt = notificationM.UpdatedAt

	return nil
}

// BatchCreateNotificationLogs persists ledger entries for a fan-out run.
func (repo *notificationRepository) BatchCreateNotificationLogs(ctx context.Context, logs []*entity.NotificationLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.NotificationLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromNotificationLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).
		CreateInBatches(logModels, notificationLogBatchSize).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create notification logs")
	}

	return nil
}

// UpdateNotificationCounts stores the final per-channel counts of a run.
func (repo *notificationRepository) UpdateNotificationCounts(ctx context.Context, id uuid.UUID, pushTargeted, pushSent, emailTargeted, emailSent int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DropNotificationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"push_targeted":  pushTargeted,
			"push_sent":      pushSent,
			"email_targeted": emailTargeted,
			"email_sent":     emailSent,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update notification counts")
	}

	if result.RowsAffected == 0 {
		return errors.New("notification not found")
	}

	return nil
}

// FindNotificationsByFisherman retrieves fan-out runs for a fisherman with
// pagination, newest first.
func (repo *notificationRepository) FindNotificationsByFisherman(ctx context.Context, fishermanID uuid.UUID, limit, offset int) ([]*entity.DropNotification, error) {
	var notificationModels []*model.DropNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("fisherman_id = ?", fishermanID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by fisherman")
	}

	notifications := make([]*entity.DropNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM DropNotificationModel to a domain DropNotification entity.
func toNotificationDomain(data *model.DropNotificationModel) *entity.DropNotification {
	if data == nil {
		return nil
	}

	return &entity.DropNotification{
		ID:            data.ID,
		DropID:        data.DropID,
		FishermanID:   data.FishermanID,
		PushTargeted:  data.PushTargeted,
		PushSent:      data.PushSent,
		EmailTargeted: data.EmailTargeted,
		EmailSent:     data.EmailSent,
		StartedAt:     data.StartedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromNotificationDomain converts a domain DropNotification entity to a GORM DropNotificationModel.
func fromNotificationDomain(data *entity.DropNotification) *model.DropNotificationModel {
	if data == nil {
		return nil
	}

	return &model.DropNotificationModel{
		ID:            data.ID,
		DropID:        data.DropID,
		FishermanID:   data.FishermanID,
		PushTargeted:  data.PushTargeted,
		PushSent:      data.PushSent,
		EmailTargeted: data.EmailTargeted,
		EmailSent:     data.EmailSent,
		StartedAt:     data.StartedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromNotificationLogDomain converts a domain NotificationLog entity to a GORM NotificationLogModel.
func fromNotificationLogDomain(data *entity.NotificationLog) *model.NotificationLogModel {
	if data == nil {
		return nil
	}

	return &model.NotificationLogModel{
		ID:             data.ID,
		NotificationID: data.NotificationID,
		UserID:         data.UserID,
		Channel:        string(data.Channel),
		Status:         data.Status,
		ErrorMessage:   data.ErrorMessage,
		SentAt:         data.SentAt,
	}
}
