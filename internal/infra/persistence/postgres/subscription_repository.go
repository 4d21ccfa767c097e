package postgres

import (
	"context"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindPremiumPlusRecipients filters the given user IDs down to those holding
// an entitled premium-plus subscription and joins their email address.
func (repo *subscriptionRepository) FindPremiumPlusRecipients(ctx context.Context, userIDs []uuid.UUID) ([]*entity.EmailRecipient, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var rows []struct {
		UserID uuid.UUID
		Email  string
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.UserSubscriptionModel{}).
		Select("user_subscriptions.user_id, users.email").
		Joins("JOIN users ON users.id = user_subscriptions.user_id").
		Where("user_subscriptions.user_id IN ?", userIDs).
		Where("user_subscriptions.tier = ?", string(entity.TierPremiumPlus)).
		Where("user_subscriptions.status IN ?", []string{
			string(entity.StatusActive),
			string(entity.StatusTrialing),
		}).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find premium plus recipients")
	}

	recipients := make([]*entity.EmailRecipient, 0, len(rows))
	for _, row := range rows {
		recipients = append(recipients, &entity.EmailRecipient{
			UserID: row.UserID,
			Email:  row.Email,
		})
	}

	return recipients, nil
}

// FindSubscriptionByUser retrieves a user's subscription record.
func (repo *subscriptionRepository) FindSubscriptionByUser(ctx context.Context, userID uuid.UUID) (*entity.UserSubscription, error) {
	var subscriptionM model.UserSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by user")
	}

	return &entity.UserSubscription{
		ID:        subscriptionM.ID,
		UserID:    subscriptionM.UserID,
		Tier:      entity.SubscriptionTier(subscriptionM.Tier),
		Status:    entity.SubscriptionStatus(subscriptionM.Status),
		CreatedAt: subscriptionM.CreatedAt,
		UpdatedAt: subscriptionM.UpdatedAt,
	}, nil
}
