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
	"gorm.io/gorm/clause"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// RegisterDevice creates or refreshes a push registration for a device.
// An existing row for the same (user, device) pair gets its token updated.
func (repo *deviceRepository) RegisterDevice(ctx context.Context, registration *entity.PushRegistration) error {
	registrationM := fromRegistrationDomain(registration)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "device_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"fcm_token", "platform", "is_active", "updated_at",
			}),
		}).
		Create(registrationM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to register device")
	}

	// Update the entity with generated values
	registration.ID = registrationM.ID
	registration.CreatedAt = registrationM.CreatedAt
	registration.UpdatedAt = registrationM.UpdatedAt

	return nil
}

// FindActiveForUsers retrieves all active push registrations for a list of
// user IDs.
func (repo *deviceRepository) FindActiveForUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushRegistration, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var registrationModels []*model.PushRegistrationModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ? AND is_active = ?", userIDs, true).
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active registrations for users")
	}

	registrations := make([]*entity.PushRegistration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, toRegistrationDomain(registrationM))
	}

	return registrations, nil
}

// DeleteRegistration removes a push registration (soft delete).
func (repo *deviceRepository) DeleteRegistration(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.PushRegistrationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// FindByUser retrieves all active registrations of one user.
func (repo *deviceRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.PushRegistration, error) {
	var registrationModels []*model.PushRegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at DESC").
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find registrations by user")
	}

	registrations := make([]*entity.PushRegistration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, toRegistrationDomain(registrationM))
	}

	return registrations, nil
}

// --- Mapper Functions ---

// toRegistrationDomain converts a GORM PushRegistrationModel to a domain PushRegistration entity.
func toRegistrationDomain(data *model.PushRegistrationModel) *entity.PushRegistration {
	if data == nil {
		return nil
	}

	return &entity.PushRegistration{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromRegistrationDomain converts a domain PushRegistration entity to a GORM PushRegistrationModel.
func fromRegistrationDomain(data *entity.PushRegistration) *model.PushRegistrationModel {
	if data == nil {
		return nil
	}

	return &model.PushRegistrationModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
