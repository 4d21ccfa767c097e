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

// followRepository implements the repository.FollowRepository interface.
type followRepository struct {
	db *gorm.DB
}

// NewFollowRepository is the constructor for followRepository.
func NewFollowRepository(db *gorm.DB) repository.FollowRepository {
	return &followRepository{
		db: db,
	}
}

// FindFishermanFollowerIDs returns the IDs of all users directly following the
// given fisherman.
func (repo *followRepository) FindFishermanFollowerIDs(ctx context.Context, fishermanID uuid.UUID) ([]uuid.UUID, error) {
	var userIDs []uuid.UUID

	if err := repo.db.WithContext(ctx).
		Model(&model.FishermanFollowModel{}).
		Where("fisherman_id = ?", fishermanID).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find fisherman followers")
	}

	return userIDs, nil
}

// FindAllPortFollows loads every port follow joined with its port coordinates.
func (repo *followRepository) FindAllPortFollows(ctx context.Context) ([]*entity.PortFollow, error) {
	var rows []struct {
		model.PortFollowModel
		PortName  string
		Latitude  float64
		Longitude float64
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.PortFollowModel{}).
		Select("port_follows.*, ports.name AS port_name, ports.latitude, ports.longitude").
		Joins("JOIN ports ON ports.id = port_follows.port_id").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find port follows")
	}

	follows := make([]*entity.PortFollow, 0, len(rows))
	for _, row := range rows {
		follows = append(follows, &entity.PortFollow{
			ID:        row.ID,
			UserID:    row.UserID,
			PortID:    row.PortID,
			PortName:  row.PortName,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			CreatedAt: row.CreatedAt,
		})
	}

	return follows, nil
}

// FindSpeciesFollowerIDs returns the distinct IDs of users following any of
// the given species.
func (repo *followRepository) FindSpeciesFollowerIDs(ctx context.Context, speciesIDs []uuid.UUID) ([]uuid.UUID, error) {
	if len(speciesIDs) == 0 {
		return nil, nil
	}

	var userIDs []uuid.UUID
	if err := repo.db.WithContext(ctx).
		Model(&model.SpeciesFollowModel{}).
		Distinct("user_id").
		Where("species_id IN ?", speciesIDs).
		Pluck("user_id", &userIDs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find species followers")
	}

	return userIDs, nil
}

// CreateFishermanFollow persists a (user, fisherman) follow relation.
func (repo *followRepository) CreateFishermanFollow(ctx context.Context, follow *entity.FishermanFollow) error {
	followM := &model.FishermanFollowModel{
		UserID:      follow.UserID,
		FishermanID: follow.FishermanID,
	}

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		return repo.mapCreateError(err, "failed to create fisherman follow")
	}

	follow.ID = followM.ID
	follow.CreatedAt = followM.CreatedAt

	return nil
}

// CreatePortFollow persists a (user, port) follow relation.
func (repo *followRepository) CreatePortFollow(ctx context.Context, follow *entity.PortFollow) error {
	followM := &model.PortFollowModel{
		UserID: follow.UserID,
		PortID: follow.PortID,
	}

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		return repo.mapCreateError(err, "failed to create port follow")
	}

	follow.ID = followM.ID
	follow.CreatedAt = followM.CreatedAt

	return nil
}

// CreateSpeciesFollow persists a (user, species) follow relation.
func (repo *followRepository) CreateSpeciesFollow(ctx context.Context, follow *entity.SpeciesFollow) error {
	followM := &model.SpeciesFollowModel{
		UserID:    follow.UserID,
		SpeciesID: follow.SpeciesID,
	}

	if err := repo.db.WithContext(ctx).Create(followM).Error; err != nil {
		return repo.mapCreateError(err, "failed to create species follow")
	}

	follow.ID = followM.ID
	follow.CreatedAt = followM.CreatedAt

	return nil
}

// DeleteFishermanFollow removes a (user, fisherman) follow relation.
func (repo *followRepository) DeleteFishermanFollow(ctx context.Context, userID, fishermanID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND fisherman_id = ?", userID, fishermanID).
		Delete(&model.FishermanFollowModel{})

	return repo.mapDeleteResult(result, "failed to delete fisherman follow")
}

// DeletePortFollow removes a (user, port) follow relation.
func (repo *followRepository) DeletePortFollow(ctx context.Context, userID, portID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND port_id = ?", userID, portID).
		Delete(&model.PortFollowModel{})

	return repo.mapDeleteResult(result, "failed to delete port follow")
}

// DeleteSpeciesFollow removes a (user, species) follow relation.
func (repo *followRepository) DeleteSpeciesFollow(ctx context.Context, userID, speciesID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND species_id = ?", userID, speciesID).
		Delete(&model.SpeciesFollowModel{})

	return repo.mapDeleteResult(result, "failed to delete species follow")
}

// FindFollowsByUser retrieves all follow relations of one user.
func (repo *followRepository) FindFollowsByUser(ctx context.Context, userID uuid.UUID) (*entity.UserFollows, error) {
	follows := &entity.UserFollows{}

	var fishermanModels []*model.FishermanFollowModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&fishermanModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find fisherman follows by user")
	}
	for _, followM := range fishermanModels {
		follows.Fishermen = append(follows.Fishermen, &entity.FishermanFollow{
			ID:          followM.ID,
			UserID:      followM.UserID,
			FishermanID: followM.FishermanID,
			CreatedAt:   followM.CreatedAt,
		})
	}

	var portRows []struct {
		model.PortFollowModel
		PortName  string
		Latitude  float64
		Longitude float64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.PortFollowModel{}).
		Select("port_follows.*, ports.name AS port_name, ports.latitude, ports.longitude").
		Joins("JOIN ports ON ports.id = port_follows.port_id").
		Where("port_follows.user_id = ?", userID).
		Order("port_follows.created_at DESC").
		Scan(&portRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find port follows by user")
	}
	for _, row := range portRows {
		follows.Ports = append(follows.Ports, &entity.PortFollow{
			ID:        row.ID,
			UserID:    row.UserID,
			PortID:    row.PortID,
			PortName:  row.PortName,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			CreatedAt: row.CreatedAt,
		})
	}

	var speciesModels []*model.SpeciesFollowModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&speciesModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find species follows by user")
	}
	for _, followM := range speciesModels {
		follows.Species = append(follows.Species, &entity.SpeciesFollow{
			ID:        followM.ID,
			UserID:    followM.UserID,
			SpeciesID: followM.SpeciesID,
			CreatedAt: followM.CreatedAt,
		})
	}

	return follows, nil
}

func (repo *followRepository) mapCreateError(err error, msg string) error {
	if isUniqueConstraintViolation(err) {
		return repository.ErrDuplicateFollow
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid follow target reference")
	}

	return domainerrors.NewDatabaseExecuteError(err, msg)
}

func (repo *followRepository) mapDeleteResult(result *gorm.DB, msg string) error {
	if result.Error != nil {
		return errors.Wrap(result.Error, msg)
	}

	if result.RowsAffected == 0 {
		return repository.ErrFollowNotFound
	}

	return nil
}
