// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"quaidirect/internal/domain/entity"
	domainerrors "quaidirect/internal/domain/errors"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dropRepository implements the repository.DropRepository interface.
type dropRepository struct {
	db *gorm.DB
}

// NewDropRepository is the constructor for dropRepository.
func NewDropRepository(db *gorm.DB) repository.DropRepository {
	return &dropRepository{
		db: db,
	}
}

// CreateDrop persists a new drop together with its offer rows.
func (repo *dropRepository) CreateDrop(ctx context.Context, drop *entity.Drop) error {
	dropM := fromDropDomain(drop)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(dropM).Error; err != nil {
			return err
		}

		offers := make([]model.DropOfferModel, 0, len(drop.SpeciesIDs))
		for _, speciesID := range drop.SpeciesIDs {
			offers = append(offers, model.DropOfferModel{
				DropID:    dropM.ID,
				SpeciesID: speciesID,
			})
		}
		if len(offers) == 0 {
			return nil
		}

		return tx.Create(&offers).Error
	})
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrDropCreationFailed.WrapMessage("invalid fisherman, port, or species reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrDropCreationFailed.WrapMessage("missing required drop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create drop")
	}

	// Update the entity with generated values
	drop.ID = dropM.ID
	drop.CreatedAt = dropM.CreatedAt
	drop.UpdatedAt = dropM.UpdatedAt

	return nil
}

// FindDropDetail retrieves a drop joined with its fisherman, offered species,
// and resolved sale location.
func (repo *dropRepository) FindDropDetail(ctx context.Context, id uuid.UUID) (*entity.DropDetail, error) {
	var dropM model.DropModel

	if err := repo.db.WithContext(ctx).
		Preload("Offers").
		Where("id = ?", id).
		First(&dropM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDropNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop by ID")
	}

	var fishermanM model.FishermanModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", dropM.FishermanID).
		First(&fishermanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrDropNotFound
		}

		return nil, errors.Wrap(err, "failed to find drop fisherman")
	}

	speciesIDs := make([]uuid.UUID, 0, len(dropM.Offers))
	for _, offer := range dropM.Offers {
		speciesIDs = append(speciesIDs, offer.SpeciesID)
	}

	speciesNames, err := repo.findSpeciesNames(ctx, speciesIDs)
	if err != nil {
		return nil, err
	}

	locationName, coordinate, err := repo.resolveLocation(ctx, &dropM)
	if err != nil {
		return nil, err
	}

	detail := &entity.DropDetail{
		Drop:          *toDropDomain(&dropM),
		FishermanName: fishermanM.DisplayName,
		SpeciesNames:  speciesNames,
		LocationName:  locationName,
		Coordinate:    coordinate,
		SpeciesIDList: speciesIDs,
	}

	return detail, nil
}

// FindDropsByFisherman retrieves a fisherman's drops with pagination, newest first.
func (repo *dropRepository) FindDropsByFisherman(ctx context.Context, fishermanID uuid.UUID, limit, offset int) ([]*entity.Drop, error) {
	var dropModels []*model.DropModel

	if err := repo.db.WithContext(ctx).
		Preload("Offers").
		Where("fisherman_id = ?", fishermanID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&dropModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find drops by fisherman")
	}

	drops := make([]*entity.Drop, 0, len(dropModels))
	for _, dropM := range dropModels {
		drops = append(drops, toDropDomain(dropM))
	}

	return drops, nil
}

// MarkPublished transitions a draft drop to published.
func (repo *dropRepository) MarkPublished(ctx context.Context, fishermanID, dropID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DropModel{}).
		Where("id = ? AND fisherman_id = ? AND status = ?", dropID, fishermanID, string(entity.DropStatusDraft)).
		Update("status", string(entity.DropStatusPublished))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark drop published")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDropNotFound
	}

	return nil
}

// FindFishermanByID retrieves a fisherman profile.
func (repo *dropRepository) FindFishermanByID(ctx context.Context, id uuid.UUID) (*entity.Fisherman, error) {
	var fishermanM model.FishermanModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&fishermanM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrFishermanNotFound
		}

		return nil, errors.Wrap(err, "failed to find fisherman by ID")
	}

	return &entity.Fisherman{
		ID:          fishermanM.ID,
		DisplayName: fishermanM.DisplayName,
		BoatName:    fishermanM.BoatName,
		Premium:     fishermanM.Premium,
		CreatedAt:   fishermanM.CreatedAt,
		UpdatedAt:   fishermanM.UpdatedAt,
	}, nil
}

func (repo *dropRepository) findSpeciesNames(ctx context.Context, speciesIDs []uuid.UUID) ([]string, error) {
	if len(speciesIDs) == 0 {
		return nil, nil
	}

	var speciesModels []*model.SpeciesModel
	if err := repo.db.WithContext(ctx).
		Where("id IN ?", speciesIDs).
		Find(&speciesModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find drop species")
	}

	// Preserve the offer order
	nameByID := make(map[uuid.UUID]string, len(speciesModels))
	for _, speciesM := range speciesModels {
		nameByID[speciesM.ID] = speciesM.CommonName
	}

	names := make([]string, 0, len(speciesIDs))
	for _, id := range speciesIDs {
		if name, ok := nameByID[id]; ok {
			names = append(names, name)
		}
	}

	return names, nil
}

func (repo *dropRepository) resolveLocation(ctx context.Context, dropM *model.DropModel) (string, *orb.Point, error) {
	switch entity.LocationKind(dropM.LocationKind) {
	case entity.LocationKindPort:
		if dropM.PortID == nil {
			return "", nil, repository.ErrDropNotFound
		}

		var portM model.PortModel
		if err := repo.db.WithContext(ctx).
			Where("id = ?", *dropM.PortID).
			First(&portM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", nil, repository.ErrDropNotFound
			}

			return "", nil, errors.Wrap(err, "failed to resolve drop port")
		}

		point := orb.Point{portM.Longitude, portM.Latitude}

		return portM.Name, &point, nil

	case entity.LocationKindSalePoint:
		if dropM.SalePointID == nil {
			return "", nil, repository.ErrDropNotFound
		}

		var salePointM model.SalePointModel
		if err := repo.db.WithContext(ctx).
			Where("id = ?", *dropM.SalePointID).
			First(&salePointM).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", nil, repository.ErrDropNotFound
			}

			return "", nil, errors.Wrap(err, "failed to resolve drop sale point")
		}

		point := orb.Point{salePointM.Longitude, salePointM.Latitude}

		return salePointM.Name, &point, nil

	default:
		return "", nil, repository.ErrDropNotFound
	}
}

// --- Mapper Functions ---

// toDropDomain converts a GORM DropModel to a domain Drop entity.
func toDropDomain(data *model.DropModel) *entity.Drop {
	if data == nil {
		return nil
	}

	speciesIDs := make([]uuid.UUID, 0, len(data.Offers))
	for _, offer := range data.Offers {
		speciesIDs = append(speciesIDs, offer.SpeciesID)
	}

	return &entity.Drop{
		ID:              data.ID,
		FishermanID:     data.FishermanID,
		Title:           data.Title,
		SaleStartAt:     data.SaleStartAt,
		Premium:         data.Premium,
		Status:          entity.DropStatus(data.Status),
		VisibleAt:       data.VisibleAt,
		PublicVisibleAt: data.PublicVisibleAt,
		Location: entity.SaleLocation{
			Kind:        entity.LocationKind(data.LocationKind),
			PortID:      data.PortID,
			SalePointID: data.SalePointID,
		},
		SpeciesIDs:  speciesIDs,
		TotalSent:   data.TotalSent,
		TotalFailed: data.TotalFailed,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromDropDomain converts a domain Drop entity to a GORM DropModel.
func fromDropDomain(data *entity.Drop) *model.DropModel {
	if data == nil {
		return nil
	}

	return &model.DropModel{
		ID:              data.ID,
		FishermanID:     data.FishermanID,
		Title:           data.Title,
		SaleStartAt:     data.SaleStartAt,
		Premium:         data.Premium,
		Status:          string(data.Status),
		VisibleAt:       data.VisibleAt,
		PublicVisibleAt: data.PublicVisibleAt,
		LocationKind:    string(data.Location.Kind),
		PortID:          data.Location.PortID,
		SalePointID:     data.Location.SalePointID,
		TotalSent:       data.TotalSent,
		TotalFailed:     data.TotalFailed,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
