package impl

import (
	"context"
	"fmt"

	"quaidirect/internal/domain/entity"
	"quaidirect/internal/domain/repository"
	"quaidirect/internal/domain/service"
	"quaidirect/internal/usecase"

	"github.com/google/uuid"
)

type fishermanService struct {
	dropRepo      repository.DropRepository
	qrcodeService service.QRCodeService
	publicBaseURL string
}

// NewFishermanService creates a new fisherman service instance
func NewFishermanService(
	dropRepo repository.DropRepository,
	qrcodeService service.QRCodeService,
	publicBaseURL string,
) usecase.FishermanUsecase {
	return &fishermanService{
		dropRepo:      dropRepo,
		qrcodeService: qrcodeService,
		publicBaseURL: publicBaseURL,
	}
}

// GetFisherman retrieves a fisherman profile
func (s *fishermanService) GetFisherman(ctx context.Context, id uuid.UUID) (*entity.Fisherman, error) {
	return s.dropRepo.FindFishermanByID(ctx, id)
}

// GetFollowQRCode renders a QR code pointing at the fisherman's public follow page.
func (s *fishermanService) GetFollowQRCode(ctx context.Context, fishermanID uuid.UUID, size int) ([]byte, error) {
	// Verify the fisherman exists before minting a QR code for them.
	if _, err := s.dropRepo.FindFishermanByID(ctx, fishermanID); err != nil {
		return nil, err
	}

	followURL := fmt.Sprintf("%s/fishermen/%s/follow", s.publicBaseURL, fishermanID)

	return s.qrcodeService.GeneratePNG(followURL, size)
}
