package impl

import (
	"context"
	"testing"

	"quaidirect/internal/domain/entity"
	domainerrors "quaidirect/internal/domain/errors"
	mockRepo "quaidirect/internal/mocks/repository"
	mockSvc "quaidirect/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFishermanService_GetFollowQRCode(t *testing.T) {
	t.Parallel()

	t.Run("renders a QR code for the follow page", func(t *testing.T) {
		t.Parallel()

		dropRepo := mockRepo.NewMockDropRepository(t)
		qrcodeService := mockSvc.NewMockQRCodeService(t)
		svc := NewFishermanService(dropRepo, qrcodeService, "https://quaidirect.fr")
		ctx := context.Background()
		fishermanID := uuid.New()

		dropRepo.EXPECT().FindFishermanByID(ctx, fishermanID).
			Return(&entity.Fisherman{ID: fishermanID, DisplayName: "Armement Kerbiriou"}, nil)

		wantURL := "https://quaidirect.fr/fishermen/" + fishermanID.String() + "/follow"
		qrcodeService.EXPECT().GeneratePNG(wantURL, 512).
			Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := svc.GetFollowQRCode(ctx, fishermanID, 512)
		require.NoError(t, err)
		assert.NotEmpty(t, png)
	})

	t.Run("unknown fisherman yields no QR code", func(t *testing.T) {
		t.Parallel()

		dropRepo := mockRepo.NewMockDropRepository(t)
		qrcodeService := mockSvc.NewMockQRCodeService(t)
		svc := NewFishermanService(dropRepo, qrcodeService, "https://quaidirect.fr")
		ctx := context.Background()
		fishermanID := uuid.New()

		dropRepo.EXPECT().FindFishermanByID(ctx, fishermanID).
			Return(nil, domainerrors.ErrFishermanNotFound)

		png, err := svc.GetFollowQRCode(ctx, fishermanID, 512)
		assert.ErrorIs(t, err, domainerrors.ErrFishermanNotFound)
		assert.Nil(t, png)
	})
}
