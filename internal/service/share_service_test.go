package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"wallet-client/internal/api"
	mockapi "wallet-client/internal/mock/mock_api"
	mockservice "wallet-client/internal/mock/mock_service"
	"wallet-client/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestShareService_Invite(t *testing.T) {
	t.Run("owner invites", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		wallet := ownedWallet(100000)
		cache := cacheFor(ctrl, wallet)

		mockAPI := mockapi.NewMockClient(ctrl)
		mockAPI.EXPECT().
			CreateShareInvitation(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, inv api.ShareInvitation) (*models.WalletShare, error) {
				assert.Equal(t, wallet.ID, inv.WalletID)
				assert.Equal(t, models.PermissionEdit, inv.Permission)
				return &models.WalletShare{
					ID:         uuid.New(),
					WalletID:   inv.WalletID,
					Permission: inv.Permission,
					Status:     models.ShareStatusPending,
				}, nil
			})

		s := NewShareService(mockAPI, cache, slog.Default())
		share, err := s.Invite(context.Background(), wallet.ID, "friend@example.com", models.PermissionEdit, "join me")

		require.NoError(t, err)
		assert.Equal(t, models.ShareStatusPending, share.Status)
	})

	t.Run("edit-level actor cannot share", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		wallet := ownedWallet(100000)
		wallet.Sharing = &models.SharingInfo{ShareID: uuid.New(), Permission: models.PermissionEdit}
		cache := cacheFor(ctrl, wallet)
		mockAPI := mockapi.NewMockClient(ctrl)

		s := NewShareService(mockAPI, cache, slog.Default())
		_, err := s.Invite(context.Background(), wallet.ID, "friend@example.com", models.PermissionView, "")

		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("unknown wallet", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cache := cacheFor(ctrl)
		mockAPI := mockapi.NewMockClient(ctrl)

		s := NewShareService(mockAPI, cache, slog.Default())
		_, err := s.Invite(context.Background(), uuid.New(), "friend@example.com", models.PermissionView, "")

		assert.ErrorIs(t, err, api.ErrNotFound)
	})
}

func TestShareService_AcceptRefreshesWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mockservice.NewMockWalletCache(ctrl)
	cache.EXPECT().Refresh(gomock.Any()).Return(nil)

	mockAPI := mockapi.NewMockClient(ctrl)
	mockAPI.EXPECT().AcceptInvitation(gomock.Any(), "tok-123").Return(nil)

	s := NewShareService(mockAPI, cache, slog.Default())
	require.NoError(t, s.Accept(context.Background(), "tok-123"))
}

func TestShareService_AcceptFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cache := mockservice.NewMockWalletCache(ctrl)
	mockAPI := mockapi.NewMockClient(ctrl)
	mockAPI.EXPECT().AcceptInvitation(gomock.Any(), "tok-123").Return(errors.New("expired"))

	s := NewShareService(mockAPI, cache, slog.Default())
	err := s.Accept(context.Background(), "tok-123")
	assert.ErrorContains(t, err, "failed to accept invitation")
}

func TestShareService_RevokeRefreshesWallets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shareID := uuid.New()
	cache := mockservice.NewMockWalletCache(ctrl)
	cache.EXPECT().Refresh(gomock.Any()).Return(nil)

	mockAPI := mockapi.NewMockClient(ctrl)
	mockAPI.EXPECT().RevokeShare(gomock.Any(), shareID).Return(nil)

	s := NewShareService(mockAPI, cache, slog.Default())
	require.NoError(t, s.Revoke(context.Background(), shareID))
}

func TestShareService_UpdatePermission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	shareID := uuid.New()
	cache := mockservice.NewMockWalletCache(ctrl)
	cache.EXPECT().Refresh(gomock.Any()).Return(nil)

	mockAPI := mockapi.NewMockClient(ctrl)
	mockAPI.EXPECT().
		UpdateSharePermission(gomock.Any(), shareID, models.PermissionEdit).
		Return(&models.WalletShare{ID: shareID, Permission: models.PermissionEdit, Status: models.ShareStatusAccepted}, nil)

	s := NewShareService(mockAPI, cache, slog.Default())
	share, err := s.UpdatePermission(context.Background(), shareID, models.PermissionEdit)

	require.NoError(t, err)
	assert.Equal(t, models.PermissionEdit, share.Permission)
}
