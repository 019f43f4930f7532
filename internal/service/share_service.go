package service

import (
	"context"
	"fmt"
	"log/slog"

	"wallet-client/internal/api"
	"wallet-client/internal/models"
	"wallet-client/internal/permission"

	"github.com/google/uuid"
)

// ShareService manages wallet sharing. Invitations are OWNER-gated;
// accept/reject belong to the invitee and need no local wallet at all.
type ShareService struct {
	api     api.Client
	wallets WalletCache
	log     *slog.Logger
}

func NewShareService(apiClient api.Client, wallets WalletCache, log *slog.Logger) *ShareService {
	return &ShareService{
		api:     apiClient,
		wallets: wallets,
		log:     log,
	}
}

// Invite creates a PENDING share for the invitee.
func (s *ShareService) Invite(ctx context.Context, walletID uuid.UUID, email string, level models.PermissionLevel, message string) (*models.WalletShare, error) {
	op := "service.InviteShare"
	log := s.log.With(slog.String("op", op), slog.String("wallet_id", walletID.String()))

	wallet, ok := s.wallets.Wallet(walletID)
	if !ok {
		log.Warn("wallet not in cache")
		return nil, fmt.Errorf("%w: wallet %s", api.ErrNotFound, walletID)
	}
	if !permission.CanMutate(wallet, permission.ActionShare) {
		log.Warn("permission denied")
		return nil, ErrPermissionDenied
	}

	share, err := s.api.CreateShareInvitation(ctx, api.ShareInvitation{
		WalletID:   walletID,
		Email:      email,
		Permission: level,
		Message:    message,
	})
	if err != nil {
		log.Error("failed to create invitation", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create invitation: %w", err)
	}
	log.Info("invitation created", slog.String("share_id", share.ID.String()))
	return share, nil
}

// Accept turns a pending invitation into live access and refreshes the
// wallet set, which now contains the shared wallet.
func (s *ShareService) Accept(ctx context.Context, token string) error {
	op := "service.AcceptShare"
	log := s.log.With(slog.String("op", op))

	if err := s.api.AcceptInvitation(ctx, token); err != nil {
		log.Error("failed to accept invitation", slog.String("error", err.Error()))
		return fmt.Errorf("failed to accept invitation: %w", err)
	}
	if err := s.wallets.Refresh(ctx); err != nil {
		log.Warn("refresh after accept failed", slog.String("error", err.Error()))
	}
	log.Info("invitation accepted")
	return nil
}

func (s *ShareService) Reject(ctx context.Context, token string) error {
	op := "service.RejectShare"
	log := s.log.With(slog.String("op", op))

	if err := s.api.RejectInvitation(ctx, token); err != nil {
		log.Error("failed to reject invitation", slog.String("error", err.Error()))
		return fmt.Errorf("failed to reject invitation: %w", err)
	}
	log.Info("invitation rejected")
	return nil
}

// Revoke withdraws a share and refreshes so the wallet drops out of the
// merged set if the actor was on the receiving side.
func (s *ShareService) Revoke(ctx context.Context, shareID uuid.UUID) error {
	op := "service.RevokeShare"
	log := s.log.With(slog.String("op", op), slog.String("share_id", shareID.String()))

	if err := s.api.RevokeShare(ctx, shareID); err != nil {
		log.Error("failed to revoke share", slog.String("error", err.Error()))
		return fmt.Errorf("failed to revoke share: %w", err)
	}
	if err := s.wallets.Refresh(ctx); err != nil {
		log.Warn("refresh after revoke failed", slog.String("error", err.Error()))
	}
	log.Info("share revoked")
	return nil
}

// UpdatePermission changes the level of an ACCEPTED share.
func (s *ShareService) UpdatePermission(ctx context.Context, shareID uuid.UUID, level models.PermissionLevel) (*models.WalletShare, error) {
	op := "service.UpdateSharePermission"
	log := s.log.With(slog.String("op", op), slog.String("share_id", shareID.String()))

	share, err := s.api.UpdateSharePermission(ctx, shareID, level)
	if err != nil {
		log.Error("failed to update share permission", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update share permission: %w", err)
	}
	if err := s.wallets.Refresh(ctx); err != nil {
		log.Warn("refresh after permission change failed", slog.String("error", err.Error()))
	}
	log.Info("share permission updated", slog.String("permission", string(level)))
	return share, nil
}
