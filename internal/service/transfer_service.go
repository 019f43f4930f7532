package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"wallet-client/internal/api"
	"wallet-client/internal/permission"
	"wallet-client/internal/transfer"
	"wallet-client/internal/validation"
)

// TransferService moves money between two wallets through the engine's
// compound command. The two legs are never dispatched separately; if the
// backend fails partway, reconciliation is the backend's burden, not
// retried here.
type TransferService struct {
	api     api.Client
	wallets WalletCache
	engine  transfer.Engine
	log     *slog.Logger
}

func NewTransferService(apiClient api.Client, wallets WalletCache, engine transfer.Engine, log *slog.Logger) *TransferService {
	return &TransferService{
		api:     apiClient,
		wallets: wallets,
		engine:  engine,
		log:     log,
	}
}

// Transfer gates, validates, builds, and submits the compound command.
func (s *TransferService) Transfer(ctx context.Context, draft transfer.Draft) (*api.TransferReceipt, validation.Result, error) {
	op := "service.Transfer"
	log := s.log.With(slog.String("op", op),
		slog.String("source_id", draft.SourceID.String()),
		slog.String("destination_id", draft.DestinationID.String()))

	if source, ok := s.wallets.Wallet(draft.SourceID); ok {
		if !permission.CanMutate(source, permission.ActionTransferOut) {
			log.Warn("permission denied on source")
			return nil, validation.Result{Errors: validation.FieldErrors{}}, ErrPermissionDenied
		}
	}
	if destination, ok := s.wallets.Wallet(draft.DestinationID); ok {
		if !permission.CanMutate(destination, permission.ActionTransferIn) {
			log.Warn("permission denied on destination")
			return nil, validation.Result{Errors: validation.FieldErrors{}}, ErrPermissionDenied
		}
	}

	snapshot := s.wallets.Snapshot()
	res := s.engine.Validate(draft, snapshot)
	if !res.Valid() {
		log.Warn("transfer draft rejected", slog.Int("field_errors", len(res.Errors)))
		return nil, res, ErrValidationFailed
	}

	cmd, err := s.engine.Build(draft, snapshot)
	if err != nil {
		// reaching Build with an invalid draft is a defect; surface loudly
		log.Error("transfer build failed", slog.String("error", err.Error()))
		return nil, res, err
	}

	receipt, err := s.api.CreateTransfer(ctx, cmd)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			log.Warn("transfer target gone, refreshing cache")
			if rerr := s.wallets.Refresh(ctx); rerr != nil {
				log.Warn("refresh after not-found failed", slog.String("error", rerr.Error()))
			}
		}
		log.Error("failed to create transfer", slog.String("error", err.Error()))
		return nil, res, fmt.Errorf("failed to create transfer: %w", err)
	}

	if err := s.wallets.Refresh(ctx); err != nil {
		log.Warn("cache refresh after transfer failed", slog.String("error", err.Error()))
	}
	log.Info("transfer created",
		slog.String("debit_id", receipt.Debit.ID.String()),
		slog.String("credit_id", receipt.Credit.ID.String()))
	return receipt, res, nil
}
