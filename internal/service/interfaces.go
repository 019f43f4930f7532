package service

import (
	"context"

	"wallet-client/internal/models"

	"github.com/google/uuid"
)

// WalletCache is the aggregator surface the services depend on.
type WalletCache interface {
	Refresh(ctx context.Context) error
	Wallet(id uuid.UUID) (models.Wallet, bool)
	Snapshot() map[uuid.UUID]models.Wallet
}
