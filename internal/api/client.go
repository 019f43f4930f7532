// Package api defines the remote persistence/authorization collaborator
// the client core consumes, and an HTTP implementation of it. The core
// never talks to the wire directly; everything goes through Client.
package api

import (
	"context"
	"time"

	"wallet-client/internal/models"
	"wallet-client/internal/transfer"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionDraft is a validated transaction ready for submission.
type TransactionDraft struct {
	WalletID    uuid.UUID              `json:"walletId"`
	CategoryID  *uuid.UUID             `json:"categoryId,omitempty"`
	Type        models.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Description string                 `json:"description,omitempty"`
	Date        time.Time              `json:"date"`
}

type TransactionFilter struct {
	WalletID   *uuid.UUID
	CategoryID *uuid.UUID
	From       time.Time
	To         time.Time
}

type CategoryDraft struct {
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	IncomeTarget *decimal.Decimal `json:"incomeTarget,omitempty"`
}

// TransferReceipt is the atomic result of a transfer: the backend applied
// both legs or neither.
type TransferReceipt struct {
	Debit  models.Transaction `json:"debit"`
	Credit models.Transaction `json:"credit"`
}

type ShareInvitation struct {
	WalletID   uuid.UUID              `json:"walletId"`
	Email      string                 `json:"email"`
	Permission models.PermissionLevel `json:"permission"`
	Message    string                 `json:"message,omitempty"`
}

// Client is the full collaborator surface. ListSharedWallets returns only
// wallets behind ACCEPTED shares. Every call honors ctx cancellation: a
// response arriving after cancellation is discarded by the caller's
// context, never applied.
type Client interface {
	ListOwnedWallets(ctx context.Context) ([]models.Wallet, error)
	ListSharedWallets(ctx context.Context) ([]models.Wallet, error)
	GetWallet(ctx context.Context, id uuid.UUID) (*models.Wallet, error)

	CreateTransaction(ctx context.Context, draft TransactionDraft) (*models.Transaction, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, draft TransactionDraft) (*models.Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
	ListTransactions(ctx context.Context, filter TransactionFilter) ([]models.Transaction, error)

	CreateTransfer(ctx context.Context, cmd transfer.Command) (*TransferReceipt, error)

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, draft CategoryDraft) (*models.Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, draft CategoryDraft) (*models.Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	CreateShareInvitation(ctx context.Context, invitation ShareInvitation) (*models.WalletShare, error)
	AcceptInvitation(ctx context.Context, token string) error
	RejectInvitation(ctx context.Context, token string) error
	RevokeShare(ctx context.Context, shareID uuid.UUID) error
	UpdateSharePermission(ctx context.Context, shareID uuid.UUID, level models.PermissionLevel) (*models.WalletShare, error)
}
