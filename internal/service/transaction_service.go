package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"wallet-client/internal/api"
	"wallet-client/internal/models"
	"wallet-client/internal/permission"
	"wallet-client/internal/policy"
	"wallet-client/internal/progress"
	"wallet-client/internal/validation"

	"github.com/google/uuid"
)

var (
	// ErrValidationFailed accompanies a Result whose error map is not
	// empty; the map carries the per-field detail.
	ErrValidationFailed = errors.New("validation failed")

	// ErrConfirmationRequired: the draft is future-dated and the user has
	// not confirmed it yet. Nothing was dispatched.
	ErrConfirmationRequired = errors.New("future date requires confirmation")

	// ErrPermissionDenied: the gate rejected the action before dispatch.
	ErrPermissionDenied = errors.New("insufficient permission")
)

// Policies groups the validation configuration a deployment uses.
type Policies struct {
	Amount      policy.Amount
	Description policy.Description
	Date        policy.Date
}

// TransactionService orchestrates transaction mutations: permission gate,
// full validation against a fresh snapshot, dispatch, cache refresh. It
// never dispatches a draft the gate or the validator rejected.
type TransactionService struct {
	api       api.Client
	wallets   WalletCache
	validator validation.TransactionValidator
	policies  Policies
	log       *slog.Logger
	now       func() time.Time
}

func NewTransactionService(apiClient api.Client, wallets WalletCache, policies Policies, log *slog.Logger) *TransactionService {
	return &TransactionService{
		api:      apiClient,
		wallets:  wallets,
		policies: policies,
		log:      log,
		now:      time.Now,
	}
}

// Create validates and submits a new transaction. The returned Result
// carries field errors when err is ErrValidationFailed.
func (s *TransactionService) Create(ctx context.Context, draft validation.Draft) (*models.Transaction, validation.Result, error) {
	op := "service.CreateTransaction"
	log := s.log.With(slog.String("op", op), slog.String("wallet_id", draft.WalletID.String()))

	res, err := s.prepare(ctx, draft, permission.ActionAddTransaction, log)
	if err != nil {
		return nil, res, err
	}

	amount, err := draft.AmountDecimal()
	if err != nil {
		return nil, res, fmt.Errorf("draft passed validation with bad amount: %w", err)
	}

	txn, err := s.api.CreateTransaction(ctx, api.TransactionDraft{
		WalletID:    draft.WalletID,
		CategoryID:  draft.CategoryID,
		Type:        draft.Type,
		Amount:      amount,
		Description: draft.Description,
		Date:        draft.Date,
	})
	if err != nil {
		return nil, res, s.dispatchError(ctx, log, "failed to create transaction", err)
	}

	s.refreshAfterMutation(ctx, log)
	log.Info("transaction created", slog.String("transaction_id", txn.ID.String()))
	return txn, res, nil
}

// Update validates and submits an edit of an existing transaction.
func (s *TransactionService) Update(ctx context.Context, id uuid.UUID, draft validation.Draft) (*models.Transaction, validation.Result, error) {
	op := "service.UpdateTransaction"
	log := s.log.With(slog.String("op", op), slog.String("transaction_id", id.String()))

	res, err := s.prepare(ctx, draft, permission.ActionEditTransaction, log)
	if err != nil {
		return nil, res, err
	}

	amount, err := draft.AmountDecimal()
	if err != nil {
		return nil, res, fmt.Errorf("draft passed validation with bad amount: %w", err)
	}

	txn, err := s.api.UpdateTransaction(ctx, id, api.TransactionDraft{
		WalletID:    draft.WalletID,
		CategoryID:  draft.CategoryID,
		Type:        draft.Type,
		Amount:      amount,
		Description: draft.Description,
		Date:        draft.Date,
	})
	if err != nil {
		return nil, res, s.dispatchError(ctx, log, "failed to update transaction", err)
	}

	s.refreshAfterMutation(ctx, log)
	log.Info("transaction updated")
	return txn, res, nil
}

// Delete removes a transaction from the given wallet.
func (s *TransactionService) Delete(ctx context.Context, walletID, id uuid.UUID) error {
	op := "service.DeleteTransaction"
	log := s.log.With(slog.String("op", op), slog.String("transaction_id", id.String()))

	wallet, ok := s.wallets.Wallet(walletID)
	if !ok {
		log.Warn("wallet not in cache")
		return fmt.Errorf("%w: wallet %s", api.ErrNotFound, walletID)
	}
	if !permission.CanMutate(wallet, permission.ActionDeleteTransaction) {
		log.Warn("permission denied")
		return ErrPermissionDenied
	}

	if err := s.api.DeleteTransaction(ctx, id); err != nil {
		return s.dispatchError(ctx, log, "failed to delete transaction", err)
	}

	s.refreshAfterMutation(ctx, log)
	log.Info("transaction deleted")
	return nil
}

// CategoryProgress recomputes the category's progress over [from, to)
// from a fresh fetch. Incremental patching of stale aggregates drifts, so
// it is always a full re-derivation.
func (s *TransactionService) CategoryProgress(ctx context.Context, category models.Category, from, to time.Time) (progress.Report, error) {
	op := "service.CategoryProgress"
	log := s.log.With(slog.String("op", op), slog.String("category_id", category.ID.String()))

	txns, err := s.api.ListTransactions(ctx, api.TransactionFilter{
		CategoryID: &category.ID,
		From:       from,
		To:         to,
	})
	if err != nil {
		log.Error("failed to list transactions", slog.String("error", err.Error()))
		return progress.Report{}, fmt.Errorf("failed to list transactions: %w", err)
	}
	return progress.Compute(category, txns), nil
}

// prepare runs the gate and full validation shared by Create and Update.
func (s *TransactionService) prepare(ctx context.Context, draft validation.Draft, action permission.Action, log *slog.Logger) (validation.Result, error) {
	if wallet, ok := s.wallets.Wallet(draft.WalletID); ok {
		if !permission.CanMutate(wallet, action) {
			log.Warn("permission denied")
			return validation.Result{Errors: validation.FieldErrors{}}, ErrPermissionDenied
		}
	}

	categories, err := s.api.ListCategories(ctx)
	if err != nil {
		log.Error("failed to list categories", slog.String("error", err.Error()))
		return validation.Result{Errors: validation.FieldErrors{}}, fmt.Errorf("failed to list categories: %w", err)
	}

	vctx := validation.Context{
		Wallets:           s.wallets.Snapshot(),
		Categories:        make(map[uuid.UUID]models.Category, len(categories)),
		Now:               s.now(),
		AmountPolicy:      s.policies.Amount,
		DescriptionPolicy: s.policies.Description,
		DatePolicy:        s.policies.Date,
	}
	for _, c := range categories {
		vctx.Categories[c.ID] = c
	}

	res := s.validator.Validate(draft, vctx)
	if !res.Valid() {
		log.Warn("draft rejected", slog.Int("field_errors", len(res.Errors)))
		return res, ErrValidationFailed
	}
	if res.RequiresConfirmation {
		log.Info("future-dated draft awaiting confirmation")
		return res, ErrConfirmationRequired
	}
	return res, nil
}

// dispatchError maps collaborator failures. NotFound means another
// session changed the world, so the cache is refreshed before returning.
func (s *TransactionService) dispatchError(ctx context.Context, log *slog.Logger, msg string, err error) error {
	if errors.Is(err, api.ErrNotFound) {
		log.Warn("referenced entity gone, refreshing cache")
		if rerr := s.wallets.Refresh(ctx); rerr != nil {
			log.Warn("refresh after not-found failed", slog.String("error", rerr.Error()))
		}
	}
	log.Error(msg, slog.String("error", err.Error()))
	return fmt.Errorf("%s: %w", msg, err)
}

func (s *TransactionService) refreshAfterMutation(ctx context.Context, log *slog.Logger) {
	if err := s.wallets.Refresh(ctx); err != nil {
		log.Warn("cache refresh after mutation failed", slog.String("error", err.Error()))
	}
}
