// Package transfer validates and builds balanced two-wallet money
// movements: one debit on the source, one credit on the destination,
// same amount, same currency, applied atomically by the backend.
package transfer

import (
	"errors"
	"fmt"

	"wallet-client/internal/models"
	"wallet-client/internal/policy"
	"wallet-client/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSourceRequired      = errors.New("source wallet is required")
	ErrSourceUnknown       = errors.New("source wallet does not exist")
	ErrSourceArchived      = errors.New("source wallet is archived")
	ErrDestinationRequired = errors.New("destination wallet is required")
	ErrDestinationUnknown  = errors.New("destination wallet does not exist")
	ErrDestinationArchived = errors.New("destination wallet is archived")
	ErrSameWallet          = errors.New("destination must differ from source")
	ErrCurrencyMismatch    = errors.New("wallet currencies do not match")
	ErrExceedsBalance      = errors.New("amount exceeds source wallet balance")

	// ErrInvariantViolation marks a programming defect: an invalid draft
	// reached Build. It is never a user-facing message.
	ErrInvariantViolation = errors.New("transfer invariant violation")
)

type Draft struct {
	SourceID      uuid.UUID
	DestinationID uuid.UUID
	Amount        string
	Description   string
}

// Leg is one half of a transfer. Legs exist only inside a Command and are
// never submitted on their own.
type Leg struct {
	WalletID uuid.UUID
	Type     models.TransactionType
	Amount   decimal.Decimal
}

// Command is the compound operation handed to the persistence
// collaborator, which must apply both legs or neither.
type Command struct {
	Debit       Leg
	Credit      Leg
	Currency    string
	Description string
}

// Engine checks transfer drafts against the wallet snapshot. MinimumAmount
// is the transfer floor in the wallet currency's units; zero disables it.
type Engine struct {
	MinimumAmount     decimal.Decimal
	AmountPolicy      policy.Amount
	DescriptionPolicy policy.Description
}

// Validate collects every failure rather than stopping at the first, so
// the form can surface them all at once.
func (e Engine) Validate(draft Draft, wallets map[uuid.UUID]models.Wallet) validation.Result {
	res := validation.Result{Errors: validation.FieldErrors{}}

	source, ok := e.resolveSource(draft, wallets, res.Errors)
	destination, destOK := e.resolveDestination(draft, wallets, res.Errors)

	if ok && destOK && source.Currency != destination.Currency {
		res.Errors.Add(validation.FieldDestination, ErrCurrencyMismatch)
	}

	amountPolicy := e.AmountPolicy
	if !e.MinimumAmount.IsZero() && amountPolicy.Min.LessThan(e.MinimumAmount) {
		amountPolicy.Min = e.MinimumAmount
	}
	res.Errors.Add(validation.FieldAmount, amountPolicy.Validate(draft.Amount))
	if ok {
		if amount, err := decimal.NewFromString(draft.Amount); err == nil && amount.GreaterThan(source.Balance) {
			res.Errors.Add(validation.FieldAmount, ErrExceedsBalance)
		}
	}

	res.Errors.Add(validation.FieldDescription, e.DescriptionPolicy.Validate(draft.Description))

	return res
}

// Build revalidates and returns the compound command. An invalid draft
// here means a caller skipped Validate, which is a defect, not an input
// error.
func (e Engine) Build(draft Draft, wallets map[uuid.UUID]models.Wallet) (Command, error) {
	res := e.Validate(draft, wallets)
	if !res.Valid() {
		return Command{}, fmt.Errorf("%w: draft failed revalidation", ErrInvariantViolation)
	}

	amount, err := decimal.NewFromString(draft.Amount)
	if err != nil {
		return Command{}, fmt.Errorf("%w: unparseable amount %q", ErrInvariantViolation, draft.Amount)
	}

	source := wallets[draft.SourceID]
	return Command{
		Debit: Leg{
			WalletID: draft.SourceID,
			Type:     models.TransactionTypeExpense,
			Amount:   amount,
		},
		Credit: Leg{
			WalletID: draft.DestinationID,
			Type:     models.TransactionTypeIncome,
			Amount:   amount,
		},
		Currency:    source.Currency,
		Description: draft.Description,
	}, nil
}

func (e Engine) resolveSource(draft Draft, wallets map[uuid.UUID]models.Wallet, fe validation.FieldErrors) (models.Wallet, bool) {
	if draft.SourceID == uuid.Nil {
		fe.Add(validation.FieldSource, ErrSourceRequired)
		return models.Wallet{}, false
	}
	w, ok := wallets[draft.SourceID]
	if !ok {
		fe.Add(validation.FieldSource, ErrSourceUnknown)
		return models.Wallet{}, false
	}
	if w.Archived {
		fe.Add(validation.FieldSource, ErrSourceArchived)
		return models.Wallet{}, false
	}
	return w, true
}

func (e Engine) resolveDestination(draft Draft, wallets map[uuid.UUID]models.Wallet, fe validation.FieldErrors) (models.Wallet, bool) {
	if draft.DestinationID == uuid.Nil {
		fe.Add(validation.FieldDestination, ErrDestinationRequired)
		return models.Wallet{}, false
	}
	if draft.DestinationID == draft.SourceID {
		fe.Add(validation.FieldDestination, ErrSameWallet)
		return models.Wallet{}, false
	}
	w, ok := wallets[draft.DestinationID]
	if !ok {
		fe.Add(validation.FieldDestination, ErrDestinationUnknown)
		return models.Wallet{}, false
	}
	if w.Archived {
		fe.Add(validation.FieldDestination, ErrDestinationArchived)
		return models.Wallet{}, false
	}
	return w, true
}
