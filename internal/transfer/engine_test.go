package transfer

import (
	"testing"

	"wallet-client/internal/models"
	"wallet-client/internal/policy"
	"wallet-client/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func wallet(currency, balance string) models.Wallet {
	return models.Wallet{
		ID:       uuid.New(),
		Currency: currency,
		Balance:  dec(balance),
	}
}

func snapshot(wallets ...models.Wallet) map[uuid.UUID]models.Wallet {
	m := make(map[uuid.UUID]models.Wallet, len(wallets))
	for _, w := range wallets {
		m[w.ID] = w
	}
	return m
}

func testEngine() Engine {
	return Engine{
		MinimumAmount:     dec("1000"),
		AmountPolicy:      policy.Amount{DecimalPlaces: 2},
		DescriptionPolicy: policy.Description{MaxLength: 200},
	}
}

func TestValidate_CleanTransfer(t *testing.T) {
	source := wallet("VND", "500000")
	destination := wallet("VND", "0")

	res := testEngine().Validate(Draft{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Amount:        "100000",
		Description:   "monthly savings",
	}, snapshot(source, destination))

	assert.True(t, res.Valid())
}

// Scenario: 100,000 from a VND wallet into a USD wallet.
func TestValidate_CurrencyMismatch(t *testing.T) {
	source := wallet("VND", "500000")
	destination := wallet("USD", "0")

	res := testEngine().Validate(Draft{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Amount:        "100000",
	}, snapshot(source, destination))

	require.False(t, res.Valid())
	assert.ErrorIs(t, res.Errors[validation.FieldDestination], ErrCurrencyMismatch)
}

func TestValidate_SameWallet(t *testing.T) {
	source := wallet("VND", "500000")

	res := testEngine().Validate(Draft{
		SourceID:      source.ID,
		DestinationID: source.ID,
		Amount:        "100000",
	}, snapshot(source))

	assert.ErrorIs(t, res.Errors[validation.FieldDestination], ErrSameWallet)
}

func TestValidate_InsufficientBalance(t *testing.T) {
	source := wallet("VND", "50000")
	destination := wallet("VND", "0")

	res := testEngine().Validate(Draft{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Amount:        "100000",
	}, snapshot(source, destination))

	assert.ErrorIs(t, res.Errors[validation.FieldAmount], ErrExceedsBalance)
}

func TestValidate_BelowMinimum(t *testing.T) {
	source := wallet("VND", "500000")
	destination := wallet("VND", "0")

	res := testEngine().Validate(Draft{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Amount:        "500",
	}, snapshot(source, destination))

	assert.ErrorIs(t, res.Errors[validation.FieldAmount], policy.ErrAmountBelowMinimum)
}

func TestValidate_UnselectedWallets(t *testing.T) {
	res := testEngine().Validate(Draft{Amount: "100000"}, snapshot())

	assert.ErrorIs(t, res.Errors[validation.FieldSource], ErrSourceRequired)
	assert.ErrorIs(t, res.Errors[validation.FieldDestination], ErrDestinationRequired)
}

func TestValidate_ArchivedWallets(t *testing.T) {
	source := wallet("VND", "500000")
	source.Archived = true
	destination := wallet("VND", "0")
	destination.Archived = true

	res := testEngine().Validate(Draft{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Amount:        "100000",
	}, snapshot(source, destination))

	assert.ErrorIs(t, res.Errors[validation.FieldSource], ErrSourceArchived)
	assert.ErrorIs(t, res.Errors[validation.FieldDestination], ErrDestinationArchived)
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	source := wallet("VND", "50")
	destination := wallet("USD", "0")

	res := testEngine().Validate(Draft{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Amount:        "500",
		Description:   "a\nb",
	}, snapshot(source, destination))

	assert.ErrorIs(t, res.Errors[validation.FieldDestination], ErrCurrencyMismatch)
	assert.ErrorIs(t, res.Errors[validation.FieldAmount], policy.ErrAmountBelowMinimum)
	assert.ErrorIs(t, res.Errors[validation.FieldDescription], policy.ErrDescriptionNewlines)
}

func TestBuild_CompoundCommand(t *testing.T) {
	source := wallet("VND", "500000")
	destination := wallet("VND", "20000")

	cmd, err := testEngine().Build(Draft{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Amount:        "100000",
		Description:   "rebalance",
	}, snapshot(source, destination))

	require.NoError(t, err)
	assert.Equal(t, source.ID, cmd.Debit.WalletID)
	assert.Equal(t, models.TransactionTypeExpense, cmd.Debit.Type)
	assert.Equal(t, destination.ID, cmd.Credit.WalletID)
	assert.Equal(t, models.TransactionTypeIncome, cmd.Credit.Type)
	assert.True(t, cmd.Debit.Amount.Equal(cmd.Credit.Amount))
	assert.Equal(t, "VND", cmd.Currency)
}

func TestBuild_InvalidDraftIsInvariantViolation(t *testing.T) {
	source := wallet("VND", "500000")
	destination := wallet("USD", "0")

	_, err := testEngine().Build(Draft{
		SourceID:      source.ID,
		DestinationID: destination.ID,
		Amount:        "100000",
	}, snapshot(source, destination))

	assert.ErrorIs(t, err, ErrInvariantViolation)
}
