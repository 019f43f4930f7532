package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category carries only configured fields. Spent/earned/remaining are
// derived from the transaction set and must not be stored here.
type Category struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description,omitempty"`
	Budget       *decimal.Decimal `json:"budget,omitempty"`
	IncomeTarget *decimal.Decimal `json:"incomeTarget,omitempty"`
}
