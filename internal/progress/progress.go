// Package progress derives category budget and income-target figures from
// a transaction set. Nothing here is stored: every report is recomputed
// from the latest known transactions so aggregates cannot drift.
package progress

import (
	"wallet-client/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Report is a pure derivation for one category over one period.
// Remaining and the percentage fields are nil when the corresponding
// ceiling or target is not configured, never a division by zero.
type Report struct {
	Spent                decimal.Decimal
	Earned               decimal.Decimal
	Remaining            *decimal.Decimal
	BudgetUtilizationPct *decimal.Decimal
	IncomeAchievementPct *decimal.Decimal
}

// Compute partitions the transactions by type and reports totals and
// progress. It is order-independent: permuting txns never changes the
// result.
func Compute(category models.Category, txns []models.Transaction) Report {
	report := Report{
		Spent:  decimal.Zero,
		Earned: decimal.Zero,
	}

	for _, txn := range txns {
		switch txn.Type {
		case models.TransactionTypeExpense:
			report.Spent = report.Spent.Add(txn.Amount)
		case models.TransactionTypeIncome:
			report.Earned = report.Earned.Add(txn.Amount)
		}
	}

	if category.Budget != nil {
		remaining := category.Budget.Sub(report.Spent)
		report.Remaining = &remaining
		if category.Budget.IsPositive() {
			pct := clampPct(report.Spent.Div(*category.Budget).Mul(hundred))
			report.BudgetUtilizationPct = &pct
		}
	}

	if category.IncomeTarget != nil && category.IncomeTarget.IsPositive() {
		pct := clampPct(report.Earned.Div(*category.IncomeTarget).Mul(hundred))
		report.IncomeAchievementPct = &pct
	}

	return report
}

func clampPct(pct decimal.Decimal) decimal.Decimal {
	if pct.IsNegative() {
		return decimal.Zero
	}
	if pct.GreaterThan(hundred) {
		return hundred
	}
	return pct
}
