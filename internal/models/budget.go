package models

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidLimit     = errors.New("budget limit must be positive")
	ErrCategoryRequired = errors.New("budget category is required")
	ErrDuplicateBudget  = errors.New("a budget already exists for this category")
)

// zeroLimitSentinelPercent is reported for budgets with a non-positive
// limit: anything spent against them reads as immediately over budget,
// and the raw division would otherwise surface NaN or Inf downstream.
const zeroLimitSentinelPercent = 101.0

// Budget caps monthly spending for a single category. Category is the
// unique key; Color is display-only.
type Budget struct {
	Category string          `json:"category"`
	Limit    decimal.Decimal `json:"limit"`
	Color    string          `json:"color"`
}

// Validate checks the structural invariants, applied at the API boundary.
func (b *Budget) Validate() error {
	if b.Category == "" {
		return ErrCategoryRequired
	}
	if b.Limit.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidLimit
	}
	return nil
}

// BudgetStatus is the spend-vs-limit projection for one budget over a
// single month.
type BudgetStatus struct {
	Category     string          `json:"category"`
	Spent        decimal.Decimal `json:"spent"`
	Limit        decimal.Decimal `json:"limit"`
	Percentage   float64         `json:"percentage"`
	IsOverBudget bool            `json:"is_over_budget"`
	Color        string          `json:"color"`
}

// BudgetPercentage computes 100*spent/limit, substituting a sentinel above
// 100 when the limit is non-positive so callers never see NaN or Inf.
func BudgetPercentage(spent, limit decimal.Decimal) float64 {
	if limit.LessThanOrEqual(decimal.Zero) {
		return zeroLimitSentinelPercent
	}
	pct, _ := spent.Div(limit).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}
