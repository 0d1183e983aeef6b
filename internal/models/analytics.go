package models

import "github.com/shopspring/decimal"

const (
	RecommendationWarning = "warning"
	RecommendationSuccess = "success"
	RecommendationTip     = "tip"
)

// MonthlySummary is one entry of the trailing monthly series.
type MonthlySummary struct {
	Month    Date            `json:"month"`
	Label    string          `json:"label"`
	Expenses decimal.Decimal `json:"expenses"`
	Income   decimal.Decimal `json:"income"`
	Savings  decimal.Decimal `json:"savings"`
}

// Insights is the single-month derived metric set used to drive
// recommendations. All rates are guarded against divide-by-zero and are
// 0 rather than NaN or Inf in the degenerate cases.
type Insights struct {
	ExpenseChange         float64         `json:"expense_change"`
	SavingsRate           float64         `json:"savings_rate"`
	OverBudgetCategories  []BudgetStatus  `json:"over_budget_categories"`
	NearBudgetCategories  []BudgetStatus  `json:"near_budget_categories"`
	TopSpendingCategory   *BudgetStatus   `json:"top_spending_category,omitempty"`
	CurrentExpenses       decimal.Decimal `json:"current_expenses"`
	CurrentIncome         decimal.Decimal `json:"current_income"`
	CurrentSavings        decimal.Decimal `json:"current_savings"`
}

// Recommendation is a single rule-derived message. An empty list means
// all clear; rendering that state is the presentation layer's concern.
type Recommendation struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// MonthTotals backs the dashboard summary cards for a single month.
type MonthTotals struct {
	Income   decimal.Decimal `json:"income"`
	Expenses decimal.Decimal `json:"expenses"`
	Balance  decimal.Decimal `json:"balance"`
}

// UpcomingBill annotates a recurring template with its next due date.
type UpcomingBill struct {
	RecurringTransaction
	NextDue Date `json:"next_due"`
}
