package services

import (
	"time"

	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/shopspring/decimal"
)

type budgetTracker struct {
	store *store.Store
}

// NewBudgetTracker creates the spend-vs-limit projection over the
// injected domain store.
func NewBudgetTracker(st *store.Store) BudgetTrackerInterface {
	return &budgetTracker{store: st}
}

// MonthStatuses sums expense transactions per category for the given
// month and reports each budget's consumption. Categories spent against
// without a budget definition are untracked and excluded here; they
// still appear in raw ledger listings.
func (t *budgetTracker) MonthStatuses(year int, month time.Month) []models.BudgetStatus {
	var statuses []models.BudgetStatus

	t.store.View(func(state *models.DomainState) {
		spentByCategory := make(map[string]decimal.Decimal, len(state.Budgets))
		for i := range state.Transactions {
			txn := &state.Transactions[i]
			if !txn.IsExpense() || !txn.InMonth(year, month) {
				continue
			}
			spentByCategory[txn.Category] = spentByCategory[txn.Category].Add(txn.Amount)
		}

		statuses = make([]models.BudgetStatus, 0, len(state.Budgets))
		for _, budget := range state.Budgets {
			spent := spentByCategory[budget.Category]
			percentage := models.BudgetPercentage(spent, budget.Limit)
			statuses = append(statuses, models.BudgetStatus{
				Category:     budget.Category,
				Spent:        spent,
				Limit:        budget.Limit,
				Percentage:   percentage,
				IsOverBudget: percentage > 100,
				Color:        budget.Color,
			})
		}
	})

	return statuses
}

// CurrentMonth projects the month the given date falls in.
func (t *budgetTracker) CurrentMonth(today models.Date) []models.BudgetStatus {
	return t.MonthStatuses(today.Year(), today.Month())
}
