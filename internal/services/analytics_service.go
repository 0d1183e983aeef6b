package services

import (
	"fmt"
	"strings"

	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/shopspring/decimal"
)

// DefaultTrailingMonths is the standard monthly-series window.
const DefaultTrailingMonths = 6

const (
	nearBudgetFloor   = 80.0
	savingsRateTarget = 20.0
	expenseSpikePct   = 20.0
	expenseDropPct    = -10.0
)

type analyticsService struct {
	store   *store.Store
	tracker BudgetTrackerInterface
}

// NewAnalyticsService creates the derived-analytics engine. It reads the
// domain store and the budget tracker projection; it never mutates.
func NewAnalyticsService(st *store.Store, tracker BudgetTrackerInterface) AnalyticsServiceInterface {
	return &analyticsService{store: st, tracker: tracker}
}

// MonthlySeries returns exactly monthsBack entries in ascending
// chronological order, ending with the month today falls in. Months with
// no transactions contribute zero rows, so the series length never
// shrinks on an empty ledger.
func (s *analyticsService) MonthlySeries(today models.Date, monthsBack int) []models.MonthlySummary {
	if monthsBack <= 0 {
		monthsBack = DefaultTrailingMonths
	}

	series := make([]models.MonthlySummary, 0, monthsBack)
	current := today.StartOfMonth()

	s.store.View(func(state *models.DomainState) {
		for i := monthsBack - 1; i >= 0; i-- {
			month := current.AddMonths(-i)
			summary := models.MonthlySummary{
				Month:    month,
				Label:    month.Format("Jan"),
				Expenses: decimal.Zero,
				Income:   decimal.Zero,
			}

			for j := range state.Transactions {
				txn := &state.Transactions[j]
				if !txn.InMonth(month.Year(), month.Month()) {
					continue
				}
				switch {
				case txn.IsExpense():
					summary.Expenses = summary.Expenses.Add(txn.Amount)
				case txn.IsIncome():
					summary.Income = summary.Income.Add(txn.Amount)
				}
			}

			summary.Savings = summary.Income.Sub(summary.Expenses)
			series = append(series, summary)
		}
	})

	return series
}

// CategorySpending projects current-month spend against each budget.
func (s *analyticsService) CategorySpending(today models.Date) []models.BudgetStatus {
	return s.tracker.CurrentMonth(today)
}

// Insights derives the single-month metric set from the last two series
// entries and the category spending list. Every rate is 0, not NaN or
// Inf, when its denominator is 0.
func (s *analyticsService) Insights(series []models.MonthlySummary, spending []models.BudgetStatus) models.Insights {
	insights := models.Insights{
		ExpenseChange:        0,
		SavingsRate:          0,
		OverBudgetCategories: []models.BudgetStatus{},
		NearBudgetCategories: []models.BudgetStatus{},
		CurrentExpenses:      decimal.Zero,
		CurrentIncome:        decimal.Zero,
		CurrentSavings:       decimal.Zero,
	}

	if len(series) == 0 {
		return insights
	}

	current := series[len(series)-1]
	insights.CurrentExpenses = current.Expenses
	insights.CurrentIncome = current.Income
	insights.CurrentSavings = current.Savings

	if len(series) >= 2 {
		previous := series[len(series)-2]
		if previous.Expenses.GreaterThan(decimal.Zero) {
			change, _ := current.Expenses.Sub(previous.Expenses).
				Div(previous.Expenses).Mul(decimal.NewFromInt(100)).Float64()
			insights.ExpenseChange = change
		}
	}

	if current.Income.GreaterThan(decimal.Zero) {
		rate, _ := current.Savings.Div(current.Income).Mul(decimal.NewFromInt(100)).Float64()
		insights.SavingsRate = rate
	}

	for _, status := range spending {
		switch {
		case status.Percentage > 100:
			insights.OverBudgetCategories = append(insights.OverBudgetCategories, status)
		case status.Percentage >= nearBudgetFloor:
			insights.NearBudgetCategories = append(insights.NearBudgetCategories, status)
		}

		if insights.TopSpendingCategory == nil || status.Spent.GreaterThan(insights.TopSpendingCategory.Spent) {
			top := status
			insights.TopSpendingCategory = &top
		}
	}

	return insights
}

// Recommendations evaluates the ordered rule list over the insights.
// Rules are independent; each may fire zero or more times. An empty
// result is the all-clear state.
func (s *analyticsService) Recommendations(insights models.Insights) []models.Recommendation {
	recs := []models.Recommendation{}

	for _, cat := range insights.OverBudgetCategories {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationWarning,
			Message: fmt.Sprintf("%s is %.0f%% over budget. Consider reducing spending.", cat.Category, cat.Percentage-100),
		})
	}

	if insights.SavingsRate < savingsRateTarget && insights.CurrentIncome.GreaterThan(decimal.Zero) {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationTip,
			Message: fmt.Sprintf("Your savings rate is %.0f%%. Try to save at least 20%% of your income.", insights.SavingsRate),
		})
	} else if insights.SavingsRate >= savingsRateTarget {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationSuccess,
			Message: fmt.Sprintf("Great job! You're saving %.0f%% of your income this month.", insights.SavingsRate),
		})
	}

	if insights.ExpenseChange > expenseSpikePct {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationWarning,
			Message: fmt.Sprintf("Spending increased %.0f%% compared to last month.", insights.ExpenseChange),
		})
	} else if insights.ExpenseChange < expenseDropPct {
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationSuccess,
			Message: fmt.Sprintf("Excellent! You reduced spending by %.0f%% this month.", -insights.ExpenseChange),
		})
	}

	if len(insights.NearBudgetCategories) > 0 {
		names := make([]string, 0, len(insights.NearBudgetCategories))
		for _, cat := range insights.NearBudgetCategories {
			names = append(names, cat.Category)
		}
		recs = append(recs, models.Recommendation{
			Type:    models.RecommendationTip,
			Message: strings.Join(names, ", ") + " approaching budget limit.",
		})
	}

	return recs
}

// MonthTotals sums income and expenses for the month today falls in.
func (s *analyticsService) MonthTotals(today models.Date) models.MonthTotals {
	totals := models.MonthTotals{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
	}

	s.store.View(func(state *models.DomainState) {
		for i := range state.Transactions {
			txn := &state.Transactions[i]
			if !txn.InMonth(today.Year(), today.Month()) {
				continue
			}
			switch {
			case txn.IsIncome():
				totals.Income = totals.Income.Add(txn.Amount)
			case txn.IsExpense():
				totals.Expenses = totals.Expenses.Add(txn.Amount)
			}
		}
	})

	totals.Balance = totals.Income.Sub(totals.Expenses)
	return totals
}
