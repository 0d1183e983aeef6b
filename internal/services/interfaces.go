package services

import (
	"time"

	"wisewallet/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetTrackerInterface projects spend-vs-limit views over the ledger.
// The projection is recomputed on demand and never cached.
type BudgetTrackerInterface interface {
	// MonthStatuses computes per-budget spending for the given month.
	MonthStatuses(year int, month time.Month) []models.BudgetStatus

	// CurrentMonth computes per-budget spending for today's month.
	CurrentMonth(today models.Date) []models.BudgetStatus
}

// GoalServiceInterface owns savings-goal operations, including the
// milestone state machine driven by contributions.
type GoalServiceInterface interface {
	List() []models.Goal
	Add(goal models.Goal) models.Goal
	Update(id uuid.UUID, patch models.GoalPatch) error
	Delete(id uuid.UUID) error

	// Contribute applies a positive contribution and returns the
	// milestones newly crossed by it, each at most once per goal
	// lifetime.
	Contribute(id uuid.UUID, amount decimal.Decimal) ([]int, error)
}

// RecurringProcessorInterface materializes due recurring templates into
// ledger transactions, exactly once per due date.
type RecurringProcessorInterface interface {
	// Process materializes every active template due today and returns
	// how many transactions were created. Safe to re-invoke any number
	// of times per day.
	Process(today models.Date) int

	// Upcoming lists active templates with their next due date on or
	// after today, soonest first.
	Upcoming(today models.Date) []models.UpcomingBill
}

// AnalyticsServiceInterface derives monthly series, insights, and
// recommendations from the ledger and budgets. Pure reads, no mutation.
type AnalyticsServiceInterface interface {
	MonthlySeries(today models.Date, monthsBack int) []models.MonthlySummary
	CategorySpending(today models.Date) []models.BudgetStatus
	Insights(series []models.MonthlySummary, spending []models.BudgetStatus) models.Insights
	Recommendations(insights models.Insights) []models.Recommendation
	MonthTotals(today models.Date) models.MonthTotals
}
