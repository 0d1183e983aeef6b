package services

import (
	"testing"
	"time"

	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetTrackerTestSuite struct {
	suite.Suite
	store   *store.Store
	tracker BudgetTrackerInterface
}

func (s *BudgetTrackerTestSuite) SetupTest() {
	s.store = store.New(models.NewDomainState())
	s.tracker = NewBudgetTracker(s.store)
}

func TestBudgetTrackerSuite(t *testing.T) {
	suite.Run(t, new(BudgetTrackerTestSuite))
}

func (s *BudgetTrackerTestSuite) addBudget(category string, limit int64) {
	s.Require().NoError(s.store.AddBudget(models.Budget{
		Category: category,
		Limit:    decimal.NewFromInt(limit),
		Color:    "hsl(var(--chart-1))",
	}))
}

func (s *BudgetTrackerTestSuite) addExpense(category string, amount int64, date models.Date) {
	s.store.AddTransaction(models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Description: "test expense",
		Date:        date,
	})
}

func (s *BudgetTrackerTestSuite) TestMonthStatuses_SumsExpensesPerCategory() {
	s.addBudget("Food & Dining", 5000)
	s.addExpense("Food & Dining", 450, models.NewDate(2026, 3, 8))
	s.addExpense("Food & Dining", 300, models.NewDate(2026, 3, 12))

	statuses := s.tracker.MonthStatuses(2026, time.March)

	s.Require().Len(statuses, 1)
	s.Equal("Food & Dining", statuses[0].Category)
	s.True(statuses[0].Spent.Equal(decimal.NewFromInt(750)))
	s.InDelta(15.0, statuses[0].Percentage, 0.001)
	s.False(statuses[0].IsOverBudget)
}

func (s *BudgetTrackerTestSuite) TestMonthStatuses_OverBudget() {
	s.addBudget("Shopping", 5000)
	s.addExpense("Shopping", 6000, models.NewDate(2026, 3, 8))

	statuses := s.tracker.MonthStatuses(2026, time.March)

	s.Require().Len(statuses, 1)
	s.InDelta(120.0, statuses[0].Percentage, 0.001)
	s.True(statuses[0].IsOverBudget)
}

func (s *BudgetTrackerTestSuite) TestMonthStatuses_ExactLimitIsNotOver() {
	s.addBudget("Shopping", 5000)
	s.addExpense("Shopping", 5000, models.NewDate(2026, 3, 8))

	statuses := s.tracker.MonthStatuses(2026, time.March)

	s.Require().Len(statuses, 1)
	s.InDelta(100.0, statuses[0].Percentage, 0.001)
	s.False(statuses[0].IsOverBudget)
}

func (s *BudgetTrackerTestSuite) TestMonthStatuses_ZeroLimitSentinel() {
	s.addBudget("Misc", 0)
	s.addExpense("Misc", 10, models.NewDate(2026, 3, 8))

	statuses := s.tracker.MonthStatuses(2026, time.March)

	s.Require().Len(statuses, 1)
	s.InDelta(101.0, statuses[0].Percentage, 0.001)
	s.True(statuses[0].IsOverBudget)
}

func (s *BudgetTrackerTestSuite) TestMonthStatuses_IgnoresOtherMonthsIncomeAndUnbudgeted() {
	s.addBudget("Food & Dining", 5000)
	s.addExpense("Food & Dining", 450, models.NewDate(2026, 3, 8))
	s.addExpense("Food & Dining", 999, models.NewDate(2026, 2, 8))
	s.addExpense("Gifts", 200, models.NewDate(2026, 3, 8))
	s.store.AddTransaction(models.Transaction{
		Type:        models.TransactionTypeIncome,
		Amount:      decimal.NewFromInt(25000),
		Category:    "Food & Dining",
		Description: "refund",
		Date:        models.NewDate(2026, 3, 9),
	})

	statuses := s.tracker.MonthStatuses(2026, time.March)

	s.Require().Len(statuses, 1)
	s.True(statuses[0].Spent.Equal(decimal.NewFromInt(450)))
}

func (s *BudgetTrackerTestSuite) TestMonthStatuses_UnspentBudgetReportsZero() {
	s.addBudget("Healthcare", 1500)

	statuses := s.tracker.MonthStatuses(2026, time.March)

	s.Require().Len(statuses, 1)
	s.True(statuses[0].Spent.IsZero())
	s.Zero(statuses[0].Percentage)
}

func (s *BudgetTrackerTestSuite) TestCurrentMonth_UsesTodaysMonth() {
	s.addBudget("Food & Dining", 5000)
	s.addExpense("Food & Dining", 450, models.NewDate(2026, 3, 8))

	statuses := s.tracker.CurrentMonth(models.NewDate(2026, 3, 20))

	s.Require().Len(statuses, 1)
	s.True(statuses[0].Spent.Equal(decimal.NewFromInt(450)))
}
