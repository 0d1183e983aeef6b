package services

import (
	"testing"

	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceTestSuite struct {
	suite.Suite
	store     *store.Store
	analytics AnalyticsServiceInterface
}

func (s *AnalyticsServiceTestSuite) SetupTest() {
	s.store = store.New(models.NewDomainState())
	s.analytics = NewAnalyticsService(s.store, NewBudgetTracker(s.store))
}

func TestAnalyticsServiceSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func (s *AnalyticsServiceTestSuite) addTransaction(txnType string, amount int64, category string, date models.Date) {
	s.store.AddTransaction(models.Transaction{
		Type:        txnType,
		Amount:      decimal.NewFromInt(amount),
		Category:    category,
		Description: "test",
		Date:        date,
	})
}

func (s *AnalyticsServiceTestSuite) TestMonthlySeries_EmptyLedgerKeepsFullWindow() {
	series := s.analytics.MonthlySeries(models.NewDate(2026, 3, 15), DefaultTrailingMonths)

	s.Require().Len(series, DefaultTrailingMonths)
	s.Equal("Oct", series[0].Label)
	s.Equal("Mar", series[5].Label)
	for _, month := range series {
		s.True(month.Expenses.IsZero())
		s.True(month.Income.IsZero())
		s.True(month.Savings.IsZero())
	}
}

func (s *AnalyticsServiceTestSuite) TestMonthlySeries_AscendingOrderEndingCurrentMonth() {
	s.addTransaction(models.TransactionTypeExpense, 1000, "Shopping", models.NewDate(2026, 2, 10))
	s.addTransaction(models.TransactionTypeIncome, 25000, "Salary", models.NewDate(2026, 3, 1))
	s.addTransaction(models.TransactionTypeExpense, 450, "Food & Dining", models.NewDate(2026, 3, 8))

	series := s.analytics.MonthlySeries(models.NewDate(2026, 3, 15), 3)

	s.Require().Len(series, 3)
	s.Equal("Jan", series[0].Label)
	s.Equal("Feb", series[1].Label)
	s.Equal("Mar", series[2].Label)

	s.True(series[1].Expenses.Equal(decimal.NewFromInt(1000)))
	s.True(series[2].Income.Equal(decimal.NewFromInt(25000)))
	s.True(series[2].Expenses.Equal(decimal.NewFromInt(450)))
	s.True(series[2].Savings.Equal(decimal.NewFromInt(24550)))
}

func (s *AnalyticsServiceTestSuite) TestInsights_ZeroGuards() {
	insights := s.analytics.Insights([]models.MonthlySummary{
		{Expenses: decimal.Zero, Income: decimal.Zero, Savings: decimal.Zero},
		{Expenses: decimal.NewFromInt(500), Income: decimal.Zero, Savings: decimal.NewFromInt(-500)},
	}, nil)

	s.Zero(insights.ExpenseChange)
	s.Zero(insights.SavingsRate)
	s.Nil(insights.TopSpendingCategory)
}

func (s *AnalyticsServiceTestSuite) TestInsights_ExpenseChangeAndSavingsRate() {
	insights := s.analytics.Insights([]models.MonthlySummary{
		{Expenses: decimal.NewFromInt(1000), Income: decimal.NewFromInt(20000), Savings: decimal.NewFromInt(19000)},
		{Expenses: decimal.NewFromInt(1500), Income: decimal.NewFromInt(20000), Savings: decimal.NewFromInt(18500)},
	}, nil)

	s.InDelta(50.0, insights.ExpenseChange, 0.001)
	s.InDelta(92.5, insights.SavingsRate, 0.001)
}

func (s *AnalyticsServiceTestSuite) TestInsights_BudgetBuckets() {
	spending := []models.BudgetStatus{
		{Category: "Shopping", Spent: decimal.NewFromInt(6000), Percentage: 120},
		{Category: "Food & Dining", Spent: decimal.NewFromInt(4500), Percentage: 90},
		{Category: "Utilities", Spent: decimal.NewFromInt(2500), Percentage: 100},
		{Category: "Healthcare", Spent: decimal.NewFromInt(100), Percentage: 7},
	}

	insights := s.analytics.Insights([]models.MonthlySummary{{}}, spending)

	s.Require().Len(insights.OverBudgetCategories, 1)
	s.Equal("Shopping", insights.OverBudgetCategories[0].Category)

	s.Require().Len(insights.NearBudgetCategories, 2)
	s.Equal("Food & Dining", insights.NearBudgetCategories[0].Category)
	s.Equal("Utilities", insights.NearBudgetCategories[1].Category)

	s.Require().NotNil(insights.TopSpendingCategory)
	s.Equal("Shopping", insights.TopSpendingCategory.Category)
}

func (s *AnalyticsServiceTestSuite) TestRecommendations_HealthyMonth() {
	// 450 spent against a 5000 budget plus 25000 income yields a high
	// savings rate and nothing over budget.
	s.Require().NoError(s.store.AddBudget(models.Budget{
		Category: "Food & Dining",
		Limit:    decimal.NewFromInt(5000),
	}))
	today := models.NewDate(2026, 3, 15)
	s.addTransaction(models.TransactionTypeExpense, 450, "Food & Dining", models.NewDate(2026, 3, 8))
	s.addTransaction(models.TransactionTypeIncome, 25000, "Salary", models.NewDate(2026, 3, 1))

	series := s.analytics.MonthlySeries(today, DefaultTrailingMonths)
	spending := s.analytics.CategorySpending(today)
	insights := s.analytics.Insights(series, spending)

	s.Require().Len(spending, 1)
	s.True(spending[0].Spent.Equal(decimal.NewFromInt(450)))
	s.InDelta(9.0, spending[0].Percentage, 0.001)
	s.InDelta(98.2, insights.SavingsRate, 0.01)

	recs := s.analytics.Recommendations(insights)

	var types []string
	for _, rec := range recs {
		types = append(types, rec.Type)
		s.NotContains(rec.Message, "over budget")
	}
	s.Contains(types, models.RecommendationSuccess)
	s.NotContains(types, models.RecommendationWarning)
}

func (s *AnalyticsServiceTestSuite) TestRecommendations_OverBudgetWarning() {
	insights := models.Insights{
		OverBudgetCategories: []models.BudgetStatus{
			{Category: "Shopping", Percentage: 120},
		},
	}

	recs := s.analytics.Recommendations(insights)

	s.Require().NotEmpty(recs)
	s.Equal(models.RecommendationWarning, recs[0].Type)
	s.Equal("Shopping is 20% over budget. Consider reducing spending.", recs[0].Message)
}

func (s *AnalyticsServiceTestSuite) TestRecommendations_LowSavingsTipNeedsIncome() {
	noIncome := s.analytics.Recommendations(models.Insights{SavingsRate: 5})
	s.Empty(noIncome)

	withIncome := s.analytics.Recommendations(models.Insights{
		SavingsRate:   5,
		CurrentIncome: decimal.NewFromInt(1000),
	})
	s.Require().Len(withIncome, 1)
	s.Equal(models.RecommendationTip, withIncome[0].Type)
	s.Equal("Your savings rate is 5%. Try to save at least 20% of your income.", withIncome[0].Message)
}

func (s *AnalyticsServiceTestSuite) TestRecommendations_SpendingTrend() {
	spike := s.analytics.Recommendations(models.Insights{ExpenseChange: 35})
	s.Require().Len(spike, 1)
	s.Equal(models.RecommendationWarning, spike[0].Type)
	s.Equal("Spending increased 35% compared to last month.", spike[0].Message)

	drop := s.analytics.Recommendations(models.Insights{ExpenseChange: -25})
	s.Require().Len(drop, 1)
	s.Equal(models.RecommendationSuccess, drop[0].Type)
	s.Equal("Excellent! You reduced spending by 25% this month.", drop[0].Message)
}

func (s *AnalyticsServiceTestSuite) TestRecommendations_NearBudgetTipJoinsCategories() {
	recs := s.analytics.Recommendations(models.Insights{
		NearBudgetCategories: []models.BudgetStatus{
			{Category: "Food & Dining"},
			{Category: "Utilities"},
		},
	})

	s.Require().Len(recs, 1)
	s.Equal("Food & Dining, Utilities approaching budget limit.", recs[0].Message)
}

func (s *AnalyticsServiceTestSuite) TestMonthTotals() {
	s.addTransaction(models.TransactionTypeIncome, 25000, "Salary", models.NewDate(2026, 3, 1))
	s.addTransaction(models.TransactionTypeExpense, 450, "Food & Dining", models.NewDate(2026, 3, 8))
	s.addTransaction(models.TransactionTypeExpense, 999, "Shopping", models.NewDate(2026, 2, 8))

	totals := s.analytics.MonthTotals(models.NewDate(2026, 3, 15))

	s.True(totals.Income.Equal(decimal.NewFromInt(25000)))
	s.True(totals.Expenses.Equal(decimal.NewFromInt(450)))
	s.True(totals.Balance.Equal(decimal.NewFromInt(24550)))
}
