package services

import (
	"testing"

	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RecurringProcessorTestSuite struct {
	suite.Suite
	store     *store.Store
	processor RecurringProcessorInterface
}

func (s *RecurringProcessorTestSuite) SetupTest() {
	s.store = store.New(models.NewDomainState())
	s.processor = NewRecurringProcessor(s.store, nil)
}

func TestRecurringProcessorSuite(t *testing.T) {
	suite.Run(t, new(RecurringProcessorTestSuite))
}

func (s *RecurringProcessorTestSuite) addTemplate(description string, day int, active bool) models.RecurringTransaction {
	return s.store.AddRecurring(models.RecurringTransaction{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(450),
		Category:    "Utilities",
		Description: description,
		DayOfMonth:  day,
		IsActive:    active,
	})
}

func (s *RecurringProcessorTestSuite) TestProcess_MaterializesDueTemplate() {
	s.addTemplate("Internet", 5, true)
	today := models.NewDate(2026, 3, 5)

	created := s.processor.Process(today)

	s.Equal(1, created)
	txns := s.store.Transactions()
	s.Require().Len(txns, 1)
	s.Equal("Internet", txns[0].Description)
	s.True(txns[0].IsRecurring)
	s.Equal(5, txns[0].RecurringDay)
	s.True(txns[0].Date.SameDay(today))
	s.True(txns[0].Amount.Equal(decimal.NewFromInt(450)))
}

func (s *RecurringProcessorTestSuite) TestProcess_SecondRunSameDayIsNoOp() {
	s.addTemplate("Internet", 5, true)
	today := models.NewDate(2026, 3, 5)

	s.Equal(1, s.processor.Process(today))
	s.Equal(0, s.processor.Process(today))
	s.Len(s.store.Transactions(), 1)
}

func (s *RecurringProcessorTestSuite) TestProcess_NextMonthMaterializesAgain() {
	s.addTemplate("Internet", 5, true)

	s.Equal(1, s.processor.Process(models.NewDate(2026, 3, 5)))
	s.Equal(1, s.processor.Process(models.NewDate(2026, 4, 5)))
	s.Len(s.store.Transactions(), 2)
}

func (s *RecurringProcessorTestSuite) TestProcess_SkipsInactiveAndNotDue() {
	s.addTemplate("Internet", 5, true)
	s.addTemplate("Netflix", 8, true)
	s.addTemplate("Gym", 5, false)

	created := s.processor.Process(models.NewDate(2026, 3, 5))

	s.Equal(1, created)
	txns := s.store.Transactions()
	s.Require().Len(txns, 1)
	s.Equal("Internet", txns[0].Description)
}

func (s *RecurringProcessorTestSuite) TestProcess_ManualEntrySameDescriptionDoesNotBlock() {
	s.addTemplate("Internet", 5, true)
	today := models.NewDate(2026, 3, 5)

	// Manual ledger entries never carry the recurring flag, so they do
	// not count as a materialization.
	s.store.AddTransaction(models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(450),
		Category:    "Utilities",
		Description: "Internet",
		Date:        today,
	})

	s.Equal(1, s.processor.Process(today))
	s.Len(s.store.Transactions(), 2)
}

func (s *RecurringProcessorTestSuite) TestProcess_MalformedTemplateSkippedWithoutAborting() {
	s.store.AddRecurring(models.RecurringTransaction{
		Type:        "transfer",
		Amount:      decimal.NewFromInt(100),
		Description: "Broken",
		DayOfMonth:  5,
		IsActive:    true,
	})
	s.addTemplate("Internet", 5, true)

	created := s.processor.Process(models.NewDate(2026, 3, 5))

	s.Equal(1, created)
	txns := s.store.Transactions()
	s.Require().Len(txns, 1)
	s.Equal("Internet", txns[0].Description)
}

func (s *RecurringProcessorTestSuite) TestUpcoming_SortedBySoonestDue() {
	s.addTemplate("Netflix", 8, true)
	s.addTemplate("Rent", 1, true)
	s.addTemplate("Internet", 5, true)
	s.addTemplate("Inactive", 2, false)

	bills := s.processor.Upcoming(models.NewDate(2026, 3, 3))

	s.Require().Len(bills, 3)
	s.Equal("Internet", bills[0].Description)
	s.True(bills[0].NextDue.SameDay(models.NewDate(2026, 3, 5)))
	s.Equal("Netflix", bills[1].Description)
	s.True(bills[1].NextDue.SameDay(models.NewDate(2026, 3, 8)))
	s.Equal("Rent", bills[2].Description)
	s.True(bills[2].NextDue.SameDay(models.NewDate(2026, 4, 1)))
}

func (s *RecurringProcessorTestSuite) TestUpcoming_DueTodayStaysToday() {
	s.addTemplate("Internet", 5, true)

	bills := s.processor.Upcoming(models.NewDate(2026, 3, 5))

	s.Require().Len(bills, 1)
	s.True(bills[0].NextDue.SameDay(models.NewDate(2026, 3, 5)))
}
