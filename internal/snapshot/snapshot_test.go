package snapshot

import (
	"testing"

	"wisewallet/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SnapshotTestSuite struct {
	suite.Suite
	repo *Repository
}

func (s *SnapshotTestSuite) SetupTest() {
	s.repo = SetupTestRepository(s.T())
}

func TestSnapshotSuite(t *testing.T) {
	suite.Run(t, new(SnapshotTestSuite))
}

func (s *SnapshotTestSuite) sampleState() *models.DomainState {
	state := models.NewDomainState()
	state.Theme = models.ThemeDark
	state.Profile = models.Profile{Name: "John Doe", Email: "john.doe@example.com"}
	state.Budgets = append(state.Budgets, models.Budget{
		Category: "Food & Dining",
		Limit:    decimal.NewFromInt(5000),
		Color:    "hsl(var(--chart-1))",
	})
	state.Transactions = append(state.Transactions, models.Transaction{
		Type:        models.TransactionTypeExpense,
		Amount:      decimal.NewFromInt(450),
		Category:    "Food & Dining",
		Description: "Grocery shopping",
		Date:        models.NewDate(2026, 3, 8),
	})
	return state
}

func (s *SnapshotTestSuite) TestLoad_MissingSnapshotIsNotAnError() {
	state, found, err := s.repo.Load("finance-store")

	s.NoError(err)
	s.False(found)
	s.Nil(state)
}

func (s *SnapshotTestSuite) TestSaveAndLoad_RoundTrip() {
	original := s.sampleState()

	s.Require().NoError(s.repo.Save("finance-store", original))

	loaded, found, err := s.repo.Load("finance-store")
	s.Require().NoError(err)
	s.Require().True(found)

	s.Equal(models.ThemeDark, loaded.Theme)
	s.Equal("John Doe", loaded.Profile.Name)
	s.Require().Len(loaded.Transactions, 1)
	s.Equal("Grocery shopping", loaded.Transactions[0].Description)
	s.True(loaded.Transactions[0].Amount.Equal(decimal.NewFromInt(450)))
	s.True(loaded.Transactions[0].Date.SameDay(models.NewDate(2026, 3, 8)))
	s.Require().Len(loaded.Budgets, 1)
	s.True(loaded.Budgets[0].Limit.Equal(decimal.NewFromInt(5000)))
}

func (s *SnapshotTestSuite) TestSave_SecondWriteReplacesFirst() {
	s.Require().NoError(s.repo.Save("finance-store", s.sampleState()))

	replacement := models.NewDomainState()
	replacement.Profile.Name = "Jane Doe"
	s.Require().NoError(s.repo.Save("finance-store", replacement))

	loaded, found, err := s.repo.Load("finance-store")
	s.Require().NoError(err)
	s.Require().True(found)
	s.Equal("Jane Doe", loaded.Profile.Name)
	s.Empty(loaded.Transactions)

	var count int64
	s.repo.db.Model(&Record{}).Count(&count)
	s.Equal(int64(1), count)
}

func (s *SnapshotTestSuite) TestSave_NamesAreIndependent() {
	s.Require().NoError(s.repo.Save("finance-store", s.sampleState()))
	s.Require().NoError(s.repo.Save("scratch", models.NewDomainState()))

	_, found, err := s.repo.Load("finance-store")
	s.NoError(err)
	s.True(found)

	scratch, found, err := s.repo.Load("scratch")
	s.NoError(err)
	s.True(found)
	s.Empty(scratch.Budgets)
}

func (s *SnapshotTestSuite) TestHealthCheck() {
	s.NoError(s.repo.HealthCheck())
}
