package services

import (
	"testing"

	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	store   *store.Store
	service GoalServiceInterface
}

func (s *GoalServiceTestSuite) SetupTest() {
	s.store = store.New(models.NewDomainState())
	s.service = NewGoalService(s.store, nil)
}

func TestGoalServiceSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}

func (s *GoalServiceTestSuite) seedGoal(target, current int64, reached []int) models.Goal {
	return s.service.Add(models.Goal{
		Name:              "Emergency Fund",
		TargetAmount:      decimal.NewFromInt(target),
		CurrentAmount:     decimal.NewFromInt(current),
		Deadline:          models.NewDate(2027, 6, 30),
		Icon:              "shield",
		Color:             "hsl(var(--chart-1))",
		MilestonesReached: reached,
	})
}

func (s *GoalServiceTestSuite) TestAdd_AssignsFreshIDAndEmptyMilestones() {
	goal := s.service.Add(models.Goal{
		Name:              "Vacation",
		TargetAmount:      decimal.NewFromInt(25000),
		CurrentAmount:     decimal.Zero,
		MilestonesReached: []int{25, 50},
	})

	s.NotEqual(uuid.Nil, goal.ID)
	s.Empty(goal.MilestonesReached)
}

func (s *GoalServiceTestSuite) TestContribute_CrossesSingleMilestone() {
	goal := s.seedGoal(1000, 200, []int{})

	crossed, err := s.service.Contribute(goal.ID, decimal.NewFromInt(100))

	s.NoError(err)
	s.Equal([]int{25}, crossed)

	stored, found := s.store.Goal(goal.ID)
	s.True(found)
	s.True(stored.CurrentAmount.Equal(decimal.NewFromInt(300)))
	s.Equal([]int{25}, stored.MilestonesReached)
}

func (s *GoalServiceTestSuite) TestContribute_SameMilestoneNeverRepeats() {
	goal := s.seedGoal(1000, 200, []int{})

	crossed, err := s.service.Contribute(goal.ID, decimal.NewFromInt(100))
	s.NoError(err)
	s.Equal([]int{25}, crossed)

	crossed, err = s.service.Contribute(goal.ID, decimal.NewFromInt(1))
	s.NoError(err)
	s.Empty(crossed)

	stored, _ := s.store.Goal(goal.ID)
	s.Equal([]int{25}, stored.MilestonesReached)
	s.True(stored.CurrentAmount.Equal(decimal.NewFromInt(301)))
}

func (s *GoalServiceTestSuite) TestContribute_LargeContributionCrossesSeveralMilestones() {
	goal := s.seedGoal(1000, 0, []int{})

	crossed, err := s.service.Contribute(goal.ID, decimal.NewFromInt(800))

	s.NoError(err)
	s.Equal([]int{25, 50, 75}, crossed)
}

func (s *GoalServiceTestSuite) TestContribute_OvershootCrossesHundredOnce() {
	goal := s.seedGoal(1000, 900, []int{25, 50, 75})
	s.Require().NoError(s.service.Update(goal.ID, models.GoalPatch{
		MilestonesReached: &[]int{25, 50, 75},
	}))

	crossed, err := s.service.Contribute(goal.ID, decimal.NewFromInt(500))
	s.NoError(err)
	s.Equal([]int{100}, crossed)

	stored, _ := s.store.Goal(goal.ID)
	s.True(stored.CurrentAmount.Equal(decimal.NewFromInt(1400)))

	crossed, err = s.service.Contribute(goal.ID, decimal.NewFromInt(100))
	s.NoError(err)
	s.Empty(crossed)
}

func (s *GoalServiceTestSuite) TestContribute_UnknownGoal() {
	crossed, err := s.service.Contribute(uuid.New(), decimal.NewFromInt(100))

	s.ErrorIs(err, ErrGoalNotFound)
	s.Empty(crossed)
}

func (s *GoalServiceTestSuite) TestContribute_ZeroTargetTreatedAsComplete() {
	goal := s.service.Add(models.Goal{
		Name:         "Misconfigured",
		TargetAmount: decimal.Zero,
	})

	crossed, err := s.service.Contribute(goal.ID, decimal.NewFromInt(10))

	s.NoError(err)
	s.Equal([]int{25, 50, 75, 100}, crossed)
}

func (s *GoalServiceTestSuite) TestUpdate_PatchesFields() {
	goal := s.seedGoal(1000, 0, []int{})

	name := "Rainy Day"
	target := decimal.NewFromInt(2000)
	err := s.service.Update(goal.ID, models.GoalPatch{
		Name:         &name,
		TargetAmount: &target,
	})

	s.NoError(err)
	stored, _ := s.store.Goal(goal.ID)
	s.Equal("Rainy Day", stored.Name)
	s.True(stored.TargetAmount.Equal(target))
	s.Equal("shield", stored.Icon)
}

func (s *GoalServiceTestSuite) TestUpdate_UnknownGoal() {
	name := "nobody"
	err := s.service.Update(uuid.New(), models.GoalPatch{Name: &name})

	s.ErrorIs(err, ErrGoalNotFound)
}

func (s *GoalServiceTestSuite) TestDelete_RemovesGoal() {
	goal := s.seedGoal(1000, 0, []int{})

	s.NoError(s.service.Delete(goal.ID))
	s.Empty(s.service.List())

	s.ErrorIs(s.service.Delete(goal.ID), ErrGoalNotFound)
}
