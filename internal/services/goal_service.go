package services

import (
	"errors"
	"log/slog"

	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var ErrGoalNotFound = errors.New("goal not found")

type goalService struct {
	store   *store.Store
	metrics *Metrics
}

// NewGoalService creates the goal engine over the injected domain store.
func NewGoalService(st *store.Store, metrics *Metrics) GoalServiceInterface {
	return &goalService{store: st, metrics: metrics}
}

func (s *goalService) List() []models.Goal {
	return s.store.Goals()
}

func (s *goalService) Add(goal models.Goal) models.Goal {
	added := s.store.AddGoal(goal)
	s.metrics.RecordMutation("goal", "add")
	return added
}

// Update applies a partial replace. The patch may overwrite
// CurrentAmount and MilestonesReached directly; not regressing
// milestones is the caller's responsibility.
func (s *goalService) Update(id uuid.UUID, patch models.GoalPatch) error {
	if !s.store.UpdateGoal(id, patch) {
		return ErrGoalNotFound
	}
	s.metrics.RecordMutation("goal", "update")
	return nil
}

func (s *goalService) Delete(id uuid.UUID) error {
	if !s.store.DeleteGoal(id) {
		return ErrGoalNotFound
	}
	s.metrics.RecordMutation("goal", "delete")
	return nil
}

// Contribute adds amount to the goal and reports which of the 25/50/75/100
// percent milestones this contribution crossed for the first time. The
// current amount is never clamped, so contributions may overshoot, and a
// milestone already recorded is never reported again. Callers validate
// amount > 0 before invoking; the engine does not re-check.
func (s *goalService) Contribute(id uuid.UUID, amount decimal.Decimal) ([]int, error) {
	newlyCrossed := []int{}
	found := false

	s.store.Mutate(func(state *models.DomainState) {
		for i := range state.Goals {
			goal := &state.Goals[i]
			if goal.ID != id {
				continue
			}
			found = true

			newAmount := goal.CurrentAmount.Add(amount)
			newPercentage := progressPercent(newAmount, goal.TargetAmount)

			for _, milestone := range models.GoalMilestones {
				if newPercentage.GreaterThanOrEqual(decimal.NewFromInt(int64(milestone))) && !goal.HasMilestone(milestone) {
					newlyCrossed = append(newlyCrossed, milestone)
					goal.MilestonesReached = append(goal.MilestonesReached, milestone)
				}
			}

			goal.CurrentAmount = newAmount
			return
		}
	})

	if !found {
		return []int{}, ErrGoalNotFound
	}

	s.metrics.RecordContribution()
	for _, milestone := range newlyCrossed {
		s.metrics.RecordMilestone(milestone)
	}

	if len(newlyCrossed) > 0 {
		slog.Info("goal milestones crossed",
			"goal_id", id,
			"milestones", newlyCrossed)
	}

	return newlyCrossed, nil
}

// progressPercent returns 100*current/target, reading a non-positive
// target as already complete instead of dividing by zero.
func progressPercent(current, target decimal.Decimal) decimal.Decimal {
	if target.LessThanOrEqual(decimal.Zero) {
		return decimal.NewFromInt(100)
	}
	return current.Div(target).Mul(decimal.NewFromInt(100))
}
