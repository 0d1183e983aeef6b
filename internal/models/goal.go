package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalMilestones are the celebration thresholds, in ascending order. Each
// is reported at most once over a goal's lifetime.
var GoalMilestones = []int{25, 50, 75, 100}

var (
	ErrInvalidTarget = errors.New("goal target amount must be positive")
	ErrNameRequired  = errors.New("goal name is required")
)

// Goal is a savings goal. There is no explicit status field: a goal is
// complete once CurrentAmount reaches TargetAmount, and it stays visible
// and editable after completion.
type Goal struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	TargetAmount      decimal.Decimal `json:"target_amount"`
	CurrentAmount     decimal.Decimal `json:"current_amount"`
	Deadline          Date            `json:"deadline"`
	Icon              string          `json:"icon"`
	Color             string          `json:"color"`
	MilestonesReached []int           `json:"milestones_reached"`
}

// Validate checks the structural invariants, applied at the API boundary.
func (g *Goal) Validate() error {
	if g.Name == "" {
		return ErrNameRequired
	}
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTarget
	}
	return nil
}

// Progress returns completion as a percentage. A non-positive target
// reads as fully complete rather than dividing by zero.
func (g *Goal) Progress() float64 {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return 100
	}
	pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

// IsComplete reports whether the goal has reached its target.
func (g *Goal) IsComplete() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// HasMilestone reports whether a milestone percentage was already
// celebrated for this goal.
func (g *Goal) HasMilestone(milestone int) bool {
	for _, m := range g.MilestonesReached {
		if m == milestone {
			return true
		}
	}
	return false
}

// GoalPatch carries a partial field replace for an existing goal; nil
// fields are left untouched. Overwriting CurrentAmount or
// MilestonesReached directly can regress milestones; that is the
// caller's responsibility.
type GoalPatch struct {
	Name              *string          `json:"name,omitempty"`
	TargetAmount      *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount     *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline          *Date            `json:"deadline,omitempty"`
	Icon              *string          `json:"icon,omitempty"`
	Color             *string          `json:"color,omitempty"`
	MilestonesReached *[]int           `json:"milestones_reached,omitempty"`
}

// Apply copies the non-nil patch fields onto the goal.
func (g *Goal) Apply(p GoalPatch) {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	if p.Icon != nil {
		g.Icon = *p.Icon
	}
	if p.Color != nil {
		g.Color = *p.Color
	}
	if p.MilestonesReached != nil {
		g.MilestonesReached = *p.MilestonesReached
	}
}
