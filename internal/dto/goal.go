package dto

import (
	"wisewallet/internal/models"

	"github.com/shopspring/decimal"
)

// CreateGoalRequest is the payload for adding a savings goal. The server
// assigns the ID and starts the milestone history empty.
type CreateGoalRequest struct {
	Name          string          `json:"name" validate:"required"`
	TargetAmount  decimal.Decimal `json:"target_amount" validate:"required"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline,omitempty"`
	Icon          string          `json:"icon,omitempty"`
	Color         string          `json:"color,omitempty"`
}

// UpdateGoalRequest is a partial replace; omitted fields keep their
// stored value.
type UpdateGoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
	Icon          *string          `json:"icon,omitempty"`
	Color         *string          `json:"color,omitempty"`
}

// ContributeRequest adds funds toward a goal.
type ContributeRequest struct {
	Amount decimal.Decimal `json:"amount" validate:"required"`
}

// ContributeResponse reports the updated goal along with any milestones
// this contribution crossed for the first time.
type ContributeResponse struct {
	Goal              models.Goal `json:"goal"`
	MilestonesCrossed []int       `json:"milestones_crossed"`
}
