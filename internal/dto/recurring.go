package dto

import (
	"github.com/shopspring/decimal"
)

// CreateRecurringRequest registers a monthly template. Due days run 1-28
// so every template fires exactly once per month.
type CreateRecurringRequest struct {
	Type        string          `json:"type" validate:"required,transaction_type"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
	DayOfMonth  int             `json:"day_of_month" validate:"required,day_of_month"`
	IsActive    *bool           `json:"is_active,omitempty"`
}

// UpdateRecurringRequest is a partial replace; omitted fields keep their
// stored value.
type UpdateRecurringRequest struct {
	Type        *string          `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	DayOfMonth  *int             `json:"day_of_month,omitempty" validate:"omitempty,day_of_month"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// ProcessRecurringResponse reports a materialization run.
type ProcessRecurringResponse struct {
	Materialized int    `json:"materialized"`
	Date         string `json:"date"`
}
