package dto

import (
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines a monthly spending cap for one category.
// Color is optional; the server assigns one from the palette when empty.
type CreateBudgetRequest struct {
	Category string          `json:"category" validate:"required"`
	Limit    decimal.Decimal `json:"limit" validate:"required"`
	Color    string          `json:"color,omitempty"`
}

// UpdateBudgetRequest replaces the spending cap for a category.
type UpdateBudgetRequest struct {
	Limit decimal.Decimal `json:"limit" validate:"required"`
}
