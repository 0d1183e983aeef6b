package dto

import (
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for adding a ledger entry.
// Amounts are always positive; direction comes from the type field.
type CreateTransactionRequest struct {
	Type        string          `json:"type" validate:"required,transaction_type"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required"`
	Date        string          `json:"date" validate:"required"`
}

// UpdateTransactionRequest is a partial replace; omitted fields keep
// their stored value.
type UpdateTransactionRequest struct {
	Type        *string          `json:"type,omitempty" validate:"omitempty,transaction_type"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        *string          `json:"date,omitempty"`
}

// TransactionFilters contains filtering options for ledger listings
type TransactionFilters struct {
	Type     string `query:"type"`
	Category string `query:"category"`
	Month    string `query:"month"`
}
