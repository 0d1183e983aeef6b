package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	TransactionTypeIncome  = "income"
	TransactionTypeExpense = "expense"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrDescriptionRequired    = errors.New("description is required")
)

// Transaction is a single ledger record. Direction comes from Type, never
// from the sign of Amount, which is always positive.
type Transaction struct {
	ID           uuid.UUID       `json:"id"`
	Type         string          `json:"type"`
	Amount       decimal.Decimal `json:"amount"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	Date         Date            `json:"date"`
	IsRecurring  bool            `json:"is_recurring,omitempty"`
	RecurringDay int             `json:"recurring_day,omitempty"`
}

// Validate checks the structural invariants. The ledger store itself is
// permissive; this is applied at the API boundary.
func (t *Transaction) Validate() error {
	if !IsValidTransactionType(t.Type) {
		return ErrInvalidTransactionType
	}
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if t.Description == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// IsExpense returns true for expense transactions.
func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsIncome returns true for income transactions.
func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

// InMonth reports whether the transaction is dated within the given month.
func (t *Transaction) InMonth(year int, month time.Month) bool {
	return t.Date.InMonth(year, month)
}

// IsValidTransactionType checks the transaction type is one of the two
// supported directions.
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense:
		return true
	default:
		return false
	}
}

// TransactionPatch carries a partial field replace for an existing
// transaction; nil fields are left untouched.
type TransactionPatch struct {
	Type         *string          `json:"type,omitempty"`
	Amount       *decimal.Decimal `json:"amount,omitempty"`
	Category     *string          `json:"category,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Date         *Date            `json:"date,omitempty"`
	IsRecurring  *bool            `json:"is_recurring,omitempty"`
	RecurringDay *int             `json:"recurring_day,omitempty"`
}

// Apply copies the non-nil patch fields onto the transaction.
func (t *Transaction) Apply(p TransactionPatch) {
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.IsRecurring != nil {
		t.IsRecurring = *p.IsRecurring
	}
	if p.RecurringDay != nil {
		t.RecurringDay = *p.RecurringDay
	}
}
