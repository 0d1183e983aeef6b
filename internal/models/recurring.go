package models

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// Days 29-31 do not exist in every month; capping at 28 keeps every
	// template due exactly once per month with no month-length edge cases.
	MinDayOfMonth = 1
	MaxDayOfMonth = 28
)

var ErrInvalidDayOfMonth = errors.New("day of month must be between 1 and 28")

// RecurringTransaction is a template for a monthly bill or income, not a
// ledger entry itself. Active templates materialize into Transactions on
// their due day.
type RecurringTransaction struct {
	ID          uuid.UUID       `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	DayOfMonth  int             `json:"day_of_month"`
	IsActive    bool            `json:"is_active"`
}

// Validate checks the structural invariants, applied at the API boundary.
func (r *RecurringTransaction) Validate() error {
	if !IsValidTransactionType(r.Type) {
		return ErrInvalidTransactionType
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}
	if r.Description == "" {
		return ErrDescriptionRequired
	}
	if r.DayOfMonth < MinDayOfMonth || r.DayOfMonth > MaxDayOfMonth {
		return ErrInvalidDayOfMonth
	}
	return nil
}

// IsDueOn reports whether an active template is due on the given date.
func (r *RecurringTransaction) IsDueOn(date Date) bool {
	return r.IsActive && r.DayOfMonth == date.Day()
}

// NextDueDate returns the first due date on or after the given date.
func (r *RecurringTransaction) NextDueDate(from Date) Date {
	due := NewDate(from.Year(), from.Month(), r.DayOfMonth)
	if due.Before(from.Time) {
		due = NewDate(from.Year(), from.Month()+1, r.DayOfMonth)
	}
	return due
}

// RecurringPatch carries a partial field replace for an existing
// template; nil fields are left untouched.
type RecurringPatch struct {
	Type        *string          `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Description *string          `json:"description,omitempty"`
	DayOfMonth  *int             `json:"day_of_month,omitempty"`
	IsActive    *bool            `json:"is_active,omitempty"`
}

// Apply copies the non-nil patch fields onto the template.
func (r *RecurringTransaction) Apply(p RecurringPatch) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Category != nil {
		r.Category = *p.Category
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.DayOfMonth != nil {
		r.DayOfMonth = *p.DayOfMonth
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}
