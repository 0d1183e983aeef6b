package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Ledger error codes (LEDGER_*)
const (
	LedgerTransactionNotFound ErrorCode = "LEDGER_001"
	LedgerInvalidAmount       ErrorCode = "LEDGER_002"
	LedgerInvalidType         ErrorCode = "LEDGER_003"
)

// Budget error codes (BUDGET_*)
const (
	BudgetNotFound        ErrorCode = "BUDGET_001"
	BudgetDuplicate       ErrorCode = "BUDGET_002"
	BudgetInvalidLimit    ErrorCode = "BUDGET_003"
	BudgetCategoryMissing ErrorCode = "BUDGET_004"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound            ErrorCode = "GOAL_001"
	GoalInvalidTarget       ErrorCode = "GOAL_002"
	GoalInvalidContribution ErrorCode = "GOAL_003"
)

// Recurring-template error codes (RECURRING_*)
const (
	RecurringNotFound      ErrorCode = "RECURRING_001"
	RecurringInvalidDay    ErrorCode = "RECURRING_002"
	RecurringInvalidAmount ErrorCode = "RECURRING_003"
)

// Note error codes (NOTE_*)
const (
	NoteNotFound ErrorCode = "NOTE_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError     ErrorCode = "SYSTEM_001"
	SystemStorageError      ErrorCode = "SYSTEM_002"
	SystemRateLimitExceeded ErrorCode = "SYSTEM_003"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidDate:   "Invalid date format or range",

	LedgerTransactionNotFound: "Transaction not found",
	LedgerInvalidAmount:       "Transaction amount must be positive",
	LedgerInvalidType:         "Transaction type must be income or expense",

	BudgetNotFound:        "No budget exists for this category",
	BudgetDuplicate:       "A budget already exists for this category",
	BudgetInvalidLimit:    "Budget limit must be positive",
	BudgetCategoryMissing: "Budget category is required",

	GoalNotFound:            "Goal not found",
	GoalInvalidTarget:       "Goal target amount must be positive",
	GoalInvalidContribution: "Contribution amount must be positive",

	RecurringNotFound:      "Recurring transaction not found",
	RecurringInvalidDay:    "Day of month must be between 1 and 28",
	RecurringInvalidAmount: "Recurring amount must be positive",

	NoteNotFound: "Note not found",

	SystemInternalError:     "An internal error occurred",
	SystemStorageError:      "Snapshot storage is unavailable",
	SystemRateLimitExceeded: "Too many requests, slow down",
}

// GetErrorMessage returns the default message for an error code.
func GetErrorMessage(code ErrorCode) string {
	if message, exists := errorMessages[code]; exists {
		return message
	}
	return "Unknown error"
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	// 400 Bad Request - Validation errors, malformed requests
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationOutOfRange, ValidationInvalidDate,
		LedgerInvalidAmount, LedgerInvalidType,
		BudgetInvalidLimit, BudgetCategoryMissing,
		GoalInvalidTarget, GoalInvalidContribution,
		RecurringInvalidDay, RecurringInvalidAmount:
		return http.StatusBadRequest

	// 404 Not Found - Resource not found
	case LedgerTransactionNotFound, BudgetNotFound, GoalNotFound,
		RecurringNotFound, NoteNotFound:
		return http.StatusNotFound

	// 409 Conflict - Resource state conflict
	case BudgetDuplicate:
		return http.StatusConflict

	// 429 Too Many Requests - Rate limiting
	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	// 500 Internal Server Error - System errors (default)
	case SystemInternalError, SystemStorageError:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
