package handlers

import (
	"net/http"
	"strings"

	"wisewallet/internal/dto"
	"wisewallet/internal/errors"
	"wisewallet/internal/models"
	"wisewallet/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles ledger-related HTTP requests
type TransactionHandler struct {
	store *store.Store
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(st *store.Store) *TransactionHandler {
	return &TransactionHandler{store: st}
}

// ListTransactions returns the ledger in insertion order, optionally
// filtered by type, category, or month (YYYY-MM).
// @Summary List transactions
// @Tags Transactions
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	var filters dto.TransactionFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}

	transactions := h.store.Transactions()
	filtered := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if filters.Type != "" && txn.Type != strings.ToLower(filters.Type) {
			continue
		}
		if filters.Category != "" && txn.Category != filters.Category {
			continue
		}
		if filters.Month != "" && txn.Date.Format("2006-01") != filters.Month {
			continue
		}
		filtered = append(filtered, txn)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: filtered})
}

// CreateTransaction appends a validated ledger entry.
// @Summary Create transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Success 201 {object} SuccessResponse
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	date, err := models.ParseDate(req.Date)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate)
	}

	txn := models.Transaction{
		Type:        strings.ToLower(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}
	if err := txn.Validate(); err != nil {
		return h.mapTransactionError(c, err)
	}

	created := h.store.AddTransaction(txn)
	return c.JSON(http.StatusCreated, SuccessResponse{Data: created, Message: "Transaction created"})
}

// UpdateTransaction applies a partial replace to an existing entry.
// @Summary Update transaction
// @Tags Transactions
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	patch := models.TransactionPatch{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	}
	if req.Type != nil {
		lowered := strings.ToLower(*req.Type)
		patch.Type = &lowered
	}
	if req.Amount != nil && req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.LedgerInvalidAmount)
	}
	if req.Date != nil {
		date, err := models.ParseDate(*req.Date)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate)
		}
		patch.Date = &date
	}

	if !h.store.UpdateTransaction(id, patch) {
		return SendError(c, errors.LedgerTransactionNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction updated"})
}

// DeleteTransaction removes a ledger entry.
// @Summary Delete transaction
// @Tags Transactions
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid transaction ID"))
	}

	if !h.store.DeleteTransaction(id) {
		return SendError(c, errors.LedgerTransactionNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Transaction deleted"})
}

func (h *TransactionHandler) mapTransactionError(c echo.Context, err error) error {
	switch err {
	case models.ErrInvalidTransactionType:
		return SendError(c, errors.LedgerInvalidType)
	case models.ErrInvalidAmount:
		return SendError(c, errors.LedgerInvalidAmount)
	case models.ErrDescriptionRequired:
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("description: is required"))
	default:
		return SendError(c, errors.ValidationGeneral)
	}
}
