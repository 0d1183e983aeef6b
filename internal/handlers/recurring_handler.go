package handlers

import (
	"net/http"
	"strings"

	"wisewallet/internal/dto"
	"wisewallet/internal/errors"
	"wisewallet/internal/models"
	"wisewallet/internal/services"
	"wisewallet/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// RecurringHandler handles recurring-template HTTP requests
type RecurringHandler struct {
	store     *store.Store
	processor services.RecurringProcessorInterface
}

// NewRecurringHandler creates a new recurring-template handler
func NewRecurringHandler(st *store.Store, processor services.RecurringProcessorInterface) *RecurringHandler {
	return &RecurringHandler{store: st, processor: processor}
}

// ListRecurring returns all recurring templates.
// @Summary List recurring templates
// @Tags Recurring
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /recurring [get]
func (h *RecurringHandler) ListRecurring(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.store.RecurringTransactions()})
}

// CreateRecurring registers a monthly template. New templates default to
// active unless the request says otherwise.
// @Summary Create recurring template
// @Tags Recurring
// @Accept json
// @Produce json
// @Success 201 {object} SuccessResponse
// @Router /recurring [post]
func (h *RecurringHandler) CreateRecurring(c echo.Context) error {
	var req dto.CreateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.RecurringInvalidAmount)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	template := models.RecurringTransaction{
		Type:        strings.ToLower(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		DayOfMonth:  req.DayOfMonth,
		IsActive:    active,
	}
	if err := template.Validate(); err != nil {
		return h.mapRecurringError(c, err)
	}

	created := h.store.AddRecurring(template)
	return c.JSON(http.StatusCreated, SuccessResponse{Data: created, Message: "Recurring transaction created"})
}

// UpdateRecurring applies a partial replace to an existing template.
// @Summary Update recurring template
// @Tags Recurring
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /recurring/{id} [put]
func (h *RecurringHandler) UpdateRecurring(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid recurring transaction ID"))
	}

	var req dto.UpdateRecurringRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Amount != nil && req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.RecurringInvalidAmount)
	}

	patch := models.RecurringPatch{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		DayOfMonth:  req.DayOfMonth,
		IsActive:    req.IsActive,
	}
	if req.Type != nil {
		lowered := strings.ToLower(*req.Type)
		patch.Type = &lowered
	}

	if !h.store.UpdateRecurring(id, patch) {
		return SendError(c, errors.RecurringNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Recurring transaction updated"})
}

// DeleteRecurring removes a template. Transactions it already
// materialized stay in the ledger.
// @Summary Delete recurring template
// @Tags Recurring
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /recurring/{id} [delete]
func (h *RecurringHandler) DeleteRecurring(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid recurring transaction ID"))
	}

	if !h.store.DeleteRecurring(id) {
		return SendError(c, errors.RecurringNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Recurring transaction deleted"})
}

// ProcessRecurring materializes every template due today. Idempotent per
// calendar day.
// @Summary Process due recurring templates
// @Tags Recurring
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /recurring/process [post]
func (h *RecurringHandler) ProcessRecurring(c echo.Context) error {
	today := models.Today()
	materialized := h.processor.Process(today)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ProcessRecurringResponse{
			Materialized: materialized,
			Date:         today.String(),
		},
	})
}

// UpcomingRecurring lists active templates with their next due date,
// soonest first.
// @Summary List upcoming bills
// @Tags Recurring
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /recurring/upcoming [get]
func (h *RecurringHandler) UpcomingRecurring(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.processor.Upcoming(models.Today())})
}

func (h *RecurringHandler) mapRecurringError(c echo.Context, err error) error {
	switch err {
	case models.ErrInvalidDayOfMonth:
		return SendError(c, errors.RecurringInvalidDay)
	case models.ErrInvalidAmount:
		return SendError(c, errors.RecurringInvalidAmount)
	case models.ErrInvalidTransactionType:
		return SendError(c, errors.LedgerInvalidType)
	default:
		return SendError(c, errors.ValidationGeneral)
	}
}
