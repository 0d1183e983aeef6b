package handlers

import (
	"net/http"
	"net/url"

	"wisewallet/internal/dto"
	"wisewallet/internal/errors"
	"wisewallet/internal/models"
	"wisewallet/internal/services"
	"wisewallet/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget-related HTTP requests
type BudgetHandler struct {
	store   *store.Store
	tracker services.BudgetTrackerInterface
	palette *services.ColorPalette
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(st *store.Store, tracker services.BudgetTrackerInterface, palette *services.ColorPalette) *BudgetHandler {
	return &BudgetHandler{store: st, tracker: tracker, palette: palette}
}

// ListBudgets reports each budget with its current-month consumption.
// @Summary List budgets with spending status
// @Tags Budgets
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	statuses := h.tracker.CurrentMonth(models.Today())
	return c.JSON(http.StatusOK, SuccessResponse{Data: statuses})
}

// CreateBudget defines a spending cap for a new category. The category
// is the identity; defining it twice is a conflict.
// @Summary Create budget
// @Tags Budgets
// @Accept json
// @Produce json
// @Success 201 {object} SuccessResponse
// @Router /budgets [post]
func (h *BudgetHandler) CreateBudget(c echo.Context) error {
	var req dto.CreateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Limit.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.BudgetInvalidLimit)
	}

	color := req.Color
	if color == "" {
		color = h.palette.Next()
	}

	budget := models.Budget{
		Category: req.Category,
		Limit:    req.Limit,
		Color:    color,
	}
	if err := h.store.AddBudget(budget); err != nil {
		return SendError(c, errors.BudgetDuplicate)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: budget, Message: "Budget created"})
}

// UpdateBudget replaces the limit for an existing category.
// @Summary Update budget limit
// @Tags Budgets
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /budgets/{category} [put]
func (h *BudgetHandler) UpdateBudget(c echo.Context) error {
	category := pathCategory(c)
	if category == "" {
		return SendError(c, errors.BudgetCategoryMissing)
	}

	var req dto.UpdateBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Limit.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.BudgetInvalidLimit)
	}

	if !h.store.UpdateBudget(category, req.Limit) {
		return SendError(c, errors.BudgetNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget updated"})
}

// DeleteBudget removes a category's budget. The ledger keeps any
// transactions in that category; they simply become untracked.
// @Summary Delete budget
// @Tags Budgets
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /budgets/{category} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	category := pathCategory(c)
	if category == "" {
		return SendError(c, errors.BudgetCategoryMissing)
	}

	if !h.store.DeleteBudget(category) {
		return SendError(c, errors.BudgetNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Budget deleted"})
}

// pathCategory decodes the category path segment. Category names contain
// spaces and ampersands, so clients escape them.
func pathCategory(c echo.Context) string {
	raw := c.Param("category")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}
