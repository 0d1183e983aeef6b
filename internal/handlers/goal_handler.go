package handlers

import (
	"net/http"

	"wisewallet/internal/dto"
	"wisewallet/internal/errors"
	"wisewallet/internal/models"
	"wisewallet/internal/services"
	"wisewallet/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GoalHandler handles savings-goal HTTP requests
type GoalHandler struct {
	store   *store.Store
	goals   services.GoalServiceInterface
	palette *services.ColorPalette
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(st *store.Store, goals services.GoalServiceInterface, palette *services.ColorPalette) *GoalHandler {
	return &GoalHandler{store: st, goals: goals, palette: palette}
}

// ListGoals returns all savings goals.
// @Summary List goals
// @Tags Goals
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /goals [get]
func (h *GoalHandler) ListGoals(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.goals.List()})
}

// CreateGoal adds a savings goal with a fresh ID and an empty milestone
// history, regardless of what the client sends.
// @Summary Create goal
// @Tags Goals
// @Accept json
// @Produce json
// @Success 201 {object} SuccessResponse
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.GoalInvalidTarget)
	}

	goal := models.Goal{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Icon:          req.Icon,
		Color:         req.Color,
	}
	if goal.Color == "" {
		goal.Color = h.palette.Next()
	}
	if req.Deadline != "" {
		deadline, err := models.ParseDate(req.Deadline)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate)
		}
		goal.Deadline = deadline
	}

	created := h.goals.Add(goal)
	return c.JSON(http.StatusCreated, SuccessResponse{Data: created, Message: "Goal created"})
}

// UpdateGoal applies a partial replace to an existing goal.
// @Summary Update goal
// @Tags Goals
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.TargetAmount != nil && req.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.GoalInvalidTarget)
	}

	patch := models.GoalPatch{
		Name:          req.Name,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Icon:          req.Icon,
		Color:         req.Color,
	}
	if req.Deadline != nil {
		deadline, err := models.ParseDate(*req.Deadline)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate)
		}
		patch.Deadline = &deadline
	}

	if err := h.goals.Update(id, patch); err != nil {
		return SendError(c, errors.GoalNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Goal updated"})
}

// DeleteGoal removes a savings goal.
// @Summary Delete goal
// @Tags Goals
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /goals/{id} [delete]
func (h *GoalHandler) DeleteGoal(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	if err := h.goals.Delete(id); err != nil {
		return SendError(c, errors.GoalNotFound)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Message: "Goal deleted"})
}

// Contribute adds funds toward a goal and reports any milestones the
// contribution crossed for the first time.
// @Summary Contribute to goal
// @Tags Goals
// @Accept json
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /goals/{id}/contribute [post]
func (h *GoalHandler) Contribute(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.ContributeRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, errors.GoalInvalidContribution)
	}

	crossed, err := h.goals.Contribute(id, req.Amount)
	if err != nil {
		return SendError(c, errors.GoalNotFound)
	}

	goal, _ := h.store.Goal(id)
	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.ContributeResponse{
			Goal:              goal,
			MilestonesCrossed: crossed,
		},
	})
}
