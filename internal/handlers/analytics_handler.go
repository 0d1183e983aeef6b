package handlers

import (
	"net/http"

	"wisewallet/internal/dto"
	"wisewallet/internal/errors"
	"wisewallet/internal/models"
	"wisewallet/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler handles derived-analytics HTTP requests
type AnalyticsHandler struct {
	analytics services.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analytics services.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Overview bundles the series, spending, insights, and recommendations
// in one response so the dashboard renders with a single round trip.
// @Summary Analytics overview
// @Tags Analytics
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /analytics/overview [get]
func (h *AnalyticsHandler) Overview(c echo.Context) error {
	today := models.Today()

	series := h.analytics.MonthlySeries(today, services.DefaultTrailingMonths)
	spending := h.analytics.CategorySpending(today)
	insights := h.analytics.Insights(series, spending)

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: dto.AnalyticsOverviewResponse{
			MonthlySeries:    series,
			CategorySpending: spending,
			Insights:         insights,
			Recommendations:  h.analytics.Recommendations(insights),
		},
	})
}

// MonthlySeries returns the trailing monthly totals, oldest first.
// @Summary Monthly income/expense series
// @Tags Analytics
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /analytics/monthly [get]
func (h *AnalyticsHandler) MonthlySeries(c echo.Context) error {
	var params dto.MonthlySeriesParams
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&params); err != nil {
		return err
	}

	months := params.Months
	if months == 0 {
		months = services.DefaultTrailingMonths
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: h.analytics.MonthlySeries(models.Today(), months)})
}

// Insights returns the current-month metric set.
// @Summary Current-month insights
// @Tags Analytics
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /analytics/insights [get]
func (h *AnalyticsHandler) Insights(c echo.Context) error {
	today := models.Today()
	series := h.analytics.MonthlySeries(today, services.DefaultTrailingMonths)
	spending := h.analytics.CategorySpending(today)

	return c.JSON(http.StatusOK, SuccessResponse{Data: h.analytics.Insights(series, spending)})
}

// Recommendations returns the rule-derived advice list. An empty list
// means all clear.
// @Summary Spending recommendations
// @Tags Analytics
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /analytics/recommendations [get]
func (h *AnalyticsHandler) Recommendations(c echo.Context) error {
	today := models.Today()
	series := h.analytics.MonthlySeries(today, services.DefaultTrailingMonths)
	spending := h.analytics.CategorySpending(today)
	insights := h.analytics.Insights(series, spending)

	return c.JSON(http.StatusOK, SuccessResponse{Data: h.analytics.Recommendations(insights)})
}

// Summary returns the current-month totals behind the dashboard cards.
// @Summary Current-month totals
// @Tags Analytics
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /analytics/summary [get]
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.analytics.MonthTotals(models.Today())})
}
