package dto

import (
	"wisewallet/internal/models"
)

// AnalyticsOverviewResponse bundles everything the dashboard's analytics
// view renders in one round trip.
type AnalyticsOverviewResponse struct {
	MonthlySeries    []models.MonthlySummary `json:"monthly_series"`
	CategorySpending []models.BudgetStatus   `json:"category_spending"`
	Insights         models.Insights         `json:"insights"`
	Recommendations  []models.Recommendation `json:"recommendations"`
}

// MonthlySeriesParams selects the trailing window for the series.
type MonthlySeriesParams struct {
	Months int `query:"months" validate:"omitempty,gte=1,lte=24"`
}
