package handlers

import (
	"wisewallet/internal/services"
	"wisewallet/internal/snapshot"
	"wisewallet/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies carries everything the HTTP surface needs.
type Dependencies struct {
	Store     *store.Store
	Snapshots *snapshot.Repository
	Tracker   services.BudgetTrackerInterface
	Goals     services.GoalServiceInterface
	Processor services.RecurringProcessorInterface
	Analytics services.AnalyticsServiceInterface
	Palette   *services.ColorPalette
}

// RegisterRoutes mounts every API route group plus health and metrics.
func RegisterRoutes(e *echo.Echo, deps Dependencies) {
	transactions := NewTransactionHandler(deps.Store)
	budgets := NewBudgetHandler(deps.Store, deps.Tracker, deps.Palette)
	goals := NewGoalHandler(deps.Store, deps.Goals, deps.Palette)
	recurring := NewRecurringHandler(deps.Store, deps.Processor)
	analytics := NewAnalyticsHandler(deps.Analytics)
	notes := NewNoteHandler(deps.Store)
	health := NewHealthCheckHandler(deps.Snapshots)

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1")

	api.GET("/transactions", transactions.ListTransactions)
	api.POST("/transactions", transactions.CreateTransaction)
	api.PUT("/transactions/:id", transactions.UpdateTransaction)
	api.DELETE("/transactions/:id", transactions.DeleteTransaction)

	api.GET("/budgets", budgets.ListBudgets)
	api.POST("/budgets", budgets.CreateBudget)
	api.PUT("/budgets/:category", budgets.UpdateBudget)
	api.DELETE("/budgets/:category", budgets.DeleteBudget)

	api.GET("/goals", goals.ListGoals)
	api.POST("/goals", goals.CreateGoal)
	api.PUT("/goals/:id", goals.UpdateGoal)
	api.DELETE("/goals/:id", goals.DeleteGoal)
	api.POST("/goals/:id/contribute", goals.Contribute)

	api.GET("/recurring", recurring.ListRecurring)
	api.POST("/recurring", recurring.CreateRecurring)
	api.PUT("/recurring/:id", recurring.UpdateRecurring)
	api.DELETE("/recurring/:id", recurring.DeleteRecurring)
	api.POST("/recurring/process", recurring.ProcessRecurring)
	api.GET("/recurring/upcoming", recurring.UpcomingRecurring)

	api.GET("/analytics/overview", analytics.Overview)
	api.GET("/analytics/monthly", analytics.MonthlySeries)
	api.GET("/analytics/insights", analytics.Insights)
	api.GET("/analytics/recommendations", analytics.Recommendations)
	api.GET("/analytics/summary", analytics.Summary)

	api.GET("/notes", notes.ListNotes)
	api.POST("/notes", notes.CreateNote)
	api.PUT("/notes/:id", notes.UpdateNote)
	api.DELETE("/notes/:id", notes.DeleteNote)

	api.GET("/profile", notes.GetProfile)
	api.PUT("/profile", notes.UpdateProfile)
	api.GET("/theme", notes.GetTheme)
	api.POST("/theme/toggle", notes.ToggleTheme)
}
