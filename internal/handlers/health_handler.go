package handlers

import (
	"net/http"
	"time"

	"wisewallet/internal/errors"
	"wisewallet/internal/snapshot"

	"github.com/labstack/echo/v4"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	snapshots *snapshot.Repository
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(snapshots *snapshot.Repository) *HealthCheckHandler {
	return &HealthCheckHandler{snapshots: snapshots}
}

// HealthCheck reports API liveness and snapshot-store connectivity.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string}
// @Failure 503 {object} errors.ErrorResponse
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.snapshots.HealthCheck(); err != nil {
		errorResponse := errors.NewErrorResponse(
			errors.SystemStorageError,
			getTraceID(c),
			errors.WithDetails("Snapshot storage connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
