package handler

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// HealthHandler reports process and database liveness.
type HealthHandler struct {
	DB *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{DB: db}
}

func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	overall, dbStatus := "ok", "up"
	status := http.StatusOK
	if err := h.DB.PingContext(ctx); err != nil {
		overall, dbStatus = "degraded", "down"
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, echo.Map{
		"status":    overall,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
