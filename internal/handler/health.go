package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/edukit/teachers-api/internal/middleware"
	"github.com/edukit/teachers-api/internal/server"
	"github.com/labstack/echo/v4"
)

// Pinger is the slice of the database the health endpoint depends on.
// *database.Database satisfies it; tests substitute fakes.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler exposes the endpoint load balancers and uptime monitors
// use to verify the service is alive and its database is reachable.
type HealthHandler struct {
	Handler
	db Pinger
}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler(s *server.Server, db Pinger) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		db:      db,
	}
}

// CheckHealth returns overall status plus a per-dependency check map.
// It responds 200 when all checks pass and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      make(map[string]interface{}),
	}
	checks := response["checks"].(map[string]interface{})
	isHealthy := true

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	dbStart := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		checks["database"] = map[string]interface{}{
			"status":        "unhealthy",
			"response_time": time.Since(dbStart).String(),
			"error":         err.Error(),
		}
		isHealthy = false

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(dbStart)).
			Msg("database health check failed")
	} else {
		checks["database"] = map[string]interface{}{
			"status":        "healthy",
			"response_time": time.Since(dbStart).String(),
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	return c.JSON(http.StatusOK, response)
}
