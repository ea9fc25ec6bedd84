package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/humanizer/internal/humanize"
	"github.com/deppfellow/humanizer/internal/middleware"
	"github.com/deppfellow/humanizer/internal/server"
	"github.com/deppfellow/humanizer/internal/service"
	"github.com/labstack/echo/v4"
)

// healthCheckTimeout bounds the engine probe.
const healthCheckTimeout = 5 * time.Second

// HealthHandler exposes the endpoints monitors and load balancers use to
// check the backend is alive.
type HealthHandler struct {
	Handler
	engine service.Engine
}

// NewHealthHandler constructs a HealthHandler that probes engine.
func NewHealthHandler(s *server.Server, engine service.Engine) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
		engine:  engine,
	}
}

// Root is the plain liveness route at "/".
func (h *HealthHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "Humanizer backend running",
	})
}

// CheckHealth runs a one-word humanize through the engine and reports
// the outcome. It returns 200 when healthy and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

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

	ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
	defer cancel()

	engineStart := time.Now()
	_, err := h.engine.Humanize(ctx, humanize.Request{Text: "ping", Mode: humanize.DefaultMode})
	if err != nil {
		checks["engine"] = map[string]interface{}{
			"name":          h.engine.Name(),
			"status":        "unhealthy",
			"response_time": time.Since(engineStart).String(),
			"error":         err.Error(),
		}

		logger.Error().
			Err(err).
			Dur("response_time", time.Since(engineStart)).
			Msg("engine health check failed")

		if app := h.server.LoggerService.GetApplication(); app != nil {
			app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
				"check_type":       "engine",
				"engine":           h.engine.Name(),
				"response_time_ms": time.Since(engineStart).Milliseconds(),
				"error_message":    err.Error(),
			})
		}

		response["status"] = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	checks["engine"] = map[string]interface{}{
		"name":          h.engine.Name(),
		"status":        "healthy",
		"response_time": time.Since(engineStart).String(),
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}
