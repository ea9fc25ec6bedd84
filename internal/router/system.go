package router

import (
	"github.com/deppfellow/humanizer/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes registers the endpoints that are not part of the
// humanize API itself: liveness, health, docs and their static assets.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Health.Root)
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", h.OpenAPI.Assets())
	r.GET("/docs", h.OpenAPI.ServeOpenAPIUI)
}
