// Package router initializes the HTTP router (using Echo).
//
// It registers the middlewares and maps paths to their handlers.
package router

import (
	"net/http"

	"github.com/deppfellow/humanizer/internal/handler"
	"github.com/deppfellow/humanizer/internal/middleware"
	"github.com/deppfellow/humanizer/internal/server"
	"github.com/labstack/echo/v4"
)

// NewRouter builds the Echo instance with the global middleware chain and
// every route registered.
//
// Order matters: the request ID must exist before the tracing and logging
// middleware read it, and the New Relic transaction must exist before the
// context enhancer copies its trace IDs into the logger.
func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	mw := middleware.NewMiddlewares(s)

	r := echo.New()
	r.HideBanner = true
	r.HidePort = true
	r.HTTPErrorHandler = mw.Global.GlobalErrorHandler

	r.Use(
		middleware.RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.Secure(),
		mw.Global.CORS(),
	)

	registerSystemRoutes(r, h)
	registerHumanizeRoutes(r, h)

	return r
}

func registerHumanizeRoutes(r *echo.Echo, h *handler.Handlers) {
	r.POST("/humanize", handler.Handle(h.Humanize.Humanize, http.StatusOK, handler.NewHumanizeRequest))
}
