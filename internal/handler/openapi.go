package handler

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/deppfellow/humanizer/internal/server"
	"github.com/labstack/echo/v4"
)

//go:embed static
var staticFiles embed.FS

// OpenAPIHandler serves the API docs UI and the OpenAPI document it loads.
// Both are embedded in the binary.
type OpenAPIHandler struct {
	Handler
}

// NewOpenAPIHandler constructs an OpenAPIHandler.
func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

// Assets returns the files served under /static.
func (h *OpenAPIHandler) Assets() fs.FS {
	assets, err := fs.Sub(staticFiles, "static")
	if err != nil {
		// Only fails if the embed directive and the path disagree.
		panic(err)
	}
	return assets
}

// ServeOpenAPIUI serves static/openapi.html uncached, so doc updates show
// up immediately.
func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	page, err := fs.ReadFile(staticFiles, "static/openapi.html")

	c.Response().Header().Set("Cache-Control", "no-cache")

	if err != nil {
		return fmt.Errorf("failed to read OpenAPI UI template: %w", err)
	}

	if err := c.HTMLBlob(http.StatusOK, page); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
