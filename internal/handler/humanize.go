package handler

import (
	"github.com/deppfellow/humanizer/internal/humanize"
	"github.com/deppfellow/humanizer/internal/server"
	"github.com/deppfellow/humanizer/internal/service"
	"github.com/labstack/echo/v4"
)

// HumanizeRequest is the body of POST /humanize.
type HumanizeRequest struct {
	Text  string `json:"text"`
	Mode  string `json:"mode"`
	Ultra bool   `json:"ultra"`
}

// NewHumanizeRequest allocates an empty request for binding.
func NewHumanizeRequest() *HumanizeRequest {
	return &HumanizeRequest{}
}

// Validate accepts any well-formed body. Missing fields take their zero
// values and mode/ultra are opaque to the backend.
func (r *HumanizeRequest) Validate() error {
	return nil
}

// HumanizeHandler serves the humanize endpoint.
type HumanizeHandler struct {
	Handler
	service *service.HumanizeService
}

// NewHumanizeHandler constructs a HumanizeHandler.
func NewHumanizeHandler(s *server.Server, svc *service.HumanizeService) *HumanizeHandler {
	return &HumanizeHandler{
		Handler: NewHandler(s),
		service: svc,
	}
}

// Humanize returns {"result": ..., "human_style_confidence": ...}.
func (h *HumanizeHandler) Humanize(c echo.Context, req *HumanizeRequest) (*humanize.Response, error) {
	return h.service.Humanize(c.Request().Context(), humanize.Request{
		Text:  req.Text,
		Mode:  req.Mode,
		Ultra: req.Ultra,
	})
}
