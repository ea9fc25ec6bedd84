// Package handler is the first layer after the router.
//
// It binds and validates requests using the validation package, calls the
// service layer and writes the response. It is the interface between
// HTTP and the humanize engine.
package handler

import (
	"github.com/deppfellow/humanizer/internal/server"
	"github.com/deppfellow/humanizer/internal/service"
)

// Handlers groups all HTTP handlers so router setup passes one value
// around.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Humanize *HumanizeHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s, services.Humanize.Engine()),
		OpenAPI:  NewOpenAPIHandler(s),
		Humanize: NewHumanizeHandler(s, services.Humanize),
	}
}
