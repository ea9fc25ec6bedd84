package service

import (
	"github.com/deppfellow/humanizer/internal/humanize"
	"github.com/deppfellow/humanizer/internal/server"
)

// Services groups every business service so router setup passes one
// value around.
type Services struct {
	Humanize *HumanizeService
}

// NewServices picks the engine from config and builds the services.
func NewServices(s *server.Server) *Services {
	var engine Engine
	if upstream := s.Config.Engine.UpstreamURL; upstream != "" {
		engine = NewUpstreamEngine(humanize.NewClient(upstream, humanize.WithLogger(s.Logger)))
	} else {
		engine = NewEchoEngine(s.Config.Engine.Confidence)
	}

	return &Services{
		Humanize: NewHumanizeService(s, engine),
	}
}
