package service

import (
	"context"
	"time"

	"github.com/deppfellow/humanizer/internal/errs"
	"github.com/deppfellow/humanizer/internal/humanize"
	"github.com/deppfellow/humanizer/internal/middleware"
	"github.com/deppfellow/humanizer/internal/server"
	"github.com/pkg/errors"
)

// Engine turns a humanize request into a response.
type Engine interface {
	Name() string
	Humanize(ctx context.Context, req humanize.Request) (*humanize.Response, error)
}

// EchoEngine returns the text unchanged with a fixed confidence. It is
// the stand-in backend used when no upstream engine is configured.
type EchoEngine struct {
	confidence float64
}

// NewEchoEngine constructs an EchoEngine reporting confidence.
func NewEchoEngine(confidence float64) *EchoEngine {
	return &EchoEngine{confidence: confidence}
}

func (e *EchoEngine) Name() string { return "echo" }

func (e *EchoEngine) Humanize(ctx context.Context, req humanize.Request) (*humanize.Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &humanize.Response{
		Result:               req.Text,
		HumanStyleConfidence: e.confidence,
	}, nil
}

// UpstreamEngine forwards requests to another humanize endpoint.
type UpstreamEngine struct {
	client *humanize.Client
}

// NewUpstreamEngine constructs an UpstreamEngine around client.
func NewUpstreamEngine(client *humanize.Client) *UpstreamEngine {
	return &UpstreamEngine{client: client}
}

func (e *UpstreamEngine) Name() string { return "upstream" }

// Humanize forwards req. Transport failures become a 502 for our own
// caller; the details stay in the logs.
func (e *UpstreamEngine) Humanize(ctx context.Context, req humanize.Request) (*humanize.Response, error) {
	resp, err := e.client.Humanize(ctx, req)
	if err != nil {
		var transportErr *humanize.TransportError
		if errors.As(err, &transportErr) {
			return nil, errors.Wrap(errs.NewBadGatewayError("Humanize engine unavailable"), transportErr.Error())
		}
		return nil, err
	}

	return resp, nil
}

// HumanizeService runs requests through the configured engine.
type HumanizeService struct {
	server *server.Server
	engine Engine
}

// NewHumanizeService constructs a HumanizeService.
func NewHumanizeService(s *server.Server, engine Engine) *HumanizeService {
	return &HumanizeService{
		server: s,
		engine: engine,
	}
}

// Engine returns the engine requests are sent to.
func (s *HumanizeService) Engine() Engine {
	return s.engine
}

// Humanize runs req through the engine. Mode and ultra are passed through
// untouched; the engine decides what they mean.
func (s *HumanizeService) Humanize(ctx context.Context, req humanize.Request) (*humanize.Response, error) {
	start := time.Now()
	logger := middleware.LoggerFromContext(ctx)

	resp, err := s.engine.Humanize(ctx, req)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("engine", s.engine.Name()).
		Str("mode", req.Mode).
		Bool("ultra", req.Ultra).
		Float64("confidence", resp.HumanStyleConfidence).
		Dur("duration", time.Since(start)).
		Msg("text humanized")

	return resp, nil
}
