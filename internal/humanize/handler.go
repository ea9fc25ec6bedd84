package humanize

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// View is where the handler renders its outcome.
//
// SetOutput and SetScore receive the result on success. Alert is a
// user-visible notice for validation and transport failures. Handle may
// run concurrently, so implementations must be safe for concurrent use.
type View interface {
	SetOutput(text string)
	SetScore(score string)
	Alert(message string)
}

// Humanizer is the transport the handler depends on. *Client implements it.
type Humanizer interface {
	Humanize(ctx context.Context, req Request) (*Response, error)
}

// Handler runs one read -> request -> render cycle per call.
//
// Calls are not serialized: when two calls overlap, whichever response
// resolves last is what the View ends up showing.
type Handler struct {
	humanizer Humanizer
	view      View
	logger    *zerolog.Logger
}

// NewHandler wires a Handler. logger is the diagnostic channel for
// transport failures; nil discards them.
func NewHandler(h Humanizer, view View, logger *zerolog.Logger) *Handler {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	return &Handler{
		humanizer: h,
		view:      view,
		logger:    logger,
	}
}

// Handle processes one user action.
//
// It returns ErrEmptyText when the text is blank (no request is made) and
// the transport error when the request fails. In both cases the user has
// already been alerted and the output is left untouched.
func (h *Handler) Handle(ctx context.Context, state FormState) error {
	req := state.Request()

	if err := req.Validate(); err != nil {
		h.view.Alert(AlertEmptyText)
		return err
	}

	resp, err := h.humanizer.Humanize(ctx, req)
	if err == nil && resp == nil {
		err = &TransportError{Err: errors.New("no response")}
	}
	if err != nil {
		h.logger.Error().
			Err(err).
			Str("mode", req.Mode).
			Bool("ultra", req.Ultra).
			Msg("humanize request failed")

		h.view.Alert(AlertBackendFailed)
		return err
	}

	h.view.SetOutput(resp.Result)
	h.view.SetScore(FormatScore(resp.HumanStyleConfidence))

	return nil
}
