package humanize

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Client posts humanize requests to a single configured endpoint.
//
// The endpoint is the full URL (base + path), e.g.
// "http://127.0.0.1:5000/humanize". The client enforces no timeout of its
// own; bound the call through the context if needed.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *zerolog.Logger
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger sets the logger used for request-level debug logs.
func WithLogger(logger *zerolog.Logger) ClientOption {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient constructs a Client for endpoint.
func NewClient(endpoint string, opts ...ClientOption) *Client {
	nop := zerolog.Nop()

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{},
		logger:     &nop,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Endpoint returns the URL requests are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Humanize performs one POST and decodes the response.
//
// Any failure after the request is built is returned as *TransportError.
func (c *Client) Humanize(ctx context.Context, req Request) (*Response, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "encode humanize request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, c.transportError(0, errors.Wrap(err, "build request"))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	c.logger.Debug().
		Str("endpoint", c.endpoint).
		Str("mode", req.Mode).
		Bool("ultra", req.Ultra).
		Int("text_length", len(req.Text)).
		Msg("posting humanize request")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.transportError(0, errors.Wrap(err, "send request"))
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.transportError(httpResp.StatusCode, errors.Wrap(err, "read response body"))
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		return nil, c.transportError(httpResp.StatusCode, errors.Errorf("unexpected status: %s", bytes.TrimSpace(data)))
	}

	// Decoding into a pointer lets a literal `null` body surface as a failure
	// instead of silently rendering zero values.
	var resp *Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, c.transportError(httpResp.StatusCode, errors.Wrap(err, "decode response body"))
	}
	if resp == nil {
		return nil, c.transportError(httpResp.StatusCode, errors.New("response body is null"))
	}

	return resp, nil
}

func (c *Client) transportError(status int, err error) *TransportError {
	return &TransportError{
		Endpoint:   c.endpoint,
		StatusCode: status,
		Err:        err,
	}
}
