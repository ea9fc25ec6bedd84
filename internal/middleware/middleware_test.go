package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/humanizer/internal/config"
	"github.com/deppfellow/humanizer/internal/errs"
	"github.com/deppfellow/humanizer/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(logs *bytes.Buffer) *server.Server {
	logger := zerolog.New(logs)
	return server.New(config.DefaultConfig(), &logger, nil)
}

func newTestEcho(s *server.Server) *echo.Echo {
	mw := NewMiddlewares(s)

	e := echo.New()
	e.HTTPErrorHandler = mw.Global.GlobalErrorHandler
	e.Use(
		RequestID(),
		mw.Tracing.NewRelicMiddleware(),
		mw.Tracing.EnhanceTracing(),
		mw.ContextEnhancer.EnhanceContext(),
		mw.Global.RequestLogger(),
		mw.Global.Recover(),
		mw.Global.CORS(),
	)
	return e
}

func TestRequestIDGeneratedAndReused(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, GetRequestID(c))
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	generated := rec.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", rec.Body.String())
}

func TestRequestLoggerCarriesRequestFields(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEcho(newTestServer(&logs))
	e.GET("/ping", func(c echo.Context) error {
		LoggerFromContext(c.Request().Context()).Info().Msg("inside handler")
		return c.NoContent(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-1")
	e.ServeHTTP(httptest.NewRecorder(), req)

	lines := bytes.Split(bytes.TrimSpace(logs.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var inside, api map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &inside))
	require.NoError(t, json.Unmarshal(lines[1], &api))

	assert.Equal(t, "req-1", inside["request_id"])
	assert.Equal(t, "/ping", inside["path"])
	assert.Equal(t, "API", api["message"])
	assert.EqualValues(t, http.StatusNoContent, api["status"])
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
		wantMsg    string
	}{
		{
			name:       "custom http error",
			err:        errs.NewBadRequestError("bad input", true, nil, nil),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
			wantMsg:    "bad input",
		},
		{
			name:       "wrapped custom error",
			err:        errors.Wrap(errs.NewBadGatewayError("engine down"), "humanize"),
			wantStatus: http.StatusBadGateway,
			wantCode:   "BAD_GATEWAY",
			wantMsg:    "engine down",
		},
		{
			name:       "echo error",
			err:        echo.NewHTTPError(http.StatusMethodNotAllowed, "nope"),
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "METHOD_NOT_ALLOWED",
			wantMsg:    "nope",
		},
		{
			name:       "unknown error is hidden",
			err:        errors.New("connection string leaked"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_SERVER_ERROR",
			wantMsg:    "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho(newTestServer(&bytes.Buffer{}))
			e.GET("/fail", func(c echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body errs.HTTPError
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMsg, body.Message)
			assert.Equal(t, tt.wantStatus, body.Status)
		})
	}
}

func TestGlobalErrorHandlerRouteNotFound(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Route not found")
}

func TestCORSPreflight(t *testing.T) {
	e := newTestEcho(newTestServer(&bytes.Buffer{}))
	e.POST("/humanize", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/humanize", nil)
	req.Header.Set(echo.HeaderOrigin, "http://localhost:3000")
	req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodPost)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
}
