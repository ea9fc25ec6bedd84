package humanize

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientHumanizeRequestShape(t *testing.T) {
	var (
		gotMethod      string
		gotPath        string
		gotContentType string
		gotBody        string
	)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"R","human_style_confidence":87}`))
	}))
	defer server.Close()

	client := NewClient(server.URL + "/humanize")
	resp, err := client.Humanize(context.Background(), Request{Text: "hello", Mode: "formal", Ultra: true})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/humanize", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, `{"text":"hello","mode":"formal","ultra":true}`, gotBody)

	assert.Equal(t, &Response{Result: "R", HumanStyleConfidence: 87}, resp)
}

func TestClientHumanizeMissingFieldsDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	resp, err := NewClient(server.URL).Humanize(context.Background(), Request{Text: "x", Mode: DefaultMode})
	require.NoError(t, err)
	assert.Equal(t, "", resp.Result)
	assert.Equal(t, float64(0), resp.HumanStyleConfidence)
}

func TestClientHumanizeFailures(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantStatus int
	}{
		{name: "server error", status: http.StatusInternalServerError, body: "boom", wantStatus: http.StatusInternalServerError},
		{name: "not found", status: http.StatusNotFound, body: "", wantStatus: http.StatusNotFound},
		{name: "html body", status: http.StatusOK, body: "<html></html>", wantStatus: http.StatusOK},
		{name: "array body", status: http.StatusOK, body: "[]", wantStatus: http.StatusOK},
		{name: "null body", status: http.StatusOK, body: "null", wantStatus: http.StatusOK},
		{name: "wrong field type", status: http.StatusOK, body: `{"result":1}`, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			resp, err := NewClient(server.URL).Humanize(context.Background(), Request{Text: "x"})
			require.Error(t, err)
			assert.Nil(t, resp)

			var transportErr *TransportError
			require.True(t, errors.As(err, &transportErr))
			assert.Equal(t, tt.wantStatus, transportErr.StatusCode)
			assert.Equal(t, server.URL, transportErr.Endpoint)
		})
	}
}

func TestClientHumanizeNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := server.URL
	server.Close()

	_, err := NewClient(endpoint).Humanize(context.Background(), Request{Text: "x"})
	require.Error(t, err)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Zero(t, transportErr.StatusCode)
}

func TestClientHumanizeCanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(server.URL).Humanize(ctx, Request{Text: "x"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
