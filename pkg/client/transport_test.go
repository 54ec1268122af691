package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHttpTransportSend(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer abc", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.JSONEq(t, `{"filter":"x"}`, string(body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"value":[]}`))
	}))
	defer server.Close()

	metrics := NewMetrics(prometheus.NewRegistry())
	transport := NewHttpTransport(time.Second, 0, metrics)
	req := NewRequest(http.MethodPost, server.URL+"/runs:query", []byte(`{"filter":"x"}`))
	req.SetBearer("abc")
	resp, err := transport.Send(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, resp.IsSuccess())
	assert.Equal(t, `{"value":[]}`, string(resp.Body))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.calls.WithLabelValues(http.MethodPost, "201")))
}

func TestHttpTransportNonSuccessIsNotError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("not found"))
	}))
	defer server.Close()

	metrics := NewMetrics(nil)
	transport := NewHttpTransport(time.Second, 0, metrics)
	resp, err := transport.Send(context.Background(), NewRequest(http.MethodDelete, server.URL, nil))
	require.NoError(t, err)
	assert.False(t, resp.IsSuccess())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not found", string(resp.Body))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.calls.WithLabelValues(http.MethodDelete, "404")))
}

func TestHttpTransportUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	metrics := NewMetrics(nil)
	transport := NewHttpTransport(time.Second, 0, metrics)
	_, err := transport.Send(context.Background(), NewRequest(http.MethodGet, url, nil))
	assert.Error(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.calls.WithLabelValues(http.MethodGet, "error")))
}

func TestHttpTransportRateLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewHttpTransport(time.Second, 20, nil)
	start := time.Now()
	for i := 0; i < 3; i++ {
		_, err := transport.Send(context.Background(), NewRequest(http.MethodGet, server.URL, nil))
		require.NoError(t, err)
	}
	// burst of one, the next two wait ~50ms each
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := transport.Send(ctx, NewRequest(http.MethodGet, server.URL, nil))
	assert.Error(t, err)
}
