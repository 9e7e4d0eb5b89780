package translate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fjacquet/voice-ledger/internal/config"
	"fjacquet/voice-ledger/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLibreClient(url string, maxRetries int) *LibreClient {
	c := NewLibreClient(config.TranslateConfig{
		URL:            url,
		TimeoutSeconds: 2,
		MaxRetries:     maxRetries,
	}, nil)
	c.retryDelay = time.Millisecond
	return c
}

func TestLibreClient_Translate(t *testing.T) {
	var received libreRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))
		_, _ = w.Write([]byte(`{"translatedText":"five hundred rupees for vegetables"}`))
	}))
	defer server.Close()

	out, err := newTestLibreClient(server.URL, 0).Translate(context.Background(), "sabzi ke liye paanch sau rupaye", "auto", "en")
	require.NoError(t, err)
	assert.Equal(t, "five hundred rupees for vegetables", out)
	assert.Equal(t, libreRequest{Q: "sabzi ke liye paanch sau rupaye", Source: "auto", Target: "en", Format: "text"}, received)
}

func TestLibreClient_RetriesServerErrors(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"translatedText":"tea 20"}`))
	}))
	defer server.Close()

	out, err := newTestLibreClient(server.URL, 2).Translate(context.Background(), "chai 20", "auto", "en")
	require.NoError(t, err)
	assert.Equal(t, "tea 20", out)
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}

func TestLibreClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestLibreClient(server.URL, 1).Translate(context.Background(), "chai 20", "auto", "en")
	require.Error(t, err)

	var tErr *parsererror.TranslationError
	require.True(t, errors.As(err, &tErr))
	assert.Equal(t, http.StatusTooManyRequests, tErr.StatusCode)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLibreClient_ClientErrorNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"Invalid request"}`))
	}))
	defer server.Close()

	_, err := newTestLibreClient(server.URL, 3).Translate(context.Background(), "chai 20", "xx", "en")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestLibreClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := newTestLibreClient(server.URL, 0).Translate(context.Background(), "chai 20", "auto", "en")
	assert.Error(t, err)
}

func TestLibreClient_EmptyTextSkipsRequest(t *testing.T) {
	out, err := newTestLibreClient("http://127.0.0.1:1/translate", 0).Translate(context.Background(), "", "auto", "en")
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestLibreClient_FallbackOnUnreachableServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	got := Fallback(context.Background(), newTestLibreClient(url, 0), "chai 20", "auto", "en", nil)
	assert.Equal(t, "chai 20", got)
}
