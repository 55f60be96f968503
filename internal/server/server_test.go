package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/accountadate/internal/config"
	"github.com/nfrund/accountadate/internal/rendering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Addr:            "127.0.0.1:0",
		SessionSecret:   "a-very-secret-key-for-testing-!!!",
		LogFormat:       "text",
		LogLevel:        "debug",
		SubmitRate:      0.001,
		SubmitBurst:     5,
		ShutdownTimeout: 2 * time.Second,
	}
}

func newTestServer(t *testing.T, logs *bytes.Buffer) *Server {
	t.Helper()
	cfg := testConfig()
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := New(cfg, logger, NewSessionStore(cfg), rendering.NewUniversalRenderer())
	s.RegisterRoutes()
	return s
}

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	// --- Setup ---
	e := echo.New()

	var logBuffer bytes.Buffer
	handler := slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{
		AddSource: true,
	})
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(handler))
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	// --- Act ---
	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	// --- Assert ---
	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"")
	assert.Contains(t, logOutput, "stack_trace=")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_HeadRequestsHaveNoBody(t *testing.T) {
	var logBuffer bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuffer, nil)))
	defer slog.SetDefault(originalLogger)

	e := echo.New()
	setupErrorHandling(e)
	e.HEAD("/unhandled", func(c echo.Context) error {
		return errors.New("head failed")
	})
	e.HEAD("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/unhandled", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Contains(t, logBuffer.String(), "Internal Server Error (Unhandled)")

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHTTPErrorHandler_EchoErrorsKeepStatus(t *testing.T) {
	e := echo.New()
	setupErrorHandling(e)
	e.GET("/teapot", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusTeapot, "short and stout")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, "short and stout", rec.Body.String())

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutes(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	t.Run("health", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("static stylesheet", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/css/app.css", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "--primary: #1E3D59")
	})

	t.Run("request id header and request log", func(t *testing.T) {
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		reqID := rec.Header().Get(echo.HeaderXRequestID)
		require.NotEmpty(t, reqID)
		assert.Contains(t, logs.String(), "request_id="+reqID)
		assert.Contains(t, logs.String(), "uri=/")
	})
}

func TestSubmitScenario(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	// Load page, do not click submit: no greeting line is rendered.
	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "your email is")

	// Enter name and email, click submit.
	form := url.Values{"user_name": {"Ada"}, "user_email": {"ada@x.com"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.RemoteAddr = "198.51.100.7:5000"
	rec = httptest.NewRecorder()
	s.E.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Hello Ada, your email is ada@x.com.")
	assert.NotEmpty(t, rec.Result().Cookies(), "widget values should be cached in the session cookie")
}

func TestSubmitIsRateLimited(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	post := func() int {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("user_name=a&user_email=b"))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.RemoteAddr = "203.0.113.9:4000"
		rec := httptest.NewRecorder()
		s.E.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < s.Cfg.SubmitBurst; i++ {
		require.Equal(t, http.StatusOK, post(), "submit %d should be allowed", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, post())
}

func TestStart_GracefulShutdown(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx, s.Cfg.Addr) }()

	require.Eventually(t, func() bool { return s.E.ListenerAddr() != nil }, 2*time.Second, 10*time.Millisecond)

	resp, err := http.Get("http://" + s.E.ListenerAddr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
	assert.Contains(t, logs.String(), "Shutting down server")
}

func TestStart_ListenError(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	err := s.Start(context.Background(), "256.0.0.1:bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server stopped")
}
