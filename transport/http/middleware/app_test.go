package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"rantoo/config"
	"rantoo/infras/otel/mocks"
	"rantoo/shared/constant"
	"rantoo/shared/logger"
	"rantoo/transport/http/middleware"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func newMiddleware(cfg *config.Config) middleware.AppMiddleware {
	return middleware.NewAppMiddleware(mocks.NewOtel(), cfg)
}

func TestRequestID(t *testing.T) {
	mw := newMiddleware(&config.Config{})

	var seen string
	handler := mw.RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen, _ = r.Context().Value(constant.ContextKeyRequestID).(string)
	}))

	t.Run("generated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Len(t, seen, 36)
		assert.Equal(t, seen, recorder.Header().Get("X-Request-ID"))
	})

	t.Run("propagated", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Request-ID", "abc-123")

		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "abc-123", seen)
		assert.Equal(t, "abc-123", recorder.Header().Get("X-Request-ID"))
	})
}

func TestRequestID_AttachesLogger(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	handler := newMiddleware(&config.Config{}).RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		logger.FromContext(r.Context()).Debug().Msg("inside")
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Contains(t, buf.String(), `"request_id":"req-1"`)
	assert.Contains(t, buf.String(), "inside")
}

func TestLogger(t *testing.T) {
	originalLogger := log.Logger
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		log.Logger = originalLogger
		zerolog.SetGlobalLevel(originalLevel)
	}()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	mw := newMiddleware(&config.Config{})
	handler := mw.Logger(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/epoch/0", nil))

	assert.Contains(t, buf.String(), `"status":418`)
	assert.Contains(t, buf.String(), `"path":"/api/v1/epoch/0"`)
	assert.Contains(t, buf.String(), "request completed")
}

func TestTracing_PassesThrough(t *testing.T) {
	mw := newMiddleware(&config.Config{})
	handler := mw.Tracing(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, recorder.Code)
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("disabled", func(t *testing.T) {
		handler := newMiddleware(&config.Config{}).CORS()(next)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://example.com")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Empty(t, recorder.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := &config.Config{}
		cfg.App.CORS.Enable = true
		cfg.App.CORS.AllowedOrigins = []string{"*"}
		cfg.App.CORS.AllowedMethods = []string{http.MethodGet}

		handler := newMiddleware(cfg).CORS()(next)

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "https://example.com")

		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, req)

		assert.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
	})
}
