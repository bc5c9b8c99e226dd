package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"rantoo/config"
	"rantoo/infras/otel"
	"rantoo/shared/constant"
	"rantoo/transport/http/response"
	"rantoo/transport/http/router"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

type HTTP struct {
	Config *config.Config
	Router router.Router
	Otel   otel.Otel
	state  atomic.Int32
	mux    *chi.Mux
	server *http.Server
	done   chan struct{}
	once   sync.Once
}

func New(cfg *config.Config, r router.Router, otel otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		Otel:   otel,
	}
}

// State reports where the server is in its shutdown sequence.
func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) Serve() {
	addr := net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port)

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	log.Info().Str("addr", listener.Addr().String()).Msg("Starting up HTTP server.")

	if err := h.serve(listener); err != nil {
		log.Fatal().Err(err).Msg("HTTP server stopped unexpectedly")
	}
}

// serve blocks until the listener fails or a shutdown triggered by a signal
// has drained in-flight requests and flushed traces.
func (h *HTTP) serve(listener net.Listener) error {
	h.setup()

	h.server = &http.Server{
		Handler:      h.mux,
		ReadTimeout:  time.Duration(h.Config.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(h.Config.Server.WriteTimeoutSeconds) * time.Second,
	}
	h.done = make(chan struct{})

	h.setupGracefulShutdown()

	err := h.server.Serve(listener)
	if !errors.Is(err, http.ErrServerClosed) {
		return err //nolint:wrapcheck
	}

	<-h.done

	return nil
}

// ServeHTTP lets the service run behind an external server, such as a
// serverless function runtime.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.mux = chi.NewRouter()
		h.mux.Use(h.rejectDuringCleanup)
		h.Router.SetupRoutes(h.mux)
		h.state.Store(int32(ServerStateReady))
	})
}

// rejectDuringCleanup answers 503 once the cleanup period has started so load
// balancers stop routing here.
func (h *HTTP) rejectDuringCleanup(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.State() == ServerStateInCleanupPeriod {
			w.Header().Set("Connection", "close")
			response.WithPreparingShutdown(w)

			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(signals chan os.Signal) {
	<-signals
	signal.Stop(signals)

	defer close(h.done)

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
		h.shutdown(context.Background())

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.state.Store(int32(ServerStateInGracePeriod))

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.state.Store(int32(ServerStateInCleanupPeriod))

	time.Sleep(time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.Config.Server.WriteTimeoutSeconds)*time.Second)
	defer cancel()

	h.shutdown(ctx)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) shutdown(ctx context.Context) {
	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain HTTP connections")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}
}
