package http

import (
	"cafe/config"
	_ "cafe/docs" //nolint:revive
	"cafe/infras/database"
	"cafe/infras/otel"
	"cafe/shared/constant"
	"cafe/shared/failure"
	"cafe/transport/http/middleware"
	"cafe/transport/http/response"
	"cafe/transport/http/router"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	healthStatusOK     = "ok"
	healthPingTimeout  = 2 * time.Second
	readHeaderTimeout  = 5 * time.Second
	minShutdownTimeout = time.Second
)

type HTTP struct {
	Config     *config.Config
	DB         *database.Connection
	Otel       otel.Otel
	Middleware middleware.AppMiddleware
	Router     router.Router

	state atomic.Int32
	once  sync.Once
	mux   *chi.Mux
}

func New(
	cfg *config.Config,
	db *database.Connection,
	otel otel.Otel,
	appMiddleware middleware.AppMiddleware,
	r router.Router,
) *HTTP {
	return &HTTP{
		Config:     cfg,
		DB:         db,
		Otel:       otel,
		Middleware: appMiddleware,
		Router:     r,
	}
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) SetState(state ServerState) {
	h.state.Store(int32(state))
}

// Serve blocks until SIGINT or SIGTERM, then drains in-flight requests and releases resources.
func (h *HTTP) Serve() {
	h.setup()

	server := &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadTimeout:       time.Duration(h.Config.Server.ReadTimeoutSeconds) * time.Second,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      time.Duration(h.Config.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:       time.Duration(h.Config.Server.IdleTimeoutSeconds) * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("Starting up HTTP server.")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	case <-ctx.Done():
		stop()
	}

	h.shutdown(server)
}

// ServeHTTP lets the whole application run behind another server, e.g. a serverless entrypoint.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.SetState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.mux.Use(
		h.Middleware.RequestID,
		h.Middleware.Logger(),
		h.Middleware.Recoverer,
		h.Middleware.Tracing,
		h.Middleware.CORS(),
	)

	h.mux.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.NotFound(http.StatusText(http.StatusNotFound)))
	})
	h.mux.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.WithError(w, failure.MethodNotAllowed())
	})

	h.mux.Get("/health", h.health)
	h.mux.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.mux.Group(func(r chi.Router) {
		r.Use(h.Middleware.RateLimit())

		h.Router.SetupRoutes(r)
	})
}

// health godoc
// @Summary Liveness and readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Status
// @Failure 503 {object} response.Message
// @Router /health [get]
func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthPingTimeout)
	defer cancel()

	if err := h.DB.Read.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("health check failed to reach the database")

		response.WithUnhealthy(w)

		return
	}

	response.WithStatus(w, http.StatusOK, healthStatusOK)
}

func (h *HTTP) shutdown(server *http.Server) {
	shutdownConfig := h.Config.Server.Shutdown

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")
	} else {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Received SIGTERM. Entering grace period.")

		h.SetState(ServerStateInGracePeriod)

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.SetState(ServerStateInCleanupPeriod)

	timeout := max(time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second, minShutdownTimeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain HTTP server")
	}

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close database")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}
