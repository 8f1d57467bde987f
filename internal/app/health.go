package app

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/forum-tweet-bot/pkg/config"
	"github.com/orgball2608/forum-tweet-bot/pkg/logger"
	"go.uber.org/fx"
)

const pingTimeout = 2 * time.Second

type HealthOpts struct {
	fx.In
	LC fx.Lifecycle

	Pool   *pgxpool.Pool
	Config *config.Config
	Logger logger.Logger
}

type HealthServer struct {
	server *http.Server
	pool   pinger
	logger logger.Logger
}

type pinger interface {
	Ping(ctx context.Context) error
}

func NewHealthServer(opts HealthOpts) *HealthServer {
	h := newHealthServer(opts.Pool, opts.Config.App.Port, opts.Logger)

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			ln, err := net.Listen("tcp", h.server.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", h.server.Addr, err)
			}
			h.logger.Info("Starting health server", "addr", h.server.Addr)
			go func() {
				if err := h.server.Serve(ln); err != nil && err != http.ErrServerClosed {
					h.logger.Error("Health server stopped", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return h.server.Shutdown(ctx)
		},
	})

	return h
}

func newHealthServer(pool pinger, port int, log logger.Logger) *HealthServer {
	h := &HealthServer{
		pool:   pool,
		logger: log.WithComponent("Health"),
	}
	h.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           h.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return h
}

func (h *HealthServer) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", h.healthz)
	r.Get("/readyz", h.readyz)
	return r
}

func (h *HealthServer) healthz(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Health check request received", "method", r.Method, "url", r.URL.String())
	h.write(w, http.StatusOK, "ok")
}

func (h *HealthServer) readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		h.logger.Warn("Readiness check failed", "error", err)
		h.write(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	h.write(w, http.StatusOK, "ok")
}

func (h *HealthServer) write(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}
