package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/critter-backend/internal/config"
	"github.com/heartmarshall/critter-backend/internal/transport/middleware"
	"github.com/heartmarshall/critter-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the store,
// wires services and handlers, and serves HTTP until ctx is cancelled.
// In-flight requests get cfg.Server.ShutdownTimeout to drain.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("store", cfg.Store.Driver),
	)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer c.Close()

	srv := newServer(cfg.Server, NewHandler(cfg, c, logger))
	return serve(ctx, srv, cfg.Server, logger)
}

// NewHandler builds the HTTP handler tree over the container's services.
func NewHandler(cfg *config.Config, c *Container, logger *slog.Logger) http.Handler {
	handlers := rest.Handlers{
		User:     rest.NewUserHandler(c.Customers, c.Employees, logger),
		Pet:      rest.NewPetHandler(c.Pets, logger),
		Schedule: rest.NewScheduleHandler(c.Schedules, logger),
		Health:   rest.NewHealthHandler(c, c.StoreDriver(), Version),
	}

	mw := middleware.Chain(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)

	return rest.NewRouter(handlers, mw)
}

func newServer(cfg config.ServerConfig, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h,
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// serve runs srv until it fails or ctx is done, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server", slog.Duration("timeout", cfg.ShutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		logger.Info("http server stopped")
		return nil
	})

	return g.Wait()
}
