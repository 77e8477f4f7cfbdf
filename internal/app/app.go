package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/mfigueiredo/cursos-backend/internal/adapter/postgres"
	arearepo "github.com/mfigueiredo/cursos-backend/internal/adapter/postgres/area"
	cursorepo "github.com/mfigueiredo/cursos-backend/internal/adapter/postgres/curso"
	"github.com/mfigueiredo/cursos-backend/internal/config"
	"github.com/mfigueiredo/cursos-backend/internal/service/catalog"
	"github.com/mfigueiredo/cursos-backend/internal/transport/rest"
)

// Run wires the whole application: configuration, logger, database pool,
// repositories, catalog services, the REST router, and an http.Server with
// graceful shutdown. It blocks until ctx is cancelled or the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	areaSvc := catalog.NewAreaService(logger, arearepo.New(pool))
	cursoSvc := catalog.NewCursoService(logger, cursorepo.New(pool))

	handler := rest.Router(
		logger,
		cfg.CORS,
		rest.NewAreaHandler(areaSvc, logger),
		rest.NewCursoHandler(cursoSvc, logger),
		rest.NewHealthHandler(pool, BuildVersion()),
	)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down http server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("application stopped")
	return nil
}
