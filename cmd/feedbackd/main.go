// Command feedbackd serves the feedback REST API.
//
// @title       Feedback API
// @version     1.0
// @description CRUD service for customer feedback records.
// @BasePath    /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/li-0406/foodApi/internal/config"
	"github.com/li-0406/foodApi/internal/docstore"
	httpapi "github.com/li-0406/foodApi/internal/http"
	"github.com/li-0406/foodApi/internal/observability"
	"github.com/li-0406/foodApi/internal/repo"
	"github.com/li-0406/foodApi/internal/services"
	"github.com/li-0406/foodApi/internal/sysutil"
)

// version is stamped at build time with -ldflags "-X main.version=...".
var version = "dev"

// purgeInterval is how often expired idempotency keys are removed.
const purgeInterval = 10 * time.Minute

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("feedbackd: startup failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	sysutil.SetupLogger(cfg.LogLevel, cfg.LogPretty, cfg.OTEL.ServiceName)
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return fmt.Errorf("tracing: %w", err)
	}

	store, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}

	svc := services.NewFeedbackService(store, cfg.IdempotencyTTL)

	r := gin.New()
	httpapi.RegisterRoutes(r, svc, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go runJanitor(ctx, svc, purgeInterval)

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("store", cfg.Store.Driver).
			Str("base_path", cfg.APIBasePath).
			Str("version", version).
			Msg("feedbackd: listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("feedbackd: shutdown signal received")
	case err := <-serveErr:
		if err != nil {
			_ = store.Close(context.Background())
			_ = shutdownTracing(context.Background())
			return fmt.Errorf("http: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("feedbackd: http drain incomplete")
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("feedbackd: store close failed")
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("feedbackd: tracer flush failed")
	}
	log.Info().Msg("feedbackd: stopped")
	return nil
}

// openStore opens the record store selected by cfg.Store.Driver and prepares
// its schema or indexes.
func openStore(ctx context.Context, cfg config.Config) (services.FeedbackStore, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		db, err := repo.OpenSQLite(cfg.Store.DBPath)
		if err != nil {
			return nil, err
		}
		if cfg.OTEL.Enabled {
			if err := repo.UseTracing(db); err != nil {
				return nil, err
			}
		}
		if err := repo.AutoMigrate(db); err != nil {
			return nil, err
		}
		return repo.NewStore(db), nil

	case config.DriverMongo:
		s, err := docstore.Connect(ctx, cfg.Store.Mongo)
		if err != nil {
			return nil, err
		}
		if err := s.EnsureIndexes(ctx); err != nil {
			_ = s.Close(context.Background())
			return nil, err
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// runJanitor purges expired idempotency keys every interval until ctx ends.
func runJanitor(ctx context.Context, svc *services.FeedbackService, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			n, err := svc.PurgeExpiredKeys(ctx)
			if err != nil {
				log.Warn().Err(err).Msg("janitor: purge failed")
				continue
			}
			if n > 0 {
				log.Debug().Int64("removed", n).Msg("janitor: expired idempotency keys purged")
			}
		}
	}
}
