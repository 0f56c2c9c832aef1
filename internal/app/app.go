package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lexdb/internal/adapter/postgres"
	"github.com/heartmarshall/lexdb/internal/app/loader"
	"github.com/heartmarshall/lexdb/internal/config"
	"github.com/heartmarshall/lexdb/internal/service/lookup"
	"github.com/heartmarshall/lexdb/internal/transport/middleware"
	"github.com/heartmarshall/lexdb/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger and serves the lookup API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	return Serve(ctx, cfg, logger)
}

// Serve builds the index in the background and serves the lookup API. The
// server starts answering before the load completes; /ready reports 503
// until it has. Shutdown is graceful within cfg.Server.ShutdownTimeout.
func Serve(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts ...loader.Option) error {
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("base_dir", cfg.Lexicon.BaseDir),
	)

	once := loader.NewOnce(loader.New(logger, cfg.Lexicon, opts...))

	health := rest.NewHealthHandler(once, nil, BuildVersion())
	if cfg.Database.DSN != "" {
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()
		health = rest.NewHealthHandler(once, pool, BuildVersion())
	}

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	svc := lookup.NewService(logger, once, cfg.Lookup.CacheSize)
	router := rest.NewRouter(rest.NewLexiconHandler(svc, logger), health)

	handler := middleware.Chain(
		middleware.RequestID(),
		middleware.RunID(func() (string, bool) {
			rep, ok := once.Report()
			return rep.RunID.String(), ok
		}),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Except(limiter.Limit(cfg.Server.RateLimit), "/live", "/ready", "/health"),
	)(router)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, rep := once.Get()
		if !rep.Complete {
			logger.Warn("lexicon incomplete", slog.String("run_id", rep.RunID.String()))
		}
		return nil
	})

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
