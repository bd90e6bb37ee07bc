package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/iliyamo/festival-manager/internal/config"
	"github.com/iliyamo/festival-manager/internal/database"
	"github.com/iliyamo/festival-manager/internal/handler"
	"github.com/iliyamo/festival-manager/internal/logging"
	"github.com/iliyamo/festival-manager/internal/queue"
	"github.com/iliyamo/festival-manager/internal/router"
	"github.com/iliyamo/festival-manager/internal/service"
)

const shutdownTimeout = 10 * time.Second

// applyAddress overrides the listen address with the positional arguments.
// Empty arguments keep the defaults.
func applyAddress(cfg *config.Config, host, port string) error {
	if host != "" {
		cfg.Host = host
	}
	if port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 1 || p > 65535 {
			return fmt.Errorf("invalid port %q", port)
		}
		cfg.Port = p
	}
	return nil
}

// prepare opens the database and makes sure the schema exists.
func prepare(ctx context.Context, cfg config.Config, logger *log.Logger) (*sql.DB, database.Dialect, error) {
	db, d, err := database.Open(cfg.DB)
	if err != nil {
		return nil, d, err
	}
	if err := database.CreateSchema(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, d, err
	}
	if err := database.SeedDemo(ctx, db, d); err != nil {
		_ = db.Close()
		return nil, d, err
	}
	logger.Info("database ready", "driver", cfg.DB.Driver)
	return db, d, nil
}

func serve(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Debug = cmd.Bool("debug")
	cfg.Threaded = cmd.Bool("threaded")
	if err := applyAddress(&cfg, cmd.StringArg("host"), cmd.StringArg("port")); err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cfg.Debug)

	db, d, err := prepare(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb != nil {
		defer rdb.Close()
	} else {
		logger.Info("redis unavailable; page cache and rate limit disabled")
	}

	var pub service.Publisher = service.NopPublisher{}
	if cfg.EventsEnabled {
		pub = service.NewAMQPPublisher(cfg.AMQPURL, logger)
	}

	e := router.New(router.Options{
		DB:        db,
		Handler:   handler.New(d, pub, logger),
		Logger:    logger,
		Redis:     rdb,
		Cache:     config.LoadCacheConfig(),
		RateLimit: config.LoadRateLimitConfig(),
		Debug:     cfg.Debug,
		Threaded:  cfg.Threaded,
	})

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- e.Start(cfg.Addr()) }()
	logger.Info("listening", "addr", cfg.Addr(), "env", cfg.Env, "threaded", cfg.Threaded, "debug", cfg.Debug)

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func consume(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger := logging.New(os.Stderr, cmd.Bool("debug"))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("activity consumer starting", "queue", queue.RecordCreatedQueue, "dir", cfg.ActivityLogDir)
	err = queue.StartActivityConsumer(ctx, cfg.AMQPURL, cfg.ActivityLogDir, logger)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func migrate(ctx context.Context, _ *cli.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	db, _, err := prepare(ctx, cfg, logging.New(os.Stderr, false))
	if err != nil {
		return err
	}
	return db.Close()
}
