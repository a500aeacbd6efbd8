// Command pg-migrator applies the embedded preset schema migrations.
// GOOSE_UP_TO and GOOSE_DOWN_TO select a target version.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"thirdcoast.systems/filtergraph/internal/application"
	"thirdcoast.systems/filtergraph/internal/config"
	"thirdcoast.systems/filtergraph/internal/db"
	"thirdcoast.systems/filtergraph/internal/observability"
)

const migrateTimeout = 2 * time.Minute

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		observability.NewLogger(nil).Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.WithComponent(observability.NewLogger(conf), "pg-migrator")
	observability.SetDefault(logger)

	if err := migrate(ctx, conf, logger); err != nil {
		logger.Error("migration failed", "error", err)
		stop()
		os.Exit(1)
	}
}

func migrate(ctx context.Context, conf *config.Config, logger *slog.Logger) error {
	if conf.DatabaseDSN == "" {
		return errors.New("DATABASE_DSN is required")
	}

	ctx, cancel := context.WithTimeout(ctx, migrateTimeout)
	defer cancel()

	pool, err := application.OpenDBPoolWithRetry(ctx, *conf)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer pool.Close()

	dbc, err := db.NewDatabaseConnection(ctx, pool)
	if err != nil {
		return fmt.Errorf("open connection: %w", err)
	}
	defer dbc.Close()

	start := time.Now()
	if err := dbc.Migrate(ctx); err != nil {
		return err
	}
	logger.InfoContext(ctx, "migrations applied", slog.Duration("duration", time.Since(start)))
	return nil
}
