package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"thirdcoast.systems/filtergraph/cmd/web/internal/web"
	"thirdcoast.systems/filtergraph/internal/application"
	"thirdcoast.systems/filtergraph/internal/config"
	"thirdcoast.systems/filtergraph/internal/db"
	"thirdcoast.systems/filtergraph/internal/observability"
	"thirdcoast.systems/filtergraph/pkg/filters"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	conf, err := config.LoadConfig(ctx)
	if err != nil {
		observability.NewLogger(nil).Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := observability.NewLogger(conf)
	observability.SetDefault(logger)

	logger.Info("Starting web service")

	opts := web.Options{
		Registry:     filters.Default(),
		FFmpegBinary: conf.FFmpeg.Binary,
		Logger:       logger,
	}

	if conf.PresetsEnabled {
		pool, err := application.OpenDBPoolWithRetry(ctx, *conf)
		if err != nil {
			logger.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer pool.Close()

		dbc, err := db.NewDatabaseConnection(ctx, pool)
		if err != nil {
			logger.Error("failed to create database connection", "error", err)
			os.Exit(1)
		}
		defer dbc.Close()

		opts.Presets = db.NewPresetCache(dbc.Queries(ctx))
	} else {
		logger.Info("PRESETS_ENABLED not set; preset routes disabled")
	}

	e, err := web.NewWebserver(opts)
	if err != nil {
		logger.Error("failed to create webserver", "error", err)
		os.Exit(1)
	}

	addr := ":" + strconv.Itoa(conf.WebServerPort)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = e.Shutdown(shutdownCtx)
	}()

	logger.Info("Listening", "addr", addr)
	if err := e.Start(addr); err != nil {
		if errors.Is(err, http.ErrServerClosed) || ctx.Err() != nil {
			return
		}
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
