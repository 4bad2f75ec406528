package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/app"
	"github.com/TemirB/foodcart/internal/application/handler"
	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/httpapi"
	"github.com/TemirB/foodcart/internal/kafka"
	"github.com/TemirB/foodcart/internal/pkg/breaker"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	logger, err := app.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialise app", zap.Error(err))
	}
	defer a.Close()

	if err := a.Repo.EnsureSchema(ctx); err != nil {
		logger.Fatal("Failed to ensure schema", zap.Error(err))
	}
	if err := kafka.EnsureTopic(ctx, cfg.Kafka, logger); err != nil {
		logger.Warn("Failed to ensure topic", zap.Error(err))
	}

	warmed := a.Cache.Warm(ctx)
	logger.Info("Coordinate cache warmed",
		zap.Int("entries", warmed),
		zap.Int("cached", a.Cache.Len()),
	)

	var wg sync.WaitGroup

	if cfg.BackfillOnUp {
		wg.Add(1)
		go func() {
			defer wg.Done()
			st, err := a.Service.BackfillRestaurantCoordinates(ctx)
			logger.Info("Restaurant backfill finished",
				zap.Int("total", st.Total),
				zap.Int("resolved", st.Resolved),
				zap.Int("failed", st.Failed),
				zap.Int("superseded", st.Superseded),
				zap.Error(err),
			)
		}()
	}

	reader := kafka.NewReader(cfg.Kafka)
	defer reader.Close()

	h := handler.NewHandler(a.Service, breaker.New(cfg.Breaker), cfg.Retry, logger.Named("intake"))
	consumer := kafka.NewConsumer(h, reader, cfg.Kafka.Workers, logger.Named("kafka"), a.Metrics)

	wg.Add(1)
	go func() {
		defer wg.Done()
		consumer.Start(ctx)
	}()

	server := httpapi.New(a.Service, logger.Named("http"), a.Metrics)
	logger.Info("HTTP server listening", zap.String("addr", cfg.HTTPAddr))
	if err := server.ListenAndServe(ctx, cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("HTTP server failed", zap.Error(err))
		stop()
	}

	wg.Wait()
	logger.Info("Stopped")
}
