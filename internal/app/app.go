package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/application/service"
	"github.com/TemirB/foodcart/internal/cache"
	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/database"
	"github.com/TemirB/foodcart/internal/geocoder"
	"github.com/TemirB/foodcart/internal/observability"
)

const metricsWindow = 256

// App holds the components shared by the server and the ops commands.
type App struct {
	Config  config.Config
	Logger  *zap.Logger
	Metrics *observability.Inmem
	Pool    *pgxpool.Pool
	Repo    *database.Repo
	Cache   *cache.Cache
	Service *service.Service
}

// NewLogger returns a development logger outside production. level is a zap
// level name; an unknown name falls back to info.
func NewLogger(env, level string) (*zap.Logger, error) {
	var cfg zap.Config
	if strings.EqualFold(env, "production") {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
	}
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		lvl = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	cfg.Level = lvl
	return cfg.Build()
}

func New(ctx context.Context, cfg config.Config, logger *zap.Logger) (*App, error) {
	pool, err := database.Connect(ctx, cfg.DSN(), logger, database.TraceLevel(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	repo := database.New(pool, cfg.Tables)
	metrics := observability.NewInmem(metricsWindow)

	gc := geocoder.New(
		geocoder.NewNominatim(cfg.Geocoder),
		geocoder.NewLimiter(cfg.Geocoder.MinDelay),
		cfg.Geocoder,
		logger.Named("geocoder"),
		metrics,
	)
	coords, err := cache.New(cfg.Cache, repo, gc, logger.Named("cache"), metrics)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("coordinate cache: %w", err)
	}

	return &App{
		Config:  cfg,
		Logger:  logger,
		Metrics: metrics,
		Pool:    pool,
		Repo:    repo,
		Cache:   coords,
		Service: service.NewService(repo, coords, cfg.Workers, logger.Named("service"), metrics),
	}, nil
}

func (a *App) Close() {
	a.Pool.Close()
	_ = a.Logger.Sync()
}
