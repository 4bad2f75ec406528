package geocoder

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/domain"
	"github.com/TemirB/foodcart/internal/observability"
	"github.com/TemirB/foodcart/internal/pkg/breaker"
	"github.com/TemirB/foodcart/internal/pkg/retry"
)

//go:generate mockgen -source internal/geocoder/nominatim.go -destination=internal/geocoder/provider_mock_test.go -package=geocoder

type brk interface {
	Allow() error
	Success()
	Failure()
	Cancel()
}

// Client wraps a Provider with a shared rate limiter, a circuit breaker and
// retries for transient failures. Every failure ends up as a nil result.
type Client struct {
	provider Provider
	limiter  Limiter
	breaker  brk
	retry    config.Retry
	logger   *zap.Logger
	metrics  observability.Metrics
}

func New(
	provider Provider,
	limiter Limiter,
	cfg config.Geocoder,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Client {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Client{
		provider: provider,
		limiter:  limiter,
		breaker:  breaker.New(cfg.Breaker),
		retry:    cfg.Retry,
		logger:   logger,
		metrics:  metrics,
	}
}

// Geocode returns the coordinates of address, or nil when they could not be
// determined for any reason.
func (c *Client) Geocode(ctx context.Context, address string) *domain.Coordinates {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil
	}

	start := time.Now()
	var coords domain.Coordinates
	err := retry.Do(ctx, c.retry, func() error {
		return c.attempt(ctx, address, &coords)
	})
	durMs := float64(time.Since(start).Microseconds()) / 1000.0
	c.metrics.ObserveGeocode(err == nil, durMs)

	if err != nil {
		if ctx.Err() == nil {
			c.logger.Warn("geocode unavailable",
				zap.String("address", address),
				zap.Float64("dur_ms", durMs),
				zap.Error(err),
			)
		}
		return nil
	}
	c.logger.Debug("geocoded",
		zap.String("address", address),
		zap.Float64("lat", coords.Lat),
		zap.Float64("lon", coords.Lon),
	)
	return &coords
}

func (c *Client) attempt(ctx context.Context, address string, out *domain.Coordinates) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return retry.Stop(err)
	}
	if err := c.breaker.Allow(); err != nil {
		return retry.Stop(err)
	}

	coords, err := c.provider.Search(ctx, address)
	switch {
	case err == nil:
		c.breaker.Success()
		*out = coords
		return nil
	case ctx.Err() != nil:
		c.breaker.Cancel()
		return retry.Stop(ctx.Err())
	case transient(err):
		c.breaker.Failure()
		return err
	case errors.Is(err, ErrUpstream):
		c.breaker.Failure()
		return retry.Stop(err)
	default:
		// the provider answered, the address is just not resolvable
		c.breaker.Success()
		return retry.Stop(err)
	}
}

func transient(err error) bool {
	if errors.Is(err, ErrNoResult) || errors.Is(err, ErrMalformed) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Temporary()
	}
	return true
}
