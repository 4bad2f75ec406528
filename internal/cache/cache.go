package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/domain"
	"github.com/TemirB/foodcart/internal/observability"
)

//go:generate mockgen -source internal/cache/cache.go -destination=internal/cache/cache_mock_test.go -package=cache

type store interface {
	GeocodeEntry(ctx context.Context, address string) (*domain.GeocodeEntry, error)
	UpsertGeocodeEntry(ctx context.Context, entry domain.GeocodeEntry) error
	InsertGeocodeMiss(ctx context.Context, entry domain.GeocodeEntry) error
	RecentGeocodeEntries(ctx context.Context, limit int) ([]domain.GeocodeEntry, error)
}

type geocoder interface {
	Geocode(ctx context.Context, address string) *domain.Coordinates
}

// Cache resolves addresses to coordinates: in-process LRU first, then the
// persistent store, then the geocoder. Keys are the exact address strings.
type Cache struct {
	size     int
	lru      *lru.Cache[string, domain.Coordinates]
	negative *expirable.LRU[string, struct{}]

	store    store
	geocoder geocoder
	logger   *zap.Logger
	metrics  observability.Metrics
	now      func() time.Time
}

func New(
	cfg config.Cache,
	store store,
	geocoder geocoder,
	logger *zap.Logger,
	metrics observability.Metrics,
) (*Cache, error) {
	l, err := lru.New[string, domain.Coordinates](cfg.Cap)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	c := &Cache{
		size:     cfg.Cap,
		lru:      l,
		store:    store,
		geocoder: geocoder,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
	if cfg.NegativeTTL > 0 {
		c.negative = expirable.NewLRU[string, struct{}](cfg.Cap, nil, cfg.NegativeTTL)
	}
	return c, nil
}

// Lookup returns the coordinates for address, geocoding and persisting them
// on a miss. A nil result with a nil error means the address could not be
// resolved. If ctx is cancelled while geocoding nothing is written.
func (c *Cache) Lookup(ctx context.Context, address string) (*domain.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	if coords, ok := c.lru.Get(address); ok {
		c.metrics.IncCacheHit()
		c.metrics.ObserveLookup("lru", sinceMs(start))
		return &coords, nil
	}
	entry, err := c.store.GeocodeEntry(ctx, address)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("load geocode entry: %w", err)
	}
	if entry != nil && entry.Coordinates != nil {
		c.lru.Add(address, *entry.Coordinates)
		c.metrics.IncCacheHit()
		c.metrics.ObserveLookup("db", sinceMs(start))
		coords := *entry.Coordinates
		return &coords, nil
	}
	if c.negative != nil {
		if _, ok := c.negative.Get(address); ok {
			c.metrics.ObserveLookup("negative", sinceMs(start))
			return nil, nil
		}
	}

	c.metrics.IncCacheMiss()
	coords := c.geocoder.Geocode(ctx, address)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer func() { c.metrics.ObserveLookup("geocoder", sinceMs(start)) }()

	if coords != nil {
		upsert := domain.GeocodeEntry{Address: address, Coordinates: coords, UpdatedAt: c.now()}
		if err := c.store.UpsertGeocodeEntry(ctx, upsert); err != nil {
			c.logger.Warn("persist geocoded address",
				zap.String("address", address),
				zap.Error(err),
			)
		}
		c.lru.Add(address, *coords)
		if c.negative != nil {
			c.negative.Remove(address)
		}
		return coords, nil
	}

	if entry == nil {
		miss := domain.GeocodeEntry{Address: address, UpdatedAt: c.now()}
		if err := c.store.InsertGeocodeMiss(ctx, miss); err != nil {
			c.logger.Warn("persist unresolved address",
				zap.String("address", address),
				zap.Error(err),
			)
		}
	}
	if c.negative != nil {
		c.negative.Add(address, struct{}{})
	}
	return nil, nil
}

// Store overwrites the coordinates for address.
func (c *Cache) Store(ctx context.Context, address string, coords domain.Coordinates) error {
	entry := domain.GeocodeEntry{Address: address, Coordinates: &coords, UpdatedAt: c.now()}
	if err := c.store.UpsertGeocodeEntry(ctx, entry); err != nil {
		return fmt.Errorf("store geocode entry: %w", err)
	}
	c.lru.Add(address, coords)
	if c.negative != nil {
		c.negative.Remove(address)
	}
	return nil
}

// Warm loads the most recently resolved addresses into memory and returns
// how many were loaded.
func (c *Cache) Warm(ctx context.Context) int {
	entries, err := c.store.RecentGeocodeEntries(ctx, c.size)
	if err != nil {
		c.logger.Warn("cache warm failed", zap.Error(err))
		return 0
	}
	n := 0
	for _, e := range entries {
		if e.Coordinates == nil {
			continue
		}
		c.lru.Add(e.Address, *e.Coordinates)
		n++
	}
	return n
}

func (c *Cache) Len() int { return c.lru.Len() }

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
