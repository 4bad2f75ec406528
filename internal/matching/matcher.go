package matching

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/domain"
	"github.com/TemirB/foodcart/internal/geo"
	"github.com/TemirB/foodcart/internal/observability"
)

//go:generate mockgen -source internal/matching/matcher.go -destination=internal/matching/matcher_mock_test.go -package=matching

// AddressResolver turns a delivery address into coordinates. A nil result
// with a nil error means the address is unknown.
type AddressResolver interface {
	Lookup(ctx context.Context, address string) (*domain.Coordinates, error)
}

type Matcher struct {
	resolver AddressResolver
	logger   *zap.Logger
	metrics  observability.Metrics
}

func NewMatcher(resolver AddressResolver, logger *zap.Logger, metrics observability.Metrics) *Matcher {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Matcher{
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

// Match ranks the restaurants able to fulfil order by distance from its
// delivery address. restaurants is the catalogue keyed by ID.
//
// A pre-assigned restaurant is the only candidate and skips the stock check.
// Otherwise a restaurant qualifies when it stocks every ordered product.
// Restaurants with unknown coordinates are left out. An unresolvable
// delivery address yields AddressUnresolved whatever the candidates are.
func (m *Matcher) Match(
	ctx context.Context,
	order *domain.Order,
	idx Index,
	restaurants map[int64]domain.Restaurant,
) (domain.MatchResult, error) {
	if order == nil {
		return domain.MatchResult{}, domain.ErrInvalidOrder
	}
	start := time.Now()

	candidates := candidatesFor(order, idx, restaurants)

	delivery, err := m.resolver.Lookup(ctx, order.Address)
	if err != nil {
		return domain.MatchResult{}, fmt.Errorf("resolve delivery address: %w", err)
	}
	if delivery == nil {
		m.logger.Info("delivery address unresolved",
			zap.String("order_uid", order.OrderUID),
			zap.String("address", order.Address),
			zap.Int("candidates", len(candidates)),
		)
		res := domain.AddressUnresolved()
		m.metrics.ObserveMatch(res.Outcome().String(), len(candidates), sinceMs(start))
		return res, nil
	}

	ranked := make([]domain.RankedRestaurant, 0, len(candidates))
	for _, r := range candidates {
		km, ok := geo.DistanceKm(delivery, r.Coordinates)
		if !ok {
			m.logger.Debug("restaurant without coordinates skipped",
				zap.Int64("restaurant_id", r.ID),
				zap.String("order_uid", order.OrderUID),
			)
			continue
		}
		ranked = append(ranked, domain.RankedRestaurant{Restaurant: r, DistanceKm: km})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	res := domain.Ranked(ranked)
	m.metrics.ObserveMatch(res.Outcome().String(), len(candidates), sinceMs(start))
	return res, nil
}

// candidatesFor returns the eligible restaurants ordered by name, then ID.
// Names compare byte-wise, so "Zeta" sorts before "alpha".
func candidatesFor(order *domain.Order, idx Index, restaurants map[int64]domain.Restaurant) []domain.Restaurant {
	var out []domain.Restaurant
	if order.RestaurantID != nil {
		if r, ok := restaurants[*order.RestaurantID]; ok {
			out = append(out, r)
		}
		return out
	}

	for _, id := range idx.Candidates(order.ProductIDs()) {
		if r, ok := restaurants[id]; ok {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// ByID keys a restaurant list by ID.
func ByID(list []domain.Restaurant) map[int64]domain.Restaurant {
	m := make(map[int64]domain.Restaurant, len(list))
	for _, r := range list {
		m[r.ID] = r
	}
	return m
}

func sinceMs(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
