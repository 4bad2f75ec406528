package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/domain"
	"github.com/TemirB/foodcart/internal/matching"
	"github.com/TemirB/foodcart/internal/observability"
	"github.com/TemirB/foodcart/internal/pkg/pool"
)

//go:generate mockgen -source internal/application/service/service.go -destination=internal/application/service/service_mock_test.go -package=service

type Storage interface {
	domain.OrderRepository
	domain.RestaurantRepository
}

// Geocache resolves addresses through the coordinate cache.
type Geocache interface {
	Lookup(ctx context.Context, address string) (*domain.Coordinates, error)
}

// OrderMatch pairs an order with its candidate restaurants.
type OrderMatch struct {
	Order  *domain.Order      `json:"order"`
	Result domain.MatchResult `json:"match"`
}

type Service struct {
	storage  Storage
	geocache Geocache
	matcher  *matching.Matcher
	workers  int
	logger   *zap.Logger
	metrics  observability.Metrics
	now      func() time.Time
}

func NewService(
	storage Storage,
	geocache Geocache,
	workers int,
	logger *zap.Logger,
	metrics observability.Metrics,
) *Service {
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	if workers < 1 {
		workers = 1
	}
	return &Service{
		storage:  storage,
		geocache: geocache,
		matcher:  matching.NewMatcher(geocache, logger, metrics),
		workers:  workers,
		logger:   logger,
		metrics:  metrics,
		now:      time.Now,
	}
}

// SubmitOrderWithStats validates and stores a new or updated order.
func (s *Service) SubmitOrderWithStats(ctx context.Context, order *domain.Order) (UpsertStats, error) {
	var st UpsertStats

	if err := domain.ValidateOrder(order); err != nil {
		return st, err
	}
	if order.Status == "" {
		order.Status = domain.StatusUnprocessed
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = s.now().UTC()
	}

	t0 := time.Now()
	if err := s.storage.UpsertOrder(ctx, order); err != nil {
		s.logger.Error("Error while upserting order in db",
			zap.String("order_uid", order.OrderUID),
			zap.Error(err),
		)
		return st, err
	}
	st.DBWriteMs = convertToMs(t0)

	s.metrics.ObserveUpsert(st.DBWriteMs)
	s.logger.Info("Order upserted",
		zap.String("order_uid", order.OrderUID),
		zap.Int("products", len(order.Items)),
		zap.Float64("db_write_ms", st.DBWriteMs),
	)
	return st, nil
}

func (s *Service) SubmitOrder(ctx context.Context, order *domain.Order) error {
	_, err := s.SubmitOrderWithStats(ctx, order)
	return err
}

func (s *Service) GetOrder(ctx context.Context, uid string) (*domain.Order, error) {
	return s.storage.Order(ctx, uid)
}

type catalogue struct {
	index       matching.Index
	restaurants map[int64]domain.Restaurant
}

func (s *Service) loadCatalogue(ctx context.Context) (catalogue, error) {
	items, err := s.storage.MenuItems(ctx)
	if err != nil {
		return catalogue{}, fmt.Errorf("load menu items: %w", err)
	}
	list, err := s.storage.Restaurants(ctx)
	if err != nil {
		return catalogue{}, fmt.Errorf("load restaurants: %w", err)
	}
	return catalogue{
		index:       matching.BuildIndex(items),
		restaurants: matching.ByID(list),
	}, nil
}

// MatchOrderWithStats ranks the restaurants able to fulfil the stored order
// uid.
func (s *Service) MatchOrderWithStats(ctx context.Context, uid string) (domain.MatchResult, MatchStats, error) {
	var st MatchStats

	t0 := time.Now()
	order, err := s.storage.Order(ctx, uid)
	if err != nil {
		return domain.MatchResult{}, st, err
	}
	cat, err := s.loadCatalogue(ctx)
	if err != nil {
		return domain.MatchResult{}, st, err
	}
	st.LoadMs = convertToMs(t0)

	t1 := time.Now()
	res, err := s.matcher.Match(ctx, order, cat.index, cat.restaurants)
	if err != nil {
		s.logger.Error("Match failed",
			zap.String("order_uid", uid),
			zap.Error(err),
		)
		return domain.MatchResult{}, st, err
	}
	st.MatchMs = convertToMs(t1)

	s.logger.Info("Order matched",
		zap.String("order_uid", uid),
		zap.Stringer("outcome", res.Outcome()),
		zap.Int("restaurants", len(res.Restaurants())),
		zap.Float64("load_ms", st.LoadMs),
		zap.Float64("match_ms", st.MatchMs),
	)
	return res, st, nil
}

func (s *Service) MatchOrder(ctx context.Context, uid string) (domain.MatchResult, error) {
	res, _, err := s.MatchOrderWithStats(ctx, uid)
	return res, err
}

// MatchActiveOrders matches every order that has not been delivered, newest
// first, against a single snapshot of menus and restaurants.
func (s *Service) MatchActiveOrders(ctx context.Context) ([]OrderMatch, error) {
	orders, err := s.storage.ActiveOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active orders: %w", err)
	}
	cat, err := s.loadCatalogue(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]OrderMatch, 0, len(orders))
	for _, o := range orders {
		res, err := s.matcher.Match(ctx, o, cat.index, cat.restaurants)
		if err != nil {
			return nil, fmt.Errorf("match order %s: %w", o.OrderUID, err)
		}
		out = append(out, OrderMatch{Order: o, Result: res})
	}
	return out, nil
}

// CreateRestaurant stores a restaurant and geocodes its address.
func (s *Service) CreateRestaurant(ctx context.Context, r domain.Restaurant) (*domain.Restaurant, error) {
	r.Coordinates = nil
	if err := domain.ValidateRestaurant(&r); err != nil {
		return nil, err
	}
	id, err := s.storage.CreateRestaurant(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create restaurant: %w", err)
	}
	r.ID = id

	coords, err := s.geocodeRestaurant(ctx, id, r.Address)
	if errors.Is(err, domain.ErrAddressChanged) {
		return s.storage.Restaurant(ctx, id)
	}
	if err != nil {
		return &r, err
	}
	r.Coordinates = coords
	return &r, nil
}

// UpdateRestaurantAddress persists a new address, then geocodes and stores
// its coordinates. If geocoding fails the restaurant is left without
// coordinates.
func (s *Service) UpdateRestaurantAddress(ctx context.Context, id int64, address string) (*domain.Restaurant, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("%w: Address: failed %q", domain.ErrInvalidRestaurant, "notblank")
	}
	if err := s.storage.UpdateRestaurantAddress(ctx, id, address); err != nil {
		return nil, err
	}
	if _, err := s.geocodeRestaurant(ctx, id, address); err != nil && !errors.Is(err, domain.ErrAddressChanged) {
		return nil, err
	}
	return s.storage.Restaurant(ctx, id)
}

func (s *Service) geocodeRestaurant(ctx context.Context, id int64, address string) (*domain.Coordinates, error) {
	coords, err := s.geocache.Lookup(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("geocode restaurant %d: %w", id, err)
	}
	if coords == nil {
		s.logger.Warn("Restaurant address unresolved",
			zap.Int64("restaurant_id", id),
			zap.String("address", address),
		)
		return nil, nil
	}
	if err := s.storage.SetRestaurantCoordinates(ctx, id, address, coords); err != nil {
		if errors.Is(err, domain.ErrAddressChanged) {
			s.logger.Info("Restaurant address changed while geocoding, coordinates dropped",
				zap.Int64("restaurant_id", id),
				zap.String("address", address),
			)
		}
		return nil, fmt.Errorf("store restaurant %d coordinates: %w", id, err)
	}
	return coords, nil
}

func (s *Service) SetMenuItem(ctx context.Context, item domain.MenuItem) error {
	if _, err := s.storage.Restaurant(ctx, item.RestaurantID); err != nil {
		return err
	}
	if item.ProductID <= 0 {
		return fmt.Errorf("%w: product %d", domain.ErrInvalidRestaurant, item.ProductID)
	}
	return s.storage.UpsertMenuItem(ctx, item)
}

// BackfillRestaurantCoordinates geocodes every restaurant that has no
// coordinates yet. Lookups are spread over the service's worker pool; the
// shared rate limiter still spaces the provider calls.
func (s *Service) BackfillRestaurantCoordinates(ctx context.Context) (BackfillStats, error) {
	var st BackfillStats

	list, err := s.storage.RestaurantsWithoutCoordinates(ctx)
	if err != nil {
		return st, fmt.Errorf("load restaurants without coordinates: %w", err)
	}
	st.Total = len(list)

	var (
		mu   sync.Mutex
		errs []error
	)
	p := pool.New(ctx, s.workers)
	for _, r := range list {
		r := r
		ok := p.Submit(func(ctx context.Context) {
			coords, err := s.geocodeRestaurant(ctx, r.ID, r.Address)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case errors.Is(err, domain.ErrAddressChanged):
				st.Superseded++
			case err != nil:
				errs = append(errs, err)
				st.Failed++
			case coords == nil:
				st.Failed++
			default:
				st.Resolved++
			}
		})
		if !ok {
			break
		}
	}
	p.Close()
	p.Wait()

	s.logger.Info("Restaurant coordinates backfilled",
		zap.Int("total", st.Total),
		zap.Int("resolved", st.Resolved),
		zap.Int("failed", st.Failed),
		zap.Int("superseded", st.Superseded),
	)
	if err := ctx.Err(); err != nil {
		return st, err
	}
	return st, errors.Join(errs...)
}
