package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"

	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/domain"
)

type Repo struct {
	pool   *pgxpool.Pool
	tables config.Tables
}

func New(pool *pgxpool.Pool, t config.Tables) *Repo { return &Repo{pool: pool, tables: t} }

// Connect opens a pool with queries traced into logger and checks it with a
// ping.
func Connect(ctx context.Context, dsn string, logger *zap.Logger, level tracelog.LogLevel) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   NewZapTracer(logger),
		LogLevel: level,
	}
	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}

func (r *Repo) qt(tbl string) string { return fmt.Sprintf(`"%s"."%s"`, r.tables.Schema, tbl) }

func coordsFrom(lat, lon *float64) *domain.Coordinates {
	if lat == nil || lon == nil {
		return nil
	}
	return &domain.Coordinates{Lat: *lat, Lon: *lon}
}

func coordArgs(c *domain.Coordinates) (lat, lon *float64) {
	if c == nil {
		return nil, nil
	}
	return &c.Lat, &c.Lon
}

// restaurants

func (r *Repo) restaurantColumns() string {
	return `id, name, address, contact_phone, lat, lon`
}

func scanRestaurant(row pgx.Row) (domain.Restaurant, error) {
	var (
		rest     domain.Restaurant
		lat, lon *float64
	)
	if err := row.Scan(&rest.ID, &rest.Name, &rest.Address, &rest.ContactPhone, &lat, &lon); err != nil {
		return domain.Restaurant{}, err
	}
	rest.Coordinates = coordsFrom(lat, lon)
	return rest, nil
}

func (r *Repo) queryRestaurants(ctx context.Context, where string) ([]domain.Restaurant, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM %s %s
		ORDER BY name, id
	`, r.restaurantColumns(), r.qt(r.tables.Restaurant), where))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	return out, rows.Err()
}

func (r *Repo) Restaurants(ctx context.Context) ([]domain.Restaurant, error) {
	return r.queryRestaurants(ctx, "")
}

func (r *Repo) RestaurantsWithoutCoordinates(ctx context.Context) ([]domain.Restaurant, error) {
	return r.queryRestaurants(ctx, "WHERE lat IS NULL OR lon IS NULL")
}

func (r *Repo) Restaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM %s WHERE id=$1
	`, r.restaurantColumns(), r.qt(r.tables.Restaurant)), id)
	rest, err := scanRestaurant(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

// CreateRestaurant inserts rest without coordinates and returns its ID.
func (r *Repo) CreateRestaurant(ctx context.Context, rest domain.Restaurant) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (name, address, contact_phone)
		VALUES ($1,$2,$3)
		RETURNING id
	`, r.qt(r.tables.Restaurant)), rest.Name, rest.Address, rest.ContactPhone).Scan(&id)
	return id, err
}

// UpdateRestaurantAddress stores a new address and clears the coordinates
// that belonged to the old one.
func (r *Repo) UpdateRestaurantAddress(ctx context.Context, id int64, address string) error {
	tag, err := r.pool.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET address=$2, lat=NULL, lon=NULL WHERE id=$1
	`, r.qt(r.tables.Restaurant)), id, address)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Repo) setCoordinatesQuery() string {
	return fmt.Sprintf(`
		UPDATE %s SET lat=$2, lon=$3 WHERE id=$1 AND address=$4
	`, r.qt(r.tables.Restaurant))
}

// SetRestaurantCoordinates stores coords only while the restaurant still has
// address. Otherwise it returns domain.ErrAddressChanged.
func (r *Repo) SetRestaurantCoordinates(ctx context.Context, id int64, address string, coords *domain.Coordinates) error {
	lat, lon := coordArgs(coords)
	tag, err := r.pool.Exec(ctx, r.setCoordinatesQuery(), id, lat, lon, address)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAddressChanged
	}
	return nil
}

func (r *Repo) MenuItems(ctx context.Context) ([]domain.MenuItem, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT restaurant_id, product_id, available FROM %s
	`, r.qt(r.tables.MenuItem)))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(&it.RestaurantID, &it.ProductID, &it.Available); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

func (r *Repo) UpsertMenuItem(ctx context.Context, it domain.MenuItem) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (restaurant_id, product_id, available)
		VALUES ($1,$2,$3)
		ON CONFLICT (restaurant_id, product_id) DO UPDATE SET available=EXCLUDED.available
	`, r.qt(r.tables.MenuItem)), it.RestaurantID, it.ProductID, it.Available)
	return err
}

// orders

func (r *Repo) UpsertOrder(ctx context.Context, o *domain.Order) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	status := o.Status
	if status == "" {
		status = domain.StatusUnprocessed
	}
	_, err = tx.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (order_uid, firstname, lastname, phonenumber, address,
		  status, comment, restaurant_id, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (order_uid) DO UPDATE SET
		  firstname=EXCLUDED.firstname,
		  lastname=EXCLUDED.lastname,
		  phonenumber=EXCLUDED.phonenumber,
		  address=EXCLUDED.address,
		  status=EXCLUDED.status,
		  comment=EXCLUDED.comment,
		  restaurant_id=EXCLUDED.restaurant_id
	`, r.qt(r.tables.Order)),
		o.OrderUID, o.Firstname, o.Lastname, o.Phonenumber, o.Address,
		string(status), o.Comment, o.RestaurantID, o.CreatedAt,
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE order_uid=$1`, r.qt(r.tables.OrderItem)), o.OrderUID); err != nil {
		return err
	}
	batch := &pgx.Batch{}
	for _, it := range o.Items {
		batch.Queue(fmt.Sprintf(`
			INSERT INTO %s (order_uid, product_id, quantity) VALUES ($1,$2,$3)
		`, r.qt(r.tables.OrderItem)),
			o.OrderUID, it.ProductID, it.Quantity,
		)
	}
	if batch.Len() > 0 {
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *Repo) orderColumns() string {
	return `order_uid, firstname, lastname, phonenumber, address, status, comment, restaurant_id, created_at`
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var (
		o      domain.Order
		status string
	)
	if err := row.Scan(&o.OrderUID, &o.Firstname, &o.Lastname, &o.Phonenumber, &o.Address,
		&status, &o.Comment, &o.RestaurantID, &o.CreatedAt); err != nil {
		return nil, err
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

func (r *Repo) Order(ctx context.Context, uid string) (*domain.Order, error) {
	o, err := scanOrder(r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT %s FROM %s WHERE order_uid=$1
	`, r.orderColumns(), r.qt(r.tables.Order)), uid))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := r.orderItems(ctx, []string{uid})
	if err != nil {
		return nil, err
	}
	o.Items = items[uid]
	return o, nil
}

// ActiveOrders returns every order not yet delivered, newest first.
func (r *Repo) ActiveOrders(ctx context.Context) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT %s FROM %s
		WHERE status <> $1
		ORDER BY created_at DESC, order_uid
	`, r.orderColumns(), r.qt(r.tables.Order)), string(domain.StatusDelivered))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var (
		orders []*domain.Order
		uids   []string
	)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
		uids = append(uids, o.OrderUID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	items, err := r.orderItems(ctx, uids)
	if err != nil {
		return nil, err
	}
	for _, o := range orders {
		o.Items = items[o.OrderUID]
	}
	return orders, nil
}

func (r *Repo) orderItems(ctx context.Context, uids []string) (map[string][]domain.LineItem, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT order_uid, product_id, quantity FROM %s
		WHERE order_uid = ANY($1)
		ORDER BY order_uid, product_id
	`, r.qt(r.tables.OrderItem)), uids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.LineItem, len(uids))
	for rows.Next() {
		var (
			uid string
			it  domain.LineItem
		)
		if err := rows.Scan(&uid, &it.ProductID, &it.Quantity); err != nil {
			return nil, err
		}
		out[uid] = append(out[uid], it)
	}
	return out, rows.Err()
}

// geocode entries

func (r *Repo) GeocodeEntry(ctx context.Context, address string) (*domain.GeocodeEntry, error) {
	var (
		e        domain.GeocodeEntry
		lat, lon *float64
	)
	err := r.pool.QueryRow(ctx, fmt.Sprintf(`
		SELECT address, lat, lon, updated_at FROM %s WHERE address=$1
	`, r.qt(r.tables.Geocode)), address).Scan(&e.Address, &lat, &lon, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	e.Coordinates = coordsFrom(lat, lon)
	return &e, nil
}

func (r *Repo) UpsertGeocodeEntry(ctx context.Context, e domain.GeocodeEntry) error {
	lat, lon := coordArgs(e.Coordinates)
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (address, lat, lon, updated_at)
		VALUES ($1,$2,$3,$4)
		ON CONFLICT (address) DO UPDATE SET
		  lat=EXCLUDED.lat,
		  lon=EXCLUDED.lon,
		  updated_at=EXCLUDED.updated_at
	`, r.qt(r.tables.Geocode)), e.Address, lat, lon, e.UpdatedAt)
	return err
}

// InsertGeocodeMiss records an address that could not be resolved. An
// existing row, resolved or not, is left untouched.
func (r *Repo) InsertGeocodeMiss(ctx context.Context, e domain.GeocodeEntry) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (address, lat, lon, updated_at)
		VALUES ($1, NULL, NULL, $2)
		ON CONFLICT (address) DO NOTHING
	`, r.qt(r.tables.Geocode)), e.Address, e.UpdatedAt)
	return err
}

func (r *Repo) RecentGeocodeEntries(ctx context.Context, limit int) ([]domain.GeocodeEntry, error) {
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
		SELECT address, lat, lon, updated_at FROM %s
		WHERE lat IS NOT NULL AND lon IS NOT NULL
		ORDER BY updated_at DESC
		LIMIT $1
	`, r.qt(r.tables.Geocode)), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.GeocodeEntry
	for rows.Next() {
		var (
			e        domain.GeocodeEntry
			lat, lon *float64
		)
		if err := rows.Scan(&e.Address, &lat, &lon, &e.UpdatedAt); err != nil {
			return nil, err
		}
		e.Coordinates = coordsFrom(lat, lon)
		out = append(out, e)
	}
	return out, rows.Err()
}
