package database

import (
	"context"
	"fmt"
)

func (r *Repo) schemaStatements() []string {
	return []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS "%s"`, r.tables.Schema),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			id            BIGSERIAL PRIMARY KEY,
			name          TEXT NOT NULL,
			address       TEXT NOT NULL,
			contact_phone TEXT NOT NULL DEFAULT '',
			lat           DOUBLE PRECISION,
			lon           DOUBLE PRECISION
		)`, r.qt(r.tables.Restaurant)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			restaurant_id BIGINT NOT NULL REFERENCES %s (id) ON DELETE CASCADE,
			product_id    BIGINT NOT NULL,
			available     BOOLEAN NOT NULL DEFAULT TRUE,
			PRIMARY KEY (restaurant_id, product_id)
		)`, r.qt(r.tables.MenuItem), r.qt(r.tables.Restaurant)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			order_uid     TEXT PRIMARY KEY,
			firstname     TEXT NOT NULL,
			lastname      TEXT NOT NULL,
			phonenumber   TEXT NOT NULL,
			address       TEXT NOT NULL,
			status        TEXT NOT NULL DEFAULT 'unprocessed',
			comment       TEXT NOT NULL DEFAULT '',
			restaurant_id BIGINT REFERENCES %s (id) ON DELETE SET NULL,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, r.qt(r.tables.Order), r.qt(r.tables.Restaurant)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS "%s_status_created_idx" ON %s (status, created_at DESC)`,
			r.tables.Order, r.qt(r.tables.Order)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			order_uid  TEXT NOT NULL REFERENCES %s (order_uid) ON DELETE CASCADE,
			product_id BIGINT NOT NULL,
			quantity   INTEGER NOT NULL CHECK (quantity > 0)
		)`, r.qt(r.tables.OrderItem), r.qt(r.tables.Order)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS "%s_order_uid_idx" ON %s (order_uid)`,
			r.tables.OrderItem, r.qt(r.tables.OrderItem)),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
			address    TEXT PRIMARY KEY,
			lat        DOUBLE PRECISION,
			lon        DOUBLE PRECISION,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`, r.qt(r.tables.Geocode)),
	}
}

// EnsureSchema creates the schema, tables and indexes that do not exist yet.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, stmt := range r.schemaStatements() {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return tx.Commit(ctx)
}
