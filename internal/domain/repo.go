package domain

import (
	"context"
)

type OrderRepository interface {
	UpsertOrder(ctx context.Context, order *Order) error
	Order(ctx context.Context, orderUID string) (*Order, error)
	ActiveOrders(ctx context.Context) ([]*Order, error)
}

type RestaurantRepository interface {
	Restaurants(ctx context.Context) ([]Restaurant, error)
	Restaurant(ctx context.Context, id int64) (*Restaurant, error)
	RestaurantsWithoutCoordinates(ctx context.Context) ([]Restaurant, error)
	CreateRestaurant(ctx context.Context, r Restaurant) (int64, error)
	UpdateRestaurantAddress(ctx context.Context, id int64, address string) error
	SetRestaurantCoordinates(ctx context.Context, id int64, address string, coords *Coordinates) error
	MenuItems(ctx context.Context) ([]MenuItem, error)
	UpsertMenuItem(ctx context.Context, item MenuItem) error
}

type GeocodeRepository interface {
	GeocodeEntry(ctx context.Context, address string) (*GeocodeEntry, error)
	UpsertGeocodeEntry(ctx context.Context, entry GeocodeEntry) error
	InsertGeocodeMiss(ctx context.Context, entry GeocodeEntry) error
	RecentGeocodeEntries(ctx context.Context, limit int) ([]GeocodeEntry, error)
}
