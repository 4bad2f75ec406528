package domain

import "time"

type OrderStatus string

const (
	StatusUnprocessed OrderStatus = "unprocessed"
	StatusInProgress  OrderStatus = "in_progress"
	StatusDelivered   OrderStatus = "delivered"
)

// Coordinates is a WGS-84 point. A nil *Coordinates means "not known".
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeocodeEntry is one row of the persistent coordinate cache, keyed by the
// exact address string the lookup was made with.
type GeocodeEntry struct {
	Address     string       `json:"address"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Restaurant struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name" validate:"required,notblank"`
	Address      string       `json:"address" validate:"required,notblank"`
	ContactPhone string       `json:"contact_phone,omitempty" validate:"omitempty,e164"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
}

type MenuItem struct {
	RestaurantID int64 `json:"restaurant_id"`
	ProductID    int64 `json:"product_id"`
	Available    bool  `json:"available"`
}

type LineItem struct {
	ProductID int64 `json:"product" validate:"required,gt=0"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

type Order struct {
	OrderUID     string      `json:"order_uid" validate:"required"`
	Firstname    string      `json:"firstname" validate:"required,notblank"`
	Lastname     string      `json:"lastname" validate:"required,notblank"`
	Phonenumber  string      `json:"phonenumber" validate:"required,e164"`
	Address      string      `json:"address" validate:"required,notblank"`
	Status       OrderStatus `json:"status,omitempty" validate:"omitempty,oneof=unprocessed in_progress delivered"`
	Comment      string      `json:"comment,omitempty"`
	RestaurantID *int64      `json:"restaurant_id,omitempty"`
	Items        []LineItem  `json:"products" validate:"required,min=1,dive"`
	CreatedAt    time.Time   `json:"created_at"`
}

// ProductIDs returns the distinct set of products the order needs.
func (o *Order) ProductIDs() map[int64]struct{} {
	set := make(map[int64]struct{}, len(o.Items))
	for _, it := range o.Items {
		set[it.ProductID] = struct{}{}
	}
	return set
}
