package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrInvalidOrder is a contract violation: the matcher was handed a nil
	// or otherwise unusable order.
	ErrInvalidOrder = errors.New("invalid order")

	ErrInvalidRestaurant = errors.New("invalid restaurant")

	// ErrAddressChanged means the restaurant no longer has the address its
	// coordinates were computed for.
	ErrAddressChanged = errors.New("restaurant address changed")
)
