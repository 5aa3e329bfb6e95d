package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart is returned when building an order from an empty cart.
	ErrEmptyCart = errors.New("no items in cart to build order")
	// ErrFulfilmentNotSet is returned when building an order before a
	// fulfilment type was chosen.
	ErrFulfilmentNotSet = errors.New("fulfilment must be set to DELIVERY or PICKUP before build")
)
