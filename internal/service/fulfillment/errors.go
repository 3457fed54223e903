package fulfillment

import "errors"

var (
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidRestaurantID = errors.New("invalid restaurant id")
	ErrInvalidStatus       = errors.New("invalid fulfillment status")

	ErrOrderNotFound            = errors.New("order not found")
	ErrRestaurantNotPartOfOrder = errors.New("restaurant is not part of order")
	ErrInvalidTransition        = errors.New("invalid status transition")
	ErrConcurrentModification   = errors.New("order was modified concurrently")
	ErrMalformedOrder           = errors.New("malformed order")
)
