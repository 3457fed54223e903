//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_orders_get_test
package restaurant_orders_get

import (
	"context"

	"fulfillment/internal/entities"
	"fulfillment/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ListOrdersForRestaurant(ctx context.Context, restaurantID string, effectiveStatus *entities.FulfillmentStatusType) ([]entities.RestaurantView, error)
}
