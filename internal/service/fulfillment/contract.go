//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fulfillment_test
package fulfillment

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, orderID string) (*entities.Order, error)
	ListByRestaurant(ctx context.Context, restaurantID string, effectiveStatus *entities.FulfillmentStatusType) ([]entities.Order, error)

	// UpdateRestaurantStatus атомарно записывает новую карту статусов,
	// пересчитанный общий статус и version+1 при условии version = expectedVersion.
	// Несовпадение версии возвращает ErrConcurrentModification.
	UpdateRestaurantStatus(
		ctx context.Context,
		orderID string,
		restaurantStatus map[string]entities.FulfillmentStatusType,
		overallStatus entities.FulfillmentStatusType,
		expectedVersion int64,
	) (*entities.Order, error)

	CountByOverallStatus(ctx context.Context) (map[entities.FulfillmentStatusType]int64, error)
}

type StatusAggregator interface {
	Derive(restaurantStatus map[string]entities.FulfillmentStatusType) (entities.FulfillmentStatusType, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
