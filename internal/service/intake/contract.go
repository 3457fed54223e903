//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=intake_test
package intake

import (
	"context"

	"fulfillment/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order *entities.Order) error
}

type StatusAggregator interface {
	Derive(restaurantStatus map[string]entities.FulfillmentStatusType) (entities.FulfillmentStatusType, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
