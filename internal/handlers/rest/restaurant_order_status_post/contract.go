//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=restaurant_order_status_post_test
package restaurant_order_status_post

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
	ApplyTransition(ctx context.Context, transition entities.StatusTransition) (*entities.Order, error)
}
