package intake

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/fulfillment"
	"github.com/google/uuid"
)

type Service struct {
	repository Repository
	aggregator StatusAggregator
	txManager  TxManager
}

func New(repository Repository, aggregator StatusAggregator, txManager TxManager) *Service {
	return &Service{
		repository: repository,
		aggregator: aggregator,
		txManager:  txManager,
	}
}

// RegisterOrder сохраняет заказ, сформированный checkout-сервисом.
// Это граница хранилища: инварианты заказа проверяются здесь и нарушение
// дает ErrMalformedOrder - никакого "самолечения" кривых заказов.
// Повторная доставка события (at-least-once) дает ErrOrderAlreadyRegistered.
func (s *Service) RegisterOrder(ctx context.Context, order entities.Order) (*entities.Order, error) {
	if err := validateOrder(&order); err != nil {
		return nil, err
	}

	overall, err := s.aggregator.Derive(order.RestaurantStatus)
	if err != nil {
		return nil, fmt.Errorf("derive overall status: %w", err)
	}
	order.Status = overall
	order.Version = 1

	if order.Date.IsZero() {
		order.Date = time.Now().UTC()
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.repository.Create(ctx, &order)
	})
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}

	return &order, nil
}

func validateOrder(order *entities.Order) error {
	if _, err := uuid.Parse(order.ID); err != nil {
		return fmt.Errorf("%w: order id %q is not a UUID", fulfillment.ErrMalformedOrder, order.ID)
	}
	if len(order.Items) == 0 {
		return fmt.Errorf("%w: order has no items", fulfillment.ErrMalformedOrder)
	}

	var total int64
	for i, item := range order.Items {
		if strings.TrimSpace(item.FoodID) == "" {
			return fmt.Errorf("%w: item %d has empty food id", fulfillment.ErrMalformedOrder, i)
		}
		if strings.TrimSpace(item.RestaurantID) == "" {
			return fmt.Errorf("%w: item %d has empty restaurant id", fulfillment.ErrMalformedOrder, i)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: item %d has non-positive quantity", fulfillment.ErrMalformedOrder, i)
		}
		if item.UnitPrice < 0 {
			return fmt.Errorf("%w: item %d has negative unit price", fulfillment.ErrMalformedOrder, i)
		}
		total += int64(item.Quantity) * item.UnitPrice
	}

	if order.Amount != total {
		return fmt.Errorf("%w: amount %d does not match items total %d",
			fulfillment.ErrMalformedOrder, order.Amount, total)
	}

	// карта статусов покрывает ровно те рестораны, что встречаются в позициях
	restaurantIDs := order.RestaurantIDs()
	if len(order.RestaurantStatus) != len(restaurantIDs) {
		return fmt.Errorf("%w: restaurant status entries (%d) do not match restaurants in items (%d)",
			fulfillment.ErrMalformedOrder, len(order.RestaurantStatus), len(restaurantIDs))
	}
	for _, restaurantID := range restaurantIDs {
		status, ok := order.RestaurantStatus[restaurantID]
		if !ok {
			return fmt.Errorf("%w: no status entry for restaurant %s", fulfillment.ErrMalformedOrder, restaurantID)
		}
		if !status.IsValid() {
			return fmt.Errorf("%w: unknown status %q for restaurant %s",
				fulfillment.ErrMalformedOrder, status, restaurantID)
		}
	}

	return nil
}
