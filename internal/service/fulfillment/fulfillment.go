package fulfillment

import (
	"context"
	"fmt"

	"fulfillment/internal/entities"
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

// ApplyTransition проводит смену статуса одного ресторана в заказе.
// Порядок проверок фиксирован: существование заказа, принадлежность
// ресторана, строго прямое движение по стадиям, совпадение версии.
// Запись атомарна: карта статусов, общий статус и версия меняются одной
// транзакцией, проигравший гонку получает ErrConcurrentModification
// и должен перечитать заказ и повторить.
func (s *Service) ApplyTransition(ctx context.Context, transition entities.StatusTransition) (*entities.Order, error) {
	if !isValidOrderID(transition.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidRestaurantID(transition.RestaurantID) {
		return nil, ErrInvalidRestaurantID
	}
	if !transition.Status.IsValid() {
		return nil, ErrInvalidStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, transition.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		current, ok := order.RestaurantStatus[transition.RestaurantID]
		if !ok {
			return ErrRestaurantNotPartOfOrder
		}

		// любой прыжок вперед разрешен, назад и на месте - нет
		if !transition.Status.After(current) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, transition.Status)
		}

		if order.Version != transition.ExpectedVersion {
			return ErrConcurrentModification
		}

		newStatuses := make(map[string]entities.FulfillmentStatusType, len(order.RestaurantStatus))
		for id, status := range order.RestaurantStatus {
			newStatuses[id] = status
		}
		newStatuses[transition.RestaurantID] = transition.Status

		overall, err := s.aggregator.Derive(newStatuses)
		if err != nil {
			return fmt.Errorf("derive overall status: %w", err)
		}

		updated, err = s.repository.UpdateRestaurantStatus(
			ctx,
			transition.OrderID,
			newStatuses,
			overall,
			transition.ExpectedVersion,
		)
		if err != nil {
			return fmt.Errorf("update restaurant status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// GetOrder возвращает заказ целиком с общим (агрегированным) статусом.
func (s *Service) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// GetOrderForRestaurant возвращает проекцию заказа для одного ресторана.
func (s *Service) GetOrderForRestaurant(ctx context.Context, orderID, restaurantID string) (*entities.RestaurantView, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidRestaurantID(restaurantID) {
		return nil, ErrInvalidRestaurantID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	view, err := ProjectForRestaurant(order, restaurantID)
	if err != nil {
		return nil, err
	}
	return view, nil
}

// ListOrdersForRestaurant возвращает проекции всех заказов с позициями
// данного ресторана. Фильтр применяется к собственному статусу ресторана,
// а не к общему статусу заказа: заказ попадает во вкладку "Ready" ресторана A,
// как только готовы позиции A, независимо от прогресса ресторана B.
func (s *Service) ListOrdersForRestaurant(
	ctx context.Context,
	restaurantID string,
	effectiveStatus *entities.FulfillmentStatusType,
) ([]entities.RestaurantView, error) {
	if !isValidRestaurantID(restaurantID) {
		return nil, ErrInvalidRestaurantID
	}
	if effectiveStatus != nil && !effectiveStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.ListByRestaurant(ctx, restaurantID, effectiveStatus)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	views := make([]entities.RestaurantView, 0, len(orders))
	for i := range orders {
		view, err := ProjectForRestaurant(&orders[i], restaurantID)
		if err != nil {
			return nil, fmt.Errorf("project order %s: %w", orders[i].ID, err)
		}
		views = append(views, *view)
	}
	return views, nil
}

// SnapshotStatusCounts возвращает количество заказов по общему статусу,
// используется фоновой задачей метрик.
func (s *Service) SnapshotStatusCounts(ctx context.Context) (map[entities.FulfillmentStatusType]int64, error) {
	counts, err := s.repository.CountByOverallStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	return counts, nil
}
