package fulfillment

import (
	"fulfillment/internal/entities"
)

// ProjectForRestaurant строит представление заказа для одного ресторана:
// только его позиции и его собственный статус. Ресторан, уже довезший
// свою часть, видит свой реальный статус, даже если общий статус заказа
// все еще сдерживается более медленным партнером.
func ProjectForRestaurant(order *entities.Order, restaurantID string) (*entities.RestaurantView, error) {
	effectiveStatus, ok := order.RestaurantStatus[restaurantID]
	if !ok {
		return nil, ErrRestaurantNotPartOfOrder
	}

	items := make([]entities.OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		if item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}

	return &entities.RestaurantView{
		OrderID:         order.ID,
		Items:           items,
		EffectiveStatus: effectiveStatus,
		CustomerName:    order.Address.Name,
		Amount:          order.Amount,
		Payment:         order.Payment,
		Date:            order.Date,
		Version:         order.Version,
	}, nil
}
