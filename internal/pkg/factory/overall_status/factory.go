package overall_status

import (
	"fmt"

	"fulfillment/internal/entities"
	"fulfillment/internal/service/fulfillment"
)

// OverallStatusFactory чистая функция агрегации: общий статус заказа -
// минимальный (наименее продвинутый) статус среди всех ресторанов.
// Заказ не может быть "Out for Delivery", пока не готов каждый ресторан.
type OverallStatusFactory struct{}

func New() *OverallStatusFactory {
	return &OverallStatusFactory{}
}

func (f *OverallStatusFactory) Derive(restaurantStatus map[string]entities.FulfillmentStatusType) (entities.FulfillmentStatusType, error) {
	if len(restaurantStatus) == 0 {
		return "", fmt.Errorf("%w: empty restaurant status map", fulfillment.ErrMalformedOrder)
	}

	overall := entities.FulfillmentStatusType("")
	minRank := -1
	for restaurantID, status := range restaurantStatus {
		rank := status.Rank()
		if rank < 0 {
			return "", fmt.Errorf("%w: unknown status %q for restaurant %s",
				fulfillment.ErrMalformedOrder, status, restaurantID)
		}
		if minRank < 0 || rank < minRank {
			minRank = rank
			overall = status
		}
	}

	return overall, nil
}
