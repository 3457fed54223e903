package entities

type FulfillmentStatusType string

const (
	StatusFoodProcessing FulfillmentStatusType = "Food Processing"
	StatusPreparing      FulfillmentStatusType = "Preparing"
	StatusReadyForPickup FulfillmentStatusType = "Ready for Pickup"
	StatusOutForDelivery FulfillmentStatusType = "Out for Delivery"
	StatusDelivered      FulfillmentStatusType = "Delivered"
)

// Начальный статус каждого ресторана в только что созданном заказе.
const DefaultFulfillmentStatus = StatusFoodProcessing

// statusOrder задает полный порядок стадий, индекс = ранг.
var statusOrder = []FulfillmentStatusType{
	StatusFoodProcessing,
	StatusPreparing,
	StatusReadyForPickup,
	StatusOutForDelivery,
	StatusDelivered,
}

// FulfillmentStatuses возвращает все стадии в порядке прохождения.
func FulfillmentStatuses() []FulfillmentStatusType {
	statuses := make([]FulfillmentStatusType, len(statusOrder))
	copy(statuses, statusOrder)
	return statuses
}

func (s FulfillmentStatusType) String() string {
	return string(s)
}

// Rank возвращает позицию статуса в порядке стадий, -1 для неизвестного.
func (s FulfillmentStatusType) Rank() int {
	for i, known := range statusOrder {
		if s == known {
			return i
		}
	}
	return -1
}

func (s FulfillmentStatusType) IsValid() bool {
	return s.Rank() >= 0
}

// After сообщает, находится ли s строго позже other в порядке стадий.
// Для неизвестных статусов всегда false.
func (s FulfillmentStatusType) After(other FulfillmentStatusType) bool {
	sr, or := s.Rank(), other.Rank()
	return sr >= 0 && or >= 0 && sr > or
}
