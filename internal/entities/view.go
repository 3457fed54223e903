package entities

import "time"

// RestaurantView проекция заказа для одного ресторана: только его позиции
// и его собственный статус, а не общий статус заказа.
type RestaurantView struct {
	OrderID         string
	Items           []OrderItem
	EffectiveStatus FulfillmentStatusType
	CustomerName    string
	Amount          int64
	Payment         bool
	Date            time.Time
	Version         int64
}
