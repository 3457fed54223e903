package entities

import "time"

// Order заказ покупателя, позиции могут принадлежать нескольким ресторанам.
// Items, Amount, Address и Date неизменяемы после создания заказа;
// мутируется только RestaurantStatus (и производные Status, Version).
type Order struct {
	ID               string
	Items            []OrderItem
	Amount           int64
	Address          Address
	Payment          bool
	RestaurantStatus map[string]FulfillmentStatusType
	Status           FulfillmentStatusType
	Date             time.Time
	Version          int64
}

type OrderItem struct {
	FoodID       string
	RestaurantID string
	Name         string
	Image        string
	Quantity     int32
	UnitPrice    int64
}

type Address struct {
	Name    string
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
	Phone   string
}

// RestaurantIDs возвращает уникальные ID ресторанов из позиций заказа.
func (o *Order) RestaurantIDs() []string {
	seen := make(map[string]struct{}, len(o.Items))
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		if _, ok := seen[item.RestaurantID]; ok {
			continue
		}
		seen[item.RestaurantID] = struct{}{}
		ids = append(ids, item.RestaurantID)
	}
	return ids
}

// StatusTransition запрос ресторана на смену собственного статуса в заказе.
type StatusTransition struct {
	OrderID         string
	RestaurantID    string
	Status          FulfillmentStatusType
	ExpectedVersion int64
}
