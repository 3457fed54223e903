package order

import "time"

type OrderDB struct {
	ID               string
	Amount           int64
	Address          []byte
	Payment          bool
	RestaurantStatus []byte
	Status           string
	Date             time.Time
	Version          int64
}

type OrderItemDB struct {
	OrderID      string
	FoodID       string
	RestaurantID string
	Name         string
	Image        string
	Quantity     int32
	UnitPrice    int64
	Position     int32
}
