package order_created

import (
	"time"

	"fulfillment/internal/entities"
)

// createdEvent это payload события order.created от сервиса чекаута.
type createdEvent struct {
	OrderID          string             `json:"orderId"`
	Items            []createdEventItem `json:"items"`
	Amount           int64              `json:"amount"`
	Address          createdEventAddr   `json:"address"`
	Payment          bool               `json:"payment"`
	RestaurantStatus map[string]string  `json:"restaurantStatus"`
	Date             time.Time          `json:"date"`
}

type createdEventItem struct {
	FoodID       string `json:"foodId"`
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	Quantity     int32  `json:"quantity"`
	UnitPrice    int64  `json:"unitPrice"`
}

type createdEventAddr struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

func (e *createdEvent) toOrder() entities.Order {
	items := make([]entities.OrderItem, len(e.Items))
	for i, item := range e.Items {
		items[i] = entities.OrderItem{
			FoodID:       item.FoodID,
			RestaurantID: item.RestaurantID,
			Name:         item.Name,
			Image:        item.Image,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		}
	}

	statuses := make(map[string]entities.FulfillmentStatusType, len(e.RestaurantStatus))
	for id, status := range e.RestaurantStatus {
		statuses[id] = entities.FulfillmentStatusType(status)
	}

	return entities.Order{
		ID:     e.OrderID,
		Items:  items,
		Amount: e.Amount,
		Address: entities.Address{
			Name:    e.Address.Name,
			Street:  e.Address.Street,
			City:    e.Address.City,
			State:   e.Address.State,
			ZipCode: e.Address.ZipCode,
			Country: e.Address.Country,
			Phone:   e.Address.Phone,
		},
		Payment:          e.Payment,
		RestaurantStatus: statuses,
		Date:             e.Date,
	}
}
