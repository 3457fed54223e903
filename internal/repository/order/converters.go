package order

import (
	"encoding/json"
	"fmt"

	"fulfillment/internal/entities"
)

// addressDoc формат хранения адреса в JSONB-колонке.
type addressDoc struct {
	Name    string `json:"name"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipcode"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
}

func ToDomain(orderDB *OrderDB, itemsDB []OrderItemDB) (*entities.Order, error) {
	if orderDB == nil {
		return nil, nil
	}

	var address addressDoc
	if err := json.Unmarshal(orderDB.Address, &address); err != nil {
		return nil, fmt.Errorf("unmarshal address for order %s: %w", orderDB.ID, err)
	}

	var rawStatuses map[string]string
	if err := json.Unmarshal(orderDB.RestaurantStatus, &rawStatuses); err != nil {
		return nil, fmt.Errorf("unmarshal restaurant status for order %s: %w", orderDB.ID, err)
	}

	restaurantStatus := make(map[string]entities.FulfillmentStatusType, len(rawStatuses))
	for restaurantID, status := range rawStatuses {
		restaurantStatus[restaurantID] = entities.FulfillmentStatusType(status)
	}

	items := make([]entities.OrderItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		items[i] = entities.OrderItem{
			FoodID:       itemDB.FoodID,
			RestaurantID: itemDB.RestaurantID,
			Name:         itemDB.Name,
			Image:        itemDB.Image,
			Quantity:     itemDB.Quantity,
			UnitPrice:    itemDB.UnitPrice,
		}
	}

	return &entities.Order{
		ID:     orderDB.ID,
		Items:  items,
		Amount: orderDB.Amount,
		Address: entities.Address{
			Name:    address.Name,
			Street:  address.Street,
			City:    address.City,
			State:   address.State,
			ZipCode: address.ZipCode,
			Country: address.Country,
			Phone:   address.Phone,
		},
		Payment:          orderDB.Payment,
		RestaurantStatus: restaurantStatus,
		Status:           entities.FulfillmentStatusType(orderDB.Status),
		Date:             orderDB.Date,
		Version:          orderDB.Version,
	}, nil
}

func FromDomain(order *entities.Order) (*OrderDB, []OrderItemDB, error) {
	if order == nil {
		return nil, nil, nil
	}

	addressJSON, err := json.Marshal(addressDoc{
		Name:    order.Address.Name,
		Street:  order.Address.Street,
		City:    order.Address.City,
		State:   order.Address.State,
		ZipCode: order.Address.ZipCode,
		Country: order.Address.Country,
		Phone:   order.Address.Phone,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("marshal address: %w", err)
	}

	statusJSON, err := MarshalRestaurantStatus(order.RestaurantStatus)
	if err != nil {
		return nil, nil, err
	}

	itemsDB := make([]OrderItemDB, len(order.Items))
	for i, item := range order.Items {
		itemsDB[i] = OrderItemDB{
			OrderID:      order.ID,
			FoodID:       item.FoodID,
			RestaurantID: item.RestaurantID,
			Name:         item.Name,
			Image:        item.Image,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			Position:     int32(i),
		}
	}

	return &OrderDB{
		ID:               order.ID,
		Amount:           order.Amount,
		Address:          addressJSON,
		Payment:          order.Payment,
		RestaurantStatus: statusJSON,
		Status:           order.Status.String(),
		Date:             order.Date,
		Version:          order.Version,
	}, itemsDB, nil
}

func MarshalRestaurantStatus(restaurantStatus map[string]entities.FulfillmentStatusType) ([]byte, error) {
	raw := make(map[string]string, len(restaurantStatus))
	for restaurantID, status := range restaurantStatus {
		raw[restaurantID] = status.String()
	}

	statusJSON, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("marshal restaurant status: %w", err)
	}
	return statusJSON, nil
}
