package fulfillment

import "strings"

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidRestaurantID(restaurantID string) bool {
	return strings.TrimSpace(restaurantID) != ""
}
