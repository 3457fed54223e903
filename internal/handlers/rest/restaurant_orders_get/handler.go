package restaurant_orders_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"fulfillment/internal/entities"
	"fulfillment/internal/generated/dto"
	"fulfillment/internal/pkg/middlewares/auth"
	"fulfillment/internal/service/fulfillment"
	"fulfillment/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	restaurantID, ok := auth.RestaurantIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var statusFilter *entities.FulfillmentStatusType
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := entities.FulfillmentStatusType(raw)
		statusFilter = &status
	}

	views, err := h.service.ListOrdersForRestaurant(r.Context(), restaurantID, statusFilter)
	if err != nil {
		switch {
		case errors.Is(err, fulfillment.ErrInvalidRestaurantID),
			errors.Is(err, fulfillment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	orderDTOs := make([]dto.RestaurantOrder, len(views))
	for i, view := range views {
		itemDTOs := make([]dto.OrderItem, len(view.Items))
		for j, item := range view.Items {
			itemDTOs[j].FoodID = item.FoodID
			itemDTOs[j].Name = item.Name
			itemDTOs[j].Image = item.Image
			itemDTOs[j].Quantity = item.Quantity
			itemDTOs[j].UnitPrice = item.UnitPrice
		}

		orderDTOs[i].OrderID = view.OrderID
		orderDTOs[i].Items = itemDTOs
		orderDTOs[i].EffectiveStatus = view.EffectiveStatus.String()
		orderDTOs[i].CustomerName = view.CustomerName
		orderDTOs[i].Amount = view.Amount
		orderDTOs[i].Payment = view.Payment
		orderDTOs[i].Date = view.Date
		orderDTOs[i].Version = view.Version
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
