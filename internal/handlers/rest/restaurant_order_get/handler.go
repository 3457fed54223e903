package restaurant_order_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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

	orderID := mux.Vars(r)["id"]

	view, err := h.service.GetOrderForRestaurant(r.Context(), orderID, restaurantID)
	if err != nil {
		switch {
		case errors.Is(err, fulfillment.ErrInvalidOrderID),
			errors.Is(err, fulfillment.ErrInvalidRestaurantID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fulfillment.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, fulfillment.ErrRestaurantNotPartOfOrder):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	itemDTOs := make([]dto.OrderItem, len(view.Items))
	for i, item := range view.Items {
		itemDTOs[i].FoodID = item.FoodID
		itemDTOs[i].Name = item.Name
		itemDTOs[i].Image = item.Image
		itemDTOs[i].Quantity = item.Quantity
		itemDTOs[i].UnitPrice = item.UnitPrice
	}

	orderDTO := dto.RestaurantOrder{
		OrderID:         view.OrderID,
		Items:           itemDTOs,
		EffectiveStatus: view.EffectiveStatus.String(),
		CustomerName:    view.CustomerName,
		Amount:          view.Amount,
		Payment:         view.Payment,
		Date:            view.Date,
		Version:         view.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(orderDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
