package restaurant_order_status_post

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

	var statusUpdateDTO dto.StatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	transition := entities.StatusTransition{
		OrderID:         statusUpdateDTO.OrderID,
		RestaurantID:    restaurantID,
		Status:          entities.FulfillmentStatusType(statusUpdateDTO.Status),
		ExpectedVersion: statusUpdateDTO.Version,
	}

	orderEntity, err := h.service.ApplyTransition(r.Context(), transition)
	if err != nil {
		switch {
		case errors.Is(err, fulfillment.ErrInvalidOrderID),
			errors.Is(err, fulfillment.ErrInvalidRestaurantID),
			errors.Is(err, fulfillment.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, fulfillment.ErrOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, fulfillment.ErrRestaurantNotPartOfOrder):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, fulfillment.ErrInvalidTransition),
			errors.Is(err, fulfillment.ErrConcurrentModification):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.StatusUpdateResponse{
		OrderID:         orderEntity.ID,
		EffectiveStatus: orderEntity.RestaurantStatus[restaurantID].String(),
		OverallStatus:   orderEntity.Status.String(),
		Version:         orderEntity.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
