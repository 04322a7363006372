package deliveryman_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/offer"
	"marketplace/pkg/logger"
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

// ServeHTTP: заказчик выбирает курьера среди тех, кто сделал ставку.
// Заказ переходит в in_progress.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	var req dto.SelectDeliverymanRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	orderID := mux.Vars(r)["order_id"]

	selection, err := h.service.SelectDeliveryman(r.Context(), requesterID, orderID, req.DeliverymanID)
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, offer.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, offer.ErrOrderNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, offer.ErrInvalidOrderState), errors.Is(err, offer.ErrNoOfferFromDeliveryman):
			response.Error(w, h.log, http.StatusConflict, err)
		case errors.Is(err, offer.ErrRemoteFailure):
			response.Error(w, h.log, http.StatusBadGateway, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.With(
		logger.NewField("order_id", selection.OrderID),
		logger.NewField("deliveryman_id", selection.DeliverymanID),
	).Info("deliveryman selected")

	response.JSON(w, h.log, http.StatusOK, dto.DeliverymanSelection{
		OrderID:       selection.OrderID,
		DeliverymanID: selection.DeliverymanID,
		Status:        dto.OrderStatus(selection.Status),
		SelectedAt:    selection.SelectedAt,
	})
}
