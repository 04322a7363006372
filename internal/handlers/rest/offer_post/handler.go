package offer_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
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

// ServeHTTP публикует ставку вызывающего курьера на открытый заказ.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	deliverymanID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	var req dto.OfferValueRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	created, err := h.service.CreateOffer(r.Context(), deliverymanID, mux.Vars(r)["order_id"], req.DeliveryValue)
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, offer.ErrOrderNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, offer.ErrInvalidOrderState), errors.Is(err, offer.ErrDuplicateOffer):
			response.Error(w, h.log, http.StatusConflict, err)
		case errors.Is(err, offer.ErrRemoteFailure):
			response.Error(w, h.log, http.StatusBadGateway, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	h.log.With(
		logger.NewField("offer_id", created.ID),
		logger.NewField("order_id", created.OrderID),
		logger.NewField("deliveryman_id", deliverymanID),
	).Info("offer created")

	response.JSON(w, h.log, http.StatusCreated, convert.PickupOffer(*created))
}
