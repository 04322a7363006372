package offer_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/offer"
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
	deliverymanID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	offerID, err := strconv.ParseInt(mux.Vars(r)["offer_id"], 10, 64)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, offer.ErrInvalidOfferID)
		return
	}

	var req dto.OfferValueRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	updated, err := h.service.UpdateOffer(r.Context(), deliverymanID, offerID, req.DeliveryValue)
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, offer.ErrForbidden):
			response.Error(w, h.log, http.StatusForbidden, err)
		case errors.Is(err, offer.ErrOfferNotFound), errors.Is(err, offer.ErrOrderNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, offer.ErrInvalidOrderState):
			response.Error(w, h.log, http.StatusConflict, err)
		case errors.Is(err, offer.ErrRemoteFailure):
			response.Error(w, h.log, http.StatusBadGateway, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.PickupOffer(*updated))
}
