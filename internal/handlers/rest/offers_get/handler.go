package offers_get

import (
	"errors"
	"net/http"

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
	callerID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	offers, err := h.service.ListOffers(r.Context(), callerID, mux.Vars(r)["order_id"])
	if err != nil {
		switch {
		case errors.Is(err, offer.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, offer.ErrOrderNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, offer.ErrRemoteFailure):
			response.Error(w, h.log, http.StatusBadGateway, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.OfferList{Offers: convert.PickupOffers(offers)})
}
