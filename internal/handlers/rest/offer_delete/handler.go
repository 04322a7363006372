package offer_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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

// ServeHTTP отзывает ставку. Повторный отзыв уже отозванной ставки тоже 204.
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

	err = h.service.DeleteOffer(r.Context(), deliverymanID, offerID)
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

	h.log.With(
		logger.NewField("offer_id", offerID),
		logger.NewField("deliveryman_id", deliverymanID),
	).Info("offer withdrawn")

	w.WriteHeader(http.StatusNoContent)
}
