package address_get

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/address"
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
	resolved, err := h.service.ResolveByPostalCode(r.Context(), mux.Vars(r)["postal_code"])
	if err != nil {
		switch {
		case errors.Is(err, address.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, address.ErrPostalCodeNotFound):
			response.Error(w, h.log, http.StatusNotFound, err)
		case errors.Is(err, address.ErrLookupFailed):
			response.Error(w, h.log, http.StatusUnprocessableEntity, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, convert.StructuredAddress(*resolved))
}
