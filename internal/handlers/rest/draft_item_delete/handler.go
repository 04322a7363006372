package draft_item_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/draftitem"
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

// ServeHTTP удаляет позицию; отсутствующая позиция тоже дает 204.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	ns := entities.DraftNamespace{RequesterID: requesterID, DraftID: vars["draft_id"]}

	err := h.service.Delete(r.Context(), ns, vars["local_id"])
	if err != nil {
		switch {
		case errors.Is(err, draftitem.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err)
		case errors.Is(err, draftitem.ErrStorageUnavailable):
			response.Error(w, h.log, http.StatusServiceUnavailable, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
