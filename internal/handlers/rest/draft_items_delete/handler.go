package draft_items_delete

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/draftitem"
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

// ServeHTTP очищает все позиции черновика, например перед началом нового
// заказа, чтобы старые позиции не попали в него.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	ns := entities.DraftNamespace{RequesterID: requesterID, DraftID: mux.Vars(r)["draft_id"]}

	deleted, err := h.service.DeleteAll(r.Context(), ns)
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

	h.log.With(
		logger.NewField("requester_id", requesterID),
		logger.NewField("draft_id", ns.DraftID),
		logger.NewField("deleted", deleted),
	).Info("draft items cleared")

	response.JSON(w, h.log, http.StatusOK, dto.DraftItemsDeleted{Deleted: deleted})
}
