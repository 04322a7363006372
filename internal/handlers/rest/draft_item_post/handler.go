package draft_item_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
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

// ServeHTTP сохраняет новую позицию, выдавая ей local id.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	var input dto.DraftItemInput
	err := json.NewDecoder(r.Body).Decode(&input)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	localID, err := draftitem.NewLocalID()
	if err != nil {
		response.Error(w, h.log, http.StatusInternalServerError, err)
		return
	}

	ns := entities.DraftNamespace{RequesterID: requesterID, DraftID: mux.Vars(r)["draft_id"]}
	item := convert.DraftItemFromInput(localID, input)

	err = h.service.Save(r.Context(), ns, item)
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

	w.Header().Set("Location", r.URL.Path+"/"+localID)
	response.JSON(w, h.log, http.StatusCreated, convert.DraftItem(item))
}
