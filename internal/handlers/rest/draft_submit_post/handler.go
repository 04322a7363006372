package draft_submit_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/address"
	"marketplace/internal/service/composer"
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

// ServeHTTP отправляет черновик. Позиции берутся из хранилища черновика, в
// теле только забор, доставка, накладная и привязка к рейсу. Если заказ
// создан, а вложения не загрузились, ответ 201 с partial=true.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	var req dto.SubmitDraftRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, errors.New("invalid JSON body"))
		return
	}

	draft, err := toDraft(mux.Vars(r)["draft_id"], req)
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	submission, err := h.service.SubmitStaged(r.Context(), requesterID, draft)
	if err != nil {
		h.writeError(w, err)
		return
	}

	if submission.Partial() {
		h.log.With(
			logger.NewField("order_id", submission.OrderID),
			logger.NewField("warnings", len(submission.Warnings)),
		).Warn("order submitted with attachment failures")
	}

	response.JSON(w, h.log, http.StatusCreated, toSubmissionResponse(submission))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *composer.ValidationError
	if errors.As(err, &verr) {
		response.JSON(w, h.log, http.StatusBadRequest, toValidationResponse(verr))
		return
	}

	var status int
	switch {
	case errors.Is(err, composer.ErrValidation), errors.Is(err, address.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, composer.ErrTripNotFound),
		errors.Is(err, composer.ErrTripMismatch),
		errors.Is(err, composer.ErrTripUnavailable),
		errors.Is(err, composer.ErrRequesterNotFound),
		errors.Is(err, composer.ErrUnknownParticipant),
		errors.Is(err, composer.ErrProfileAddressMissing):
		status = http.StatusConflict
	case errors.Is(err, address.ErrLookupFailed), errors.Is(err, address.ErrGeocodeFailed):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, composer.ErrRemoteFailure):
		status = http.StatusBadGateway
	case errors.Is(err, draftitem.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	default:
		status = http.StatusInternalServerError
	}

	var serr *composer.SubmissionError
	if !errors.As(err, &serr) {
		response.Error(w, h.log, status, err)
		return
	}

	fields := []logger.Field{
		logger.NewField("step", serr.Step.String()),
		logger.NewField("order_created", serr.OrderCreated),
		logger.NewField("error", err),
	}
	if status >= http.StatusInternalServerError {
		h.log.With(fields...).Error("draft submission failed")
	} else {
		h.log.With(fields...).Warn("draft submission rejected")
	}
	response.JSON(w, h.log, status, toSubmissionErrorResponse(serr))
}
