package orders_get

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"marketplace/internal/entities"
	"marketplace/internal/generated/dto"
	"marketplace/internal/handlers/rest/convert"
	"marketplace/internal/handlers/rest/response"
	"marketplace/internal/service/order"
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

// ServeHTTP: ?scope=open|requested|assigned, ?status, ?limit, ?offset.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	callerID, ok := response.Caller(w, r, h.log)
	if !ok {
		return
	}

	query, err := parseQuery(r.URL.Query())
	if err != nil {
		response.Error(w, h.log, http.StatusBadRequest, err)
		return
	}

	orders, err := h.service.ListOrders(r.Context(), callerID, query)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrValidation):
			response.Error(w, h.log, http.StatusBadRequest, err)
		default:
			response.Error(w, h.log, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, h.log, http.StatusOK, dto.OrderList{Orders: convert.Orders(orders)})
}

func parseQuery(values url.Values) (order.ListQuery, error) {
	query := order.ListQuery{Scope: order.Scope(values.Get("scope"))}

	if raw := values.Get("status"); raw != "" {
		status := entities.OrderStatus(raw)
		query.Status = &status
	}

	var err error
	query.Limit, err = parseUint(values, "limit")
	if err != nil {
		return order.ListQuery{}, err
	}
	query.Offset, err = parseUint(values, "offset")
	if err != nil {
		return order.ListQuery{}, err
	}
	return query, nil
}

func parseUint(values url.Values, name string) (uint64, error) {
	raw := values.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a non-negative integer", name)
	}
	return v, nil
}
