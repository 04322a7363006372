package order

import (
	"errors"
	"fmt"
)

var (
	ErrValidation      = errors.New("invalid order request")
	ErrInvalidOrderID  = fmt.Errorf("%w: order id is required", ErrValidation)
	ErrInvalidCaller   = fmt.Errorf("%w: caller id must be positive", ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("%w: unknown order status", ErrValidation)
	ErrInvalidScope    = fmt.Errorf("%w: unknown list scope", ErrValidation)
	ErrStatusMismatch  = errors.New("event status is not reachable from current order status")
	ErrUndefinedStatus = errors.New("undefined order status")

	ErrInvalidOrderState = errors.New("order status does not allow this operation")
	ErrForbidden         = errors.New("forbidden")
	ErrOrderNotFound     = errors.New("order not found")
)
