package offer

import (
	"errors"
	"fmt"

	"marketplace/internal/service/order"
)

var (
	ErrValidation = errors.New("invalid offer request")

	ErrInvalidOfferValue    = fmt.Errorf("%w: delivery value must be positive", ErrValidation)
	ErrInvalidOrderID       = fmt.Errorf("%w: order id is required", ErrValidation)
	ErrInvalidOfferID       = fmt.Errorf("%w: offer id must be positive", ErrValidation)
	ErrInvalidDeliverymanID = fmt.Errorf("%w: deliveryman id must be positive", ErrValidation)
	ErrInvalidCaller        = fmt.Errorf("%w: caller id must be positive", ErrValidation)

	ErrInvalidOrderState      = errors.New("order is not open")
	ErrDuplicateOffer         = errors.New("deliveryman already has an offer on this order")
	ErrForbidden              = errors.New("forbidden")
	ErrNoOfferFromDeliveryman = errors.New("deliveryman has no offer on this order")

	ErrOfferNotFound = errors.New("offer not found")
	ErrOrderNotFound = order.ErrOrderNotFound

	ErrRemoteFailure = errors.New("remote call failed")
)

var known = []error{
	ErrValidation,
	ErrInvalidOrderState,
	ErrDuplicateOffer,
	ErrForbidden,
	ErrNoOfferFromDeliveryman,
	ErrOfferNotFound,
	ErrOrderNotFound,
}

// classify оставляет ошибки бизнес-правил как есть, все прочее (сеть,
// база, конфликт сериализации) помечает ErrRemoteFailure, чтобы вызывающий
// мог предложить повтор без повторной валидации.
func classify(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	return fmt.Errorf("%w: %w", ErrRemoteFailure, err)
}
