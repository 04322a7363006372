package composer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrValidation           = errors.New("order draft is invalid")
	ErrNotAlternateDelivery = fmt.Errorf("%w: delivery mode is not alternate address", ErrValidation)

	ErrTripNotFound    = errors.New("trip not found")
	ErrTripMismatch    = errors.New("trip belongs to another deliveryman")
	ErrTripUnavailable = errors.New("trip is not accepting orders")

	ErrRequesterNotFound     = errors.New("requester not found")
	ErrUnknownParticipant    = errors.New("requester or deliveryman does not exist")
	ErrProfileAddressMissing = errors.New("requester profile has no address")
	ErrRemoteFailure         = errors.New("remote call failed")
)

// Blocking - причина, по которой черновик нельзя отправить, не привязанная к
// конкретному полю формы.
type Blocking string

const (
	BlockingNoItems            Blocking = "items"
	BlockingNoInvoice          Blocking = "invoice"
	BlockingPickupUnresolved   Blocking = "pickup_postal_code_unresolved"
	BlockingDeliveryUnresolved Blocking = "delivery_postal_code_unresolved"
)

// ValidationError собирает все найденные проблемы черновика сразу, чтобы
// форма могла подсветить их одновременно.
type ValidationError struct {
	Fields   map[string]string
	Blocking []Blocking
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields)+len(e.Blocking))

	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		parts = append(parts, field+": "+e.Fields[field])
	}
	for _, b := range e.Blocking {
		parts = append(parts, string(b))
	}

	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func (e *ValidationError) empty() bool {
	return len(e.Fields) == 0 && len(e.Blocking) == 0
}

func (e *ValidationError) field(name, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[name] = msg
}

type Step string

const (
	StepTrip            Step = "trip"
	StepGeocodePickup   Step = "geocode_pickup"
	StepDeliveryAddress Step = "delivery_address"
	StepCreateOrder     Step = "create_order"
	StepUploadInvoice   Step = "upload_invoice"
	StepUploadImage     Step = "upload_image"
	StepCleanup         Step = "cleanup"
)

func (s Step) String() string {
	return string(s)
}

// SubmissionError - отправка прервана на шаге Step. OrderCreated сообщает,
// успел ли заказ появиться на удаленной стороне.
type SubmissionError struct {
	Step         Step
	OrderCreated bool
	OrderID      string
	Err          error
}

func (e *SubmissionError) Error() string {
	if e.OrderCreated {
		return fmt.Sprintf("submit draft: %s (order %s created): %v", e.Step, e.OrderID, e.Err)
	}
	return fmt.Sprintf("submit draft: %s: %v", e.Step, e.Err)
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}

// Warning - неудачная загрузка вложения после того, как заказ уже создан.
type Warning struct {
	Step        Step
	ItemLocalID string
	ItemID      int64
	Err         error
}

func (w Warning) Error() string {
	if w.Step == StepUploadImage {
		return fmt.Sprintf("%s: item %d (%s): %v", w.Step, w.ItemID, w.ItemLocalID, w.Err)
	}
	return fmt.Sprintf("%s: %v", w.Step, w.Err)
}

func (w Warning) Unwrap() error {
	return w.Err
}
