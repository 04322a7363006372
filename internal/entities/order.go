package entities

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidTransition = errors.New("invalid order status transition")

type OrderStatus string

const (
	OrderOpen                OrderStatus = "open"
	OrderInProgress          OrderStatus = "in_progress"
	OrderDelivered           OrderStatus = "delivered"
	OrderCanceled            OrderStatus = "canceled"
	OrderRemoved             OrderStatus = "removed"
	OrderPendingTripApproval OrderStatus = "pending_trip_approval"
	OrderApproved            OrderStatus = "approved"
	OrderRefused             OrderStatus = "refused"
)

// orderTransitions - единственное место, где описан жизненный цикл заказа:
//
//	open ──> in_progress ──> delivered
//	open ──> canceled | removed
//	pending_trip_approval ──> approved ──> in_progress
//	pending_trip_approval ──> refused
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderOpen:                {OrderInProgress, OrderCanceled, OrderRemoved},
	OrderInProgress:          {OrderDelivered},
	OrderPendingTripApproval: {OrderApproved, OrderRefused},
	OrderApproved:            {OrderInProgress},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderOpen, OrderInProgress, OrderDelivered, OrderCanceled, OrderRemoved,
		OrderPendingTripApproval, OrderApproved, OrderRefused:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s.IsValid() && len(orderTransitions[s]) == 0
}

// AcceptsOffers - офферы можно создавать, менять и удалять только у открытого заказа.
func (s OrderStatus) AcceptsOffers() bool {
	return s == OrderOpen
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s OrderStatus) Transition(next OrderStatus) (OrderStatus, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s, next)
	}
	return next, nil
}

// DeliveryMode - либо SelfAddress (адрес из профиля заказчика), либо
// AlternateAddress. Других реализаций нет.
type DeliveryMode interface {
	deliveryMode()
}

type SelfAddress struct{}

type AlternateAddress struct {
	Address AddressComponents
}

func (SelfAddress) deliveryMode()      {}
func (AlternateAddress) deliveryMode() {}

type TripBinding struct {
	DeliverymanID int64
	TripID        string
}

type PickupInfo struct {
	Date          time.Time
	Establishment string
	Address       AddressComponents
}

// OrderDraft - заказ в процессе составления.
type OrderDraft struct {
	ID          string
	RequesterID int64
	Pickup      PickupInfo
	Delivery    DeliveryMode
	Items       []DraftItem
	InvoiceFile string
	TripBinding *TripBinding
}

func (d OrderDraft) Namespace() DraftNamespace {
	return DraftNamespace{RequesterID: d.RequesterID, DraftID: d.ID}
}

type OrderItem struct {
	ID              int64
	Name            string
	Description     string
	Quantity        int
	Weight          float64
	Width           float64
	Height          float64
	Depth           float64
	Packing         string
	CategoryID      int64
	WeightUnitID    int64
	DimensionUnitID int64
}

// NewOrder - данные для создания заказа. Позиции передаются без ссылок на
// локальные изображения, только структурные поля.
type NewOrder struct {
	RequesterID         int64
	Status              OrderStatus
	DeliverymanID       *int64
	TripID              *string
	PickupDate          time.Time
	PickupEstablishment string
	Pickup              Location
	Delivery            Location
	Items               []OrderItem
}

// CreatedOrder - ответ на создание: ItemIDs в том же порядке, в котором
// позиции были отправлены.
type CreatedOrder struct {
	ID      string
	Status  OrderStatus
	ItemIDs []int64
}

type Order struct {
	ID                  string
	RequesterID         int64
	Status              OrderStatus
	DeliverymanID       *int64
	TripID              *string
	PickupDate          time.Time
	PickupEstablishment string
	Pickup              Location
	Delivery            Location
	Items               []OrderItem
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type OrderFilter struct {
	Status        *OrderStatus
	RequesterID   *int64
	DeliverymanID *int64
	Limit         uint64
	Offset        uint64
}

type AttachmentKind string

const (
	AttachmentInvoice   AttachmentKind = "invoice"
	AttachmentItemImage AttachmentKind = "item_image"
)

func (k AttachmentKind) String() string {
	return string(k)
}
