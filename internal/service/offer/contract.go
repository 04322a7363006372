//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_test
package offer

import (
	"context"

	"marketplace/internal/entities"
)

// Repository - ставки курьеров. GetOffer возвращает в том числе удаленные
// (DeletedAt != nil) ставки.
type Repository interface {
	GetOffer(ctx context.Context, offerID int64) (*entities.PickupOffer, error)
	HasActiveOffer(ctx context.Context, orderID string, deliverymanID int64) (bool, error)
	CreateOffer(ctx context.Context, offer entities.NewPickupOffer) (*entities.PickupOffer, error)
	UpdateOfferValue(ctx context.Context, offerID int64, deliveryValue int64) (*entities.PickupOffer, error)
	SoftDeleteOffer(ctx context.Context, offerID int64) error
	ListActiveOffers(ctx context.Context, orderID string, deliverymanID *int64) ([]entities.PickupOffer, error)
}

// OrderRepository - LockOrder берет строку заказа под FOR UPDATE и должен
// вызываться внутри транзакции.
type OrderRepository interface {
	GetOrder(ctx context.Context, orderID string) (*entities.Order, error)
	LockOrder(ctx context.Context, orderID string) (*entities.Order, error)
	AssignDeliveryman(ctx context.Context, orderID string, deliverymanID int64, status entities.OrderStatus) error
}

type Outbox interface {
	Enqueue(ctx context.Context, task entities.OutboxTask) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
