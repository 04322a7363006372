//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=composer_test
package composer

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type DraftStore interface {
	Load(ctx context.Context, ns entities.DraftNamespace, localID string) (*entities.DraftItem, error)
	List(ctx context.Context, ns entities.DraftNamespace) ([]entities.DraftItem, error)
	Delete(ctx context.Context, ns entities.DraftNamespace, localID string) error
}

type AddressResolver interface {
	ResolveByPostalCode(ctx context.Context, code string) (*entities.StructuredAddress, error)
	Geocode(ctx context.Context, text string) (*entities.Coordinates, error)
}

// OrderAPI - удаленная сторона, на которой создается заказ. CreateOrder
// возвращает идентификаторы позиций в порядке их передачи.
type OrderAPI interface {
	CreateOrder(ctx context.Context, order entities.NewOrder) (*entities.CreatedOrder, error)
	UploadInvoice(ctx context.Context, orderID string, fileRef string) error
	UploadItemImage(ctx context.Context, orderID string, itemID int64, fileRef string) error
}

type UserRepository interface {
	GetProfile(ctx context.Context, userID int64) (*entities.UserProfile, error)
}

type TripGateway interface {
	GetTrip(ctx context.Context, tripID string) (*entities.Trip, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
