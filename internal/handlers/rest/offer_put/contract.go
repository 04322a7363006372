//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_put_test
package offer_put

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

type Service interface {
	UpdateOffer(ctx context.Context, deliverymanID int64, offerID int64, value int64) (*entities.PickupOffer, error)
}
