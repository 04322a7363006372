//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=offer_delete_test
package offer_delete

import (
	"context"

	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	DeleteOffer(ctx context.Context, deliverymanID int64, offerID int64) error
}
