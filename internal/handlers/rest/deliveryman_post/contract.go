//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryman_post_test
package deliveryman_post

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
	SelectDeliveryman(ctx context.Context, requesterID int64, orderID string, deliverymanID int64) (*entities.DeliverymanSelection, error)
}
