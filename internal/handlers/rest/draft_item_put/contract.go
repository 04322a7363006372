//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_item_put_test
package draft_item_put

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
	Save(ctx context.Context, ns entities.DraftNamespace, item entities.DraftItem) error
}
