//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_items_delete_test
package draft_items_delete

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
	DeleteAll(ctx context.Context, ns entities.DraftNamespace) (int64, error)
}
