//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draft_submit_post_test
package draft_submit_post

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/service/composer"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SubmitStaged(ctx context.Context, requesterID int64, draft entities.OrderDraft) (*composer.Submission, error)
}
