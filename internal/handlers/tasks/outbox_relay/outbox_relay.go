package outbox_relay

import (
	"context"
	"fmt"
	"time"

	"marketplace/pkg/logger"
)

type OutboxRelay struct {
	log         handlerLogger
	outbox      Outbox
	publisher   Publisher
	txManager   TxManager
	interval    time.Duration
	batchSize   int
	maxAttempts int
}

func NewOutboxRelay(
	log handlerLogger,
	outbox Outbox,
	publisher Publisher,
	txManager TxManager,
	interval time.Duration,
	batchSize int,
	maxAttempts int,
) *OutboxRelay {
	return &OutboxRelay{
		log:         log.With(logger.NewField("task", "outbox relay")),
		outbox:      outbox,
		publisher:   publisher,
		txManager:   txManager,
		interval:    interval,
		batchSize:   batchSize,
		maxAttempts: maxAttempts,
	}
}

func (r *OutboxRelay) TTL() time.Duration {
	return r.interval
}

// Do публикует одну пачку задач. Ошибка публикации не прерывает пачку:
// задача помечается failed и будет выбрана снова, пока не кончатся попытки.
func (r *OutboxRelay) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	var published, failed int
	err := r.txManager.DoReadCommitted(ctxWithTimeout, func(ctx context.Context) error {
		tasks, err := r.outbox.ClaimPending(ctx, r.batchSize, r.maxAttempts)
		if err != nil {
			return fmt.Errorf("claim outbox tasks: %w", err)
		}

		for _, task := range tasks {
			publishErr := r.publisher.Publish(ctx, task.Topic, task.Key, task.Payload)
			if publishErr != nil {
				failed++
				OutboxRelayMessagesTotal.WithLabelValues(task.Topic, "failed").Inc()
				r.log.With(
					logger.NewField("outbox_id", task.ID.String()),
					logger.NewField("topic", task.Topic),
					logger.NewField("attempt", task.Attempts+1),
					logger.NewField("error", publishErr),
				).Warn("outbox task publish failed")

				if err := r.outbox.MarkFailed(ctx, task.ID, publishErr.Error()); err != nil {
					return fmt.Errorf("mark outbox task %s failed: %w", task.ID, err)
				}
				continue
			}

			published++
			OutboxRelayMessagesTotal.WithLabelValues(task.Topic, "published").Inc()
			if err := r.outbox.MarkDone(ctx, task.ID); err != nil {
				return fmt.Errorf("mark outbox task %s done: %w", task.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	if published > 0 || failed > 0 {
		r.log.With(
			logger.NewField("published", published),
			logger.NewField("failed", failed),
		).Info("outbox relay")
	}
	return nil
}

func (r *OutboxRelay) Info() string {
	return "outbox relay"
}
