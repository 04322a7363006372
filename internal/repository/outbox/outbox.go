package outbox

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Enqueue сохраняет задачу в той же транзакции, что и бизнес-изменение.
func (r *Repository) Enqueue(ctx context.Context, task entities.OutboxTask) error {
	if task.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("unexpected outbox repository generate id error: %w", err)
		}
		task.ID = id
	}

	query := `
		INSERT INTO outbox_tasks (id, topic, key, payload, status)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(ctx, query, task.ID, task.Topic, task.Key, task.Payload, string(entities.OutboxCreated))
	if err != nil {
		return fmt.Errorf("unexpected outbox repository enqueue error: %w", err)
	}
	return nil
}

// ClaimPending блокирует до limit неотправленных задач (SKIP LOCKED), чтобы
// несколько экземпляров relay не публиковали одно и то же. Вызывать внутри
// транзакции.
func (r *Repository) ClaimPending(ctx context.Context, limit int, maxAttempts int) ([]entities.OutboxTask, error) {
	query := `
		SELECT id, topic, key, payload, status, attempts, last_error, created_at
		FROM outbox_tasks
		WHERE status IN ('created', 'failed') AND attempts < $2
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`

	rows, err := r.querier.Query(ctx, query, limit, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim error: %w", err)
	}
	defer rows.Close()

	tasks := make([]entities.OutboxTask, 0, limit)
	for rows.Next() {
		var t OutboxTaskDB
		err := rows.Scan(
			&t.ID,
			&t.Topic,
			&t.Key,
			&t.Payload,
			&t.Status,
			&t.Attempts,
			&t.LastError,
			&t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository claim scan error: %w", err)
		}
		tasks = append(tasks, *ToDomain(&t))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository claim rows error: %w", err)
	}
	return tasks, nil
}

func (r *Repository) MarkDone(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE outbox_tasks
		SET status = 'done', attempts = attempts + 1, last_error = NULL, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark done error: %w", err)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	query := `
		UPDATE outbox_tasks
		SET status = 'failed', attempts = attempts + 1, last_error = $2, updated_at = NOW()
		WHERE id = $1
	`

	_, err := r.querier.Exec(ctx, query, id, reason)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark failed error: %w", err)
	}
	return nil
}
