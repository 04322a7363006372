package draftkv

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/service/draftitem"
)

// Repository - key-value хранилище черновиков поверх таблицы draft_kv.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM draft_kv WHERE key = $1`

	var value []byte
	err := r.querier.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, draftitem.ErrKeyNotFound
		}
		return nil, fmt.Errorf("unexpected draft kv repository get error: %w", err)
	}
	return value, nil
}

func (r *Repository) Set(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO draft_kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	_, err := r.querier.Exec(ctx, query, key, value)
	if err != nil {
		return fmt.Errorf("unexpected draft kv repository set error: %w", err)
	}
	return nil
}

func (r *Repository) Remove(ctx context.Context, key string) error {
	_, err := r.querier.Exec(ctx, `DELETE FROM draft_kv WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("unexpected draft kv repository remove error: %w", err)
	}
	return nil
}

func (r *Repository) RemoveByPrefix(ctx context.Context, prefix string) (int64, error) {
	query := `DELETE FROM draft_kv WHERE key LIKE $1 ESCAPE '\'`

	result, err := r.querier.Exec(ctx, query, likePrefix(prefix))
	if err != nil {
		return 0, fmt.Errorf("unexpected draft kv repository remove by prefix error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) ScanPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	query := `SELECT value FROM draft_kv WHERE key LIKE $1 ESCAPE '\' ORDER BY key`

	rows, err := r.querier.Query(ctx, query, likePrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("unexpected draft kv repository scan error: %w", err)
	}
	defer rows.Close()

	values := make([][]byte, 0)
	for rows.Next() {
		var value []byte
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("unexpected draft kv repository scan error: %w", err)
		}
		values = append(values, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected draft kv repository scan rows error: %w", err)
	}
	return values, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePrefix(prefix string) string {
	return likeEscaper.Replace(prefix) + "%"
}
