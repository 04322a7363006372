package tx

import (
	"context"
	"errors"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/avito-tech/go-transaction-manager/trm/manager"
	"github.com/avito-tech/go-transaction-manager/trm/settings"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html#40001
const (
	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
)

const (
	serializableRetries  = 3
	serializableInterval = 20 * time.Millisecond
	serializableMaxWait  = 200 * time.Millisecond
)

// Manager открывает транзакции pgx через go-transaction-manager. Транзакция
// кладется в контекст и подхватывается querier.Querier.
type Manager struct {
	internal *manager.Manager
	retrier  retrier.Retrier
}

func New(db pgxv5.Transactional) *Manager {
	return &Manager{
		internal: manager.Must(pgxv5.NewDefaultFactory(db)),
		retrier: backoff_adapter.New(retrier.Config{
			InitialInterval: serializableInterval,
			MaxInterval:     serializableMaxWait,
			MaxElapsedTime:  time.Second,
			Randomization:   0.5,
			Multiplier:      2,
			MaxRetries:      serializableRetries,
			ShouldRetry:     IsSerializationFailure,
		}),
	}
}

// Do выполняет fn в Serializable транзакции. Это точка сериализации для
// выбора курьера и мутаций офферов; при конфликте сериализации транзакция
// повторяется целиком, поэтому fn не должна иметь внешних побочных эффектов.
func (m *Manager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		return m.do(ctx, pgx.Serializable, fn)
	})
}

// DoReadCommitted используется там, где достаточно построчных блокировок
// (outbox relay с FOR UPDATE SKIP LOCKED).
func (m *Manager) DoReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.do(ctx, pgx.ReadCommitted, fn)
}

func (m *Manager) do(ctx context.Context, level pgx.TxIsoLevel, fn func(ctx context.Context) error) error {
	txSettings := pgxv5.MustSettings(
		settings.Must(),
		pgxv5.WithTxOptions(pgx.TxOptions{IsoLevel: level}),
	)
	return m.internal.DoWithSettings(ctx, txSettings, fn)
}

// IsSerializationFailure сообщает, что транзакцию откатил Postgres из-за
// конфликта сериализации или дедлока и ее можно повторить.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgErrSerializationFailure || pgErr.Code == pgErrDeadlockDetected
}
