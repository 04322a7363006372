//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=draftitem_test
package draftitem

import (
	"context"
)

// KVStorage - строковое key-value хранилище. Get возвращает ErrKeyNotFound,
// если ключа нет; Remove по отсутствующему ключу не ошибка.
type KVStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
	RemoveByPrefix(ctx context.Context, prefix string) (int64, error)
	ScanPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
