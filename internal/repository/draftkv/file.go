package draftkv

import (
	"context"
	"errors"

	"marketplace/internal/service/draftitem"
	"marketplace/pkg/filekv"
)

// File адаптирует pkg/filekv к контракту хранилища черновиков.
type File struct {
	store FileStore
}

func NewFile(store FileStore) *File {
	return &File{
		store: store,
	}
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := f.store.Get(ctx, key)
	if errors.Is(err, filekv.ErrKeyNotFound) {
		return nil, draftitem.ErrKeyNotFound
	}
	return value, err
}

func (f *File) Set(ctx context.Context, key string, value []byte) error {
	return f.store.Set(ctx, key, value)
}

func (f *File) Remove(ctx context.Context, key string) error {
	return f.store.Remove(ctx, key)
}

func (f *File) RemoveByPrefix(ctx context.Context, prefix string) (int64, error) {
	return f.store.RemoveByPrefix(ctx, prefix)
}

func (f *File) ScanPrefix(ctx context.Context, prefix string) ([][]byte, error) {
	return f.store.ScanPrefix(ctx, prefix)
}
