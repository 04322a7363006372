package draftitem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

// Store - хранилище позиций черновика. Источник правды для позиций, пока
// заказ не создан: in-memory список композитора можно в любой момент
// пересобрать из него.
type Store struct {
	storage KVStorage
}

func New(storage KVStorage) *Store {
	return &Store{
		storage: storage,
	}
}

// NewLocalID выдает идентификатор, упорядоченный по времени создания.
func NewLocalID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate local id: %w", err)
	}
	return id.String(), nil
}

func (s *Store) Save(ctx context.Context, ns entities.DraftNamespace, item entities.DraftItem) error {
	if err := validateNamespace(ns); err != nil {
		return err
	}
	if err := validateItem(item); err != nil {
		return err
	}

	value, err := json.Marshal(toRecord(item))
	if err != nil {
		return fmt.Errorf("marshal draft item: %w", err)
	}

	err = s.storage.Set(ctx, ns.ItemKey(item.LocalID), value)
	if err != nil {
		return fmt.Errorf("%w: set: %w", ErrStorageUnavailable, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, ns entities.DraftNamespace, localID string) (*entities.DraftItem, error) {
	if err := validateNamespace(ns); err != nil {
		return nil, err
	}
	if !isValidSegment(localID) {
		return nil, ErrInvalidLocalID
	}

	value, err := s.storage.Get(ctx, ns.ItemKey(localID))
	if err != nil {
		if errors.Is(err, ErrKeyNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("%w: get: %w", ErrStorageUnavailable, err)
	}

	item, err := decode(value)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) Delete(ctx context.Context, ns entities.DraftNamespace, localID string) error {
	if err := validateNamespace(ns); err != nil {
		return err
	}
	if !isValidSegment(localID) {
		return ErrInvalidLocalID
	}

	err := s.storage.Remove(ctx, ns.ItemKey(localID))
	if err != nil {
		return fmt.Errorf("%w: remove: %w", ErrStorageUnavailable, err)
	}
	return nil
}

// DeleteAll удаляет все позиции черновика и возвращает их количество.
func (s *Store) DeleteAll(ctx context.Context, ns entities.DraftNamespace) (int64, error) {
	if err := validateNamespace(ns); err != nil {
		return 0, err
	}

	removed, err := s.storage.RemoveByPrefix(ctx, ns.Prefix())
	if err != nil {
		return 0, fmt.Errorf("%w: remove by prefix: %w", ErrStorageUnavailable, err)
	}
	return removed, nil
}

// List возвращает позиции черновика в порядке создания (local id
// упорядочены по времени).
func (s *Store) List(ctx context.Context, ns entities.DraftNamespace) ([]entities.DraftItem, error) {
	if err := validateNamespace(ns); err != nil {
		return nil, err
	}

	values, err := s.storage.ScanPrefix(ctx, ns.Prefix())
	if err != nil {
		return nil, fmt.Errorf("%w: scan: %w", ErrStorageUnavailable, err)
	}

	items := make([]entities.DraftItem, 0, len(values))
	for _, value := range values {
		item, err := decode(value)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	slices.SortFunc(items, func(a, b entities.DraftItem) int {
		return strings.Compare(a.LocalID, b.LocalID)
	})
	return items, nil
}

func decode(value []byte) (entities.DraftItem, error) {
	var record itemRecord
	if err := json.Unmarshal(value, &record); err != nil {
		return entities.DraftItem{}, fmt.Errorf("%w: decode item: %w", ErrStorageUnavailable, err)
	}
	return toDomain(record), nil
}
