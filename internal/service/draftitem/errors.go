package draftitem

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid draft item")

	ErrInvalidNamespace  = fmt.Errorf("%w: requester and draft id are required", ErrValidation)
	ErrInvalidLocalID    = fmt.Errorf("%w: local id", ErrValidation)
	ErrInvalidName       = fmt.Errorf("%w: name is required", ErrValidation)
	ErrInvalidQuantity   = fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	ErrInvalidWeight     = fmt.Errorf("%w: weight must be positive", ErrValidation)
	ErrInvalidDimensions = fmt.Errorf("%w: width, height and depth must be positive", ErrValidation)

	ErrItemNotFound       = errors.New("draft item not found")
	ErrStorageUnavailable = errors.New("draft storage unavailable")

	// ErrKeyNotFound возвращают реализации KVStorage.
	ErrKeyNotFound = errors.New("key not found")
)
