package address

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("invalid address")

	ErrInvalidPostalCode = fmt.Errorf("%w: postal code must have 8 digits", ErrValidation)
	ErrEmptyAddress      = fmt.Errorf("%w: address text is empty", ErrValidation)

	ErrLookupFailed       = errors.New("postal code lookup failed")
	ErrPostalCodeNotFound = fmt.Errorf("%w: postal code not found", ErrLookupFailed)

	ErrGeocodeFailed = errors.New("geocode failed")
	ErrNoMatches     = fmt.Errorf("%w: no matches", ErrGeocodeFailed)
)
