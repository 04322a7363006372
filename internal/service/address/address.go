package address

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

// Resolver превращает CEP в структурированный адрес, а текст адреса в
// координаты. Ничего не кэширует.
type Resolver struct {
	postalCodes PostalCodeGateway
	geocoder    GeocodingGateway
}

func New(postalCodes PostalCodeGateway, geocoder GeocodingGateway) *Resolver {
	return &Resolver{
		postalCodes: postalCodes,
		geocoder:    geocoder,
	}
}

func (r *Resolver) ResolveByPostalCode(ctx context.Context, code string) (*entities.StructuredAddress, error) {
	normalized, err := NormalizePostalCode(code)
	if err != nil {
		return nil, err
	}

	structured, err := r.postalCodes.Lookup(ctx, normalized)
	if err != nil {
		if errors.Is(err, ErrLookupFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrLookupFailed, normalized, err)
	}
	if structured == nil {
		return nil, ErrPostalCodeNotFound
	}

	structured.PostalCode = normalized
	return structured, nil
}

func (r *Resolver) Geocode(ctx context.Context, text string) (*entities.Coordinates, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyAddress
	}

	coordinates, err := r.geocoder.Search(ctx, text)
	if err != nil {
		if errors.Is(err, ErrGeocodeFailed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}
	if coordinates == nil {
		return nil, ErrNoMatches
	}
	return coordinates, nil
}

// FormatAddress собирает строку для геокодера:
// "Av. Paulista 1000 apto 12, Bela Vista, São Paulo, SP, 01310100".
func FormatAddress(c entities.AddressComponents) string {
	street := joinNonEmpty(" ", c.Street, c.Number, c.Complement)
	return joinNonEmpty(", ", street, c.Neighborhood, c.City, c.State, c.PostalCode)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
