//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=address_test
package address

import (
	"context"

	"marketplace/internal/entities"
)

// PostalCodeGateway возвращает ErrPostalCodeNotFound, если сервис явно
// сообщил, что индекса нет.
type PostalCodeGateway interface {
	Lookup(ctx context.Context, postalCode string) (*entities.StructuredAddress, error)
}

// GeocodingGateway возвращает ErrNoMatches, если по запросу ничего не нашлось.
type GeocodingGateway interface {
	Search(ctx context.Context, query string) (*entities.Coordinates, error)
}
