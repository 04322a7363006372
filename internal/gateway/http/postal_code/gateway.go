package postal_code

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/gateway/http/httpjson"
	"marketplace/internal/service/address"
)

const serviceName = "viacep"

type PostalCodeGateway struct {
	client  client
	baseURL string
}

func New(baseURL string, timeout time.Duration) *PostalCodeGateway {
	return NewWithClient(httpjson.New(serviceName, timeout, nil), baseURL)
}

func NewWithClient(client client, baseURL string) *PostalCodeGateway {
	return &PostalCodeGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Lookup: GET {base}/{cep}/json/
func (g *PostalCodeGateway) Lookup(ctx context.Context, postalCode string) (*entities.StructuredAddress, error) {
	endpoint := fmt.Sprintf("%s/%s/json/", g.baseURL, url.PathEscape(postalCode))

	var resp viaCEPResponse
	err := g.client.GetJSON(ctx, "Lookup", endpoint, &resp)
	if err != nil {
		var statusErr *httpjson.StatusError
		if errors.As(err, &statusErr) && statusErr.Code == http.StatusNotFound {
			return nil, address.ErrPostalCodeNotFound
		}
		return nil, fmt.Errorf("gateway postal code, lookup %s: %w", postalCode, err)
	}

	if resp.notFound() {
		return nil, address.ErrPostalCodeNotFound
	}

	return &entities.StructuredAddress{
		PostalCode:   postalCode,
		Street:       resp.Street,
		Neighborhood: resp.Neighborhood,
		City:         resp.City,
		State:        resp.State,
	}, nil
}
