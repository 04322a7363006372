package geocoding

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/gateway/http/httpjson"
	"marketplace/internal/service/address"
)

const serviceName = "nominatim"

type GeocodingGateway struct {
	client  client
	baseURL string
}

// New: Nominatim требует идентифицирующий User-Agent.
func New(baseURL string, timeout time.Duration, userAgent string) *GeocodingGateway {
	headers := http.Header{}
	headers.Set("User-Agent", userAgent)
	return NewWithClient(httpjson.New(serviceName, timeout, headers), baseURL)
}

func NewWithClient(client client, baseURL string) *GeocodingGateway {
	return &GeocodingGateway{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Search: GET {base}/search?q=...&format=json&limit=1
func (g *GeocodingGateway) Search(ctx context.Context, query string) (*entities.Coordinates, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")
	endpoint := g.baseURL + "/search?" + params.Encode()

	var places []nominatimPlace
	err := g.client.GetJSON(ctx, "Search", endpoint, &places)
	if err != nil {
		return nil, fmt.Errorf("gateway geocoding, search: %w", err)
	}
	if len(places) == 0 {
		return nil, address.ErrNoMatches
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("gateway geocoding, parse latitude %q: %w", places[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("gateway geocoding, parse longitude %q: %w", places[0].Lon, err)
	}

	return &entities.Coordinates{Latitude: lat, Longitude: lon}, nil
}
