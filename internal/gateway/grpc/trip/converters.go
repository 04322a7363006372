package trip

import (
	"fmt"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
	"marketplace/internal/entities"
)

func toRequest(tripID string) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id": tripID,
	})
}

func toDomain(resp *structpb.Struct) (*entities.Trip, error) {
	if resp == nil {
		return nil, nil
	}
	fields := resp.GetFields()
	if len(fields) == 0 {
		return nil, nil
	}

	trip := &entities.Trip{
		ID:            fields["id"].GetStringValue(),
		DeliverymanID: int64(fields["deliveryman_id"].GetNumberValue()),
		Status:        entities.TripStatus(fields["status"].GetStringValue()),
		Origin:        fields["origin"].GetStringValue(),
		Destination:   fields["destination"].GetStringValue(),
	}

	if departure := fields["departure_at"].GetStringValue(); departure != "" {
		departureAt, err := time.Parse(time.RFC3339, departure)
		if err != nil {
			return nil, fmt.Errorf("parse departure_at %q: %w", departure, err)
		}
		trip.DepartureAt = departureAt
	}

	return trip, nil
}
