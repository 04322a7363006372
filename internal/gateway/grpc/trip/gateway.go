package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"marketplace/internal/entities"
	"marketplace/internal/gateway/metrics"
	"marketplace/internal/service/composer"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName   = "trip-service"
	getTripMethod = "/trips.v1.TripService/GetTrip"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type TripGateway struct {
	client  client
	retrier retrierconfig.Retrier
}

func New(client client) *TripGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &TripGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *TripGateway) GetTrip(ctx context.Context, tripID string) (*entities.Trip, error) {
	req, err := toRequest(tripID)
	if err != nil {
		return nil, fmt.Errorf("gateway trip, build request: %w", err)
	}

	resp := &structpb.Struct{}
	err = g.executeWithMetrics(ctx, "GetTrip", func(ctx context.Context) error {
		return g.client.Invoke(ctx, getTripMethod, req, resp)
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, composer.ErrTripNotFound
		}
		return nil, fmt.Errorf("gateway trip, get trip: %s: %w", tripID, err)
	}

	trip, err := toDomain(resp)
	if err != nil {
		return nil, fmt.Errorf("gateway trip, decode trip %s: %w", tripID, err)
	}
	if trip == nil {
		return nil, composer.ErrTripNotFound
	}
	return trip, nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// executeWithMetrics: latency metric -> attempts metric -> retrier -> gateway
func (g *TripGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	metrics.Observe(serviceName, method, getGRPCCode(err), start, attempt)
	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return codes.DeadlineExceeded.String()
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
