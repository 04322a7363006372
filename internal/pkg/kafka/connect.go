package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"marketplace/pkg/logger"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 1 * time.Second
	maxInterval     = 30 * time.Second
	maxElapsedTime  = 2 * time.Minute
	randomization   = 0.5
	multiplier      = 2
)

var errClientClosed = errors.New("kafka client closed")

// connect открывает клиента, повторяя попытки, пока брокеры не ответят на
// запрос метаданных.
func connect(ctx context.Context, log logger.Logger, brokers []string, cfg *sarama.Config) (sarama.Client, error) {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	}

	retrier := backoff_adapter.New(retryConfig)

	var (
		attempt uint64
		client  sarama.Client
	)
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("attempting Kafka connection")

		c, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		if _, err := c.Topics(); err != nil {
			if closeErr := c.Close(); closeErr != nil {
				log.Error("failed to close Kafka connection",
					logger.NewField("error", closeErr),
				)
			}
			return err
		}

		client = c
		return nil
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Kafka connection failed after retries")
		return nil, fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Kafka connection established")
	return client, nil
}

// pingClient обновляет метаданные топиков. Пустой topics - все топики
// кластера.
func pingClient(ctx context.Context, client sarama.Client, topics []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if client.Closed() {
		return errClientClosed
	}

	done := make(chan error, 1)
	go func() {
		done <- client.RefreshMetadata(topics...)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
