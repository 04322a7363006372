package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/config"
	"marketplace/pkg/logger"
)

type Producer struct {
	log      logger.Logger
	client   sarama.Client
	producer sarama.SyncProducer
}

func NewSaramaProducerConfig(versionStr string) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	// SyncProducer требует Return.Successes
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	cfg.Producer.Retry.Max = 3

	return cfg, nil
}

// NewProducer подключается к брокерам из cfg; Ping проверяет тот же клиент,
// через который идет отправка.
func NewProducer(ctx context.Context, log logger.Logger, cfg *config.Kafka) (*Producer, error) {
	saramaConfig, err := NewSaramaProducerConfig(cfg.Sarama.Version)
	if err != nil {
		return nil, fmt.Errorf("build sarama producer config: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
	)

	client, err := connect(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	producer, err := sarama.NewSyncProducerFromClient(client)
	if err != nil {
		if closeErr := client.Close(); closeErr != nil {
			return nil, fmt.Errorf("create sync producer: %w (failed to close client: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("create sync producer: %w", err)
	}

	p := NewProducerFrom(kafkaLog, producer)
	p.client = client
	return p, nil
}

// NewProducerFrom оборачивает готовый SyncProducer. У такого продюсера нет
// клиента, и Ping ничего не проверяет.
func NewProducerFrom(log logger.Logger, producer sarama.SyncProducer) *Producer {
	return &Producer{
		log:      log,
		producer: producer,
	}
}

// Publish синхронно отправляет сообщение; key определяет партицию.
func (p *Producer) Publish(ctx context.Context, topic, key string, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
	})
	if err != nil {
		ProducerMessagesTotal.WithLabelValues(topic, "failed").Inc()
		return fmt.Errorf("send message to %s: %w", topic, err)
	}
	ProducerMessagesTotal.WithLabelValues(topic, "sent").Inc()

	p.log.With(
		logger.NewField("topic", topic),
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	).Info("kafka message published")
	return nil
}

func (p *Producer) Ping(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return pingClient(ctx, p.client, nil)
}

// Close закрывает продюсера, затем клиента, если он создан в NewProducer.
func (p *Producer) Close() error {
	err := p.producer.Close()
	if err != nil {
		return fmt.Errorf("close sync producer: %w", err)
	}
	if p.client != nil && !p.client.Closed() {
		if err := p.client.Close(); err != nil {
			return fmt.Errorf("close kafka client: %w", err)
		}
	}
	return nil
}
