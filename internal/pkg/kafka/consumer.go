package kafka

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/config"
	"marketplace/pkg/logger"
)

type Consumer struct {
	log     logger.Logger
	client  sarama.Client
	group   sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

func NewSaramaConfig(
	versionStr string,
	autoCommit bool,
	initialOffset int64,
	rebalanceStrategy sarama.BalanceStrategy,
) (*sarama.Config, error) {
	cfg := sarama.NewConfig()

	version, err := sarama.ParseKafkaVersion(versionStr)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", versionStr, err)
	}
	cfg.Version = version

	cfg.Consumer.Offsets.Initial = initialOffset
	cfg.Consumer.Offsets.AutoCommit.Enable = autoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{rebalanceStrategy}
	// ошибки группы читает logErrors, иначе они только в логе sarama
	cfg.Consumer.Return.Errors = true

	return cfg, nil
}

// NewConsumer подключается к брокерам из cfg и создает группу cfg.ConsumerGroup
// поверх общего клиента; клиент же отвечает на Ping для healthcheck.
func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, topics []string, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	saramaConfig, err := NewSaramaConfig(
		cfg.Sarama.Version,
		cfg.Sarama.ConsumerOffsetsAutocommit,
		sarama.OffsetOldest,
		sarama.NewBalanceStrategyRoundRobin(),
	)
	if err != nil {
		return nil, fmt.Errorf("build saramaConfig: %w", err)
	}

	brokers := cfg.BrokerList()
	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	client, err := connect(ctx, kafkaLog, brokers, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	group, err := sarama.NewConsumerGroupFromClient(cfg.ConsumerGroup, client)
	if err != nil {
		if closeErr := client.Close(); closeErr != nil {
			return nil, fmt.Errorf("create consumer group: %w (failed to close client: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		group:   group,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start запускает consumer (блокирующий вызов). После ребалансировки
// Consume возвращается без ошибки и вызывается снова.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("Kafka consumer starting")

	go c.logErrors()

	for {
		err := c.group.Consume(ctx, c.topics, c.handler)
		if err != nil {
			c.log.With(
				logger.NewField("error", err),
			).Error("Error from consumer")
			return fmt.Errorf("consumer error: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Warn("Context cancelled, stopping consumer")
			return ctx.Err()
		}
	}
}

// logErrors завершается, когда группа закрыта и канал Errors() закрыт.
func (c *Consumer) logErrors() {
	for err := range c.group.Errors() {
		ConsumerErrorsTotal.Inc()
		c.log.With(
			logger.NewField("error", err),
		).Warn("kafka consumer group error")
	}
}

// Ping проверяет, что брокеры отдают метаданные топиков группы.
func (c *Consumer) Ping(ctx context.Context) error {
	return pingClient(ctx, c.client, c.topics)
}

// Close закрывает группу, затем клиента: группа, созданная из клиента, сама
// его не закрывает.
func (c *Consumer) Close() error {
	groupErr := c.group.Close()
	clientErr := c.client.Close()
	if groupErr != nil {
		return fmt.Errorf("close consumer group: %w", groupErr)
	}
	if clientErr != nil {
		return fmt.Errorf("close kafka client: %w", clientErr)
	}
	return nil
}
