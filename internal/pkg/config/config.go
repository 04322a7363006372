package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DraftStoreBackendPostgres = "postgres"
	DraftStoreBackendFile     = "file"

	defaultImageUploadParallelism = 4
	defaultOutboxBatchSize        = 50
	defaultOutboxMaxAttempts      = 10
	defaultPostgresMaxConns       = 10
	defaultPostgresMinConns       = 2
	defaultSubmitTimeoutFactor    = 3
)

type (
	Tasks struct {
		OutboxRelayInterval time.Duration
		OutboxBatchSize     int
		OutboxMaxAttempts   int
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		SubmitTimeout    time.Duration // отправка черновика ходит во внешние сервисы
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	Database struct {
		Host        string
		Port        string
		User        string
		Password    string
		DBName      string
		SSLMode     string
		AutoMigrate bool
		MaxConns    int32
		MinConns    int32
	}

	DraftStore struct {
		Backend  string
		FilePath string
	}

	PostalCode struct {
		BaseURL string
		Timeout time.Duration
	}

	Geocoding struct {
		BaseURL   string
		Timeout   time.Duration
		UserAgent string
	}

	TripService struct {
		GRPCHost string
	}

	Composer struct {
		ImageUploadParallelism int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		ConsumerGroup   string
		Topics          KafkaTopics
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	KafkaTopics struct {
		OrderStatusChanged   string
		ChatChannelRequested string
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Config struct {
		Tasks       Tasks
		Server      HTTPServer
		Database    Database
		DraftStore  DraftStore
		PostalCode  PostalCode
		Geocoding   Geocoding
		TripService TripService
		Composer    Composer
		Kafka       Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	outboxInterval, err := osGetEnvDuration("BACKGROUND_OUTBOX_RELAY_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxBatchSize, err := osGetInt("BACKGROUND_OUTBOX_BATCH_SIZE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	outboxMaxAttempts, err := osGetInt("BACKGROUND_OUTBOX_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	submitTimeout, err := osGetEnvDuration("MIDDLEWARE_SUBMIT_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if submitTimeout == 0 {
		submitTimeout = requestTimeout * defaultSubmitTimeoutFactor
	}

	maxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	minConns, err := osGetInt("POSTGRES_MIN_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	autoMigrate, err := osGetBool("POSTGRES_AUTO_MIGRATE")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	postalCodeTimeout, err := osGetEnvDuration("POSTAL_CODE_API_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	geocodingTimeout, err := osGetEnvDuration("GEOCODING_API_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	uploadParallelism, err := osGetInt("COMPOSER_IMAGE_UPLOAD_PARALLELISM")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	draftBackend := os.Getenv("DRAFT_STORE_BACKEND")
	if draftBackend == "" {
		draftBackend = DraftStoreBackendPostgres
	}

	return &Config{
		Tasks: Tasks{
			OutboxRelayInterval: outboxInterval,
			OutboxBatchSize:     orDefault(outboxBatchSize, defaultOutboxBatchSize),
			OutboxMaxAttempts:   orDefault(outboxMaxAttempts, defaultOutboxMaxAttempts),
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			SubmitTimeout:    submitTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Database: Database{
			Host:        os.Getenv("POSTGRES_HOST"),
			Port:        os.Getenv("POSTGRES_PORT"),
			User:        os.Getenv("POSTGRES_USER"),
			Password:    os.Getenv("POSTGRES_PASSWORD"),
			DBName:      os.Getenv("POSTGRES_DB"),
			SSLMode:     os.Getenv("POSTGRES_SSLMODE"),
			AutoMigrate: autoMigrate,
			MaxConns:    int32(orDefault(maxConns, defaultPostgresMaxConns)), //nolint:gosec // пул в пределах int32
			MinConns:    int32(orDefault(minConns, defaultPostgresMinConns)), //nolint:gosec // пул в пределах int32
		},
		DraftStore: DraftStore{
			Backend:  draftBackend,
			FilePath: os.Getenv("DRAFT_STORE_FILE_PATH"),
		},
		PostalCode: PostalCode{
			BaseURL: os.Getenv("POSTAL_CODE_API_URL"),
			Timeout: postalCodeTimeout,
		},
		Geocoding: Geocoding{
			BaseURL:   os.Getenv("GEOCODING_API_URL"),
			Timeout:   geocodingTimeout,
			UserAgent: os.Getenv("GEOCODING_USER_AGENT"),
		},
		TripService: TripService{
			GRPCHost: os.Getenv("TRIP_SERVICE_GRPC_HOST"),
		},
		Composer: Composer{
			ImageUploadParallelism: orDefault(uploadParallelism, defaultImageUploadParallelism),
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Topics: KafkaTopics{
				OrderStatusChanged:   os.Getenv("KAFKA_TOPIC_ORDER_STATUS_CHANGED"),
				ChatChannelRequested: os.Getenv("KAFKA_TOPIC_CHAT_CHANNEL_REQUESTED"),
			},
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	if cfg.Database.MinConns > cfg.Database.MaxConns {
		return errors.New("POSTGRES_MIN_CONNS must not exceed POSTGRES_MAX_CONNS")
	}

	switch cfg.DraftStore.Backend {
	case DraftStoreBackendPostgres:
	case DraftStoreBackendFile:
		if cfg.DraftStore.FilePath == "" {
			return errors.New("DRAFT_STORE_FILE_PATH is required for file draft store")
		}
	default:
		return fmt.Errorf("DRAFT_STORE_BACKEND must be %q or %q", DraftStoreBackendPostgres, DraftStoreBackendFile)
	}

	if cfg.Tasks.OutboxRelayInterval == time.Duration(0) {
		return errors.New("BACKGROUND_OUTBOX_RELAY_INTERVAL is required")
	}

	if cfg.PostalCode.BaseURL == "" {
		return errors.New("POSTAL_CODE_API_URL is required")
	}
	if cfg.PostalCode.Timeout == time.Duration(0) {
		return errors.New("POSTAL_CODE_API_TIMEOUT is required")
	}
	if cfg.Geocoding.BaseURL == "" {
		return errors.New("GEOCODING_API_URL is required")
	}
	if cfg.Geocoding.Timeout == time.Duration(0) {
		return errors.New("GEOCODING_API_TIMEOUT is required")
	}
	if cfg.Geocoding.UserAgent == "" {
		return errors.New("GEOCODING_USER_AGENT is required")
	}

	if cfg.TripService.GRPCHost == "" {
		return errors.New("TRIP_SERVICE_GRPC_HOST is required")
	}

	if len(cfg.Kafka.BrokerList()) == 0 {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topics.OrderStatusChanged == "" {
		return errors.New("KAFKA_TOPIC_ORDER_STATUS_CHANGED is required")
	}
	if cfg.Kafka.Topics.ChatChannelRequested == "" {
		return errors.New("KAFKA_TOPIC_CHAT_CHANNEL_REQUESTED is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

// BrokerList разбирает KAFKA_BROKERS вида "host1:9092, host2:9092".
func (k Kafka) BrokerList() []string {
	brokers := make([]string, 0)
	for _, broker := range strings.Split(k.Brokers, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func orDefault(val, def int) int {
	if val <= 0 {
		return def
	}
	return val
}
