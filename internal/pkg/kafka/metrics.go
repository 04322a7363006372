package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConsumerErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kafka_consumer_group_errors_total",
			Help: "Total number of errors reported by the Kafka consumer group",
		},
	)

	ProducerMessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_producer_messages_total",
			Help: "Total number of messages sent to Kafka by result",
		},
		[]string{"topic", "result"},
	)
)
