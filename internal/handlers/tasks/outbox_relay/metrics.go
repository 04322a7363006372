package outbox_relay

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var OutboxRelayMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "outbox_relay_messages_total",
		Help: "Outbox tasks processed by the relay, by topic and result",
	},
	[]string{"topic", "result"},
)
