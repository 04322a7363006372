package composer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultOK    = "ok"
	resultError = "error"
)

var SubmissionStepsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "composer_submission_steps_total",
		Help: "Order draft submission steps by outcome",
	},
	[]string{"step", "result"},
)

func observeStep(step Step, err error) {
	result := resultOK
	if err != nil {
		result = resultError
	}
	SubmissionStepsTotal.WithLabelValues(step.String(), result).Inc()
}
