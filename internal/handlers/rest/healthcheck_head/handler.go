package healthcheck_head

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"marketplace/pkg/logger"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	log            handlerLogger
	isShuttingDown *atomic.Bool
	pingers        map[string]Pinger
}

func New(log handlerLogger, isShuttingDown *atomic.Bool, pingers map[string]Pinger) *Handler {
	return &Handler{
		log:            log.With(),
		isShuttingDown: isShuttingDown,
		pingers:        pingers,
	}
}

// ServeHTTP: 503 во время остановки или если недоступна любая из
// зависимостей, иначе 204.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	for name, p := range h.pingers {
		err := p.Ping(ctx)
		if err != nil {
			h.log.With(
				logger.NewField("dependency", name),
				logger.NewField("error", err),
			).Warn("healthcheck dependency unavailable")
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
