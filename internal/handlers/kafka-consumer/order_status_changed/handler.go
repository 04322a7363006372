package order_status_changed

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	orderservice "marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

type Handler struct {
	orderService             Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, orderService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		orderService:             orderService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				// Messages() закрыт, выходим
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// Сессия закрыта (rebalance или остановка consumer group), выходим
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka. true - прервать
// ConsumeClaim без коммита: сообщение будет прочитано снова. Остальные исходы
// коммитятся, чтобы партиция не вставала на одном событии.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil || strings.TrimSpace(event.OrderID) == "" {
		h.log.With(
			logger.NewField("offset", message.Offset),
			logger.NewField("error", err),
		).Error("order.status.changed handler received bad message")
		EventsProcessedTotal.WithLabelValues(outcomeBadMessage).Inc()
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order", event.OrderID),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)
	if !event.ChangedAt.IsZero() {
		EventLagSeconds.Observe(time.Since(event.ChangedAt).Seconds())
	}

	msgLog.Info("order.status.changed processing")

	order, err := h.orderService.ApplyStatusEvent(ctx, event.OrderID, entities.OrderStatus(event.Status))
	if err != nil {
		outcome := classifyError(err)
		EventsProcessedTotal.WithLabelValues(outcome).Inc()

		if outcome == outcomeRetry {
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.status.changed handler context cancelled, message will be reprocessed")
			return true
		}

		msgLog.With(
			logger.NewField("outcome", outcome),
			logger.NewField("error", err),
		).Warn("order.status.changed handler skipped event")
		sess.MarkMessage(message, "")
		return false
	}

	EventsProcessedTotal.WithLabelValues(outcomeApplied).Inc()
	h.log.With(
		logger.NewField("order", order.ID),
		logger.NewField("event_status", event.Status),
		logger.NewField("current_status", order.Status.String()),
		logger.NewField("offset", message.Offset),
	).Info("order.status.changed: processed")

	sess.MarkMessage(message, "")
	return false
}

const (
	outcomeApplied        = "applied"
	outcomeBadMessage     = "bad_message"
	outcomeRetry          = "retry"
	outcomeUndefined      = "undefined_status"
	outcomeOrderNotFound  = "order_not_found"
	outcomeStatusMismatch = "status_mismatch"
	outcomeFailed         = "failed"
)

func classifyError(err error) string {
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return outcomeRetry
	case errors.Is(err, orderservice.ErrUndefinedStatus):
		return outcomeUndefined
	case errors.Is(err, orderservice.ErrOrderNotFound):
		return outcomeOrderNotFound
	case errors.Is(err, orderservice.ErrStatusMismatch):
		return outcomeStatusMismatch
	default:
		return outcomeFailed
	}
}
