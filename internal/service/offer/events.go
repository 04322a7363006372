package offer

import (
	"encoding/json"
	"fmt"
	"time"

	"marketplace/internal/entities"
)

// chatChannelRequested публикуется после выбора курьера; канал связи
// создает внешний чат-сервис.
type chatChannelRequested struct {
	OrderID       string    `json:"order_id"`
	RequesterID   int64     `json:"requester_id"`
	DeliverymanID int64     `json:"deliveryman_id"`
	RequestedAt   time.Time `json:"requested_at"`
}

func newChatChannelTask(topic string, selection entities.DeliverymanSelection) (entities.OutboxTask, error) {
	payload, err := json.Marshal(chatChannelRequested{
		OrderID:       selection.OrderID,
		RequesterID:   selection.RequesterID,
		DeliverymanID: selection.DeliverymanID,
		RequestedAt:   selection.SelectedAt,
	})
	if err != nil {
		return entities.OutboxTask{}, fmt.Errorf("marshal chat channel request: %w", err)
	}

	return entities.OutboxTask{
		Topic:   topic,
		Key:     selection.OrderID,
		Payload: payload,
		Status:  entities.OutboxCreated,
	}, nil
}
