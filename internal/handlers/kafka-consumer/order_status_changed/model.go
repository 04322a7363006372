package order_status_changed

import "time"

// statusChangedEvent - сообщение топика изменения статуса заказа.
type statusChangedEvent struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changed_at"`
}
