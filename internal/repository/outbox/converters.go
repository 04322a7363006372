package outbox

import "marketplace/internal/entities"

func ToDomain(t *OutboxTaskDB) *entities.OutboxTask {
	if t == nil {
		return nil
	}
	return &entities.OutboxTask{
		ID:        t.ID,
		Topic:     t.Topic,
		Key:       t.Key,
		Payload:   t.Payload,
		Status:    entities.OutboxStatus(t.Status),
		Attempts:  t.Attempts,
		LastError: t.LastError,
		CreatedAt: t.CreatedAt,
	}
}
