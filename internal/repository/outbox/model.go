package outbox

import (
	"time"

	"github.com/google/uuid"
)

type OutboxTaskDB struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	Status    string
	Attempts  int
	LastError *string
	CreatedAt time.Time
}
