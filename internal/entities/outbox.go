package entities

import (
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxCreated OutboxStatus = "created"
	OutboxFailed  OutboxStatus = "failed"
	OutboxDone    OutboxStatus = "done"
)

type OutboxTask struct {
	ID        uuid.UUID
	Topic     string
	Key       string
	Payload   []byte
	Status    OutboxStatus
	Attempts  int
	LastError *string
	CreatedAt time.Time
}
