package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRecord is one persisted conversation turn: the user's input and the
// model's response. Records are append-only and never edited; they are
// deleted only in bulk per owner.
type ChatRecord struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	UserInput  string
	AiResponse string
	ThreadId   *string
	CreatedAt  time.Time
}
