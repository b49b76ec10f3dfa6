package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatRecord rows are append-only. No UpdatedAt/DeletedAt: records are
// immutable once created and only ever removed in bulk per owner.
type ChatRecord struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index"`
	UserInput  string    `gorm:"type:text;not null"`
	AiResponse string    `gorm:"type:text;not null"`
	ThreadId   *string   `gorm:"type:varchar(255)"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index"`
}

func (ChatRecord) TableName() string {
	return "chat_records"
}
