package entity

import (
	"time"

	"github.com/google/uuid"
)

type UploadedFile struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	FileName      string
	FileType      string
	ExtractedText string
	Metadata      map[string]interface{}
	CreatedAt     time.Time
}
