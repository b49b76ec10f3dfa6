package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type UploadedFile struct {
	Id            uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId        uuid.UUID      `gorm:"type:uuid;not null;index"`
	FileName      string         `gorm:"type:varchar(255);not null"`
	FileType      string         `gorm:"type:varchar(100)"`
	ExtractedText string         `gorm:"type:text"`
	Metadata      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt     time.Time      `gorm:"autoCreateTime;index"`
}

func (UploadedFile) TableName() string {
	return "uploaded_files"
}
