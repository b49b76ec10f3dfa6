package model

import (
	"time"

	"github.com/google/uuid"
)

type EmailLog struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Recipient string    `gorm:"type:varchar(255);not null;index"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Kind      string    `gorm:"type:varchar(50);not null;default:''"`
	Status    string    `gorm:"type:varchar(50);not null"`
	Error     *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index"`
}

func (EmailLog) TableName() string {
	return "email_logs"
}
