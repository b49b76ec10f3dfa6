package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	EmailStatusSent   = "sent"
	EmailStatusFailed = "failed"
)

// EmailLog records the outcome of every outbound mail attempt so the admin
// panel can audit deliveries.
type EmailLog struct {
	Id        uuid.UUID
	Recipient string
	Subject   string
	Kind      string
	Status    string
	Error     *string
	CreatedAt time.Time
}
