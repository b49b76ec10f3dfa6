package model

import "time"

// Notification is a transient payload pushed over WebSocket. It is not
// persisted; clients that are offline simply miss it.
type Notification struct {
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
