package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendChatRequest struct {
	Message string `json:"message"`
	// Emoji is an optional suffix appended to the message. An emoji on
	// its own is a valid submission.
	Emoji string `json:"emoji"`
}

type ChatRecordResponse struct {
	Id         uuid.UUID `json:"id"`
	UserInput  string    `json:"user_input"`
	AiResponse string    `json:"ai_response"`
	CreatedAt  time.Time `json:"created_at"`
}

type SendChatResponse struct {
	// Skipped is true when the submission was blank and nothing was
	// sent to the model or persisted.
	Skipped bool                `json:"skipped"`
	Record  *ChatRecordResponse `json:"record,omitempty"`
}

type GetHistoryRequest struct {
	Query string `json:"query"`
}

type GetHistoryResponse struct {
	Records     []ChatRecordResponse `json:"records"`
	Total       int                  `json:"total"`
	VisibleFrom int                  `json:"visible_from"`
	Query       string               `json:"query,omitempty"`
}
