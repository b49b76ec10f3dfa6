package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadFileResponse struct {
	Id       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`
	FileType string    `json:"file_type"`
	// Preview is the first part of the extracted text.
	Preview   string    `json:"preview"`
	CreatedAt time.Time `json:"created_at"`
}

type UploadedFileResponse struct {
	Id        uuid.UUID              `json:"id"`
	FileName  string                 `json:"file_name"`
	FileType  string                 `json:"file_type"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}

type FileContentResponse struct {
	Id       uuid.UUID `json:"id"`
	FileName string    `json:"file_name"`
	Content  string    `json:"content"`
}
