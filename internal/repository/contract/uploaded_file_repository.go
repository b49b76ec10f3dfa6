package contract

import (
	"context"

	"wingman-ai-be/internal/entity"

	"github.com/google/uuid"
)

type UploadedFileRepository interface {
	Create(ctx context.Context, file *entity.UploadedFile) error
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UploadedFile, error)
	CountByUser(ctx context.Context, userId uuid.UUID) (int64, error)
}
