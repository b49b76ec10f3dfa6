package contract

import (
	"context"

	"wingman-ai-be/internal/entity"
)

type EmailLogRepository interface {
	Create(ctx context.Context, log *entity.EmailLog) error
	FindRecent(ctx context.Context, limit int) ([]*entity.EmailLog, error)
}
