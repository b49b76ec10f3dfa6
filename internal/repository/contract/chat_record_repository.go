package contract

import (
	"context"

	"wingman-ai-be/internal/entity"

	"github.com/google/uuid"
)

// ChatRecordRepository is the persisted, append-only chat log. There is
// deliberately no update operation: records are immutable once created.
type ChatRecordRepository interface {
	// Create appends one record; the storage layer assigns the timestamp
	// and commit order.
	Create(ctx context.Context, record *entity.ChatRecord) error

	// FindAllByUser returns the owner's full log in ascending
	// chronological order, empty slice when none exist.
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatRecord, error)

	// DeleteByUser removes all records for the owner. Idempotent.
	DeleteByUser(ctx context.Context, userId uuid.UUID) error

	CountByUser(ctx context.Context, userId uuid.UUID) (int64, error)

	// FindAllOrdered returns every record across owners, oldest first.
	// Used by the admin CSV export.
	FindAllOrdered(ctx context.Context) ([]*entity.ChatRecord, error)
}
