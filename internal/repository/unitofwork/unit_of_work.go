package unitofwork

import (
	"context"

	"wingman-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatRecordRepository() contract.ChatRecordRepository
	UploadedFileRepository() contract.UploadedFileRepository
	EmailLogRepository() contract.EmailLogRepository
}
