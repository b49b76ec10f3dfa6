package implementation

import (
	"context"

	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/mapper"
	"wingman-ai-be/internal/model"
	"wingman-ai-be/internal/repository/contract"

	"gorm.io/gorm"
)

type EmailLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EmailLogMapper
}

func NewEmailLogRepository(db *gorm.DB) contract.EmailLogRepository {
	return &EmailLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewEmailLogMapper(),
	}
}

func (r *EmailLogRepositoryImpl) Create(ctx context.Context, log *entity.EmailLog) error {
	m := r.mapper.ToModel(log)
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *EmailLogRepositoryImpl) FindRecent(ctx context.Context, limit int) ([]*entity.EmailLog, error) {
	if limit <= 0 {
		limit = 20
	}
	var logs []*model.EmailLog
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(logs), nil
}
