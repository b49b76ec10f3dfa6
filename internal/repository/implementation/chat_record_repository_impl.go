package implementation

import (
	"context"

	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/mapper"
	"wingman-ai-be/internal/model"
	"wingman-ai-be/internal/repository/contract"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatRecordRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatRecordRepository(db *gorm.DB) contract.ChatRecordRepository {
	return &ChatRecordRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatRecordRepositoryImpl) Create(ctx context.Context, record *entity.ChatRecord) error {
	m := r.mapper.ToModel(record)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*record = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatRecordRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatRecord, error) {
	var records []*model.ChatRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(records), nil
}

// DeleteByUser is a hard delete: the chat log has no soft-delete
// semantics, cleared history is gone. Deleting zero rows is not an error.
func (r *ChatRecordRepositoryImpl) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Delete(&model.ChatRecord{}).Error
}

func (r *ChatRecordRepositoryImpl) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ChatRecord{}).
		Where("user_id = ?", userId).
		Count(&count).Error
	return count, err
}

func (r *ChatRecordRepositoryImpl) FindAllOrdered(ctx context.Context) ([]*entity.ChatRecord, error) {
	var records []*model.ChatRecord
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(records), nil
}
