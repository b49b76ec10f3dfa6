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

type UploadedFileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.FileMapper
}

func NewUploadedFileRepository(db *gorm.DB) contract.UploadedFileRepository {
	return &UploadedFileRepositoryImpl{
		db:     db,
		mapper: mapper.NewFileMapper(),
	}
}

func (r *UploadedFileRepositoryImpl) Create(ctx context.Context, file *entity.UploadedFile) error {
	m := r.mapper.ToModel(file)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*file = *r.mapper.ToEntity(m)
	return nil
}

func (r *UploadedFileRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.UploadedFile, error) {
	var files []*model.UploadedFile
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userId).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(files), nil
}

func (r *UploadedFileRepositoryImpl) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.UploadedFile{}).
		Where("user_id = ?", userId).
		Count(&count).Error
	return count, err
}
