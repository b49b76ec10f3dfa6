package mapper

import (
	"encoding/json"

	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/model"

	"gorm.io/datatypes"
)

type FileMapper struct{}

func NewFileMapper() *FileMapper {
	return &FileMapper{}
}

func (m *FileMapper) ToEntity(f *model.UploadedFile) *entity.UploadedFile {
	if f == nil {
		return nil
	}
	var metadata map[string]interface{}
	if len(f.Metadata) > 0 {
		// Corrupt metadata is not fatal, the text payload is what matters
		_ = json.Unmarshal(f.Metadata, &metadata)
	}
	return &entity.UploadedFile{
		Id:            f.Id,
		UserId:        f.UserId,
		FileName:      f.FileName,
		FileType:      f.FileType,
		ExtractedText: f.ExtractedText,
		Metadata:      metadata,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *FileMapper) ToModel(f *entity.UploadedFile) *model.UploadedFile {
	if f == nil {
		return nil
	}
	var metadata datatypes.JSON
	if f.Metadata != nil {
		if raw, err := json.Marshal(f.Metadata); err == nil {
			metadata = datatypes.JSON(raw)
		}
	}
	return &model.UploadedFile{
		Id:            f.Id,
		UserId:        f.UserId,
		FileName:      f.FileName,
		FileType:      f.FileType,
		ExtractedText: f.ExtractedText,
		Metadata:      metadata,
		CreatedAt:     f.CreatedAt,
	}
}

func (m *FileMapper) ToEntities(files []*model.UploadedFile) []*entity.UploadedFile {
	entities := make([]*entity.UploadedFile, len(files))
	for i, f := range files {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
