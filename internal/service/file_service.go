package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"wingman-ai-be/internal/dto"
	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/repository/unitofwork"
	"wingman-ai-be/pkg/extract"

	"github.com/google/uuid"
)

const previewLength = 500

type IFileService interface {
	Upload(ctx context.Context, userId uuid.UUID, fileHeader *multipart.FileHeader) (*dto.UploadFileResponse, error)
	ListFiles(ctx context.Context, userId uuid.UUID) ([]dto.UploadedFileResponse, error)
}

type fileService struct {
	uowFactory    unitofwork.RepositoryFactory
	extractors    *extract.Registry
	maxFileSizeMB int
}

func NewFileService(uowFactory unitofwork.RepositoryFactory, extractors *extract.Registry, maxFileSizeMB int) IFileService {
	return &fileService{
		uowFactory:    uowFactory,
		extractors:    extractors,
		maxFileSizeMB: maxFileSizeMB,
	}
}

func (s *fileService) Upload(ctx context.Context, userId uuid.UUID, fileHeader *multipart.FileHeader) (*dto.UploadFileResponse, error) {
	// 1. Size cap
	maxBytes := int64(s.maxFileSizeMB) * 1024 * 1024
	if fileHeader.Size > maxBytes {
		return nil, fmt.Errorf("file too large: limit is %dMB", s.maxFileSizeMB)
	}

	// 2. Extension must have a registered extractor
	if !s.extractors.Supported(fileHeader.Filename) {
		return nil, &extract.ErrUnsupportedType{Extension: strings.ToLower(filepath.Ext(fileHeader.Filename))}
	}

	// 3. Extract text
	src, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	text, err := s.extractors.Extract(fileHeader.Filename, src)
	if err != nil {
		return nil, err
	}

	// 4. Persist with metadata
	file := &entity.UploadedFile{
		Id:            uuid.New(),
		UserId:        userId,
		FileName:      fileHeader.Filename,
		FileType:      strings.TrimPrefix(strings.ToLower(filepath.Ext(fileHeader.Filename)), "."),
		ExtractedText: text,
		Metadata: map[string]interface{}{
			"size_bytes":   fileHeader.Size,
			"content_type": fileHeader.Header.Get("Content-Type"),
			"text_length":  len(text),
		},
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.UploadedFileRepository().Create(ctx, file); err != nil {
		return nil, err
	}

	preview := text
	if len(preview) > previewLength {
		preview = preview[:previewLength]
	}

	return &dto.UploadFileResponse{
		Id:        file.Id,
		FileName:  file.FileName,
		FileType:  file.FileType,
		Preview:   preview,
		CreatedAt: file.CreatedAt,
	}, nil
}

func (s *fileService) ListFiles(ctx context.Context, userId uuid.UUID) ([]dto.UploadedFileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	files, err := uow.UploadedFileRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	out := make([]dto.UploadedFileResponse, 0, len(files))
	for _, f := range files {
		out = append(out, dto.UploadedFileResponse{
			Id:        f.Id,
			FileName:  f.FileName,
			FileType:  f.FileType,
			Metadata:  f.Metadata,
			CreatedAt: f.CreatedAt,
		})
	}
	return out, nil
}
