package mapper

import (
	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/model"
)

type EmailLogMapper struct{}

func NewEmailLogMapper() *EmailLogMapper {
	return &EmailLogMapper{}
}

func (m *EmailLogMapper) ToEntity(l *model.EmailLog) *entity.EmailLog {
	if l == nil {
		return nil
	}
	return &entity.EmailLog{
		Id:        l.Id,
		Recipient: l.Recipient,
		Subject:   l.Subject,
		Kind:      l.Kind,
		Status:    l.Status,
		Error:     l.Error,
		CreatedAt: l.CreatedAt,
	}
}

func (m *EmailLogMapper) ToModel(l *entity.EmailLog) *model.EmailLog {
	if l == nil {
		return nil
	}
	return &model.EmailLog{
		Id:        l.Id,
		Recipient: l.Recipient,
		Subject:   l.Subject,
		Kind:      l.Kind,
		Status:    l.Status,
		Error:     l.Error,
		CreatedAt: l.CreatedAt,
	}
}

func (m *EmailLogMapper) ToEntities(logs []*model.EmailLog) []*entity.EmailLog {
	entities := make([]*entity.EmailLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
