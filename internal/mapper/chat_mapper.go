package mapper

import (
	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToEntity(r *model.ChatRecord) *entity.ChatRecord {
	if r == nil {
		return nil
	}
	return &entity.ChatRecord{
		Id:         r.Id,
		UserId:     r.UserId,
		UserInput:  r.UserInput,
		AiResponse: r.AiResponse,
		ThreadId:   r.ThreadId,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *ChatMapper) ToModel(r *entity.ChatRecord) *model.ChatRecord {
	if r == nil {
		return nil
	}
	return &model.ChatRecord{
		Id:         r.Id,
		UserId:     r.UserId,
		UserInput:  r.UserInput,
		AiResponse: r.AiResponse,
		ThreadId:   r.ThreadId,
		CreatedAt:  r.CreatedAt,
	}
}

func (m *ChatMapper) ToEntities(records []*model.ChatRecord) []*entity.ChatRecord {
	entities := make([]*entity.ChatRecord, len(records))
	for i, r := range records {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
