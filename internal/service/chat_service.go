package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"wingman-ai-be/internal/dto"
	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/repository/memory"
	"wingman-ai-be/internal/repository/unitofwork"
	"wingman-ai-be/pkg/chat"
	"wingman-ai-be/pkg/chat/prompt"
	"wingman-ai-be/pkg/events"
	"wingman-ai-be/pkg/llm"

	"github.com/google/uuid"
)

type IChatService interface {
	SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	GetHistory(ctx context.Context, userId uuid.UUID, query string) (*dto.GetHistoryResponse, error)
	NewChat(ctx context.Context, userId uuid.UUID) error
	ShowPrevious(ctx context.Context, userId uuid.UUID) error
	ClearHistory(ctx context.Context, userId uuid.UUID) error
}

type chatService struct {
	uowFactory     unitofwork.RepositoryFactory
	sessions       *memory.SessionRepository
	llmProvider    llm.Provider
	promptBuilder  *prompt.Builder
	eventPublisher IPublisherService
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	llmProvider llm.Provider,
	promptBuilder *prompt.Builder,
	eventPublisher IPublisherService,
) IChatService {
	return &chatService{
		uowFactory:     uowFactory,
		sessions:       sessions,
		llmProvider:    llmProvider,
		promptBuilder:  promptBuilder,
		eventPublisher: eventPublisher,
	}
}

// composeMessage joins the typed text and the optional emoji suffix. An
// emoji with no text is still a valid submission; a blank result means
// the whole submission is a no-op.
func composeMessage(message, emoji string) string {
	text := strings.TrimSpace(message)
	if emoji != "" {
		text = strings.TrimSpace(text + " " + emoji)
	}
	return text
}

func (s *chatService) SendChat(ctx context.Context, userId uuid.UUID, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	// 1. Compose and validate. Blank submissions change nothing.
	text := composeMessage(req.Message, req.Emoji)
	if text == "" {
		return &dto.SendChatResponse{Skipped: true}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	// 2. Read the full log and self-heal the window cursor.
	records, err := uow.ChatRecordRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	session := s.sessions.GetOrCreate(userId.String())
	window := chat.Window{StartIndex: session.StartIndex}
	window.Clamp(len(records))

	// 3. Assemble the prompt from the visible window. Search never feeds
	// the model; context always comes from the visible suffix.
	visible := window.Visible(records)
	promptText := s.promptBuilder.Build(visible, text)

	// 4. Call the model. On failure the turn is abandoned whole: nothing
	// is persisted and the caller may resubmit.
	response, err := s.llmProvider.Generate(ctx, promptText)
	if err != nil {
		return nil, fmt.Errorf("ai backend error: %w", err)
	}
	response = strings.TrimSpace(response)

	// 5. Persist the turn as one record. CreatedAt stays zero: the
	// storage layer assigns it, so ordering follows commit order.
	record := &entity.ChatRecord{
		Id:         uuid.New(),
		UserId:     userId,
		UserInput:  text,
		AiResponse: response,
	}
	if err := uow.ChatRecordRepository().Create(ctx, record); err != nil {
		return nil, err
	}

	// Cursor survives the append untouched: the new record lands inside
	// the visible suffix by construction.
	session.StartIndex = window.StartIndex
	s.sessions.Save(session)

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: "CHAT_TURN_SAVED",
			Data: map[string]interface{}{
				"user_id":   userId,
				"record_id": record.Id,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, events.TopicChatTurnSaved, event); err != nil {
			fmt.Printf("[WARN] Failed to publish CHAT_TURN_SAVED event: %v\n", err)
		}
	}

	return &dto.SendChatResponse{
		Skipped: false,
		Record: &dto.ChatRecordResponse{
			Id:         record.Id,
			UserInput:  record.UserInput,
			AiResponse: record.AiResponse,
			CreatedAt:  record.CreatedAt,
		},
	}, nil
}

func (s *chatService) GetHistory(ctx context.Context, userId uuid.UUID, query string) (*dto.GetHistoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	records, err := uow.ChatRecordRepository().FindAllByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	session := s.sessions.GetOrCreate(userId.String())
	window := chat.Window{StartIndex: session.StartIndex}
	window.Clamp(len(records))
	if window.StartIndex != session.StartIndex {
		session.StartIndex = window.StartIndex
		s.sessions.Save(session)
	}

	// Search is a display-only lens over the visible window.
	visible := window.Visible(records)
	filtered := chat.FilterRecords(visible, query)

	out := make([]dto.ChatRecordResponse, 0, len(filtered))
	for _, r := range filtered {
		out = append(out, dto.ChatRecordResponse{
			Id:         r.Id,
			UserInput:  r.UserInput,
			AiResponse: r.AiResponse,
			CreatedAt:  r.CreatedAt,
		})
	}

	return &dto.GetHistoryResponse{
		Records:     out,
		Total:       len(records),
		VisibleFrom: window.StartIndex,
		Query:       strings.TrimSpace(query),
	}, nil
}

// NewChat hides the existing history without deleting it: the window
// cursor jumps past the end so the view starts empty.
func (s *chatService) NewChat(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	total, err := uow.ChatRecordRepository().CountByUser(ctx, userId)
	if err != nil {
		return err
	}

	session := s.sessions.GetOrCreate(userId.String())
	window := chat.Window{StartIndex: session.StartIndex}
	window.JumpToEnd(int(total))
	session.StartIndex = window.StartIndex
	s.sessions.Save(session)
	return nil
}

// ShowPrevious restores the full history view.
func (s *chatService) ShowPrevious(ctx context.Context, userId uuid.UUID) error {
	session := s.sessions.GetOrCreate(userId.String())
	window := chat.Window{StartIndex: session.StartIndex}
	window.Reset()
	session.StartIndex = window.StartIndex
	s.sessions.Save(session)
	return nil
}

// ClearHistory deletes every record for the owner and resets the cursor
// as part of the same logical operation.
func (s *chatService) ClearHistory(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.ChatRecordRepository().DeleteByUser(ctx, userId); err != nil {
		return err
	}

	session := s.sessions.GetOrCreate(userId.String())
	session.StartIndex = 0
	s.sessions.Save(session)
	return nil
}
