package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"wingman-ai-be/internal/dto"
	"wingman-ai-be/internal/entity"
	"wingman-ai-be/internal/repository/contract"
	"wingman-ai-be/internal/repository/memory"
	"wingman-ai-be/internal/repository/unitofwork"
	"wingman-ai-be/pkg/chat/prompt"
	"wingman-ai-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// --- Fakes ---

type fakeChatRepo struct {
	mu      sync.Mutex
	records []*entity.ChatRecord
	clock   int64

	// presetTimestamps counts records that arrived with CreatedAt already
	// set; the storage layer owns timestamp assignment.
	presetTimestamps int
}

func (r *fakeChatRepo) Create(ctx context.Context, record *entity.ChatRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !record.CreatedAt.IsZero() {
		r.presetTimestamps++
	}
	r.clock++
	record.CreatedAt = time.Unix(1_700_000_000+r.clock, 0)
	r.records = append(r.records, record)
	return nil
}

func (r *fakeChatRepo) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.ChatRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ChatRecord
	for _, rec := range r.records {
		if rec.UserId == userId {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeChatRepo) DeleteByUser(ctx context.Context, userId uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	var kept []*entity.ChatRecord
	for _, rec := range r.records {
		if rec.UserId != userId {
			kept = append(kept, rec)
		}
	}
	r.records = kept
	return nil
}

func (r *fakeChatRepo) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	recs, _ := r.FindAllByUser(ctx, userId)
	return int64(len(recs)), nil
}

func (r *fakeChatRepo) FindAllOrdered(ctx context.Context) ([]*entity.ChatRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.ChatRecord{}, r.records...), nil
}

type fakeUow struct {
	chatRepo contract.ChatRecordRepository
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error { return nil }
func (u *fakeUow) Rollback() error { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository { return nil }
func (u *fakeUow) ChatRecordRepository() contract.ChatRecordRepository { return u.chatRepo }
func (u *fakeUow) UploadedFileRepository() contract.UploadedFileRepository { return nil }
func (u *fakeUow) EmailLogRepository() contract.EmailLogRepository { return nil }

type fakeUowFactory struct {
	uow *fakeUow
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type fakeLLM struct {
	response string
	err      error
	prompts  []string
	calls    int
}

func (f *fakeLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func (f *fakeLLM) Generate(ctx context.Context, promptText string, options ...llm.Option) (string, error) {
	f.calls++
	f.prompts = append(f.prompts, promptText)
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestChatService(backend *fakeLLM) (IChatService, *fakeChatRepo, *memory.SessionRepository) {
	repo := &fakeChatRepo{}
	sessions := memory.NewSessionRepository()
	svc := NewChatService(
		&fakeUowFactory{uow: &fakeUow{chatRepo: repo}},
		sessions,
		backend,
		prompt.NewBuilder(prompt.DefaultWindowSize),
		nil,
	)
	return svc, repo, sessions
}

// --- Tests ---

func TestSendChatBlankSubmissionIsNoOp(t *testing.T) {
	backend := &fakeLLM{response: "hello"}
	svc, repo, _ := newTestChatService(backend)
	userId := uuid.New()

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "   \t  "})
	assert.NoError(t, err)
	assert.True(t, res.Skipped)
	assert.Nil(t, res.Record)
	assert.Equal(t, 0, backend.calls, "backend must not be called for blank input")

	count, _ := repo.CountByUser(context.Background(), userId)
	assert.Equal(t, int64(0), count, "nothing should be persisted")
}

func TestSendChatEmojiOnlyIsValid(t *testing.T) {
	backend := &fakeLLM{response: "nice!"}
	svc, repo, _ := newTestChatService(backend)
	userId := uuid.New()

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "", Emoji: "😊"})
	assert.NoError(t, err)
	assert.False(t, res.Skipped)
	assert.Equal(t, "😊", res.Record.UserInput)

	count, _ := repo.CountByUser(context.Background(), userId)
	assert.Equal(t, int64(1), count)
}

func TestSendChatAppendsEmojiSuffix(t *testing.T) {
	backend := &fakeLLM{response: "ok"}
	svc, _, _ := newTestChatService(backend)
	userId := uuid.New()

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: " hello ", Emoji: "🎉"})
	assert.NoError(t, err)
	assert.Equal(t, "hello 🎉", res.Record.UserInput)
}

func TestSendChatBackendFailurePersistsNothing(t *testing.T) {
	backend := &fakeLLM{err: errors.New("model unavailable")}
	svc, repo, _ := newTestChatService(backend)
	userId := uuid.New()

	_, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "hi"})
	assert.Error(t, err)

	count, _ := repo.CountByUser(context.Background(), userId)
	assert.Equal(t, int64(0), count, "a failed turn must leave no record")
}

func TestSendChatOneRecordPerTurn(t *testing.T) {
	backend := &fakeLLM{response: "reply"}
	svc, repo, _ := newTestChatService(backend)
	userId := uuid.New()

	for _, msg := range []string{"one", "two", "three"} {
		_, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: msg})
		assert.NoError(t, err)
	}

	records, _ := repo.FindAllByUser(context.Background(), userId)
	assert.Len(t, records, 3)
	assert.Equal(t, "one", records[0].UserInput)
	assert.Equal(t, "three", records[2].UserInput)
}

func TestNewChatHidesHistoryWithoutDeleting(t *testing.T) {
	backend := &fakeLLM{response: "reply"}
	svc, _, _ := newTestChatService(backend)
	userId := uuid.New()

	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "hi"})
	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "bye"})

	assert.NoError(t, svc.NewChat(context.Background(), userId))

	history, err := svc.GetHistory(context.Background(), userId, "")
	assert.NoError(t, err)
	assert.Empty(t, history.Records, "view should start empty after a new chat")
	assert.Equal(t, 2, history.Total, "records must remain in the store")

	// The next turn makes exactly one record visible.
	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "how are you?"})
	history, _ = svc.GetHistory(context.Background(), userId, "")
	assert.Len(t, history.Records, 1)
	assert.Equal(t, "how are you?", history.Records[0].UserInput)
}

func TestShowPreviousRestoresFullView(t *testing.T) {
	backend := &fakeLLM{response: "reply"}
	svc, _, _ := newTestChatService(backend)
	userId := uuid.New()

	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "hi"})
	assert.NoError(t, svc.NewChat(context.Background(), userId))
	assert.NoError(t, svc.ShowPrevious(context.Background(), userId))

	history, _ := svc.GetHistory(context.Background(), userId, "")
	assert.Len(t, history.Records, 1)
	assert.Equal(t, 0, history.VisibleFrom)
}

func TestClearHistoryResetsViewAndStore(t *testing.T) {
	backend := &fakeLLM{response: "reply"}
	svc, _, sessions := newTestChatService(backend)
	userId := uuid.New()

	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "hi"})
	assert.NoError(t, svc.NewChat(context.Background(), userId))

	assert.NoError(t, svc.ClearHistory(context.Background(), userId))

	history, _ := svc.GetHistory(context.Background(), userId, "")
	assert.Empty(t, history.Records)
	assert.Equal(t, 0, history.Total)

	session := sessions.GetOrCreate(userId.String())
	assert.Equal(t, 0, session.StartIndex)
}

func TestGetHistoryFiltersAreDisplayOnly(t *testing.T) {
	backend := &fakeLLM{response: "the weather is sunny"}
	svc, _, _ := newTestChatService(backend)
	userId := uuid.New()

	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "weather today?"})
	backend.response = "pasta needs salt"
	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "dinner ideas"})

	// Case-insensitive match on either side of the turn.
	history, _ := svc.GetHistory(context.Background(), userId, "WEATHER")
	assert.Len(t, history.Records, 1)
	assert.Equal(t, "weather today?", history.Records[0].UserInput)

	// A query matching nothing yields an empty display set.
	history, _ = svc.GetHistory(context.Background(), userId, "nonsense")
	assert.Empty(t, history.Records)
	assert.Equal(t, 2, history.Total)

	// The context for the next turn is unaffected by any search query:
	// the prompt includes both prior turns.
	prevCalls := len(backend.prompts)
	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "ok"})
	assert.Len(t, backend.prompts, prevCalls+1)
	lastPrompt := backend.prompts[len(backend.prompts)-1]
	assert.Contains(t, lastPrompt, "User: weather today?")
	assert.Contains(t, lastPrompt, "User: dinner ideas")
}

func TestSendChatPromptDerivesFromVisibleWindow(t *testing.T) {
	backend := &fakeLLM{response: "fine thanks"}
	svc, _, _ := newTestChatService(backend)
	userId := uuid.New()

	backend.response = "hello"
	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "hi"})
	backend.response = "goodbye"
	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "bye"})

	// Hidden records must not leak into the prompt.
	assert.NoError(t, svc.NewChat(context.Background(), userId))

	backend.response = "fine thanks"
	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "how are you?"})

	backend.response = "sure"
	_, _ = svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "ok"})

	lastPrompt := backend.prompts[len(backend.prompts)-1]
	assert.Equal(t, "User: how are you?\nAI: fine thanks\n\nUser: ok\nAI:", lastPrompt)
}

func TestSendChatLeavesTimestampToStorage(t *testing.T) {
	backend := &fakeLLM{response: "ok"}
	svc, repo, _ := newTestChatService(backend)
	userId := uuid.New()

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "hi"})
	assert.NoError(t, err)

	assert.Equal(t, 0, repo.presetTimestamps, "record must reach storage without a timestamp")
	assert.False(t, res.Record.CreatedAt.IsZero(), "response carries the storage-assigned timestamp")

	records, _ := repo.FindAllByUser(context.Background(), userId)
	assert.Equal(t, records[0].CreatedAt, res.Record.CreatedAt)
}

func TestSendChatTrimsBackendResponse(t *testing.T) {
	backend := &fakeLLM{response: "  padded reply \n"}
	svc, _, _ := newTestChatService(backend)
	userId := uuid.New()

	res, err := svc.SendChat(context.Background(), userId, &dto.SendChatRequest{Message: "hi"})
	assert.NoError(t, err)
	assert.Equal(t, "padded reply", res.Record.AiResponse)
}
