package memory

import (
	"testing"
	"time"

	"wingman-ai-be/pkg/store"

	"github.com/stretchr/testify/assert"
)

func TestSessionRepositoryGetOrCreate(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("user-1")
	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, 0, s.StartIndex)
	assert.Equal(t, store.ThemeLight, s.Theme)

	// Mutations must stick across reads of the same session.
	s.StartIndex = 4
	repo.Save(s)

	again := repo.GetOrCreate("user-1")
	assert.Equal(t, 4, again.StartIndex)
}

func TestSessionRepositoryDelete(t *testing.T) {
	repo := NewSessionRepository()

	s := repo.GetOrCreate("user-2")
	s.StartIndex = 9
	repo.Save(s)

	repo.Delete("user-2")

	_, found := repo.Get("user-2")
	assert.False(t, found)

	// A new session after logout starts fresh at index zero.
	fresh := repo.GetOrCreate("user-2")
	assert.Equal(t, 0, fresh.StartIndex)
}

func TestSessionRepositoryHandsOutPrivateCopies(t *testing.T) {
	repo := NewSessionRepository()

	first := repo.GetOrCreate("user-3")
	second := repo.GetOrCreate("user-3")
	assert.NotSame(t, first, second, "each read must return its own copy")

	// A mutation is invisible to other readers until saved.
	first.StartIndex = 7
	assert.Equal(t, 0, second.StartIndex)

	unsaved, _ := repo.Get("user-3")
	assert.Equal(t, 0, unsaved.StartIndex)

	repo.Save(first)
	saved, _ := repo.Get("user-3")
	assert.Equal(t, 7, saved.StartIndex)
}

// Two tabs on the same account: one request holds its session across a
// slow operation and saves, while another keeps reading. Run with -race.
func TestSessionRepositoryConcurrentSameUser(t *testing.T) {
	repo := NewSessionRepository()
	repo.GetOrCreate("user-4")

	done := make(chan struct{})
	go func() {
		defer close(done)
		s := repo.GetOrCreate("user-4")
		time.Sleep(10 * time.Millisecond)
		s.StartIndex = 5
		repo.Save(s)
	}()

	deadline := time.After(50 * time.Millisecond)
	for {
		select {
		case <-done:
			final, _ := repo.Get("user-4")
			assert.Equal(t, 5, final.StartIndex)
			return
		case <-deadline:
			t.Fatal("writer did not finish")
		default:
			s := repo.GetOrCreate("user-4")
			_ = s.StartIndex
		}
	}
}

func TestSessionRepositoryIsolatesUsers(t *testing.T) {
	repo := NewSessionRepository()

	a := repo.GetOrCreate("a")
	a.StartIndex = 3
	repo.Save(a)

	b := repo.GetOrCreate("b")
	assert.Equal(t, 0, b.StartIndex)
}
