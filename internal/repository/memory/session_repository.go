package memory

import (
	"time"

	"wingman-ai-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds per-user session view state (chat window cursor,
// theme) in process memory. Entries expire after an hour of inactivity,
// which doubles as the session lifecycle: an expired entry simply means a
// fresh window at index zero on the next read.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &SessionRepository{
		cache: c,
	}
}

// Save stores a snapshot of the session. Sessions live in the cache by
// value: concurrent requests for the same user each work on a private
// copy, and a write only becomes visible through Save (last write wins).
func (r *SessionRepository) Save(session *store.Session) {
	r.cache.Set(session.UserID, *session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(userID string) (*store.Session, bool) {
	if x, found := r.cache.Get(userID); found {
		s := x.(store.Session)
		return &s, true
	}
	return nil, false
}

// GetOrCreate returns the user's session state, creating a default one on
// first access so callers never deal with a missing window.
func (r *SessionRepository) GetOrCreate(userID string) *store.Session {
	if s, ok := r.Get(userID); ok {
		return s
	}
	s := store.NewSession(userID)
	r.Save(s)
	return s
}

func (r *SessionRepository) Delete(userID string) {
	r.cache.Delete(userID)
}
