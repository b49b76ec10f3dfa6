package store

const (
	ThemeLight = "Light"
	ThemeDark  = "Dark"
)

// Session is the per-user ephemeral view state kept in memory for the
// lifetime of a login. It is never persisted: the chat window cursor and
// theme reset when the session expires or the user logs out.
type Session struct {
	UserID string `json:"user_id"`

	// StartIndex is the chat window cursor into the owner's ordered log.
	StartIndex int `json:"start_index"`

	// Theme is the UI preference ("Light" | "Dark").
	Theme string `json:"theme"`
}

func NewSession(userID string) *Session {
	return &Session{
		UserID: userID,
		Theme:  ThemeLight,
	}
}
