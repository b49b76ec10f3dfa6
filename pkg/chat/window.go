package chat

import "wingman-ai-be/internal/entity"

// Window is the per-session cursor into an owner's chronologically ordered
// chat log. It controls which suffix of the log is visible without touching
// the stored records: "new chat" moves the cursor to the end, "show previous"
// moves it back to zero. The cursor is ephemeral session state, never persisted.
type Window struct {
	StartIndex int
}

// Reset shows the full history.
func (w *Window) Reset() {
	w.StartIndex = 0
}

// JumpToEnd starts a fresh conversation view. Prior records stay in the
// store, they are just excluded from the visible set.
func (w *Window) JumpToEnd(total int) {
	w.StartIndex = total
}

// Clamp self-heals a stale cursor. If records were deleted externally and
// the cursor now points past the end, the window falls back to showing
// everything. Called before every read.
func (w *Window) Clamp(total int) {
	if w.StartIndex > total || w.StartIndex < 0 {
		w.StartIndex = 0
	}
}

// Visible returns the suffix of records starting at the cursor. The caller
// must Clamp first so the index is in range.
func (w *Window) Visible(records []*entity.ChatRecord) []*entity.ChatRecord {
	if w.StartIndex >= len(records) {
		return []*entity.ChatRecord{}
	}
	return records[w.StartIndex:]
}
