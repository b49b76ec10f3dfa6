package prompt

import (
	"strings"

	"wingman-ai-be/internal/entity"
)

// DefaultWindowSize bounds the prompt to the most recent exchanges.
// Five turns keeps token cost and latency flat while preserving
// short-term coherence.
const DefaultWindowSize = 5

// Builder assembles the flat completion prompt sent to the LLM backend.
type Builder struct {
	WindowSize int
}

func NewBuilder(windowSize int) *Builder {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &Builder{WindowSize: windowSize}
}

// Build formats the last WindowSize visible records as alternating
// User/AI lines and appends the new message as an open generation turn:
//
//	User: <input>
//	AI: <response>
//
//	User: <new text>
//	AI:
//
// The input must be the visible set, not the search-filtered one. Search
// affects only what the user sees, never what the model remembers.
func (b *Builder) Build(visible []*entity.ChatRecord, newUserText string) string {
	context := visible
	if len(context) > b.WindowSize {
		context = context[len(context)-b.WindowSize:]
	}

	var sb strings.Builder
	for _, r := range context {
		sb.WriteString("User: ")
		sb.WriteString(r.UserInput)
		sb.WriteString("\nAI: ")
		sb.WriteString(r.AiResponse)
		sb.WriteString("\n\n")
	}
	sb.WriteString("User: ")
	sb.WriteString(newUserText)
	sb.WriteString("\nAI:")
	return sb.String()
}
