package chat

import (
	"testing"

	"wingman-ai-be/internal/entity"

	"github.com/google/uuid"
)

func makeRecords(pairs ...[2]string) []*entity.ChatRecord {
	records := make([]*entity.ChatRecord, 0, len(pairs))
	for _, p := range pairs {
		records = append(records, &entity.ChatRecord{
			Id:         uuid.New(),
			UserInput:  p[0],
			AiResponse: p[1],
		})
	}
	return records
}

func TestWindowJumpToEndHidesHistory(t *testing.T) {
	records := makeRecords([2]string{"hi", "hello"}, [2]string{"bye", "goodbye"})

	w := &Window{}
	w.JumpToEnd(len(records))

	if got := w.Visible(records); len(got) != 0 {
		t.Errorf("Visible after JumpToEnd = %d records, want 0", len(got))
	}

	// One new append becomes the only visible record.
	records = append(records, makeRecords([2]string{"how are you?", "fine thanks"})...)
	got := w.Visible(records)
	if len(got) != 1 {
		t.Fatalf("Visible after append = %d records, want 1", len(got))
	}
	if got[0].UserInput != "how are you?" {
		t.Errorf("Visible[0].UserInput = %q, want %q", got[0].UserInput, "how are you?")
	}
}

func TestWindowClamp(t *testing.T) {
	tests := []struct {
		name       string
		startIndex int
		total      int
		want       int
	}{
		{name: "in range", startIndex: 2, total: 5, want: 2},
		{name: "at end", startIndex: 5, total: 5, want: 5},
		{name: "stale past end", startIndex: 6, total: 5, want: 0},
		{name: "stale after clear", startIndex: 3, total: 0, want: 0},
		{name: "negative", startIndex: -1, total: 5, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Window{StartIndex: tt.startIndex}
			w.Clamp(tt.total)
			if w.StartIndex != tt.want {
				t.Errorf("StartIndex = %d, want %d", w.StartIndex, tt.want)
			}
		})
	}
}

func TestWindowReset(t *testing.T) {
	w := &Window{StartIndex: 7}
	w.Reset()
	if w.StartIndex != 0 {
		t.Errorf("StartIndex after Reset = %d, want 0", w.StartIndex)
	}
}

func TestWindowVisibleSuffix(t *testing.T) {
	records := makeRecords(
		[2]string{"a", "1"},
		[2]string{"b", "2"},
		[2]string{"c", "3"},
	)

	w := &Window{StartIndex: 1}
	got := w.Visible(records)
	if len(got) != 2 {
		t.Fatalf("Visible = %d records, want 2", len(got))
	}
	if got[0].UserInput != "b" || got[1].UserInput != "c" {
		t.Errorf("Visible = [%q %q], want [b c]", got[0].UserInput, got[1].UserInput)
	}
}
