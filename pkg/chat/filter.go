package chat

import (
	"strings"

	"wingman-ai-be/internal/entity"
)

// FilterRecords narrows the visible set to records whose input or response
// contains the query, case-insensitively. A blank query is the identity.
// Filtering is a display-only lens: the prompt builder never sees it.
func FilterRecords(records []*entity.ChatRecord, query string) []*entity.ChatRecord {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return records
	}

	filtered := make([]*entity.ChatRecord, 0, len(records))
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.UserInput), q) ||
			strings.Contains(strings.ToLower(r.AiResponse), q) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
