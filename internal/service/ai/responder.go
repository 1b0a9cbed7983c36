// Package ai generates assistant replies for the development backend.
// The real responder runs an eino chain against the configured Ark
// model; a deterministic canned responder stands in when no
// credentials are present, which also keeps handler tests offline.
package ai

import (
	"context"
	"strings"

	"github.com/innovateinc/hr-assistant/internal/model/chat"
)

// Responder produces one assistant reply from a system prompt, the
// prior user/assistant history, and the newest user query.
type Responder interface {
	Reply(ctx context.Context, system string, history []chat.Message, query string) (string, error)
}

// Static answers from the handbook without a model. Lookup is by
// keyword so the FAQ catalog and simple chat turns both resolve.
type Static struct{}

// Reply implements Responder.
func (Static) Reply(_ context.Context, _ string, _ []chat.Message, query string) (string, error) {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "holiday"):
		return "Innovate Inc. observes New Year's Day (Jan 1) and Canada Day.", nil
	case strings.Contains(q, "pto") || strings.Contains(q, "leave") || strings.Contains(q, "time off"):
		return "Employees receive 20 days of paid time off (PTO) per year.", nil
	case strings.Contains(q, "salary"):
		return "Developer salaries are set by the annual compensation review.", nil
	case strings.Contains(q, "career"):
		return "Engineers progress from Developer to Senior Developer to Staff Engineer.", nil
	default:
		return "I'm sorry, that question is outside my scope. Please ask about holidays, PTO, salaries, or career paths.", nil
	}
}
