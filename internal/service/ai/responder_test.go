package ai

import (
	"context"
	"strings"
	"testing"
)

func TestStaticAnswersHandbookTopics(t *testing.T) {
	responder := Static{}
	cases := map[string]string{
		"How much PTO do we have?":            "20 days",
		"What are the company holidays?":      "Canada Day",
		"What is our developer salary?":       "compensation review",
		"What career path options are there?": "Staff Engineer",
	}

	for query, fragment := range cases {
		reply, err := responder.Reply(context.Background(), SystemPrompt, nil, query)
		if err != nil {
			t.Fatalf("Reply(%q) err: %v", query, err)
		}
		if !strings.Contains(reply, fragment) {
			t.Fatalf("Reply(%q) = %q, want fragment %q", query, reply, fragment)
		}
	}
}

func TestStaticDeclinesOutOfScopeQuestions(t *testing.T) {
	reply, err := Static{}.Reply(context.Background(), SystemPrompt, nil, "What's the wifi password?")
	if err != nil {
		t.Fatalf("Reply err: %v", err)
	}
	if !strings.Contains(reply, "outside my scope") {
		t.Fatalf("expected polite decline, got %q", reply)
	}
}

func TestSystemPromptWithTools(t *testing.T) {
	got := SystemPromptWithTools([]string{"helper: responds in all caps"})
	if !strings.Contains(got, "helper: responds in all caps") {
		t.Fatalf("tool description missing from prompt:\n%s", got)
	}
	if SystemPromptWithTools(nil) != SystemPrompt {
		t.Fatal("empty tool list must leave the prompt unchanged")
	}
}
