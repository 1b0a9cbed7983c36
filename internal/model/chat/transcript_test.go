package chat

import "testing"

func TestOutboundExcludesErrorTurns(t *testing.T) {
	transcript := []Message{
		UserMessage("one"),
		AssistantMessage("two"),
		ErrorMessage("connection trouble"),
		UserMessage("three"),
	}

	got := Outbound(transcript)
	if len(got) != 3 {
		t.Fatalf("expected 3 outbound messages, got %d", len(got))
	}
	want := []string{"one", "two", "three"}
	for i, content := range want {
		if got[i].Content != content {
			t.Fatalf("outbound[%d] = %q, want %q", i, got[i].Content, content)
		}
		if got[i].Role == RoleError {
			t.Fatalf("outbound[%d] carries the error role", i)
		}
	}
}

func TestWellFormed(t *testing.T) {
	good := []Message{UserMessage("a"), AssistantMessage("b"), ErrorMessage("c")}
	if !WellFormed(good) {
		t.Fatal("valid roles reported as malformed")
	}

	bad := []Message{UserMessage("a"), {Role: "system", Content: "b"}}
	if WellFormed(bad) {
		t.Fatal("unknown role must be rejected")
	}
}
