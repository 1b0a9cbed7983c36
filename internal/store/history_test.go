package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/innovateinc/hr-assistant/internal/model/chat"
)

func tempHistory(t *testing.T) *History {
	t.Helper()
	return NewHistory(filepath.Join(t.TempDir(), "history.json"))
}

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	h := tempHistory(t)
	if got := h.Load(); len(got) != 0 {
		t.Fatalf("expected empty transcript, got %d messages", len(got))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	h := tempHistory(t)
	transcript := []chat.Message{
		chat.UserMessage("What is the PTO policy?"),
		chat.AssistantMessage("You accrue 15 days/year."),
		chat.ErrorMessage("Sorry, I'm having trouble connecting. Please try again."),
	}

	if err := h.Save(transcript); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := h.Load()
	if len(got) != len(transcript) {
		t.Fatalf("expected %d messages, got %d", len(transcript), len(got))
	}
	for i := range transcript {
		if got[i] != transcript[i] {
			t.Fatalf("message %d mismatch: got %+v want %+v", i, got[i], transcript[i])
		}
	}
}

func TestSaveOverwritesPriorValue(t *testing.T) {
	h := tempHistory(t)
	if err := h.Save([]chat.Message{chat.UserMessage("first")}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := h.Save([]chat.Message{chat.UserMessage("second")}); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	got := h.Load()
	if len(got) != 1 || got[0].Content != "second" {
		t.Fatalf("expected single overwritten message, got %+v", got)
	}
}

func TestLoadMalformedJSONReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	h := NewHistory(path)
	if got := h.Load(); len(got) != 0 {
		t.Fatalf("expected empty transcript for malformed slot, got %d messages", len(got))
	}
}

func TestLoadUnknownRoleReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")
	raw := `[{"role":"user","content":"hi"},{"role":"system","content":"nope"}]`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	h := NewHistory(path)
	if got := h.Load(); len(got) != 0 {
		t.Fatalf("expected empty transcript for unknown role, got %d messages", len(got))
	}
}

func TestClearRemovesSlot(t *testing.T) {
	h := tempHistory(t)
	if err := h.Save([]chat.Message{chat.UserMessage("hello")}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := h.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if got := h.Load(); len(got) != 0 {
		t.Fatalf("expected empty transcript after clear, got %d messages", len(got))
	}
	// clearing an already-empty slot is fine
	if err := h.Clear(); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
}

func TestSaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "history.json")
	h := NewHistory(path)
	if err := h.Save([]chat.Message{chat.UserMessage("hello")}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got := h.Load(); len(got) != 1 {
		t.Fatalf("expected 1 message, got %d", len(got))
	}
}
