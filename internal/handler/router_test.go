package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/innovateinc/hr-assistant/internal/gateway"
	"github.com/innovateinc/hr-assistant/internal/handler"
	"github.com/innovateinc/hr-assistant/internal/model/chat"
	"github.com/innovateinc/hr-assistant/internal/service/ai"
	"github.com/innovateinc/hr-assistant/internal/session"
	"github.com/innovateinc/hr-assistant/internal/store"
)

func newTestRouter() http.Handler {
	return handler.NewRouter(ai.Static{}, nil)
}

// End-to-end turn against the real router: controller to gateway to
// handlers and back, with persistence.
func TestFullChatTurnAgainstRouter(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	history := store.NewHistory(filepath.Join(t.TempDir(), "history.json"))
	gw := gateway.NewClient(srv.URL)
	ctrl := session.New(gw, history)

	if ran := ctrl.Turn(context.Background(), "How much PTO do we have?"); !ran {
		t.Fatal("expected the turn to run")
	}

	transcript := ctrl.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("expected user+assistant turns, got %d", len(transcript))
	}
	if transcript[1].Role != chat.RoleAssistant || transcript[1].Content == "" {
		t.Fatalf("unexpected assistant turn: %+v", transcript[1])
	}
	if ctrl.State() != session.Idle {
		t.Fatal("controller must return to Idle")
	}

	persisted := history.Load()
	if len(persisted) != 2 {
		t.Fatalf("slot must match the transcript, got %d messages", len(persisted))
	}
}

func TestFAQLookupAgainstRouter(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	gw := gateway.NewClient(srv.URL)
	body, err := gw.LookupFAQ(context.Background(), "What are the company holidays?", "")
	if err != nil {
		t.Fatalf("LookupFAQ failed: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("expected a JSON payload")
	}

	_, err = gw.LookupFAQ(context.Background(), "not in the catalog", "")
	if err == nil {
		t.Fatal("expected an error for an unknown question")
	}
	if err.Error() != "Invalid question provided." {
		t.Fatalf("expected the backend detail message, got %q", err)
	}
}

func TestToolQueryAgainstRouter(t *testing.T) {
	srv := httptest.NewServer(newTestRouter())
	defer srv.Close()

	gw := gateway.NewClient(srv.URL)
	body, err := gw.RunToolQuery(context.Background(), "how many holidays?")
	if err != nil {
		t.Fatalf("RunToolQuery failed: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("expected a JSON payload")
	}
}
