package tools

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/innovateinc/hr-assistant/internal/model/chat"
	"github.com/innovateinc/hr-assistant/internal/service/ai"
)

type failingResponder struct{}

func (failingResponder) Reply(_ context.Context, _ string, _ []chat.Message, _ string) (string, error) {
	return "", errors.New("model unavailable")
}

func setupRouter(responder ai.Responder) *chi.Mux {
	handler := New(responder)
	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestToolsReturnsQueryAndResponse(t *testing.T) {
	r := setupRouter(ai.Static{})
	req := httptest.NewRequest(http.MethodGet, "/tools?query=how+many+holidays%3F", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["query"] != "how many holidays?" {
		t.Fatalf("query not echoed: %q", body["query"])
	}
	if body["response"] == "" {
		t.Fatal("expected non-empty response")
	}
}

func TestToolsResponderFailure(t *testing.T) {
	r := setupRouter(failingResponder{})
	req := httptest.NewRequest(http.MethodGet, "/tools?query=anything", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
}
