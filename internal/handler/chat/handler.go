// Package chat serves POST /api/chat for the development backend. The
// backend is stateless: every request carries the full user/assistant
// history and the reply is generated fresh from it.
package chat

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/innovateinc/hr-assistant/internal/model/chat"
	"github.com/innovateinc/hr-assistant/internal/service/ai"
	"github.com/innovateinc/hr-assistant/pkg/utils"
)

// Handler answers chat turns through the configured responder.
type Handler struct {
	responder ai.Responder
}

// New creates the chat handler.
func New(responder ai.Responder) *Handler {
	return &Handler{responder: responder}
}

// RegisterRoutes mounts the chat route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload chat.Request
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(payload.Messages) == 0 {
		utils.RespondError(w, http.StatusBadRequest, "messages are required")
		return
	}

	last := payload.Messages[len(payload.Messages)-1]
	if last.Role != chat.RoleUser {
		utils.RespondError(w, http.StatusBadRequest, "last message must be a user turn")
		return
	}
	history := payload.Messages[:len(payload.Messages)-1]

	requestID := uuid.NewString()
	log.Printf("[chat] request=%s history=%d", requestID, len(history))

	reply, err := h.responder.Reply(r.Context(), ai.SystemPrompt, history, last.Content)
	if err != nil {
		log.Printf("[chat] request=%s responder error: %v", requestID, err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to get a response from the AI model.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, chat.Response{Response: reply})
}
