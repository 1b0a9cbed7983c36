// Package tools serves GET /api/tools: a free-text query routed
// through the responder, returned as an opaque JSON document.
package tools

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innovateinc/hr-assistant/internal/service/ai"
	"github.com/innovateinc/hr-assistant/pkg/utils"
)

// Handler runs diagnostics-tool queries.
type Handler struct {
	responder ai.Responder
}

// New creates the tools handler.
func New(responder ai.Responder) *Handler {
	return &Handler{responder: responder}
}

// RegisterRoutes mounts the tools route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/tools", h.handleQuery)
}

func (h *Handler) handleQuery(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	reply, err := h.responder.Reply(r.Context(), ai.SystemPrompt, nil, query)
	if err != nil {
		log.Printf("[tools] responder error: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to get a response from the AI model.")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"query":    query,
		"response": reply,
	})
}
