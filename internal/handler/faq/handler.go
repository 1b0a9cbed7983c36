// Package faq serves GET /api/faq: answers to a fixed question catalog,
// optionally enriched with tools discovered from an MCP server named in
// the request.
package faq

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/innovateinc/hr-assistant/internal/model/faq"
	"github.com/innovateinc/hr-assistant/internal/service/ai"
	"github.com/innovateinc/hr-assistant/internal/service/mcptools"
	"github.com/innovateinc/hr-assistant/pkg/utils"
)

// ToolLister discovers tools from an MCP server URL.
type ToolLister func(ctx context.Context, url string) ([]mcptools.ToolInfo, error)

// Handler answers catalog questions.
type Handler struct {
	responder ai.Responder
	listTools ToolLister
}

// New creates the FAQ handler. listTools may be nil when MCP discovery
// is not wired (tests).
func New(responder ai.Responder, listTools ToolLister) *Handler {
	return &Handler{responder: responder, listTools: listTools}
}

// RegisterRoutes mounts the FAQ route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/faq", h.handleFAQ)
}

func (h *Handler) handleFAQ(w http.ResponseWriter, r *http.Request) {
	question := r.URL.Query().Get("question")
	if !faq.Valid(question) {
		utils.RespondDetail(w, http.StatusBadRequest, "Invalid question provided.")
		return
	}

	response := map[string]any{"question_asked": question}

	var toolDescs []string
	if mcpServer := r.URL.Query().Get("mcp-server"); mcpServer != "" {
		if h.listTools == nil {
			utils.RespondDetail(w, http.StatusServiceUnavailable, "MCP discovery unavailable")
			return
		}
		response["mcp_server_received"] = mcpServer

		tools, err := h.listTools(r.Context(), mcpServer)
		if err != nil {
			log.Printf("[faq] MCP discovery failed: %v", err)
			utils.RespondDetail(w, http.StatusBadGateway, "failed to reach MCP server")
			return
		}
		for _, tool := range tools {
			toolDescs = append(toolDescs, tool.Describe())
		}
	}

	answer, err := h.responder.Reply(r.Context(), ai.SystemPromptWithTools(toolDescs), nil, question)
	if err != nil {
		log.Printf("[faq] responder error: %v", err)
		utils.RespondDetail(w, http.StatusInternalServerError, "Failed to get a response from the AI model.")
		return
	}
	response["answer"] = answer

	utils.RespondJSON(w, http.StatusOK, response)
}
