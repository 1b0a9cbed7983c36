package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chatHandler "github.com/innovateinc/hr-assistant/internal/handler/chat"
	faqHandler "github.com/innovateinc/hr-assistant/internal/handler/faq"
	toolsHandler "github.com/innovateinc/hr-assistant/internal/handler/tools"
	middlewarePkg "github.com/innovateinc/hr-assistant/internal/middleware"
	"github.com/innovateinc/hr-assistant/internal/service/ai"
)

// NewRouter wires the three API routes to the responder.
func NewRouter(responder ai.Responder, listTools faqHandler.ToolLister) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Route("/api", func(api chi.Router) {
		chatHandler.New(responder).RegisterRoutes(api)
		faqHandler.New(responder, listTools).RegisterRoutes(api)
		toolsHandler.New(responder).RegisterRoutes(api)
	})

	return r
}
