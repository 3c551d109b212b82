package server

import (
	"net/http"

	"github.com/bluewake-marine/shorebot/internal/api"
	"github.com/bluewake-marine/shorebot/internal/api/handlers"
	"github.com/bluewake-marine/shorebot/internal/api/middleware"
	"github.com/go-chi/chi/v5"
)

type RouterConfig struct {
	AdminToken       string
	BotHandler       *handlers.BotHandler
	KnowledgeHandler *handlers.KnowledgeHandler
	StatsHandler     *handlers.StatsHandler
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 1 * 1024 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog)
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Chat-facing endpoints are unauthenticated; the bot is wired straight
	// into the public chat widget.
	r.Route("/bot", func(r chi.Router) {
		r.Post("/response", cfg.BotHandler.Respond)
		r.Post("/init", cfg.BotHandler.Init)
		r.Get("/responses", cfg.BotHandler.ListResponses)
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.AdminTokenAuth(cfg.AdminToken))

		r.Route("/knowledge", func(r chi.Router) {
			r.Post("/", cfg.KnowledgeHandler.Create)
			r.Get("/", cfg.KnowledgeHandler.List)
			r.Get("/{id}", cfg.KnowledgeHandler.Get)
			r.Put("/{id}", cfg.KnowledgeHandler.Update)
			r.Delete("/{id}", cfg.KnowledgeHandler.Deactivate)
		})

		r.Get("/stats", cfg.StatsHandler.Overview)
		r.Get("/logs", cfg.StatsHandler.Logs)
	})

	return r
}
