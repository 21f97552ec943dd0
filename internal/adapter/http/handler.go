package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"ads-manager/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the chat endpoint, REST
// CRUD over the campaign hierarchy, account endpoints, health and metrics
// on a chi.Router.
type Handler struct {
	chat     port.ChatUseCase
	entities port.EntityUseCase
	auth     port.AuthUseCase
	limiter  *RateLimiter
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler wires every route. limiter may be nil to disable chat rate
// limiting.
func NewHandler(chat port.ChatUseCase, entities port.EntityUseCase, auth port.AuthUseCase, limiter *RateLimiter, logger *slog.Logger) *Handler {
	h := &Handler{chat: chat, entities: entities, auth: auth, limiter: limiter, logger: logger}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/chat", func(r chi.Router) {
			r.Use(h.optionalAuth)
			r.With(h.rateLimit).Post("/", h.handleChat)
			r.Delete("/context", h.handleClearContext)
		})

		r.Route("/campaigns", func(r chi.Router) {
			r.Use(h.optionalAuth)
			r.Get("/", h.handleListCampaigns)
			r.Post("/", h.handleCreateCampaign)
			r.Get("/{id}", h.handleGetCampaign)
			r.Put("/{id}", h.handleUpdateCampaign)
			r.Delete("/{id}", h.handleDeleteCampaign)
			r.Get("/{id}/adsets", h.handleListCampaignAdSets)
		})

		r.Route("/adsets", func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/", h.handleListAdSets)
			r.Post("/", h.handleCreateAdSet)
			r.Get("/{id}", h.handleGetAdSet)
			r.Put("/{id}", h.handleUpdateAdSet)
			r.Delete("/{id}", h.handleDeleteAdSet)
			r.Get("/{id}/ads", h.handleListAdSetAds)
		})

		r.Route("/ads", func(r chi.Router) {
			r.Use(h.requireAuth)
			r.Get("/", h.handleListAds)
			r.Post("/", h.handleCreateAd)
			r.Get("/{id}", h.handleGetAd)
			r.Put("/{id}", h.handleUpdateAd)
			r.Delete("/{id}", h.handleDeleteAd)
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.handleRegister)
			r.Post("/login", h.handleLogin)
			r.With(h.requireAuth).Get("/profile", h.handleProfile)
			r.With(h.requireAuth).Post("/refresh", h.handleRefresh)
		})
	})

	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
