package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/averyhale/socialnet/internal/api/handlers"
	"github.com/averyhale/socialnet/internal/api/middleware"
	"github.com/averyhale/socialnet/internal/service"
)

func NewRouter(services *service.Services) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Account, services.Token)
	accountHandler := handlers.NewAccountHandler(services.Account)
	followHandler := handlers.NewFollowHandler(services.Graph)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services))
				r.Get("/me", authHandler.Me)
			})
		})

		r.Route("/accounts", func(r chi.Router) {
			// Public
			r.Post("/", authHandler.Signup)
			r.Get("/", accountHandler.List)
			r.Get("/{id}", accountHandler.Get)

			// Owner-only mutation and social graph
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services))
				r.Put("/{id}", accountHandler.Update)
				r.Delete("/{id}", accountHandler.Delete)
				r.Post("/{id}/follow", followHandler.Follow)
				r.Delete("/{id}/follow", followHandler.Unfollow)
			})
		})
	})

	return r
}
