package router

import (
	"net/http"

	"item-catalog/internal/handler"
	"item-catalog/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	itemHandler *handler.ItemHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// RequestID -> Recovery -> Logging -> CORS, then auth on the item group only
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.CORS)

	r.NotFound(handler.NotFound(logger))
	r.MethodNotAllowed(handler.MethodNotAllowed(logger))

	// Health check endpoint (no authentication required)
	r.Get("/health", handler.Health)

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKeyAuth(apiKey, logger))

		r.Route("/items", func(r chi.Router) {
			r.Post("/", itemHandler.Create)
			r.Get("/", itemHandler.List)
			r.Get("/{id}", itemHandler.GetByID)
			r.Patch("/{id}", itemHandler.Update)
			r.Delete("/{id}", itemHandler.Delete)
		})
	})

	return r
}
