package routes

import (
	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/api/handlers/status"
	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/users"
)

// RegisterStatusRoutes registers the user status endpoints on the router
func RegisterStatusRoutes(r chi.Router, service users.Service, authMiddleware *middleware.AuthMiddleware) {
	handler := status.NewHandler(service)

	r.Route("/user", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/status", handler.HandleGet)
		r.Put("/status", handler.HandleUpdate)
	})
}
