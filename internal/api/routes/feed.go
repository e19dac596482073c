package routes

import (
	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/api/handlers/feed"
	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/posts"
)

// RegisterFeedRoutes registers the post lifecycle endpoints on the router.
// Reads require authentication too, matching the original client contract.
func RegisterFeedRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	listHandler := feed.NewListHandler(service)
	getHandler := feed.NewGetHandler(service)
	createHandler := feed.NewCreateHandler(service)
	updateHandler := feed.NewUpdateHandler(service)
	deleteHandler := feed.NewDeleteHandler(service)

	r.Route("/feed", func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Get("/posts", listHandler.HandleList)
		r.Post("/post", createHandler.HandleCreate)
		r.Get("/post/{postId}", getHandler.HandleGet)
		r.Put("/post/{postId}", updateHandler.HandleUpdate)
		r.Delete("/post/{postId}", deleteHandler.HandleDelete)
	})
}
