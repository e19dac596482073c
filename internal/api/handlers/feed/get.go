package feed

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/core/posts"
)

// GetHandler handles single post fetches
type GetHandler struct {
	service posts.Service
}

// NewGetHandler creates a new get handler
func NewGetHandler(service posts.Service) *GetHandler {
	return &GetHandler{service: service}
}

type postResponse struct {
	Message string      `json:"message"`
	Post    *posts.Post `json:"post"`
}

// HandleGet handles GET /feed/post/{postId}
func (h *GetHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")
	if postID == "" {
		writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
			"postId is required")
		return
	}

	post, err := h.service.Get(r.Context(), postID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(postResponse{Message: "Post fetched.", Post: post}); err != nil {
		log.Printf("Failed to encode post response: %v", err)
	}
}
