package feed

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/posts"
)

// DeleteHandler handles post deletion requests
type DeleteHandler struct {
	service posts.Service
}

// NewDeleteHandler creates a new delete handler
func NewDeleteHandler(service posts.Service) *DeleteHandler {
	return &DeleteHandler{service: service}
}

// HandleDelete handles DELETE /feed/post/{postId}
// Only the post's creator can delete it.
func (h *DeleteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postId")
	if postID == "" {
		writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
			"postId is required")
		return
	}

	callerID := middleware.GetUserID(r)
	if callerID == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	if err := h.service.Delete(r.Context(), callerID, postID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"message": "Post deleted successfully!",
	}); err != nil {
		log.Printf("Failed to encode delete response: %v", err)
	}
}
