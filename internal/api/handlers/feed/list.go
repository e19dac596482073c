package feed

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"Snapfeed/internal/core/posts"
)

// defaultPerPage applies when the client doesn't send a perPage query param.
const defaultPerPage = 10

// ListHandler handles paginated post listing
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{service: service}
}

type listResponse struct {
	Message    string        `json:"message"`
	Posts      []*posts.Post `json:"posts"`
	TotalItems int           `json:"totalItems"`
}

// HandleList handles GET /feed/posts?page=N&perPage=M
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	// Absent or invalid page falls back to the first page
	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			page = parsed
		}
	}

	perPage := defaultPerPage
	if raw := r.URL.Query().Get("perPage"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
				"perPage must be a positive integer")
			return
		}
		perPage = parsed
	}

	result, err := h.service.List(r.Context(), page, perPage)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Keep an empty page as [] rather than null for client compatibility
	if result.Posts == nil {
		result.Posts = []*posts.Post{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(listResponse{
		Message:    "Fetched posts successfully.",
		Posts:      result.Posts,
		TotalItems: result.TotalItems,
	}); err != nil {
		log.Printf("Failed to encode list response: %v", err)
	}
}
