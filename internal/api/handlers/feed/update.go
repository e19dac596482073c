package feed

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/posts"
)

// UpdateHandler handles post update requests
type UpdateHandler struct {
	service posts.Service
}

// NewUpdateHandler creates a new update handler
func NewUpdateHandler(service posts.Service) *UpdateHandler {
	return &UpdateHandler{service: service}
}

// HandleUpdate handles PUT /feed/post/{postId}
// Accepts either a multipart form (title, content, optional image file)
// or a JSON body {title, content} when the image is unchanged.
func (h *UpdateHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	var title, content, filePath string
	cleanup := func() {}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
				"malformed multipart form data")
			return
		}
		title = r.FormValue("title")
		content = r.FormValue("content")

		var err error
		filePath, cleanup, err = saveUploadedImage(r)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
				err.Error())
			return
		}
	} else {
		var body struct {
			Title   string `json:"title"`
			Content string `json:"content"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
				"invalid request body")
			return
		}
		title = body.Title
		content = body.Content
	}
	defer cleanup()

	// Title/content emptiness is validated by the service after the
	// ownership check, matching the operation's failure ordering.
	post, err := h.service.Update(r.Context(), posts.UpdateInput{
		CallerID: callerID,
		PostID:   postID,
		Title:    title,
		Content:  content,
		FilePath: filePath,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(postResponse{
		Message: "Post updated successfully!",
		Post:    post,
	}); err != nil {
		log.Printf("Failed to encode update response: %v", err)
	}
}
