package feed

import (
	"encoding/json"
	"log"
	"net/http"

	"Snapfeed/internal/core/assets"
	"Snapfeed/internal/core/posts"
	"Snapfeed/internal/core/users"
)

type errorResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(errorResponse{Message: message, Data: data}); err != nil {
		log.Printf("Failed to encode error response: %v", err)
	}
}

// handleServiceError maps service errors to HTTP responses.
// Status codes match the original client contract: 404 for missing
// post/user, 403 for ownership failures, 422 for bad input, 500 for
// asset-store and storage failures.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case err == posts.ErrNotFound:
		writeError(w, http.StatusNotFound, "Could not find post.", nil)

	case err == users.ErrUserNotFound:
		writeError(w, http.StatusNotFound, "User not found.", nil)

	case err == posts.ErrForbidden:
		writeError(w, http.StatusForbidden, "You are not authorized to modify this post.", nil)

	case posts.IsValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
			err.Error())

	case assets.IsUploadError(err):
		log.Printf("Asset upload failed in feed handler: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to upload image.", nil)

	case assets.IsDeletionError(err):
		log.Printf("Asset deletion failed in feed handler: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to delete image.", nil)

	default:
		// Don't leak internal error details to clients
		log.Printf("Unexpected error in feed handler: %v", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred.", nil)
	}
}
