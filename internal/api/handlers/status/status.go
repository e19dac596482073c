package status

import (
	"encoding/json"
	"log"
	"net/http"

	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/users"
)

// Handler serves the status feature: a single short string per user.
type Handler struct {
	service users.Service
}

// NewHandler creates a new status handler
func NewHandler(service users.Service) *Handler {
	return &Handler{service: service}
}

// HandleGet handles GET /user/status
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	current, err := h.service.GetStatus(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": current})
}

// HandleUpdate handles PUT /user/status with body {"status": "..."}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required.")
		return
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Validation failed.")
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), userID, body.Status)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "Status updated successfully.",
		"status":  updated,
	})
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch err {
	case users.ErrUserNotFound:
		writeError(w, http.StatusNotFound, "User not found.")
	case users.ErrEmptyStatus:
		writeError(w, http.StatusUnprocessableEntity, "Status cannot be empty.")
	default:
		log.Printf("Unexpected error in status handler: %v", err)
		writeError(w, http.StatusInternalServerError, "An internal error occurred.")
	}
}

func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"message": message})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Failed to encode status response: %v", err)
	}
}
