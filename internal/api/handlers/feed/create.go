package feed

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"Snapfeed/internal/api/middleware"
	"Snapfeed/internal/core/posts"
)

var validate = validator.New()

// CreateHandler handles post creation requests
type CreateHandler struct {
	service posts.Service
}

// NewCreateHandler creates a new create handler
func NewCreateHandler(service posts.Service) *CreateHandler {
	return &CreateHandler{service: service}
}

type createPostForm struct {
	Title   string `validate:"required"`
	Content string `validate:"required"`
}

// HandleCreate handles POST /feed/post
// Expects a multipart form with title, content and an image file.
func (h *CreateHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	// Bound the body before parsing the multipart form
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
			"expected multipart form data with an image file")
		return
	}

	callerID := middleware.GetUserID(r)
	if callerID == "" {
		writeError(w, http.StatusUnauthorized, "Authentication required.", nil)
		return
	}

	form := createPostForm{
		Title:   r.FormValue("title"),
		Content: r.FormValue("content"),
	}
	if err := validate.Struct(form); err != nil {
		writeError(w, http.StatusUnprocessableEntity, "Validation failed, entered data is incorrect.",
			validationDetails(err))
		return
	}

	filePath, cleanup, err := saveUploadedImage(r)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "No file uploaded.", err.Error())
		return
	}
	defer cleanup()
	if filePath == "" {
		writeError(w, http.StatusUnprocessableEntity, "No file uploaded.", nil)
		return
	}

	post, err := h.service.Create(r.Context(), posts.CreateInput{
		CallerID: callerID,
		Title:    form.Title,
		Content:  form.Content,
		FilePath: filePath,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(postResponse{
		Message: "Post created successfully!",
		Post:    post,
	}); err != nil {
		log.Printf("Failed to encode create response: %v", err)
	}
}

// validationDetails flattens validator errors into client-facing details
func validationDetails(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fe.Field()+" is required")
	}
	return details
}
