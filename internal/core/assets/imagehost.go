package assets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Maximum accepted image size (6MB), matching the host's own limit.
const maxImageSize = 6291456

// ImageHostClient talks to a Cloudinary-style image hosting service:
// POST {base}/upload with a multipart file returns the stored URL and a
// public id; POST {base}/destroy with that id deletes the asset.
type ImageHostClient struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewImageHostClient creates a client for the image hosting service.
// Credentials are bound once here and injected where needed, never read
// from ambient globals at call time.
func NewImageHostClient(baseURL, apiKey string) *ImageHostClient {
	return &ImageHostClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		// Extended timeout for image uploads (30 seconds)
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// Upload sends the file at localPath to the image host.
// Flow:
// 1. Read and size-check the local temp file
// 2. Sniff the MIME type and reject non-image content
// 3. POST multipart to {base}/upload
// 4. Take URL and deletable id from the response body
func (c *ImageHostClient) Upload(ctx context.Context, localPath string) (*Asset, error) {
	if localPath == "" {
		return nil, NewUploadError("no file provided", nil)
	}

	data, err := os.ReadFile(localPath)
	if err != nil {
		return nil, NewUploadError("failed to read local file", err)
	}
	if len(data) == 0 {
		return nil, NewUploadError("file is empty", nil)
	}
	if len(data) > maxImageSize {
		return nil, NewUploadError(
			fmt.Sprintf("image size %d bytes exceeds maximum of %d bytes (6MB)", len(data), maxImageSize), nil)
	}

	mimeType := normalizeMimeType(http.DetectContentType(data))
	if !isValidMimeType(mimeType) {
		return nil, NewUploadError(
			fmt.Sprintf("unsupported MIME type: %s (allowed: image/jpeg, image/png, image/webp)", mimeType), nil)
	}

	// Build multipart body
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(localPath))
	if err != nil {
		return nil, NewUploadError("failed to build multipart body", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, NewUploadError("failed to write multipart body", err)
	}
	if err := writer.Close(); err != nil {
		return nil, NewUploadError("failed to finalize multipart body", err)
	}

	endpoint := c.baseURL + "/upload"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return nil, NewUploadError("failed to create upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, NewUploadError("upload request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close upload response body: %v", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewUploadError("failed to read upload response", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Sanitize error body for logging (prevent sensitive data leakage)
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "... (truncated)"
		}
		log.Printf("[ASSET-UPLOAD-ERROR] Status: %d, Body: %s", resp.StatusCode, bodyPreview)
		return nil, NewUploadError(fmt.Sprintf("image host returned %d", resp.StatusCode), nil)
	}

	var result struct {
		SecureURL string `json:"secure_url"`
		PublicID  string `json:"public_id"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, NewUploadError("failed to parse upload response", err)
	}
	if result.SecureURL == "" {
		return nil, NewUploadError("image host response missing secure_url", nil)
	}

	assetID := result.PublicID
	if assetID == "" {
		// Fragile fallback only: derive the id from the URL path when the
		// host omits public_id. Kept for compatibility with older hosts.
		assetID = assetIDFromURL(result.SecureURL)
		log.Printf("[ASSET-UPLOAD] Warning: response missing public_id, derived %q from URL", assetID)
	}
	if assetID == "" {
		return nil, NewUploadError("image host response missing public_id", nil)
	}

	return &Asset{URL: result.SecureURL, ID: assetID}, nil
}

// Delete removes the asset with the given id from the image host.
// The host answers {"result":"ok"} on success and {"result":"not found"}
// when the asset is already gone; both count as success here so a retried
// delete cannot wedge a post deletion.
func (c *ImageHostClient) Delete(ctx context.Context, assetID string) error {
	if assetID == "" {
		return NewDeletionError(assetID, "asset id is empty", nil)
	}

	payload, err := json.Marshal(map[string]string{"public_id": assetID})
	if err != nil {
		return NewDeletionError(assetID, "failed to marshal destroy payload", err)
	}

	endpoint := c.baseURL + "/destroy"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return NewDeletionError(assetID, "failed to create destroy request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return NewDeletionError(assetID, "destroy request failed", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			log.Printf("Warning: failed to close destroy response body: %v", closeErr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewDeletionError(assetID, "failed to read destroy response", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyPreview := string(body)
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "... (truncated)"
		}
		log.Printf("[ASSET-DELETE-ERROR] Status: %d, Body: %s", resp.StatusCode, bodyPreview)
		return NewDeletionError(assetID, fmt.Sprintf("image host returned %d", resp.StatusCode), nil)
	}

	var result struct {
		Result string `json:"result"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return NewDeletionError(assetID, "failed to parse destroy response", err)
	}

	switch result.Result {
	case "ok", "not found":
		return nil
	default:
		return NewDeletionError(assetID, fmt.Sprintf("image host reported %q", result.Result), nil)
	}
}

// assetIDFromURL extracts the id segment from a stored asset URL
// (last path segment, extension stripped). Fallback path only.
func assetIDFromURL(url string) string {
	segments := strings.Split(url, "/")
	last := segments[len(segments)-1]
	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}
	return last
}

// normalizeMimeType converts non-standard MIME types to their standard equivalents
func normalizeMimeType(mimeType string) string {
	switch mimeType {
	case "image/jpg":
		return "image/jpeg"
	default:
		return mimeType
	}
}

// isValidMimeType checks if the MIME type is allowed for uploads
func isValidMimeType(mimeType string) bool {
	switch mimeType {
	case "image/jpeg", "image/png", "image/webp":
		return true
	default:
		return false
	}
}
