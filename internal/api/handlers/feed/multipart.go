package feed

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// maxUploadSize bounds the whole multipart request body (image + fields).
const maxUploadSize = 8 << 20 // 8MB

// saveUploadedImage copies the "image" form file to a temp file and
// returns its path plus a cleanup func. The temp file stays valid for
// the duration of the service call; the handler removes it afterward
// regardless of outcome.
// Returns ("", cleanup, nil) when no image field is present.
func saveUploadedImage(r *http.Request) (string, func(), error) {
	noop := func() {}

	file, header, err := r.FormFile("image")
	if err == http.ErrMissingFile {
		return "", noop, nil
	}
	if err != nil {
		return "", noop, fmt.Errorf("failed to read image field: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			log.Printf("Warning: failed to close uploaded file: %v", closeErr)
		}
	}()

	if header.Size == 0 {
		return "", noop, fmt.Errorf("uploaded image is empty")
	}

	tmp, err := os.CreateTemp("", "upload-*"+safeExt(header))
	if err != nil {
		return "", noop, fmt.Errorf("failed to create temp file: %w", err)
	}

	cleanup := func() {
		if removeErr := os.Remove(tmp.Name()); removeErr != nil {
			log.Printf("Warning: failed to remove temp upload %s: %v", tmp.Name(), removeErr)
		}
	}

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		cleanup()
		return "", noop, fmt.Errorf("failed to buffer uploaded image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("failed to flush uploaded image: %w", err)
	}

	return tmp.Name(), cleanup, nil
}

// safeExt returns the uploaded filename's extension, stripped of
// anything that isn't a plain extension.
func safeExt(header *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(header.Filename)))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
		return ext
	default:
		return ""
	}
}
