package assets

import (
	"errors"
	"fmt"
)

// UploadError is returned when the store could not produce a usable URL
// for an uploaded file.
type UploadError struct {
	Message string
	Err     error
}

func (e *UploadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("asset upload failed: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("asset upload failed: %s", e.Message)
}

func (e *UploadError) Unwrap() error { return e.Err }

// NewUploadError creates a new upload error
func NewUploadError(message string, err error) error {
	return &UploadError{Message: message, Err: err}
}

// IsUploadError checks if error is an asset upload error
func IsUploadError(err error) bool {
	var uploadErr *UploadError
	return errors.As(err, &uploadErr)
}

// DeletionError is returned when the store reports non-success for a
// delete request. "Already gone" is not an error; adapters treat it as
// success so deletes stay idempotent.
type DeletionError struct {
	AssetID string
	Message string
	Err     error
}

func (e *DeletionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("asset deletion failed for %s: %s: %v", e.AssetID, e.Message, e.Err)
	}
	return fmt.Sprintf("asset deletion failed for %s: %s", e.AssetID, e.Message)
}

func (e *DeletionError) Unwrap() error { return e.Err }

// NewDeletionError creates a new deletion error
func NewDeletionError(assetID, message string, err error) error {
	return &DeletionError{AssetID: assetID, Message: message, Err: err}
}

// IsDeletionError checks if error is an asset deletion error
func IsDeletionError(err error) bool {
	var delErr *DeletionError
	return errors.As(err, &delErr)
}
