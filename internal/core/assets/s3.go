package assets

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3Store stores image assets in an S3 bucket. The object key doubles as
// the deletable asset id; the public URL is composed from publicBaseURL.
type S3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store creates an S3-backed asset store.
// endpoint is optional; set it for S3-compatible stores (MinIO etc.).
func NewS3Store(ctx context.Context, region, bucket, endpoint, publicBaseURL string) (*S3Store, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &S3Store{
		client: s3.NewFromConfig(cfg, func(o *s3.Options) {
			if endpoint != "" {
				o.BaseEndpoint = aws.String(endpoint)
				o.UsePathStyle = true
			}
		}),
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}, nil
}

// Upload puts the file at localPath into the bucket under a fresh key
// and returns the composed public URL plus the key as the asset id.
func (s *S3Store) Upload(ctx context.Context, localPath string) (*Asset, error) {
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

	ext := filepath.Ext(localPath)
	if ext == "" {
		if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
			ext = exts[0]
		}
	}
	key := "images/" + uuid.NewString() + ext

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return nil, NewUploadError("s3 put object failed", err)
	}

	return &Asset{
		URL: fmt.Sprintf("%s/%s", s.publicBaseURL, key),
		ID:  key,
	}, nil
}

// Delete removes the object for the given key. S3 DeleteObject succeeds
// for keys that no longer exist, so deletes are naturally idempotent.
func (s *S3Store) Delete(ctx context.Context, assetID string) error {
	if assetID == "" {
		return NewDeletionError(assetID, "asset id is empty", nil)
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(assetID),
	})
	if err != nil {
		return NewDeletionError(assetID, "s3 delete object failed", err)
	}
	return nil
}
