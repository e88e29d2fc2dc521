package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// Uploader stores issue images in Google Cloud Storage and returns their
// public URL. Only the URL travels through the submission pipeline; raw
// bytes are never kept on the issue record.
type Uploader struct {
	client *storage.Client
	bucket string
}

// NewUploader connects to GCS using the ambient credentials. The bucket
// name comes from GCS_BUCKET.
func NewUploader(ctx context.Context) (*Uploader, error) {
	bucket := os.Getenv("GCS_BUCKET")
	if bucket == "" {
		return nil, fmt.Errorf("GCS_BUCKET environment variable is not set")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("connect to cloud storage: %w", err)
	}
	return &Uploader{client: client, bucket: bucket}, nil
}

// UploadIssueImage writes the image under issues/ with a unique object
// name and returns the public URL.
func (u *Uploader) UploadIssueImage(ctx context.Context, reader io.Reader, contentType string) (string, error) {
	extension := "jpg"
	switch strings.ToLower(contentType) {
	case "image/png":
		extension = "png"
	case "image/jpeg", "image/jpg":
		extension = "jpeg"
	case "image/gif":
		extension = "gif"
	default:
		log.Printf("storage: unsupported content type %q, defaulting to .jpg", contentType)
	}

	objectName := fmt.Sprintf("issues/%s_%d.%s", uuid.NewString(), time.Now().UnixNano(), extension)

	writer := u.client.Bucket(u.bucket).Object(objectName).NewWriter(ctx)
	if contentType == "" {
		contentType = "image/jpeg"
	}
	writer.ContentType = contentType

	if _, err := io.Copy(writer, reader); err != nil {
		return "", fmt.Errorf("copy image to bucket: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finish image upload: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.bucket, objectName), nil
}

// Close releases the underlying client.
func (u *Uploader) Close() error {
	return u.client.Close()
}
