package memory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// Backend is an in-memory implementation of the sitecontent.BlobStore
// interface, used by tests and local development.
type Backend struct {
	mu      sync.RWMutex
	objects map[string]object
}

type object struct {
	data        []byte
	contentType string
	updatedAt   time.Time
}

// New creates a new in-memory storage backend
func New() sitecontent.BlobStore {
	return &Backend{objects: make(map[string]object)}
}

// GetUploadURL returns a URL for uploading content.
// In-memory implementation doesn't use URLs.
func (b *Backend) GetUploadURL(ctx context.Context, objectKey string) (string, error) {
	return "", errors.New("direct upload required for memory backend")
}

// Upload stores content directly. The content type is sniffed from the first
// bytes of the payload.
func (b *Backend) Upload(ctx context.Context, objectKey string, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.objects[objectKey] = object{
		data:        data,
		contentType: http.DetectContentType(data),
		updatedAt:   time.Now().UTC(),
	}
	return nil
}

// GetDownloadURL returns a URL for downloading content.
// In-memory implementation doesn't use URLs.
func (b *Backend) GetDownloadURL(ctx context.Context, objectKey string, downloadFilename string) (string, error) {
	return "", errors.New("direct download required for memory backend")
}

// Download reads content directly
func (b *Backend) Download(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, exists := b.objects[objectKey]
	if !exists {
		return nil, errors.New("object not found")
	}
	return io.NopCloser(bytes.NewReader(obj.data)), nil
}

// Delete removes content
func (b *Backend) Delete(ctx context.Context, objectKey string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.objects[objectKey]; !exists {
		return errors.New("object not found")
	}
	delete(b.objects, objectKey)
	return nil
}

// GetBlobMeta retrieves metadata for a stored object
func (b *Backend) GetBlobMeta(ctx context.Context, objectKey string) (*sitecontent.BlobMeta, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, exists := b.objects[objectKey]
	if !exists {
		return nil, errors.New("object not found")
	}
	return &sitecontent.BlobMeta{
		Key:         objectKey,
		Size:        int64(len(obj.data)),
		ContentType: obj.contentType,
		UpdatedAt:   obj.updatedAt,
	}, nil
}
