package sitecontent

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Service is the main interface for content operations.
type Service interface {
	// Album operations
	ListAlbumMetadata(ctx context.Context) ([]EntityMetadata, error)
	ListAlbums(ctx context.Context, req ListAlbumsRequest) (*AlbumList, error)
	GetAlbumBySlug(ctx context.Context, slug string) (*Album, error)
	CreateAlbum(ctx context.Context, req CreateAlbumRequest) (*Album, error)
	UpdateAlbum(ctx context.Context, slug string, req UpdateAlbumRequest) (*Album, error)
	DeleteAlbum(ctx context.Context, slug string) (*Album, error)

	// Media operations
	ListMedia(ctx context.Context, req ListMediaRequest) (*MediaList, error)
	GetMediaBySlug(ctx context.Context, slug string) (*Media, error)
	CreateMedia(ctx context.Context, albumSlug string, uploaderID uuid.UUID, items []CreateMediaRequest) ([]*Media, error)
	UpdateMedia(ctx context.Context, slug string, uploaderID uuid.UUID, req UpdateMediaRequest) (*Media, error)
	DeleteMedia(ctx context.Context, slug string) (*Media, error)

	// Blog operations
	ListBlogs(ctx context.Context, req ListBlogsRequest) (*BlogList, error)
	GetBlogBySlug(ctx context.Context, slug string) (*Blog, error)
	CreateBlog(ctx context.Context, req CreateBlogRequest) (*Blog, error)
	UpdateBlog(ctx context.Context, slug string, req UpdateBlogRequest) (*Blog, error)
	DeleteBlog(ctx context.Context, slug string) (*Blog, error)

	// Document operations
	ListDocuments(ctx context.Context, req ListDocumentsRequest) (*DocumentList, error)
	GetDocumentBySlug(ctx context.Context, slug string) (*Document, error)
	CreateDocument(ctx context.Context, req CreateDocumentRequest) (*Document, error)
	UpdateDocument(ctx context.Context, slug string, req UpdateDocumentRequest) (*Document, error)
	DeleteDocument(ctx context.Context, slug string) (*Document, error)

	// Business operations
	ListBusinessMetadata(ctx context.Context) ([]EntityMetadata, error)
	ListBusinesses(ctx context.Context, req ListBusinessesRequest) (*BusinessList, error)
	GetBusinessBySlug(ctx context.Context, slug string) (*Business, error)
	CreateBusiness(ctx context.Context, req CreateBusinessRequest) (*Business, error)
	UpdateBusiness(ctx context.Context, slug string, req UpdateBusinessRequest) (*Business, error)
	DeleteBusiness(ctx context.Context, slug string) (*Business, error)

	// Product operations
	ListProducts(ctx context.Context, req ListProductsRequest) (*ProductList, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	UpdateProduct(ctx context.Context, slug string, req UpdateProductRequest) (*Product, error)
	DeleteProduct(ctx context.Context, slug string) (*Product, error)

	// Project operations
	ListProjects(ctx context.Context, req ListProjectsRequest) (*ProjectList, error)
	GetProjectBySlug(ctx context.Context, slug string) (*Project, error)
	CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error)
	UpdateProject(ctx context.Context, slug string, req UpdateProjectRequest) (*Project, error)
	DeleteProject(ctx context.Context, slug string) (*Project, error)

	// Unified search across all content types
	Search(ctx context.Context, req SearchRequest) (*SearchResult, error)

	// Contact form
	SubmitContactMessage(ctx context.Context, req ContactRequest) (*ContactMessage, error)
}

// service implements the Service interface
type service struct {
	store           Store
	blobStores      map[string]BlobStore
	mailQueue       MailQueue
	defaultImageURL string
	ledger          *SizeLedger
}

// Option represents a functional option for configuring the service
type Option func(*service)

// WithStore sets the persistence store for the service
func WithStore(store Store) Option {
	return func(s *service) {
		s.store = store
	}
}

// WithBlobStore adds a blob storage backend
func WithBlobStore(name string, store BlobStore) Option {
	return func(s *service) {
		if s.blobStores == nil {
			s.blobStores = make(map[string]BlobStore)
		}
		s.blobStores[name] = store
	}
}

// WithMailQueue sets the outbound mail queue
func WithMailQueue(queue MailQueue) Option {
	return func(s *service) {
		s.mailQueue = queue
	}
}

// WithDefaultImageURL sets the fallback image used for album and business
// headers when no media exists
func WithDefaultImageURL(url string) Option {
	return func(s *service) {
		s.defaultImageURL = url
	}
}

// New creates a new service instance with the given options
func New(options ...Option) (Service, error) {
	s := &service{
		blobStores: make(map[string]BlobStore),
	}

	for _, option := range options {
		option(s)
	}

	if s.store == nil {
		return nil, fmt.Errorf("store is required")
	}

	s.ledger = NewSizeLedger(s.store, s.defaultImageURL)

	return s, nil
}

// GetBackend returns the named blob storage backend.
func (s *service) GetBackend(name string) (BlobStore, error) {
	backend, exists := s.blobStores[name]
	if !exists {
		return nil, fmt.Errorf("storage backend not found: %s", name)
	}
	return backend, nil
}
