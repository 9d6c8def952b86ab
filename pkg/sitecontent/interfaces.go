package sitecontent

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
)

// AlbumFilter narrows album queries. Name matches case-insensitively as a
// substring of the album name; nil pointers mean "no constraint".
type AlbumFilter struct {
	Name      string
	CreatorID *uuid.UUID
	CreatedIn *DateRange
	UpdatedIn *DateRange
	SortBy    string
	Order     SortOrder
	Offset    int
	Limit     int
}

// MediaFilter narrows media queries.
type MediaFilter struct {
	Name       string
	AlbumID    *uuid.UUID
	UploaderID *uuid.UUID
	UploadedIn *DateRange
	SortBy     string
	Order      SortOrder
	Offset     int
	Limit      int
}

// BlogFilter narrows blog queries.
type BlogFilter struct {
	Title     string
	AuthorID  *uuid.UUID
	CreatedIn *DateRange
	UpdatedIn *DateRange
	SortBy    string
	Order     SortOrder
	Offset    int
	Limit     int
}

// DocumentFilter narrows document queries.
type DocumentFilter struct {
	Name       string
	Category   string
	UploaderID *uuid.UUID
	UploadedIn *DateRange
	SortBy     string
	Order      SortOrder
	Offset     int
	Limit      int
}

// BusinessFilter narrows business queries. ExcludeID skips one row, used by
// the header uniqueness validators when updating.
type BusinessFilter struct {
	Title     string
	ExcludeID *uuid.UUID
	UpdatedIn *DateRange
	SortBy    string
	Order     SortOrder
	Offset    int
	Limit     int
}

// ProductFilter narrows product queries.
type ProductFilter struct {
	Title      string
	BusinessID *uuid.UUID
	ExcludeID  *uuid.UUID
	UpdatedIn  *DateRange
	SortBy     string
	Order      SortOrder
	Offset     int
	Limit      int
}

// ProjectFilter narrows project queries.
type ProjectFilter struct {
	Title      string
	BusinessID *uuid.UUID
	ExcludeID  *uuid.UUID
	UpdatedIn  *DateRange
	SortBy     string
	Order      SortOrder
	Offset     int
	Limit      int
}

// AlbumStore persists albums. List results resolve the creator username;
// GetAlbumBySlug additionally loads the child media set.
type AlbumStore interface {
	CreateAlbum(ctx context.Context, album *Album) error
	GetAlbum(ctx context.Context, id uuid.UUID) (*Album, error)
	GetAlbumBySlug(ctx context.Context, slug string) (*Album, error)
	ListAlbums(ctx context.Context, f AlbumFilter) ([]*Album, error)
	CountAlbums(ctx context.Context, f AlbumFilter) (int64, error)
	NewestAlbumActivity(ctx context.Context, f AlbumFilter) (*time.Time, error)
	ListAlbumMetadata(ctx context.Context) ([]EntityMetadata, error)
	UpdateAlbum(ctx context.Context, album *Album) error
	DeleteAlbum(ctx context.Context, id uuid.UUID) error
}

// MediaStore persists album media items.
type MediaStore interface {
	CreateMedia(ctx context.Context, media *Media) error
	CreateMediaBatch(ctx context.Context, items []*Media) error
	GetMedia(ctx context.Context, id uuid.UUID) (*Media, error)
	GetMediaBySlug(ctx context.Context, slug string) (*Media, error)
	ListMedia(ctx context.Context, f MediaFilter) ([]*Media, error)
	CountMedia(ctx context.Context, f MediaFilter) (int64, error)
	NewestMediaActivity(ctx context.Context, f MediaFilter) (*time.Time, error)
	MediaNameExists(ctx context.Context, name string) (bool, error)
	UpdateMedia(ctx context.Context, media *Media) error
	DeleteMedia(ctx context.Context, id uuid.UUID) error
}

// BlogStore persists blogs.
type BlogStore interface {
	CreateBlog(ctx context.Context, blog *Blog) error
	GetBlog(ctx context.Context, id uuid.UUID) (*Blog, error)
	GetBlogBySlug(ctx context.Context, slug string) (*Blog, error)
	ListBlogs(ctx context.Context, f BlogFilter) ([]*Blog, error)
	CountBlogs(ctx context.Context, f BlogFilter) (int64, error)
	NewestBlogActivity(ctx context.Context, f BlogFilter) (*time.Time, error)
	UpdateBlog(ctx context.Context, blog *Blog) error
	DeleteBlog(ctx context.Context, id uuid.UUID) error
}

// DocumentStore persists documents.
type DocumentStore interface {
	CreateDocument(ctx context.Context, doc *Document) error
	GetDocument(ctx context.Context, id uuid.UUID) (*Document, error)
	GetDocumentBySlug(ctx context.Context, slug string) (*Document, error)
	ListDocuments(ctx context.Context, f DocumentFilter) ([]*Document, error)
	CountDocuments(ctx context.Context, f DocumentFilter) (int64, error)
	NewestDocumentActivity(ctx context.Context, f DocumentFilter) (*time.Time, error)
	DocumentNameExists(ctx context.Context, name string) (bool, error)
	UpdateDocument(ctx context.Context, doc *Document) error
	DeleteDocument(ctx context.Context, id uuid.UUID) error
}

// BusinessStore persists businesses.
type BusinessStore interface {
	CreateBusiness(ctx context.Context, business *Business) error
	GetBusiness(ctx context.Context, id uuid.UUID) (*Business, error)
	GetBusinessBySlug(ctx context.Context, slug string) (*Business, error)
	ListBusinesses(ctx context.Context, f BusinessFilter) ([]*Business, error)
	CountBusinesses(ctx context.Context, f BusinessFilter) (int64, error)
	NewestBusinessActivity(ctx context.Context, f BusinessFilter) (*time.Time, error)
	ListBusinessMetadata(ctx context.Context) ([]EntityMetadata, error)
	UpdateBusiness(ctx context.Context, business *Business) error
	DeleteBusiness(ctx context.Context, id uuid.UUID) error
}

// ProductStore persists products.
type ProductStore interface {
	CreateProduct(ctx context.Context, product *Product) error
	GetProduct(ctx context.Context, id uuid.UUID) (*Product, error)
	GetProductBySlug(ctx context.Context, slug string) (*Product, error)
	ListProducts(ctx context.Context, f ProductFilter) ([]*Product, error)
	CountProducts(ctx context.Context, f ProductFilter) (int64, error)
	NewestProductActivity(ctx context.Context, f ProductFilter) (*time.Time, error)
	UpdateProduct(ctx context.Context, product *Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// ProjectStore persists projects.
type ProjectStore interface {
	CreateProject(ctx context.Context, project *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	GetProjectBySlug(ctx context.Context, slug string) (*Project, error)
	ListProjects(ctx context.Context, f ProjectFilter) ([]*Project, error)
	CountProjects(ctx context.Context, f ProjectFilter) (int64, error)
	NewestProjectActivity(ctx context.Context, f ProjectFilter) (*time.Time, error)
	UpdateProject(ctx context.Context, project *Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error
}

// AdminStore persists backoffice accounts.
type AdminStore interface {
	CreateAdmin(ctx context.Context, admin *Admin) error
	GetAdmin(ctx context.Context, id uuid.UUID) (*Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*Admin, error)
	UpdateAdmin(ctx context.Context, admin *Admin) error
}

// ContactStore persists contact-form messages.
type ContactStore interface {
	CreateContactMessage(ctx context.Context, msg *ContactMessage) error
	ListContactMessages(ctx context.Context, offset, limit int) ([]*ContactMessage, error)
}

// Store is the persistence boundary of the core. Implementations must return
// the package's sentinel errors for missing rows and ErrDuplicateName for
// uniqueness violations.
type Store interface {
	AlbumStore
	MediaStore
	BlogStore
	DocumentStore
	BusinessStore
	ProductStore
	ProjectStore
	AdminStore
	ContactStore
}

// BlobMeta describes an object held by a BlobStore.
type BlobMeta struct {
	Key         string
	Size        int64
	ContentType string
	UpdatedAt   time.Time
	ETag        string
}

// BlobStore is the transport for file bytes (media images, documents).
type BlobStore interface {
	// GetUploadURL returns a presigned URL for uploading an object
	GetUploadURL(ctx context.Context, objectKey string) (string, error)

	// Upload stores an object directly
	Upload(ctx context.Context, objectKey string, reader io.Reader) error

	// GetDownloadURL returns a presigned URL for downloading an object
	GetDownloadURL(ctx context.Context, objectKey string, downloadFilename string) (string, error)

	// Download reads an object directly
	Download(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete removes an object
	Delete(ctx context.Context, objectKey string) error

	// GetBlobMeta retrieves metadata for a stored object
	GetBlobMeta(ctx context.Context, objectKey string) (*BlobMeta, error)
}

// OutboundMail is a queued notification message.
type OutboundMail struct {
	To      string
	Subject string
	Body    string
}

// MailQueue accepts outbound mail for asynchronous delivery. Delivery itself
// happens outside the core.
type MailQueue interface {
	Enqueue(ctx context.Context, mail OutboundMail) error
}
