package sitecontent

import (
	"github.com/google/uuid"
)

// SearchSort selects the comparator for the merged search feed.
type SearchSort string

const (
	// SearchSortName orders by display name, locale-aware.
	SearchSortName SearchSort = "name"
	// SearchSortActivity orders by last activity timestamp.
	SearchSortActivity SearchSort = "updatedAt"
)

// SearchRequest contains parameters for the unified search.
type SearchRequest struct {
	Name   string
	SortBy SearchSort
	Order  SortOrder
}

// SearchResult is the merged, sorted search feed. Newest is the most recent
// activity timestamp across the whole set, formatted, or empty when the set
// is empty.
type SearchResult struct {
	Total  int             `json:"total"`
	Newest string          `json:"newest,omitempty"`
	Items  []FeatureRecord `json:"data"`
}

// ListAlbumsRequest contains query parameters for listing albums.
type ListAlbumsRequest struct {
	Title           string
	CreatedBy       *uuid.UUID
	DateCreateStart string
	DateCreateEnd   string
	DateUpdateStart string
	DateUpdateEnd   string
	SortBy          string
	Order           SortOrder
	Page            int
	Limit           int
}

// AlbumList is a page of albums with the matching total and newest activity.
type AlbumList struct {
	Total  int64    `json:"total"`
	Newest string   `json:"newest,omitempty"`
	Albums []*Album `json:"data"`
}

// CreateAlbumRequest contains parameters for creating an album.
type CreateAlbumRequest struct {
	Name      string
	CreatorID uuid.UUID
}

// UpdateAlbumRequest contains parameters for updating an album. Empty fields
// are left unchanged.
type UpdateAlbumRequest struct {
	Name string
}

// ListMediaRequest contains query parameters for listing media.
type ListMediaRequest struct {
	Title      string
	AlbumSlug  string
	UploadedBy *uuid.UUID
	DateStart  string
	DateEnd    string
	SortBy     string
	Order      SortOrder
	Page       int
	Limit      int
}

// MediaList is a page of media items.
type MediaList struct {
	Total  int64    `json:"total"`
	Newest string   `json:"newest,omitempty"`
	Media  []*Media `json:"data"`
}

// CreateMediaRequest describes one media item to add to an album.
type CreateMediaRequest struct {
	Name string
	URL  string
	Size string
}

// UpdateMediaRequest contains parameters for updating a media item. Empty
// fields are left unchanged.
type UpdateMediaRequest struct {
	Name string
	URL  string
	Size string
}

// ListBlogsRequest contains query parameters for listing blogs.
type ListBlogsRequest struct {
	Title           string
	CreatedBy       *uuid.UUID
	DateCreateStart string
	DateCreateEnd   string
	DateUpdateStart string
	DateUpdateEnd   string
	SortBy          string
	Order           SortOrder
	Page            int
	Limit           int
}

// BlogList is a page of blogs.
type BlogList struct {
	Total  int64   `json:"total"`
	Newest string  `json:"newest,omitempty"`
	Blogs  []*Blog `json:"data"`
}

// CreateBlogRequest contains parameters for creating a blog.
type CreateBlogRequest struct {
	Title    string
	Content  string
	Header   string
	AuthorID uuid.UUID
}

// UpdateBlogRequest contains parameters for updating a blog. Empty fields are
// left unchanged.
type UpdateBlogRequest struct {
	Title   string
	Content string
	Header  string
}

// ListDocumentsRequest contains query parameters for listing documents.
type ListDocumentsRequest struct {
	Name       string
	Category   string
	UploadedBy *uuid.UUID
	DateStart  string
	DateEnd    string
	SortBy     string
	Order      SortOrder
	Page       int
	Limit      int
}

// DocumentList is a page of documents.
type DocumentList struct {
	Total     int64       `json:"total"`
	Newest    string      `json:"newest,omitempty"`
	Documents []*Document `json:"data"`
}

// CreateDocumentRequest contains parameters for creating a document.
type CreateDocumentRequest struct {
	Name       string
	URL        string
	Size       string
	Category   string
	UploaderID uuid.UUID
}

// UpdateDocumentRequest contains parameters for updating a document. Empty
// fields are left unchanged.
type UpdateDocumentRequest struct {
	Name     string
	URL      string
	Size     string
	Category string
}

// ListBusinessesRequest contains query parameters for listing businesses.
type ListBusinessesRequest struct {
	Title     string
	DateStart string
	DateEnd   string
	SortBy    string
	Order     SortOrder
	Page      int
	Limit     int
}

// BusinessList is a page of businesses.
type BusinessList struct {
	Total      int64       `json:"total"`
	Newest     string      `json:"newest,omitempty"`
	Businesses []*Business `json:"data"`
}

// CreateBusinessRequest contains parameters for creating a business. Nil
// headers fall back to generated defaults.
type CreateBusinessRequest struct {
	Title         string
	Description   string
	Header        *HeaderRef
	ProductHeader *HeaderRef
}

// UpdateBusinessRequest contains parameters for updating a business. Empty
// and nil fields are left unchanged.
type UpdateBusinessRequest struct {
	Title         string
	Description   string
	Header        *HeaderRef
	ProductHeader *HeaderRef
}

// ListProductsRequest contains query parameters for listing products.
type ListProductsRequest struct {
	Title        string
	BusinessSlug string
	DateStart    string
	DateEnd      string
	SortBy       string
	Order        SortOrder
	Page         int
	Limit        int
}

// ProductList is a page of products.
type ProductList struct {
	Total    int64      `json:"total"`
	Newest   string     `json:"newest,omitempty"`
	Products []*Product `json:"data"`
}

// CreateProductRequest contains parameters for creating a product.
type CreateProductRequest struct {
	Title       string
	Description string
	BusinessID  uuid.UUID
	Media       []MediaRef
}

// UpdateProductRequest contains parameters for updating a product. Empty and
// nil fields are left unchanged.
type UpdateProductRequest struct {
	Title       string
	Description string
	Media       []MediaRef
}

// ListProjectsRequest contains query parameters for listing projects.
type ListProjectsRequest struct {
	Title        string
	BusinessSlug string
	DateStart    string
	DateEnd      string
	SortBy       string
	Order        SortOrder
	Page         int
	Limit        int
}

// ProjectList is a page of projects.
type ProjectList struct {
	Total    int64      `json:"total"`
	Newest   string     `json:"newest,omitempty"`
	Projects []*Project `json:"data"`
}

// CreateProjectRequest contains parameters for creating a project. A nil
// header falls back to a generated default.
type CreateProjectRequest struct {
	Title       string
	Description string
	BusinessID  uuid.UUID
	Header      *HeaderRef
	Media       []MediaRef
}

// UpdateProjectRequest contains parameters for updating a project. Empty and
// nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title       string
	Description string
	Header      *HeaderRef
	Media       []MediaRef
}

// ContactRequest is an inbound contact-form submission.
type ContactRequest struct {
	Name    string
	Email   string
	Message string
}
