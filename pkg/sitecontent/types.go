package sitecontent

import (
	"time"

	"github.com/google/uuid"
)

// SortOrder selects ascending or descending ordering for list operations.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// HeaderRef is a slug/url pair identifying a representative image, stored
// denormalized on the owning row.
type HeaderRef struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// MediaRef is one item of a product or project media list.
type MediaRef struct {
	Slug string `json:"slug"`
	URL  string `json:"url"`
}

// Album is a media album. Size holds the formatted total byte size of all
// child media ("1.2 MB") and Header the URL of the representative item; both
// are derived values maintained by the size ledger.
type Album struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	Header    string    `json:"header"`
	Size      string    `json:"size,omitempty"`
	CreatorID uuid.UUID `json:"creator_id"`
	Creator   string    `json:"creator,omitempty"` // resolved username, populated on reads with refs
	Media     []*Media  `json:"media,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Media is a single item inside an album.
type Media struct {
	ID         uuid.UUID `json:"id"`
	AlbumID    uuid.UUID `json:"album_id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	URL        string    `json:"url"`
	Size       string    `json:"size"`
	UploaderID uuid.UUID `json:"uploader_id"`
	Uploader   string    `json:"uploader,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Blog is a published article.
type Blog struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content,omitempty"`
	Header    string    `json:"header,omitempty"`
	AuthorID  uuid.UUID `json:"author_id"`
	Author    string    `json:"author,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Document is a downloadable file (legality, certification, award, ...).
type Document struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Slug       string    `json:"slug"`
	URL        string    `json:"url"`
	Size       string    `json:"size,omitempty"`
	Category   string    `json:"category,omitempty"`
	UploaderID uuid.UUID `json:"uploader_id"`
	Uploader   string    `json:"uploader,omitempty"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Business is one line of business, carrying two denormalized header images.
type Business struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description,omitempty"`
	Header        HeaderRef  `json:"header"`
	ProductHeader HeaderRef  `json:"product_header"`
	Products      []*Product `json:"products,omitempty"`
	Projects      []*Project `json:"projects,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Product belongs to a business and carries a media list.
type Product struct {
	ID            uuid.UUID  `json:"id"`
	BusinessID    uuid.UUID  `json:"business_id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description,omitempty"`
	BusinessTitle string     `json:"business,omitempty"`
	Media         []MediaRef `json:"media,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Project belongs to a business and carries a header plus a media list.
type Project struct {
	ID            uuid.UUID  `json:"id"`
	BusinessID    uuid.UUID  `json:"business_id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description,omitempty"`
	BusinessTitle string     `json:"business,omitempty"`
	Header        HeaderRef  `json:"header"`
	Media         []MediaRef `json:"media,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Admin is a backoffice account.
type Admin struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ContactMessage is an inbound message from the public contact form.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// EntityMetadata is the lightweight id/name/slug projection used by
// navigation endpoints.
type EntityMetadata struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Slug string    `json:"slug"`
}
