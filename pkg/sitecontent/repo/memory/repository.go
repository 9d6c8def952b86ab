package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// Repository implements sitecontent.Store using in-memory storage. It is the
// backend for tests and local development; every read returns a copy so
// callers can never mutate stored rows.
type Repository struct {
	mu         sync.RWMutex
	albums     map[uuid.UUID]*sitecontent.Album
	media      map[uuid.UUID]*sitecontent.Media
	blogs      map[uuid.UUID]*sitecontent.Blog
	documents  map[uuid.UUID]*sitecontent.Document
	businesses map[uuid.UUID]*sitecontent.Business
	products   map[uuid.UUID]*sitecontent.Product
	projects   map[uuid.UUID]*sitecontent.Project
	admins     map[uuid.UUID]*sitecontent.Admin
	contacts   []*sitecontent.ContactMessage
}

// New creates a new in-memory store
func New() sitecontent.Store {
	return &Repository{
		albums:     make(map[uuid.UUID]*sitecontent.Album),
		media:      make(map[uuid.UUID]*sitecontent.Media),
		blogs:      make(map[uuid.UUID]*sitecontent.Blog),
		documents:  make(map[uuid.UUID]*sitecontent.Document),
		businesses: make(map[uuid.UUID]*sitecontent.Business),
		products:   make(map[uuid.UUID]*sitecontent.Product),
		projects:   make(map[uuid.UUID]*sitecontent.Project),
		admins:     make(map[uuid.UUID]*sitecontent.Admin),
	}
}

// matchQuery reports whether value contains query, case-insensitively. An
// empty query matches everything.
func matchQuery(value, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

// inRange reports whether t falls inside the half-open range. A nil range
// matches everything.
func inRange(t time.Time, r *sitecontent.DateRange) bool {
	if r == nil {
		return true
	}
	return !t.Before(r.Start) && t.Before(r.End)
}

// clip applies offset/limit to a sorted result set. A zero limit means no
// limit.
func clip[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

func orderedLess(cmp int, order sitecontent.SortOrder) bool {
	if order == sitecontent.OrderDesc {
		return cmp > 0
	}
	return cmp < 0
}

// adminName resolves an admin id to its username. Callers hold the lock.
func (r *Repository) adminName(id uuid.UUID) string {
	if admin, ok := r.admins[id]; ok {
		return admin.Username
	}
	return ""
}

// Album operations

func (r *Repository) CreateAlbum(ctx context.Context, album *sitecontent.Album) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.albums {
		if existing.Name == album.Name || existing.Slug == album.Slug {
			return sitecontent.ErrDuplicateName
		}
	}

	albumCopy := *album
	r.albums[album.ID] = &albumCopy
	return nil
}

func (r *Repository) GetAlbum(ctx context.Context, id uuid.UUID) (*sitecontent.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	album, exists := r.albums[id]
	if !exists {
		return nil, sitecontent.ErrAlbumNotFound
	}
	albumCopy := *album
	albumCopy.Creator = r.adminName(album.CreatorID)
	return &albumCopy, nil
}

func (r *Repository) GetAlbumBySlug(ctx context.Context, slug string) (*sitecontent.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, album := range r.albums {
		if album.Slug != slug {
			continue
		}
		albumCopy := *album
		albumCopy.Creator = r.adminName(album.CreatorID)
		albumCopy.Media = r.lockedListMedia(sitecontent.MediaFilter{
			AlbumID: &album.ID,
			SortBy:  "uploaded_at",
			Order:   sitecontent.OrderDesc,
		})
		return &albumCopy, nil
	}
	return nil, sitecontent.ErrAlbumNotFound
}

// lockedFilterAlbums collects matching rows without pagination or sorting.
// Callers hold the lock.
func (r *Repository) lockedFilterAlbums(f sitecontent.AlbumFilter) []*sitecontent.Album {
	var result []*sitecontent.Album
	for _, album := range r.albums {
		if !matchQuery(album.Name, f.Name) {
			continue
		}
		if f.CreatorID != nil && album.CreatorID != *f.CreatorID {
			continue
		}
		if !inRange(album.CreatedAt, f.CreatedIn) || !inRange(album.UpdatedAt, f.UpdatedIn) {
			continue
		}
		albumCopy := *album
		albumCopy.Creator = r.adminName(album.CreatorID)
		result = append(result, &albumCopy)
	}
	return result
}

func (r *Repository) ListAlbums(ctx context.Context, f sitecontent.AlbumFilter) ([]*sitecontent.Album, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.lockedFilterAlbums(f)
	sort.SliceStable(result, func(i, j int) bool {
		switch f.SortBy {
		case "name":
			return orderedLess(strings.Compare(result[i].Name, result[j].Name), f.Order)
		case "created_at":
			return orderedLess(result[i].CreatedAt.Compare(result[j].CreatedAt), f.Order)
		default:
			return orderedLess(result[i].UpdatedAt.Compare(result[j].UpdatedAt), f.Order)
		}
	})
	return clip(result, f.Offset, f.Limit), nil
}

func (r *Repository) CountAlbums(ctx context.Context, f sitecontent.AlbumFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.lockedFilterAlbums(f))), nil
}

func (r *Repository) NewestAlbumActivity(ctx context.Context, f sitecontent.AlbumFilter) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest *time.Time
	for _, album := range r.lockedFilterAlbums(f) {
		t := album.UpdatedAt
		if newest == nil || t.After(*newest) {
			newest = &t
		}
	}
	return newest, nil
}

func (r *Repository) ListAlbumMetadata(ctx context.Context) ([]sitecontent.EntityMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]sitecontent.EntityMetadata, 0, len(r.albums))
	for _, album := range r.albums {
		result = append(result, sitecontent.EntityMetadata{ID: album.ID, Name: album.Name, Slug: album.Slug})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *Repository) UpdateAlbum(ctx context.Context, album *sitecontent.Album) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.albums[album.ID]; !exists {
		return sitecontent.ErrAlbumNotFound
	}
	for id, existing := range r.albums {
		if id != album.ID && (existing.Name == album.Name || existing.Slug == album.Slug) {
			return sitecontent.ErrDuplicateName
		}
	}

	albumCopy := *album
	albumCopy.Media = nil
	r.albums[album.ID] = &albumCopy
	return nil
}

func (r *Repository) DeleteAlbum(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.albums[id]; !exists {
		return sitecontent.ErrAlbumNotFound
	}
	delete(r.albums, id)
	for mediaID, item := range r.media {
		if item.AlbumID == id {
			delete(r.media, mediaID)
		}
	}
	return nil
}

// Media operations

func (r *Repository) lockedCreateMedia(media *sitecontent.Media) error {
	for _, existing := range r.media {
		if existing.Name == media.Name || existing.Slug == media.Slug {
			return sitecontent.ErrDuplicateName
		}
	}
	mediaCopy := *media
	r.media[media.ID] = &mediaCopy
	return nil
}

func (r *Repository) CreateMedia(ctx context.Context, media *sitecontent.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lockedCreateMedia(media)
}

// CreateMediaBatch inserts a whole upload batch, or nothing. Already inserted
// items are rolled back when a later one collides.
func (r *Repository) CreateMediaBatch(ctx context.Context, items []*sitecontent.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, item := range items {
		if err := r.lockedCreateMedia(item); err != nil {
			for _, inserted := range items[:i] {
				delete(r.media, inserted.ID)
			}
			return err
		}
	}
	return nil
}

func (r *Repository) GetMedia(ctx context.Context, id uuid.UUID) (*sitecontent.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	media, exists := r.media[id]
	if !exists {
		return nil, sitecontent.ErrMediaNotFound
	}
	mediaCopy := *media
	mediaCopy.Uploader = r.adminName(media.UploaderID)
	return &mediaCopy, nil
}

func (r *Repository) GetMediaBySlug(ctx context.Context, slug string) (*sitecontent.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, media := range r.media {
		if media.Slug == slug {
			mediaCopy := *media
			mediaCopy.Uploader = r.adminName(media.UploaderID)
			return &mediaCopy, nil
		}
	}
	return nil, sitecontent.ErrMediaNotFound
}

// lockedListMedia filters, sorts and clips in one pass; callers hold the lock.
func (r *Repository) lockedListMedia(f sitecontent.MediaFilter) []*sitecontent.Media {
	var result []*sitecontent.Media
	for _, media := range r.media {
		if !matchQuery(media.Name, f.Name) {
			continue
		}
		if f.AlbumID != nil && media.AlbumID != *f.AlbumID {
			continue
		}
		if f.UploaderID != nil && media.UploaderID != *f.UploaderID {
			continue
		}
		if !inRange(media.UploadedAt, f.UploadedIn) {
			continue
		}
		mediaCopy := *media
		mediaCopy.Uploader = r.adminName(media.UploaderID)
		result = append(result, &mediaCopy)
	}

	sort.SliceStable(result, func(i, j int) bool {
		switch f.SortBy {
		case "name":
			return orderedLess(strings.Compare(result[i].Name, result[j].Name), f.Order)
		default:
			return orderedLess(result[i].UploadedAt.Compare(result[j].UploadedAt), f.Order)
		}
	})
	return clip(result, f.Offset, f.Limit)
}

func (r *Repository) ListMedia(ctx context.Context, f sitecontent.MediaFilter) ([]*sitecontent.Media, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lockedListMedia(f), nil
}

func (r *Repository) CountMedia(ctx context.Context, f sitecontent.MediaFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f.Offset, f.Limit = 0, 0
	return int64(len(r.lockedListMedia(f))), nil
}

func (r *Repository) NewestMediaActivity(ctx context.Context, f sitecontent.MediaFilter) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f.Offset, f.Limit = 0, 0
	var newest *time.Time
	for _, media := range r.lockedListMedia(f) {
		t := media.UploadedAt
		if newest == nil || t.After(*newest) {
			newest = &t
		}
	}
	return newest, nil
}

func (r *Repository) MediaNameExists(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, media := range r.media {
		if media.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) UpdateMedia(ctx context.Context, media *sitecontent.Media) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.media[media.ID]; !exists {
		return sitecontent.ErrMediaNotFound
	}
	for id, existing := range r.media {
		if id != media.ID && (existing.Name == media.Name || existing.Slug == media.Slug) {
			return sitecontent.ErrDuplicateName
		}
	}

	mediaCopy := *media
	r.media[media.ID] = &mediaCopy
	return nil
}

func (r *Repository) DeleteMedia(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.media[id]; !exists {
		return sitecontent.ErrMediaNotFound
	}
	delete(r.media, id)
	return nil
}

// Blog operations

func (r *Repository) CreateBlog(ctx context.Context, blog *sitecontent.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.blogs {
		if existing.Title == blog.Title || existing.Slug == blog.Slug {
			return sitecontent.ErrDuplicateName
		}
	}

	blogCopy := *blog
	r.blogs[blog.ID] = &blogCopy
	return nil
}

func (r *Repository) GetBlog(ctx context.Context, id uuid.UUID) (*sitecontent.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blog, exists := r.blogs[id]
	if !exists {
		return nil, sitecontent.ErrBlogNotFound
	}
	blogCopy := *blog
	blogCopy.Author = r.adminName(blog.AuthorID)
	return &blogCopy, nil
}

func (r *Repository) GetBlogBySlug(ctx context.Context, slug string) (*sitecontent.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, blog := range r.blogs {
		if blog.Slug == slug {
			blogCopy := *blog
			blogCopy.Author = r.adminName(blog.AuthorID)
			return &blogCopy, nil
		}
	}
	return nil, sitecontent.ErrBlogNotFound
}

func (r *Repository) lockedFilterBlogs(f sitecontent.BlogFilter) []*sitecontent.Blog {
	var result []*sitecontent.Blog
	for _, blog := range r.blogs {
		if !matchQuery(blog.Title, f.Title) {
			continue
		}
		if f.AuthorID != nil && blog.AuthorID != *f.AuthorID {
			continue
		}
		if !inRange(blog.CreatedAt, f.CreatedIn) || !inRange(blog.UpdatedAt, f.UpdatedIn) {
			continue
		}
		blogCopy := *blog
		blogCopy.Author = r.adminName(blog.AuthorID)
		result = append(result, &blogCopy)
	}
	return result
}

func (r *Repository) ListBlogs(ctx context.Context, f sitecontent.BlogFilter) ([]*sitecontent.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.lockedFilterBlogs(f)
	sort.SliceStable(result, func(i, j int) bool {
		switch f.SortBy {
		case "title":
			return orderedLess(strings.Compare(result[i].Title, result[j].Title), f.Order)
		case "created_at":
			return orderedLess(result[i].CreatedAt.Compare(result[j].CreatedAt), f.Order)
		default:
			return orderedLess(result[i].UpdatedAt.Compare(result[j].UpdatedAt), f.Order)
		}
	})
	return clip(result, f.Offset, f.Limit), nil
}

func (r *Repository) CountBlogs(ctx context.Context, f sitecontent.BlogFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.lockedFilterBlogs(f))), nil
}

func (r *Repository) NewestBlogActivity(ctx context.Context, f sitecontent.BlogFilter) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest *time.Time
	for _, blog := range r.lockedFilterBlogs(f) {
		t := blog.UpdatedAt
		if newest == nil || t.After(*newest) {
			newest = &t
		}
	}
	return newest, nil
}

func (r *Repository) UpdateBlog(ctx context.Context, blog *sitecontent.Blog) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blogs[blog.ID]; !exists {
		return sitecontent.ErrBlogNotFound
	}
	for id, existing := range r.blogs {
		if id != blog.ID && (existing.Title == blog.Title || existing.Slug == blog.Slug) {
			return sitecontent.ErrDuplicateName
		}
	}

	blogCopy := *blog
	r.blogs[blog.ID] = &blogCopy
	return nil
}

func (r *Repository) DeleteBlog(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.blogs[id]; !exists {
		return sitecontent.ErrBlogNotFound
	}
	delete(r.blogs, id)
	return nil
}

// Document operations

func (r *Repository) CreateDocument(ctx context.Context, doc *sitecontent.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.documents {
		if existing.Name == doc.Name || existing.Slug == doc.Slug {
			return sitecontent.ErrDuplicateName
		}
	}

	docCopy := *doc
	r.documents[doc.ID] = &docCopy
	return nil
}

func (r *Repository) GetDocument(ctx context.Context, id uuid.UUID) (*sitecontent.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, exists := r.documents[id]
	if !exists {
		return nil, sitecontent.ErrDocumentNotFound
	}
	docCopy := *doc
	docCopy.Uploader = r.adminName(doc.UploaderID)
	return &docCopy, nil
}

func (r *Repository) GetDocumentBySlug(ctx context.Context, slug string) (*sitecontent.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, doc := range r.documents {
		if doc.Slug == slug {
			docCopy := *doc
			docCopy.Uploader = r.adminName(doc.UploaderID)
			return &docCopy, nil
		}
	}
	return nil, sitecontent.ErrDocumentNotFound
}

func (r *Repository) lockedFilterDocuments(f sitecontent.DocumentFilter) []*sitecontent.Document {
	var result []*sitecontent.Document
	for _, doc := range r.documents {
		if !matchQuery(doc.Name, f.Name) {
			continue
		}
		if f.Category != "" && doc.Category != f.Category {
			continue
		}
		if f.UploaderID != nil && doc.UploaderID != *f.UploaderID {
			continue
		}
		if !inRange(doc.UploadedAt, f.UploadedIn) {
			continue
		}
		docCopy := *doc
		docCopy.Uploader = r.adminName(doc.UploaderID)
		result = append(result, &docCopy)
	}
	return result
}

func (r *Repository) ListDocuments(ctx context.Context, f sitecontent.DocumentFilter) ([]*sitecontent.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.lockedFilterDocuments(f)
	sort.SliceStable(result, func(i, j int) bool {
		switch f.SortBy {
		case "name":
			return orderedLess(strings.Compare(result[i].Name, result[j].Name), f.Order)
		default:
			return orderedLess(result[i].UploadedAt.Compare(result[j].UploadedAt), f.Order)
		}
	})
	return clip(result, f.Offset, f.Limit), nil
}

func (r *Repository) CountDocuments(ctx context.Context, f sitecontent.DocumentFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.lockedFilterDocuments(f))), nil
}

func (r *Repository) NewestDocumentActivity(ctx context.Context, f sitecontent.DocumentFilter) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest *time.Time
	for _, doc := range r.lockedFilterDocuments(f) {
		t := doc.UploadedAt
		if newest == nil || t.After(*newest) {
			newest = &t
		}
	}
	return newest, nil
}

func (r *Repository) DocumentNameExists(ctx context.Context, name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, doc := range r.documents {
		if doc.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) UpdateDocument(ctx context.Context, doc *sitecontent.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.documents[doc.ID]; !exists {
		return sitecontent.ErrDocumentNotFound
	}
	for id, existing := range r.documents {
		if id != doc.ID && (existing.Name == doc.Name || existing.Slug == doc.Slug) {
			return sitecontent.ErrDuplicateName
		}
	}

	docCopy := *doc
	r.documents[doc.ID] = &docCopy
	return nil
}

func (r *Repository) DeleteDocument(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.documents[id]; !exists {
		return sitecontent.ErrDocumentNotFound
	}
	delete(r.documents, id)
	return nil
}

// Business operations

func (r *Repository) CreateBusiness(ctx context.Context, business *sitecontent.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.businesses {
		if existing.Title == business.Title || existing.Slug == business.Slug {
			return sitecontent.ErrDuplicateName
		}
	}

	businessCopy := *business
	r.businesses[business.ID] = &businessCopy
	return nil
}

func (r *Repository) GetBusiness(ctx context.Context, id uuid.UUID) (*sitecontent.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	business, exists := r.businesses[id]
	if !exists {
		return nil, sitecontent.ErrBusinessNotFound
	}
	businessCopy := *business
	return &businessCopy, nil
}

func (r *Repository) GetBusinessBySlug(ctx context.Context, slug string) (*sitecontent.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, business := range r.businesses {
		if business.Slug != slug {
			continue
		}
		businessCopy := *business
		businessCopy.Products = r.lockedFilterProducts(sitecontent.ProductFilter{BusinessID: &business.ID})
		businessCopy.Projects = r.lockedFilterProjects(sitecontent.ProjectFilter{BusinessID: &business.ID})
		return &businessCopy, nil
	}
	return nil, sitecontent.ErrBusinessNotFound
}

func (r *Repository) lockedFilterBusinesses(f sitecontent.BusinessFilter) []*sitecontent.Business {
	var result []*sitecontent.Business
	for _, business := range r.businesses {
		if f.ExcludeID != nil && business.ID == *f.ExcludeID {
			continue
		}
		if !matchQuery(business.Title, f.Title) {
			continue
		}
		if !inRange(business.UpdatedAt, f.UpdatedIn) {
			continue
		}
		businessCopy := *business
		result = append(result, &businessCopy)
	}
	return result
}

func (r *Repository) ListBusinesses(ctx context.Context, f sitecontent.BusinessFilter) ([]*sitecontent.Business, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.lockedFilterBusinesses(f)
	sort.SliceStable(result, func(i, j int) bool {
		switch f.SortBy {
		case "title":
			return orderedLess(strings.Compare(result[i].Title, result[j].Title), f.Order)
		case "created_at":
			return orderedLess(result[i].CreatedAt.Compare(result[j].CreatedAt), f.Order)
		default:
			return orderedLess(result[i].UpdatedAt.Compare(result[j].UpdatedAt), f.Order)
		}
	})
	return clip(result, f.Offset, f.Limit), nil
}

func (r *Repository) CountBusinesses(ctx context.Context, f sitecontent.BusinessFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.lockedFilterBusinesses(f))), nil
}

func (r *Repository) NewestBusinessActivity(ctx context.Context, f sitecontent.BusinessFilter) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest *time.Time
	for _, business := range r.lockedFilterBusinesses(f) {
		t := business.UpdatedAt
		if newest == nil || t.After(*newest) {
			newest = &t
		}
	}
	return newest, nil
}

func (r *Repository) ListBusinessMetadata(ctx context.Context) ([]sitecontent.EntityMetadata, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]sitecontent.EntityMetadata, 0, len(r.businesses))
	for _, business := range r.businesses {
		result = append(result, sitecontent.EntityMetadata{ID: business.ID, Name: business.Title, Slug: business.Slug})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *Repository) UpdateBusiness(ctx context.Context, business *sitecontent.Business) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.businesses[business.ID]; !exists {
		return sitecontent.ErrBusinessNotFound
	}
	for id, existing := range r.businesses {
		if id != business.ID && (existing.Title == business.Title || existing.Slug == business.Slug) {
			return sitecontent.ErrDuplicateName
		}
	}

	businessCopy := *business
	businessCopy.Products = nil
	businessCopy.Projects = nil
	r.businesses[business.ID] = &businessCopy
	return nil
}

func (r *Repository) DeleteBusiness(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.businesses[id]; !exists {
		return sitecontent.ErrBusinessNotFound
	}
	delete(r.businesses, id)
	for productID, product := range r.products {
		if product.BusinessID == id {
			delete(r.products, productID)
		}
	}
	for projectID, project := range r.projects {
		if project.BusinessID == id {
			delete(r.projects, projectID)
		}
	}
	return nil
}

// Product operations

func (r *Repository) CreateProduct(ctx context.Context, product *sitecontent.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.products {
		if existing.Title == product.Title || existing.Slug == product.Slug {
			return sitecontent.ErrDuplicateName
		}
	}

	productCopy := *product
	r.products[product.ID] = &productCopy
	return nil
}

func (r *Repository) GetProduct(ctx context.Context, id uuid.UUID) (*sitecontent.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, exists := r.products[id]
	if !exists {
		return nil, sitecontent.ErrProductNotFound
	}
	productCopy := *product
	r.resolveProductRefs(&productCopy)
	return &productCopy, nil
}

func (r *Repository) GetProductBySlug(ctx context.Context, slug string) (*sitecontent.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if product.Slug == slug {
			productCopy := *product
			r.resolveProductRefs(&productCopy)
			return &productCopy, nil
		}
	}
	return nil, sitecontent.ErrProductNotFound
}

func (r *Repository) resolveProductRefs(product *sitecontent.Product) {
	if business, ok := r.businesses[product.BusinessID]; ok {
		product.BusinessTitle = business.Title
	}
}

func (r *Repository) lockedFilterProducts(f sitecontent.ProductFilter) []*sitecontent.Product {
	var result []*sitecontent.Product
	for _, product := range r.products {
		if f.ExcludeID != nil && product.ID == *f.ExcludeID {
			continue
		}
		if !matchQuery(product.Title, f.Title) {
			continue
		}
		if f.BusinessID != nil && product.BusinessID != *f.BusinessID {
			continue
		}
		if !inRange(product.UpdatedAt, f.UpdatedIn) {
			continue
		}
		productCopy := *product
		r.resolveProductRefs(&productCopy)
		result = append(result, &productCopy)
	}
	return result
}

func (r *Repository) ListProducts(ctx context.Context, f sitecontent.ProductFilter) ([]*sitecontent.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.lockedFilterProducts(f)
	sort.SliceStable(result, func(i, j int) bool {
		switch f.SortBy {
		case "title":
			return orderedLess(strings.Compare(result[i].Title, result[j].Title), f.Order)
		case "created_at":
			return orderedLess(result[i].CreatedAt.Compare(result[j].CreatedAt), f.Order)
		default:
			return orderedLess(result[i].UpdatedAt.Compare(result[j].UpdatedAt), f.Order)
		}
	})
	return clip(result, f.Offset, f.Limit), nil
}

func (r *Repository) CountProducts(ctx context.Context, f sitecontent.ProductFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.lockedFilterProducts(f))), nil
}

func (r *Repository) NewestProductActivity(ctx context.Context, f sitecontent.ProductFilter) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest *time.Time
	for _, product := range r.lockedFilterProducts(f) {
		t := product.UpdatedAt
		if newest == nil || t.After(*newest) {
			newest = &t
		}
	}
	return newest, nil
}

func (r *Repository) UpdateProduct(ctx context.Context, product *sitecontent.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[product.ID]; !exists {
		return sitecontent.ErrProductNotFound
	}
	for id, existing := range r.products {
		if id != product.ID && (existing.Title == product.Title || existing.Slug == product.Slug) {
			return sitecontent.ErrDuplicateName
		}
	}

	productCopy := *product
	r.products[product.ID] = &productCopy
	return nil
}

func (r *Repository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.products[id]; !exists {
		return sitecontent.ErrProductNotFound
	}
	delete(r.products, id)
	return nil
}

// Project operations

func (r *Repository) CreateProject(ctx context.Context, project *sitecontent.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.projects {
		if existing.Title == project.Title || existing.Slug == project.Slug {
			return sitecontent.ErrDuplicateName
		}
	}

	projectCopy := *project
	r.projects[project.ID] = &projectCopy
	return nil
}

func (r *Repository) GetProject(ctx context.Context, id uuid.UUID) (*sitecontent.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, exists := r.projects[id]
	if !exists {
		return nil, sitecontent.ErrProjectNotFound
	}
	projectCopy := *project
	r.resolveProjectRefs(&projectCopy)
	return &projectCopy, nil
}

func (r *Repository) GetProjectBySlug(ctx context.Context, slug string) (*sitecontent.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, project := range r.projects {
		if project.Slug == slug {
			projectCopy := *project
			r.resolveProjectRefs(&projectCopy)
			return &projectCopy, nil
		}
	}
	return nil, sitecontent.ErrProjectNotFound
}

func (r *Repository) resolveProjectRefs(project *sitecontent.Project) {
	if business, ok := r.businesses[project.BusinessID]; ok {
		project.BusinessTitle = business.Title
	}
}

func (r *Repository) lockedFilterProjects(f sitecontent.ProjectFilter) []*sitecontent.Project {
	var result []*sitecontent.Project
	for _, project := range r.projects {
		if f.ExcludeID != nil && project.ID == *f.ExcludeID {
			continue
		}
		if !matchQuery(project.Title, f.Title) {
			continue
		}
		if f.BusinessID != nil && project.BusinessID != *f.BusinessID {
			continue
		}
		if !inRange(project.UpdatedAt, f.UpdatedIn) {
			continue
		}
		projectCopy := *project
		r.resolveProjectRefs(&projectCopy)
		result = append(result, &projectCopy)
	}
	return result
}

func (r *Repository) ListProjects(ctx context.Context, f sitecontent.ProjectFilter) ([]*sitecontent.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := r.lockedFilterProjects(f)
	sort.SliceStable(result, func(i, j int) bool {
		switch f.SortBy {
		case "title":
			return orderedLess(strings.Compare(result[i].Title, result[j].Title), f.Order)
		case "created_at":
			return orderedLess(result[i].CreatedAt.Compare(result[j].CreatedAt), f.Order)
		default:
			return orderedLess(result[i].UpdatedAt.Compare(result[j].UpdatedAt), f.Order)
		}
	})
	return clip(result, f.Offset, f.Limit), nil
}

func (r *Repository) CountProjects(ctx context.Context, f sitecontent.ProjectFilter) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.lockedFilterProjects(f))), nil
}

func (r *Repository) NewestProjectActivity(ctx context.Context, f sitecontent.ProjectFilter) (*time.Time, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var newest *time.Time
	for _, project := range r.lockedFilterProjects(f) {
		t := project.UpdatedAt
		if newest == nil || t.After(*newest) {
			newest = &t
		}
	}
	return newest, nil
}

func (r *Repository) UpdateProject(ctx context.Context, project *sitecontent.Project) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[project.ID]; !exists {
		return sitecontent.ErrProjectNotFound
	}
	for id, existing := range r.projects {
		if id != project.ID && (existing.Title == project.Title || existing.Slug == project.Slug) {
			return sitecontent.ErrDuplicateName
		}
	}

	projectCopy := *project
	r.projects[project.ID] = &projectCopy
	return nil
}

func (r *Repository) DeleteProject(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.projects[id]; !exists {
		return sitecontent.ErrProjectNotFound
	}
	delete(r.projects, id)
	return nil
}

// Admin operations

func (r *Repository) CreateAdmin(ctx context.Context, admin *sitecontent.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.admins {
		if existing.Username == admin.Username {
			return sitecontent.ErrDuplicateName
		}
	}

	adminCopy := *admin
	r.admins[admin.ID] = &adminCopy
	return nil
}

func (r *Repository) GetAdmin(ctx context.Context, id uuid.UUID) (*sitecontent.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	admin, exists := r.admins[id]
	if !exists {
		return nil, sitecontent.ErrAdminNotFound
	}
	adminCopy := *admin
	return &adminCopy, nil
}

func (r *Repository) GetAdminByUsername(ctx context.Context, username string) (*sitecontent.Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, admin := range r.admins {
		if admin.Username == username {
			adminCopy := *admin
			return &adminCopy, nil
		}
	}
	return nil, sitecontent.ErrAdminNotFound
}

func (r *Repository) UpdateAdmin(ctx context.Context, admin *sitecontent.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.admins[admin.ID]; !exists {
		return sitecontent.ErrAdminNotFound
	}
	for id, existing := range r.admins {
		if id != admin.ID && existing.Username == admin.Username {
			return sitecontent.ErrDuplicateName
		}
	}

	adminCopy := *admin
	r.admins[admin.ID] = &adminCopy
	return nil
}

// Contact operations

func (r *Repository) CreateContactMessage(ctx context.Context, msg *sitecontent.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	msgCopy := *msg
	r.contacts = append(r.contacts, &msgCopy)
	return nil
}

func (r *Repository) ListContactMessages(ctx context.Context, offset, limit int) ([]*sitecontent.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*sitecontent.ContactMessage, 0, len(r.contacts))
	for _, msg := range r.contacts {
		msgCopy := *msg
		result = append(result, &msgCopy)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return clip(result, offset, limit), nil
}
