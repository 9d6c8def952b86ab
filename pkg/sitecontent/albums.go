package sitecontent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

func (s *service) ListAlbumMetadata(ctx context.Context) ([]EntityMetadata, error) {
	return s.store.ListAlbumMetadata(ctx)
}

func (s *service) ListAlbums(ctx context.Context, req ListAlbumsRequest) (*AlbumList, error) {
	page, err := ResolvePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	createdIn, err := resolveOptionalRange("create", req.DateCreateStart, req.DateCreateEnd)
	if err != nil {
		return nil, err
	}
	updatedIn, err := resolveOptionalRange("update", req.DateUpdateStart, req.DateUpdateEnd)
	if err != nil {
		return nil, err
	}

	filter := AlbumFilter{
		Name:      req.Title,
		CreatorID: req.CreatedBy,
		CreatedIn: createdIn,
		UpdatedIn: updatedIn,
		SortBy:    req.SortBy,
		Order:     req.Order,
	}

	total, err := s.store.CountAlbums(ctx, filter)
	if err != nil {
		return nil, err
	}
	newest, err := s.store.NewestAlbumActivity(ctx, filter)
	if err != nil {
		return nil, err
	}

	filter.Offset = page.Offset
	filter.Limit = page.Limit
	albums, err := s.store.ListAlbums(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &AlbumList{
		Total:  total,
		Newest: FormatReadableTime(newest),
		Albums: albums,
	}, nil
}

func (s *service) GetAlbumBySlug(ctx context.Context, slug string) (*Album, error) {
	return s.store.GetAlbumBySlug(ctx, slug)
}

// CreateAlbum inserts a new empty album. The aggregate size starts at zero and
// the header at the default image; both are overwritten by the ledger on the
// first media upload.
func (s *service) CreateAlbum(ctx context.Context, req CreateAlbumRequest) (*Album, error) {
	if req.Name == "" {
		return nil, NewValidationError("album name must not be empty")
	}

	now := time.Now().UTC()
	album := &Album{
		ID:        uuid.New(),
		Name:      req.Name,
		Slug:      Slugify(req.Name),
		Header:    s.defaultImageURL,
		Size:      FormatSize(0),
		CreatorID: req.CreatorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateAlbum(ctx, album); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated album")
		}
		return nil, &EntityError{Kind: KindAlbum, Op: "create", Err: err}
	}
	return album, nil
}

func (s *service) UpdateAlbum(ctx context.Context, slug string, req UpdateAlbumRequest) (*Album, error) {
	album, err := s.store.GetAlbumBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != album.Name {
		album.Name = req.Name
		album.Slug = Slugify(req.Name)
	}
	album.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateAlbum(ctx, album); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated album")
		}
		return nil, &EntityError{Kind: KindAlbum, Op: "update", Err: err}
	}
	return album, nil
}

// DeleteAlbum removes an album together with its child media rows. The stored
// objects behind the media URLs are left to the caller; the core only owns the
// metadata.
func (s *service) DeleteAlbum(ctx context.Context, slug string) (*Album, error) {
	album, err := s.store.GetAlbumBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteAlbum(ctx, album.ID); err != nil {
		return nil, &EntityError{Kind: KindAlbum, Op: "delete", Err: err}
	}
	return album, nil
}
