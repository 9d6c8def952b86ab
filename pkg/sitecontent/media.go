package sitecontent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

func (s *service) ListMedia(ctx context.Context, req ListMediaRequest) (*MediaList, error) {
	page, err := ResolvePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	uploadedIn, err := resolveOptionalRange("upload", req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}

	filter := MediaFilter{
		Name:       req.Title,
		UploaderID: req.UploadedBy,
		UploadedIn: uploadedIn,
		SortBy:     req.SortBy,
		Order:      req.Order,
	}
	if req.AlbumSlug != "" {
		album, err := s.store.GetAlbumBySlug(ctx, req.AlbumSlug)
		if err != nil {
			return nil, err
		}
		filter.AlbumID = &album.ID
	}

	total, err := s.store.CountMedia(ctx, filter)
	if err != nil {
		return nil, err
	}
	newest, err := s.store.NewestMediaActivity(ctx, filter)
	if err != nil {
		return nil, err
	}

	filter.Offset = page.Offset
	filter.Limit = page.Limit
	media, err := s.store.ListMedia(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &MediaList{
		Total:  total,
		Newest: FormatReadableTime(newest),
		Media:  media,
	}, nil
}

func (s *service) GetMediaBySlug(ctx context.Context, slug string) (*Media, error) {
	return s.store.GetMediaBySlug(ctx, slug)
}

// resolveMediaBatch assigns collision-free names and slugs to a whole upload
// batch. Items earlier in the batch are not yet persisted, so the existence
// probe consults the batch-local set before hitting the store.
func (s *service) resolveMediaBatch(ctx context.Context, albumID, uploaderID uuid.UUID, items []CreateMediaRequest) ([]*Media, error) {
	local := make(map[string]struct{}, len(items))
	exists := func(ctx context.Context, name string) (bool, error) {
		if _, taken := local[name]; taken {
			return true, nil
		}
		return s.store.MediaNameExists(ctx, name)
	}

	now := time.Now().UTC()
	batch := make([]*Media, 0, len(items))
	for _, item := range items {
		name, slug, err := resolveUniqueName(ctx, exists, item.Name)
		if err != nil {
			return nil, err
		}
		local[name] = struct{}{}
		batch = append(batch, &Media{
			ID:         uuid.New(),
			AlbumID:    albumID,
			Name:       name,
			Slug:       slug,
			URL:        item.URL,
			Size:       item.Size,
			UploaderID: uploaderID,
			UploadedAt: now,
		})
	}
	return batch, nil
}

// CreateMedia adds a batch of uploaded items to an album and recomputes the
// album's aggregate size and header. Name collisions are resolved before the
// write; if a concurrent upload wins the race anyway, the resolution is
// re-run once against the fresh state.
func (s *service) CreateMedia(ctx context.Context, albumSlug string, uploaderID uuid.UUID, items []CreateMediaRequest) ([]*Media, error) {
	if len(items) == 0 {
		return nil, NewValidationError("media list must not be empty")
	}
	for _, item := range items {
		if item.Name == "" {
			return nil, NewValidationError("media name must not be empty")
		}
	}

	album, err := s.store.GetAlbumBySlug(ctx, albumSlug)
	if err != nil {
		return nil, err
	}

	batch, err := s.resolveMediaBatch(ctx, album.ID, uploaderID, items)
	if err != nil {
		return nil, err
	}
	if err := s.store.CreateMediaBatch(ctx, batch); err != nil {
		if !errors.Is(err, ErrDuplicateName) {
			return nil, &EntityError{Kind: KindMedia, Op: "create", Err: err}
		}
		// Lost the race to a concurrent upload. One retry.
		batch, err = s.resolveMediaBatch(ctx, album.ID, uploaderID, items)
		if err != nil {
			return nil, err
		}
		if err := s.store.CreateMediaBatch(ctx, batch); err != nil {
			return nil, &EntityError{Kind: KindMedia, Op: "create", Err: err}
		}
	}

	if _, err := s.ledger.Recompute(ctx, album.ID); err != nil {
		return nil, err
	}
	return batch, nil
}

func (s *service) UpdateMedia(ctx context.Context, slug string, uploaderID uuid.UUID, req UpdateMediaRequest) (*Media, error) {
	media, err := s.store.GetMediaBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != media.Name {
		name, newSlug, err := resolveUniqueName(ctx, s.store.MediaNameExists, req.Name)
		if err != nil {
			return nil, err
		}
		media.Name = name
		media.Slug = newSlug
	}
	if req.URL != "" {
		media.URL = req.URL
	}
	if req.Size != "" {
		media.Size = req.Size
	}
	media.UploaderID = uploaderID
	media.UploadedAt = time.Now().UTC()

	if err := s.store.UpdateMedia(ctx, media); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated media")
		}
		return nil, &EntityError{Kind: KindMedia, Op: "update", Err: err}
	}

	if _, err := s.ledger.Recompute(ctx, media.AlbumID); err != nil {
		return nil, err
	}
	return media, nil
}

// DeleteMedia removes one item and recomputes the owning album's aggregate.
// When the last item goes, the album falls back to zero size and the default
// header.
func (s *service) DeleteMedia(ctx context.Context, slug string) (*Media, error) {
	media, err := s.store.GetMediaBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteMedia(ctx, media.ID); err != nil {
		return nil, &EntityError{Kind: KindMedia, Op: "delete", Err: err}
	}
	if _, err := s.ledger.Recompute(ctx, media.AlbumID); err != nil {
		return nil, err
	}
	return media, nil
}
