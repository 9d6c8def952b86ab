package sitecontent

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// SizeLedger keeps an album's denormalized totals consistent with its child
// media set. The total size and the header (representative preview image) are
// re-derived from scratch on every recompute rather than adjusted
// incrementally, so a missed delta can never accumulate.
type SizeLedger struct {
	store         Store
	defaultHeader string
}

// NewSizeLedger creates a ledger backed by the given store. defaultHeader is
// the image URL used when an album has no media left.
func NewSizeLedger(store Store, defaultHeader string) *SizeLedger {
	return &SizeLedger{store: store, defaultHeader: defaultHeader}
}

// Recompute re-derives the album's formatted total size and header from its
// current media set and persists both. The header becomes the most recently
// uploaded remaining item, or the default image when no children remain.
// Callers invoke this after every media insert, update or delete so the
// persisted aggregate is never older than the child mutation.
func (l *SizeLedger) Recompute(ctx context.Context, albumID uuid.UUID) (string, error) {
	album, err := l.store.GetAlbum(ctx, albumID)
	if err != nil {
		return "", err
	}

	items, err := l.store.ListMedia(ctx, MediaFilter{
		AlbumID: &albumID,
		SortBy:  "uploaded_at",
		Order:   OrderDesc,
	})
	if err != nil {
		return "", err
	}

	var total int64
	for _, item := range items {
		total += ParseSize(item.Size)
	}

	header := l.defaultHeader
	if len(items) > 0 {
		header = items[0].URL
	}

	album.Size = FormatSize(total)
	album.Header = header
	album.UpdatedAt = time.Now().UTC()

	if err := l.store.UpdateAlbum(ctx, album); err != nil {
		return "", err
	}

	return album.Size, nil
}

// TotalSize sums the byte-equivalent of an album's current media set without
// persisting anything.
func (l *SizeLedger) TotalSize(ctx context.Context, albumID uuid.UUID) (int64, error) {
	items, err := l.store.ListMedia(ctx, MediaFilter{AlbumID: &albumID})
	if err != nil {
		return 0, err
	}
	var total int64
	for _, item := range items {
		total += ParseSize(item.Size)
	}
	return total, nil
}
