package sitecontent_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

func createTestAlbum(t *testing.T, svc sitecontent.Service, name string) *sitecontent.Album {
	t.Helper()
	album, err := svc.CreateAlbum(context.Background(), sitecontent.CreateAlbumRequest{
		Name:      name,
		CreatorID: uuid.New(),
	})
	require.NoError(t, err)
	return album
}

func TestCreateMediaResolvesNameCollisions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()
	createTestAlbum(t, svc, "Trip")

	// Two identical names inside one batch.
	batch, err := svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "Photo", URL: "/files/a.jpg", Size: "100 KB"},
		{Name: "Photo", URL: "/files/b.jpg", Size: "100 KB"},
	})
	require.NoError(t, err)
	require.Len(t, batch, 2)
	assert.Equal(t, "Photo", batch[0].Name)
	assert.Equal(t, "photo", batch[0].Slug)
	assert.Equal(t, "Photo(1)", batch[1].Name)
	assert.Equal(t, "photo-1", batch[1].Slug)

	// A later upload keeps probing past both existing rows.
	batch, err = svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "Photo", URL: "/files/c.jpg", Size: "100 KB"},
	})
	require.NoError(t, err)
	require.Len(t, batch, 1)
	assert.Equal(t, "Photo(2)", batch[0].Name)
	assert.Equal(t, "photo-2", batch[0].Slug)
}

func TestCreateMediaValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()
	createTestAlbum(t, svc, "Trip")

	_, err := svc.CreateMedia(ctx, "trip", uploader, nil)
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))

	_, err = svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "", URL: "/files/a.jpg", Size: "1 KB"},
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))

	_, err = svc.CreateMedia(ctx, "missing-album", uploader, []sitecontent.CreateMediaRequest{
		{Name: "Photo", URL: "/files/a.jpg", Size: "1 KB"},
	})
	assert.ErrorIs(t, err, sitecontent.ErrAlbumNotFound)
}

func TestAlbumAggregateTracksUploads(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()
	createTestAlbum(t, svc, "Trip")

	_, err := svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "First", URL: "/files/first.jpg", Size: "500 KB"},
	})
	require.NoError(t, err)

	second, err := svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "Second", URL: "/files/second.jpg", Size: "700 KB"},
	})
	require.NoError(t, err)

	album, err := svc.GetAlbumBySlug(ctx, "trip")
	require.NoError(t, err)
	assert.Equal(t, "1.2 MB", album.Size)
	// The most recently uploaded item is the album header.
	assert.Equal(t, "/files/second.jpg", album.Header)

	// Deleting the newest item rolls the header back to the survivor.
	_, err = svc.DeleteMedia(ctx, second[0].Slug)
	require.NoError(t, err)

	album, err = svc.GetAlbumBySlug(ctx, "trip")
	require.NoError(t, err)
	assert.Equal(t, "500 KB", album.Size)
	assert.Equal(t, "/files/first.jpg", album.Header)
}

func TestAlbumAggregateResetsWhenEmpty(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()
	createTestAlbum(t, svc, "Trip")

	batch, err := svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "Only", URL: "/files/only.jpg", Size: "300 KB"},
	})
	require.NoError(t, err)

	_, err = svc.DeleteMedia(ctx, batch[0].Slug)
	require.NoError(t, err)

	album, err := svc.GetAlbumBySlug(ctx, "trip")
	require.NoError(t, err)
	assert.Equal(t, "0 B", album.Size)
	assert.Equal(t, testDefaultImage, album.Header)
}

func TestUpdateMediaRecomputesAggregate(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()
	createTestAlbum(t, svc, "Trip")

	batch, err := svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "Photo", URL: "/files/photo.jpg", Size: "100 KB"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateMedia(ctx, batch[0].Slug, uploader, sitecontent.UpdateMediaRequest{
		Size: "900 KB",
	})
	require.NoError(t, err)
	assert.Equal(t, "900 KB", updated.Size)

	album, err := svc.GetAlbumBySlug(ctx, "trip")
	require.NoError(t, err)
	assert.Equal(t, "900 KB", album.Size)
}

func TestUpdateMediaRenameResolvesCollision(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()
	createTestAlbum(t, svc, "Trip")

	batch, err := svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "Keep", URL: "/files/keep.jpg", Size: "1 KB"},
		{Name: "Rename", URL: "/files/rename.jpg", Size: "1 KB"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateMedia(ctx, batch[1].Slug, uploader, sitecontent.UpdateMediaRequest{
		Name: "Keep",
	})
	require.NoError(t, err)
	assert.Equal(t, "Keep(1)", updated.Name)
	assert.Equal(t, "keep-1", updated.Slug)
}

func TestListMediaByAlbum(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()
	createTestAlbum(t, svc, "Trip")
	createTestAlbum(t, svc, "Other")

	_, err := svc.CreateMedia(ctx, "trip", uploader, []sitecontent.CreateMediaRequest{
		{Name: "A", URL: "/files/a.jpg", Size: "1 KB"},
		{Name: "B", URL: "/files/b.jpg", Size: "1 KB"},
	})
	require.NoError(t, err)
	_, err = svc.CreateMedia(ctx, "other", uploader, []sitecontent.CreateMediaRequest{
		{Name: "C", URL: "/files/c.jpg", Size: "1 KB"},
	})
	require.NoError(t, err)

	list, err := svc.ListMedia(ctx, sitecontent.ListMediaRequest{
		AlbumSlug: "trip",
		Page:      1,
		Limit:     10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Media, 2)
}
