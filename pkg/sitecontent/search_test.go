package sitecontent_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// seedSearchFixtures creates one record per kind with distinct names. Entities
// are created in sequence, so the business created last carries the newest
// activity timestamp.
func seedSearchFixtures(t *testing.T, svc sitecontent.Service) *sitecontent.Business {
	t.Helper()
	ctx := context.Background()
	admin := uuid.New()

	_, err := svc.CreateAlbum(ctx, sitecontent.CreateAlbumRequest{Name: "Alpha Album", CreatorID: admin})
	require.NoError(t, err)

	_, err = svc.CreateBlog(ctx, sitecontent.CreateBlogRequest{
		Title:    "Bravo Blog",
		Content:  "text",
		AuthorID: admin,
	})
	require.NoError(t, err)

	_, err = svc.CreateDocument(ctx, sitecontent.CreateDocumentRequest{
		Name:       "Charlie Document",
		URL:        "/files/doc.pdf",
		Size:       "10 KB",
		Category:   "legality",
		UploaderID: admin,
	})
	require.NoError(t, err)

	business, err := svc.CreateBusiness(ctx, sitecontent.CreateBusinessRequest{Title: "Delta Business"})
	require.NoError(t, err)
	return business
}

func TestSearchMergesAllKinds(t *testing.T) {
	svc := newTestService(t)
	business := seedSearchFixtures(t, svc)

	result, err := svc.Search(context.Background(), sitecontent.SearchRequest{
		SortBy: sitecontent.SearchSortActivity,
		Order:  sitecontent.OrderAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, result.Total)
	require.Len(t, result.Items, 4)

	kinds := make(map[sitecontent.Kind]bool)
	for _, item := range result.Items {
		kinds[item.Kind] = true
	}
	assert.True(t, kinds[sitecontent.KindAlbum])
	assert.True(t, kinds[sitecontent.KindBlog])
	assert.True(t, kinds[sitecontent.KindDocument])
	assert.True(t, kinds[sitecontent.KindBusiness])

	// Newest reflects the latest activity across the whole merged set.
	assert.Equal(t, sitecontent.FormatReadableTime(&business.UpdatedAt), result.Newest)
}

func TestSearchSortByName(t *testing.T) {
	svc := newTestService(t)
	seedSearchFixtures(t, svc)

	result, err := svc.Search(context.Background(), sitecontent.SearchRequest{
		SortBy: sitecontent.SearchSortName,
		Order:  sitecontent.OrderAsc,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 4)
	assert.Equal(t, "Alpha Album", result.Items[0].DisplayName)
	assert.Equal(t, "Bravo Blog", result.Items[1].DisplayName)
	assert.Equal(t, "Charlie Document", result.Items[2].DisplayName)
	assert.Equal(t, "Delta Business", result.Items[3].DisplayName)

	result, err = svc.Search(context.Background(), sitecontent.SearchRequest{
		SortBy: sitecontent.SearchSortName,
		Order:  sitecontent.OrderDesc,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 4)
	assert.Equal(t, "Delta Business", result.Items[0].DisplayName)
	assert.Equal(t, "Alpha Album", result.Items[3].DisplayName)
}

func TestSearchSortByActivity(t *testing.T) {
	svc := newTestService(t)
	seedSearchFixtures(t, svc)

	result, err := svc.Search(context.Background(), sitecontent.SearchRequest{
		SortBy: sitecontent.SearchSortActivity,
		Order:  sitecontent.OrderDesc,
	})
	require.NoError(t, err)
	require.Len(t, result.Items, 4)
	// The business was created last, so it leads the descending feed.
	assert.Equal(t, sitecontent.KindBusiness, result.Items[0].Kind)
	assert.Equal(t, sitecontent.KindAlbum, result.Items[3].Kind)
}

func TestSearchFiltersByName(t *testing.T) {
	svc := newTestService(t)
	seedSearchFixtures(t, svc)

	result, err := svc.Search(context.Background(), sitecontent.SearchRequest{
		Name:   "bravo",
		SortBy: sitecontent.SearchSortActivity,
		Order:  sitecontent.OrderAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, sitecontent.KindBlog, result.Items[0].Kind)
	assert.Equal(t, "Bravo Blog", result.Items[0].DisplayName)
}

func TestSearchEmptyStore(t *testing.T) {
	svc := newTestService(t)

	result, err := svc.Search(context.Background(), sitecontent.SearchRequest{
		SortBy: sitecontent.SearchSortActivity,
		Order:  sitecontent.OrderAsc,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Items)
	assert.Empty(t, result.Newest)
}
