package sitecontent_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

func TestBlogLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	author := uuid.New()

	blog, err := svc.CreateBlog(ctx, sitecontent.CreateBlogRequest{
		Title:    "Launch Notes",
		Content:  "We shipped.",
		Header:   "/files/launch.jpg",
		AuthorID: author,
	})
	require.NoError(t, err)
	assert.Equal(t, "launch-notes", blog.Slug)

	updated, err := svc.UpdateBlog(ctx, "launch-notes", sitecontent.UpdateBlogRequest{
		Title: "Launch Notes v2",
	})
	require.NoError(t, err)
	assert.Equal(t, "launch-notes-v2", updated.Slug)
	assert.Equal(t, "We shipped.", updated.Content)

	deleted, err := svc.DeleteBlog(ctx, "launch-notes-v2")
	require.NoError(t, err)
	assert.Equal(t, blog.ID, deleted.ID)

	_, err = svc.GetBlogBySlug(ctx, "launch-notes-v2")
	assert.ErrorIs(t, err, sitecontent.ErrBlogNotFound)
}

func TestCreateBlogDuplicateTitle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBlog(ctx, sitecontent.CreateBlogRequest{
		Title: "Same", Content: "a", AuthorID: uuid.New(),
	})
	require.NoError(t, err)

	_, err = svc.CreateBlog(ctx, sitecontent.CreateBlogRequest{
		Title: "Same", Content: "b", AuthorID: uuid.New(),
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicated blog")
}

func TestListBlogsFiltersByTitle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	author := uuid.New()

	for _, title := range []string{"Go Tips", "Go Tricks", "Rust Notes"} {
		_, err := svc.CreateBlog(ctx, sitecontent.CreateBlogRequest{
			Title: title, Content: "x", AuthorID: author,
		})
		require.NoError(t, err)
	}

	list, err := svc.ListBlogs(ctx, sitecontent.ListBlogsRequest{
		Title: "go",
		Page:  1,
		Limit: 10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Blogs, 2)
}
