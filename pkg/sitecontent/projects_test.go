package sitecontent_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

func createTestBusiness(t *testing.T, svc sitecontent.Service, title string) *sitecontent.Business {
	t.Helper()
	business, err := svc.CreateBusiness(context.Background(), sitecontent.CreateBusinessRequest{Title: title})
	require.NoError(t, err)
	return business
}

func TestCreateProjectDefaultHeader(t *testing.T) {
	svc := newTestService(t)
	business := createTestBusiness(t, svc, "Parent")

	project, err := svc.CreateProject(context.Background(), sitecontent.CreateProjectRequest{
		Title:      "Harbor Expansion",
		BusinessID: business.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "harbor-expansion", project.Slug)
	assert.Equal(t, "default-header-of-harbor-expansion", project.Header.Slug)
	assert.Equal(t, testDefaultImage, project.Header.URL)
	assert.Equal(t, "Parent", project.BusinessTitle)
}

func TestCreateProjectUnknownBusiness(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CreateProject(context.Background(), sitecontent.CreateProjectRequest{
		Title:      "Orphan",
		BusinessID: uuid.New(),
	})
	assert.ErrorIs(t, err, sitecontent.ErrBusinessNotFound)
}

func TestProjectHeaderUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	business := createTestBusiness(t, svc, "Parent")

	_, err := svc.CreateProject(ctx, sitecontent.CreateProjectRequest{
		Title:      "First",
		BusinessID: business.ID,
		Header:     &sitecontent.HeaderRef{Slug: "hero-shot", URL: "/files/h1.jpg"},
	})
	require.NoError(t, err)

	_, err = svc.CreateProject(ctx, sitecontent.CreateProjectRequest{
		Title:      "Second",
		BusinessID: business.ID,
		Header:     &sitecontent.HeaderRef{Slug: "Hero-Shot", URL: "/files/h2.jpg"},
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicated project header")
}

func TestProjectMediaUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	business := createTestBusiness(t, svc, "Parent")

	// Duplicates within one submission.
	_, err := svc.CreateProject(ctx, sitecontent.CreateProjectRequest{
		Title:      "First",
		BusinessID: business.ID,
		Media: []sitecontent.MediaRef{
			{Slug: "img-1", URL: "/files/1.jpg"},
			{Slug: "IMG-1", URL: "/files/2.jpg"},
		},
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicate slugs found in input media list")

	_, err = svc.CreateProject(ctx, sitecontent.CreateProjectRequest{
		Title:      "First",
		BusinessID: business.ID,
		Media:      []sitecontent.MediaRef{{Slug: "img-1", URL: "/files/1.jpg"}},
	})
	require.NoError(t, err)

	// Collision against another project's media list.
	_, err = svc.CreateProject(ctx, sitecontent.CreateProjectRequest{
		Title:      "Second",
		BusinessID: business.ID,
		Media:      []sitecontent.MediaRef{{Slug: "IMG-1", URL: "/files/3.jpg"}},
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicated project media")
}

func TestProductMediaUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	business := createTestBusiness(t, svc, "Parent")

	first, err := svc.CreateProduct(ctx, sitecontent.CreateProductRequest{
		Title:      "First",
		BusinessID: business.ID,
		Media:      []sitecontent.MediaRef{{Slug: "shot-1", URL: "/files/1.jpg"}},
	})
	require.NoError(t, err)

	_, err = svc.CreateProduct(ctx, sitecontent.CreateProductRequest{
		Title:      "Second",
		BusinessID: business.ID,
		Media:      []sitecontent.MediaRef{{Slug: "SHOT-1", URL: "/files/2.jpg"}},
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicated product media")

	// A product can keep its own media slugs on update.
	updated, err := svc.UpdateProduct(ctx, first.Slug, sitecontent.UpdateProductRequest{
		Media: []sitecontent.MediaRef{
			{Slug: "shot-1", URL: "/files/1.jpg"},
			{Slug: "shot-2", URL: "/files/2.jpg"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, updated.Media, 2)
}

func TestListProductsByBusiness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	parent := createTestBusiness(t, svc, "Parent")
	other := createTestBusiness(t, svc, "Other")

	_, err := svc.CreateProduct(ctx, sitecontent.CreateProductRequest{Title: "A", BusinessID: parent.ID})
	require.NoError(t, err)
	_, err = svc.CreateProduct(ctx, sitecontent.CreateProductRequest{Title: "B", BusinessID: other.ID})
	require.NoError(t, err)

	list, err := svc.ListProducts(ctx, sitecontent.ListProductsRequest{
		BusinessSlug: "parent",
		Page:         1,
		Limit:        10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), list.Total)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "A", list.Products[0].Title)
	assert.Equal(t, "Parent", list.Products[0].BusinessTitle)
}
