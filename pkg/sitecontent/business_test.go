package sitecontent_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

func TestCreateBusinessGeneratesDefaultHeaders(t *testing.T) {
	svc := newTestService(t)

	business, err := svc.CreateBusiness(context.Background(), sitecontent.CreateBusinessRequest{
		Title: "Garment Division",
	})
	require.NoError(t, err)
	assert.Equal(t, "garment-division", business.Slug)
	assert.Equal(t, "default-header-of-garment-division", business.Header.Slug)
	assert.Equal(t, testDefaultImage, business.Header.URL)
	assert.Equal(t, "default-product-header-of-garment-division", business.ProductHeader.Slug)
	assert.Equal(t, testDefaultImage, business.ProductHeader.URL)
}

func TestBusinessHeaderUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBusiness(ctx, sitecontent.CreateBusinessRequest{
		Title:  "First",
		Header: &sitecontent.HeaderRef{Slug: "Shared-Header", URL: "/files/h1.jpg"},
	})
	require.NoError(t, err)

	// Header slugs compare case-insensitively across rows.
	_, err = svc.CreateBusiness(ctx, sitecontent.CreateBusinessRequest{
		Title:  "Second",
		Header: &sitecontent.HeaderRef{Slug: "shared-header", URL: "/files/h2.jpg"},
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicated business header")
}

func TestBusinessProductHeaderUniqueness(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateBusiness(ctx, sitecontent.CreateBusinessRequest{
		Title:         "First",
		ProductHeader: &sitecontent.HeaderRef{Slug: "catalog", URL: "/files/c1.jpg"},
	})
	require.NoError(t, err)

	_, err = svc.CreateBusiness(ctx, sitecontent.CreateBusinessRequest{
		Title:         "Second",
		ProductHeader: &sitecontent.HeaderRef{Slug: "CATALOG", URL: "/files/c2.jpg"},
	})
	require.Error(t, err)
	assert.True(t, sitecontent.IsValidation(err))
	assert.Contains(t, err.Error(), "duplicated business product header")
}

func TestUpdateBusinessExcludesOwnHeaders(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	business, err := svc.CreateBusiness(ctx, sitecontent.CreateBusinessRequest{
		Title:  "Solo",
		Header: &sitecontent.HeaderRef{Slug: "solo-header", URL: "/files/h.jpg"},
	})
	require.NoError(t, err)

	// Re-submitting the business's own header must not trip the validator.
	updated, err := svc.UpdateBusiness(ctx, business.Slug, sitecontent.UpdateBusinessRequest{
		Description: "updated",
		Header:      &sitecontent.HeaderRef{Slug: "solo-header", URL: "/files/h2.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, "updated", updated.Description)
	assert.Equal(t, "/files/h2.jpg", updated.Header.URL)
}

func TestDeleteBusinessCascades(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	business, err := svc.CreateBusiness(ctx, sitecontent.CreateBusinessRequest{Title: "Parent"})
	require.NoError(t, err)

	product, err := svc.CreateProduct(ctx, sitecontent.CreateProductRequest{
		Title:      "Child Product",
		BusinessID: business.ID,
	})
	require.NoError(t, err)

	project, err := svc.CreateProject(ctx, sitecontent.CreateProjectRequest{
		Title:      "Child Project",
		BusinessID: business.ID,
	})
	require.NoError(t, err)

	_, err = svc.DeleteBusiness(ctx, business.Slug)
	require.NoError(t, err)

	_, err = svc.GetProductBySlug(ctx, product.Slug)
	assert.ErrorIs(t, err, sitecontent.ErrProductNotFound)
	_, err = svc.GetProjectBySlug(ctx, project.Slug)
	assert.ErrorIs(t, err, sitecontent.ErrProjectNotFound)
}
