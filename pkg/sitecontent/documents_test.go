package sitecontent_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

func TestCreateDocumentResolvesNameCollisions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()

	first, err := svc.CreateDocument(ctx, sitecontent.CreateDocumentRequest{
		Name:       "Annual Report",
		URL:        "/files/report-2023.pdf",
		Size:       "2 MB",
		Category:   "legality",
		UploaderID: uploader,
	})
	require.NoError(t, err)
	assert.Equal(t, "Annual Report", first.Name)
	assert.Equal(t, "annual-report", first.Slug)

	second, err := svc.CreateDocument(ctx, sitecontent.CreateDocumentRequest{
		Name:       "Annual Report",
		URL:        "/files/report-2024.pdf",
		Size:       "2 MB",
		Category:   "legality",
		UploaderID: uploader,
	})
	require.NoError(t, err)
	assert.Equal(t, "Annual Report(1)", second.Name)
	assert.Equal(t, "annual-report-1", second.Slug)
}

func TestListDocumentsByCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()

	for _, doc := range []struct{ name, category string }{
		{"Cert A", "certification"},
		{"Cert B", "certification"},
		{"License", "legality"},
	} {
		_, err := svc.CreateDocument(ctx, sitecontent.CreateDocumentRequest{
			Name:       doc.name,
			URL:        "/files/" + sitecontent.Slugify(doc.name) + ".pdf",
			Size:       "1 MB",
			Category:   doc.category,
			UploaderID: uploader,
		})
		require.NoError(t, err)
	}

	list, err := svc.ListDocuments(ctx, sitecontent.ListDocumentsRequest{
		Category: "certification",
		Page:     1,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), list.Total)
	assert.Len(t, list.Documents, 2)
}

func TestUpdateDocumentRenameResolvesCollision(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	uploader := uuid.New()

	_, err := svc.CreateDocument(ctx, sitecontent.CreateDocumentRequest{
		Name: "Taken", URL: "/files/a.pdf", Size: "1 MB", Category: "award", UploaderID: uploader,
	})
	require.NoError(t, err)
	doc, err := svc.CreateDocument(ctx, sitecontent.CreateDocumentRequest{
		Name: "Original", URL: "/files/b.pdf", Size: "1 MB", Category: "award", UploaderID: uploader,
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDocument(ctx, doc.Slug, sitecontent.UpdateDocumentRequest{Name: "Taken"})
	require.NoError(t, err)
	assert.Equal(t, "Taken(1)", updated.Name)
	assert.Equal(t, "taken-1", updated.Slug)
}

func TestDeleteDocument(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	doc, err := svc.CreateDocument(ctx, sitecontent.CreateDocumentRequest{
		Name: "Gone", URL: "/files/g.pdf", Size: "1 MB", Category: "award", UploaderID: uuid.New(),
	})
	require.NoError(t, err)

	deleted, err := svc.DeleteDocument(ctx, doc.Slug)
	require.NoError(t, err)
	assert.Equal(t, doc.ID, deleted.ID)

	_, err = svc.GetDocumentBySlug(ctx, doc.Slug)
	assert.ErrorIs(t, err, sitecontent.ErrDocumentNotFound)
}
