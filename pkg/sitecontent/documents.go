package sitecontent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

func (s *service) ListDocuments(ctx context.Context, req ListDocumentsRequest) (*DocumentList, error) {
	page, err := ResolvePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	uploadedIn, err := resolveOptionalRange("upload", req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}

	filter := DocumentFilter{
		Name:       req.Name,
		Category:   req.Category,
		UploaderID: req.UploadedBy,
		UploadedIn: uploadedIn,
		SortBy:     req.SortBy,
		Order:      req.Order,
	}

	total, err := s.store.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}
	newest, err := s.store.NewestDocumentActivity(ctx, filter)
	if err != nil {
		return nil, err
	}

	filter.Offset = page.Offset
	filter.Limit = page.Limit
	documents, err := s.store.ListDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &DocumentList{
		Total:     total,
		Newest:    FormatReadableTime(newest),
		Documents: documents,
	}, nil
}

func (s *service) GetDocumentBySlug(ctx context.Context, slug string) (*Document, error) {
	return s.store.GetDocumentBySlug(ctx, slug)
}

// CreateDocument inserts an uploaded document, resolving name collisions the
// same way media uploads do. A concurrent create that steals the resolved
// name triggers one re-resolution against the fresh state.
func (s *service) CreateDocument(ctx context.Context, req CreateDocumentRequest) (*Document, error) {
	if req.Name == "" {
		return nil, NewValidationError("document name must not be empty")
	}

	doc := &Document{
		URL:        req.URL,
		Size:       req.Size,
		Category:   req.Category,
		UploaderID: req.UploaderID,
	}

	for attempt := 0; ; attempt++ {
		name, slug, err := resolveUniqueName(ctx, s.store.DocumentNameExists, req.Name)
		if err != nil {
			return nil, err
		}
		doc.ID = uuid.New()
		doc.Name = name
		doc.Slug = slug
		doc.UploadedAt = time.Now().UTC()

		err = s.store.CreateDocument(ctx, doc)
		if err == nil {
			return doc, nil
		}
		if !errors.Is(err, ErrDuplicateName) || attempt > 0 {
			return nil, &EntityError{Kind: KindDocument, Op: "create", Err: err}
		}
	}
}

func (s *service) UpdateDocument(ctx context.Context, slug string, req UpdateDocumentRequest) (*Document, error) {
	doc, err := s.store.GetDocumentBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Name != "" && req.Name != doc.Name {
		name, newSlug, err := resolveUniqueName(ctx, s.store.DocumentNameExists, req.Name)
		if err != nil {
			return nil, err
		}
		doc.Name = name
		doc.Slug = newSlug
	}
	if req.URL != "" {
		doc.URL = req.URL
	}
	if req.Size != "" {
		doc.Size = req.Size
	}
	if req.Category != "" {
		doc.Category = req.Category
	}
	doc.UploadedAt = time.Now().UTC()

	if err := s.store.UpdateDocument(ctx, doc); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated document")
		}
		return nil, &EntityError{Kind: KindDocument, Op: "update", Err: err}
	}
	return doc, nil
}

func (s *service) DeleteDocument(ctx context.Context, slug string) (*Document, error) {
	doc, err := s.store.GetDocumentBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteDocument(ctx, doc.ID); err != nil {
		return nil, &EntityError{Kind: KindDocument, Op: "delete", Err: err}
	}
	return doc, nil
}
