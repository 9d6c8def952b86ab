package sitecontent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

func (s *service) ListBusinessMetadata(ctx context.Context) ([]EntityMetadata, error) {
	return s.store.ListBusinessMetadata(ctx)
}

func (s *service) ListBusinesses(ctx context.Context, req ListBusinessesRequest) (*BusinessList, error) {
	page, err := ResolvePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	updatedIn, err := resolveOptionalRange("update", req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}

	filter := BusinessFilter{
		Title:     req.Title,
		UpdatedIn: updatedIn,
		SortBy:    req.SortBy,
		Order:     req.Order,
	}

	total, err := s.store.CountBusinesses(ctx, filter)
	if err != nil {
		return nil, err
	}
	newest, err := s.store.NewestBusinessActivity(ctx, filter)
	if err != nil {
		return nil, err
	}

	filter.Offset = page.Offset
	filter.Limit = page.Limit
	businesses, err := s.store.ListBusinesses(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &BusinessList{
		Total:      total,
		Newest:     FormatReadableTime(newest),
		Businesses: businesses,
	}, nil
}

func (s *service) GetBusinessBySlug(ctx context.Context, slug string) (*Business, error) {
	return s.store.GetBusinessBySlug(ctx, slug)
}

// CreateBusiness inserts a business line. Both headers are validated for
// cross-row slug uniqueness; omitted headers fall back to generated defaults
// derived from the business slug.
func (s *service) CreateBusiness(ctx context.Context, req CreateBusinessRequest) (*Business, error) {
	if req.Title == "" {
		return nil, NewValidationError("business title must not be empty")
	}

	header, productHeader, err := s.validateBusinessHeaders(ctx, nil, req.Header, req.ProductHeader)
	if err != nil {
		return nil, err
	}

	slug := Slugify(req.Title)
	if header == nil {
		h := s.defaultHeader(slug, "header")
		header = &h
	}
	if productHeader == nil {
		h := s.defaultHeader(slug, "product-header")
		productHeader = &h
	}

	now := time.Now().UTC()
	business := &Business{
		ID:            uuid.New(),
		Title:         req.Title,
		Slug:          slug,
		Description:   req.Description,
		Header:        *header,
		ProductHeader: *productHeader,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreateBusiness(ctx, business); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated business")
		}
		return nil, &EntityError{Kind: KindBusiness, Op: "create", Err: err}
	}
	return business, nil
}

func (s *service) UpdateBusiness(ctx context.Context, slug string, req UpdateBusinessRequest) (*Business, error) {
	business, err := s.store.GetBusinessBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	header, productHeader, err := s.validateBusinessHeaders(ctx, &business.ID, req.Header, req.ProductHeader)
	if err != nil {
		return nil, err
	}

	if req.Title != "" && req.Title != business.Title {
		business.Title = req.Title
		business.Slug = Slugify(req.Title)
	}
	if req.Description != "" {
		business.Description = req.Description
	}
	if header != nil {
		business.Header = *header
	}
	if productHeader != nil {
		business.ProductHeader = *productHeader
	}
	business.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateBusiness(ctx, business); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated business")
		}
		return nil, &EntityError{Kind: KindBusiness, Op: "update", Err: err}
	}
	return business, nil
}

// DeleteBusiness removes a business line and, through the store, its child
// products and projects.
func (s *service) DeleteBusiness(ctx context.Context, slug string) (*Business, error) {
	business, err := s.store.GetBusinessBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteBusiness(ctx, business.ID); err != nil {
		return nil, &EntityError{Kind: KindBusiness, Op: "delete", Err: err}
	}
	return business, nil
}
