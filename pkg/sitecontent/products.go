package sitecontent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

func (s *service) ListProducts(ctx context.Context, req ListProductsRequest) (*ProductList, error) {
	page, err := ResolvePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	updatedIn, err := resolveOptionalRange("update", req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}

	filter := ProductFilter{
		Title:     req.Title,
		UpdatedIn: updatedIn,
		SortBy:    req.SortBy,
		Order:     req.Order,
	}
	if req.BusinessSlug != "" {
		business, err := s.store.GetBusinessBySlug(ctx, req.BusinessSlug)
		if err != nil {
			return nil, err
		}
		filter.BusinessID = &business.ID
	}

	total, err := s.store.CountProducts(ctx, filter)
	if err != nil {
		return nil, err
	}
	newest, err := s.store.NewestProductActivity(ctx, filter)
	if err != nil {
		return nil, err
	}

	filter.Offset = page.Offset
	filter.Limit = page.Limit
	products, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ProductList{
		Total:    total,
		Newest:   FormatReadableTime(newest),
		Products: products,
	}, nil
}

func (s *service) GetProductBySlug(ctx context.Context, slug string) (*Product, error) {
	return s.store.GetProductBySlug(ctx, slug)
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if req.Title == "" {
		return nil, NewValidationError("product title must not be empty")
	}

	business, err := s.store.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	media, err := s.validateProductMedia(ctx, nil, req.Media)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	product := &Product{
		ID:            uuid.New(),
		BusinessID:    business.ID,
		Title:         req.Title,
		Slug:          Slugify(req.Title),
		Description:   req.Description,
		BusinessTitle: business.Title,
		Media:         media,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated product")
		}
		return nil, &EntityError{Kind: KindProduct, Op: "create", Err: err}
	}
	return product, nil
}

func (s *service) UpdateProduct(ctx context.Context, slug string, req UpdateProductRequest) (*Product, error) {
	product, err := s.store.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Media != nil {
		media, err := s.validateProductMedia(ctx, &product.ID, req.Media)
		if err != nil {
			return nil, err
		}
		product.Media = media
	}
	if req.Title != "" && req.Title != product.Title {
		product.Title = req.Title
		product.Slug = Slugify(req.Title)
	}
	if req.Description != "" {
		product.Description = req.Description
	}
	product.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated product")
		}
		return nil, &EntityError{Kind: KindProduct, Op: "update", Err: err}
	}
	return product, nil
}

func (s *service) DeleteProduct(ctx context.Context, slug string) (*Product, error) {
	product, err := s.store.GetProductBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteProduct(ctx, product.ID); err != nil {
		return nil, &EntityError{Kind: KindProduct, Op: "delete", Err: err}
	}
	return product, nil
}
