package sitecontent

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// defaultHeader builds the fallback header reference for a business or
// project that was created without one. kind distinguishes the two business
// headers ("header", "product-header"); empty kind is used for projects.
func (s *service) defaultHeader(slug, kind string) HeaderRef {
	headerSlug := "default-header-of-" + slug
	if kind != "" {
		headerSlug = "default-" + kind + "-of-" + slug
	}
	return HeaderRef{Slug: headerSlug, URL: s.defaultImageURL}
}

// validateBusinessHeaders checks a business header and product-header pair
// against every other business row. Slugs compare case-insensitively; the
// row being updated is excluded. Returns the normalized (lowercased) refs.
func (s *service) validateBusinessHeaders(ctx context.Context, excludeID *uuid.UUID, header, productHeader *HeaderRef) (*HeaderRef, *HeaderRef, error) {
	if header == nil && productHeader == nil {
		return nil, nil, nil
	}

	rows, err := s.store.ListBusinesses(ctx, BusinessFilter{ExcludeID: excludeID})
	if err != nil {
		return nil, nil, err
	}

	if header != nil {
		slug := strings.ToLower(header.Slug)
		for _, row := range rows {
			if strings.ToLower(row.Header.Slug) == slug {
				return nil, nil, NewValidationError("duplicated business header")
			}
		}
		header = &HeaderRef{Slug: slug, URL: header.URL}
	}

	if productHeader != nil {
		slug := strings.ToLower(productHeader.Slug)
		for _, row := range rows {
			if strings.ToLower(row.ProductHeader.Slug) == slug {
				return nil, nil, NewValidationError("duplicated business product header")
			}
		}
		productHeader = &HeaderRef{Slug: slug, URL: productHeader.URL}
	}

	return header, productHeader, nil
}

// validateProjectHeader checks a project header slug against every other
// project row, excluding the row being updated.
func (s *service) validateProjectHeader(ctx context.Context, excludeID *uuid.UUID, header *HeaderRef) (*HeaderRef, error) {
	if header == nil {
		return nil, nil
	}

	rows, err := s.store.ListProjects(ctx, ProjectFilter{ExcludeID: excludeID})
	if err != nil {
		return nil, err
	}

	slug := strings.ToLower(header.Slug)
	for _, row := range rows {
		if strings.ToLower(row.Header.Slug) == slug {
			return nil, NewValidationError("duplicated project header")
		}
	}

	return &HeaderRef{Slug: slug, URL: header.URL}, nil
}

// normalizeMediaList lowercases incoming media slugs and rejects duplicates
// within the list itself.
func normalizeMediaList(items []MediaRef) ([]MediaRef, error) {
	if len(items) == 0 {
		return nil, nil
	}

	normalized := make([]MediaRef, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		slug := strings.ToLower(item.Slug)
		if _, dup := seen[slug]; dup {
			return nil, NewValidationError("duplicate slugs found in input media list")
		}
		seen[slug] = struct{}{}
		normalized = append(normalized, MediaRef{Slug: slug, URL: item.URL})
	}
	return normalized, nil
}

// validateProductMedia normalizes a product media list and scans the full
// product table, flattening each row's media list, to reject cross-row slug
// collisions. A complete scan per call is an accepted cost at the expected
// data volume.
func (s *service) validateProductMedia(ctx context.Context, excludeID *uuid.UUID, items []MediaRef) ([]MediaRef, error) {
	normalized, err := normalizeMediaList(items)
	if err != nil || normalized == nil {
		return nil, err
	}

	rows, err := s.store.ListProducts(ctx, ProductFilter{ExcludeID: excludeID})
	if err != nil {
		return nil, err
	}

	existing := make(map[string]struct{})
	for _, row := range rows {
		for _, m := range row.Media {
			existing[strings.ToLower(m.Slug)] = struct{}{}
		}
	}
	for _, item := range normalized {
		if _, dup := existing[item.Slug]; dup {
			return nil, NewValidationError("duplicated product media")
		}
	}

	return normalized, nil
}

// validateProjectMedia is the project-side counterpart of
// validateProductMedia.
func (s *service) validateProjectMedia(ctx context.Context, excludeID *uuid.UUID, items []MediaRef) ([]MediaRef, error) {
	normalized, err := normalizeMediaList(items)
	if err != nil || normalized == nil {
		return nil, err
	}

	rows, err := s.store.ListProjects(ctx, ProjectFilter{ExcludeID: excludeID})
	if err != nil {
		return nil, err
	}

	existing := make(map[string]struct{})
	for _, row := range rows {
		for _, m := range row.Media {
			existing[strings.ToLower(m.Slug)] = struct{}{}
		}
	}
	for _, item := range normalized {
		if _, dup := existing[item.Slug]; dup {
			return nil, NewValidationError("duplicated project media")
		}
	}

	return normalized, nil
}
