package sitecontent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

func (s *service) ListBlogs(ctx context.Context, req ListBlogsRequest) (*BlogList, error) {
	page, err := ResolvePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	createdIn, err := resolveOptionalRange("create", req.DateCreateStart, req.DateCreateEnd)
	if err != nil {
		return nil, err
	}
	updatedIn, err := resolveOptionalRange("update", req.DateUpdateStart, req.DateUpdateEnd)
	if err != nil {
		return nil, err
	}

	filter := BlogFilter{
		Title:     req.Title,
		AuthorID:  req.CreatedBy,
		CreatedIn: createdIn,
		UpdatedIn: updatedIn,
		SortBy:    req.SortBy,
		Order:     req.Order,
	}

	total, err := s.store.CountBlogs(ctx, filter)
	if err != nil {
		return nil, err
	}
	newest, err := s.store.NewestBlogActivity(ctx, filter)
	if err != nil {
		return nil, err
	}

	filter.Offset = page.Offset
	filter.Limit = page.Limit
	blogs, err := s.store.ListBlogs(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &BlogList{
		Total:  total,
		Newest: FormatReadableTime(newest),
		Blogs:  blogs,
	}, nil
}

func (s *service) GetBlogBySlug(ctx context.Context, slug string) (*Blog, error) {
	return s.store.GetBlogBySlug(ctx, slug)
}

func (s *service) CreateBlog(ctx context.Context, req CreateBlogRequest) (*Blog, error) {
	if req.Title == "" {
		return nil, NewValidationError("blog title must not be empty")
	}

	now := time.Now().UTC()
	blog := &Blog{
		ID:        uuid.New(),
		Title:     req.Title,
		Slug:      Slugify(req.Title),
		Content:   req.Content,
		Header:    req.Header,
		AuthorID:  req.AuthorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreateBlog(ctx, blog); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated blog")
		}
		return nil, &EntityError{Kind: KindBlog, Op: "create", Err: err}
	}
	return blog, nil
}

func (s *service) UpdateBlog(ctx context.Context, slug string, req UpdateBlogRequest) (*Blog, error) {
	blog, err := s.store.GetBlogBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	if req.Title != "" && req.Title != blog.Title {
		blog.Title = req.Title
		blog.Slug = Slugify(req.Title)
	}
	if req.Content != "" {
		blog.Content = req.Content
	}
	if req.Header != "" {
		blog.Header = req.Header
	}
	blog.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateBlog(ctx, blog); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated blog")
		}
		return nil, &EntityError{Kind: KindBlog, Op: "update", Err: err}
	}
	return blog, nil
}

func (s *service) DeleteBlog(ctx context.Context, slug string) (*Blog, error) {
	blog, err := s.store.GetBlogBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteBlog(ctx, blog.ID); err != nil {
		return nil, &EntityError{Kind: KindBlog, Op: "delete", Err: err}
	}
	return blog, nil
}
