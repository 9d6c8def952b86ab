package sitecontent

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

func (s *service) ListProjects(ctx context.Context, req ListProjectsRequest) (*ProjectList, error) {
	page, err := ResolvePagination(req.Page, req.Limit)
	if err != nil {
		return nil, err
	}
	updatedIn, err := resolveOptionalRange("update", req.DateStart, req.DateEnd)
	if err != nil {
		return nil, err
	}

	filter := ProjectFilter{
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

	total, err := s.store.CountProjects(ctx, filter)
	if err != nil {
		return nil, err
	}
	newest, err := s.store.NewestProjectActivity(ctx, filter)
	if err != nil {
		return nil, err
	}

	filter.Offset = page.Offset
	filter.Limit = page.Limit
	projects, err := s.store.ListProjects(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ProjectList{
		Total:    total,
		Newest:   FormatReadableTime(newest),
		Projects: projects,
	}, nil
}

func (s *service) GetProjectBySlug(ctx context.Context, slug string) (*Project, error) {
	return s.store.GetProjectBySlug(ctx, slug)
}

// CreateProject inserts a project under a business. The header and the media
// list are both validated for cross-row slug uniqueness; an omitted header
// falls back to a generated default.
func (s *service) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	if req.Title == "" {
		return nil, NewValidationError("project title must not be empty")
	}

	business, err := s.store.GetBusiness(ctx, req.BusinessID)
	if err != nil {
		return nil, err
	}
	header, err := s.validateProjectHeader(ctx, nil, req.Header)
	if err != nil {
		return nil, err
	}
	media, err := s.validateProjectMedia(ctx, nil, req.Media)
	if err != nil {
		return nil, err
	}

	slug := Slugify(req.Title)
	if header == nil {
		h := s.defaultHeader(slug, "")
		header = &h
	}

	now := time.Now().UTC()
	project := &Project{
		ID:            uuid.New(),
		BusinessID:    business.ID,
		Title:         req.Title,
		Slug:          slug,
		Description:   req.Description,
		BusinessTitle: business.Title,
		Header:        *header,
		Media:         media,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.store.CreateProject(ctx, project); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated project")
		}
		return nil, &EntityError{Kind: KindProject, Op: "create", Err: err}
	}
	return project, nil
}

func (s *service) UpdateProject(ctx context.Context, slug string, req UpdateProjectRequest) (*Project, error) {
	project, err := s.store.GetProjectBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	header, err := s.validateProjectHeader(ctx, &project.ID, req.Header)
	if err != nil {
		return nil, err
	}
	if req.Media != nil {
		media, err := s.validateProjectMedia(ctx, &project.ID, req.Media)
		if err != nil {
			return nil, err
		}
		project.Media = media
	}
	if req.Title != "" && req.Title != project.Title {
		project.Title = req.Title
		project.Slug = Slugify(req.Title)
	}
	if req.Description != "" {
		project.Description = req.Description
	}
	if header != nil {
		project.Header = *header
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateProject(ctx, project); err != nil {
		if errors.Is(err, ErrDuplicateName) {
			return nil, NewValidationError("duplicated project")
		}
		return nil, &EntityError{Kind: KindProject, Op: "update", Err: err}
	}
	return project, nil
}

func (s *service) DeleteProject(ctx context.Context, slug string) (*Project, error) {
	project, err := s.store.GetProjectBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteProject(ctx, project.ID); err != nil {
		return nil, &EntityError{Kind: KindProject, Op: "delete", Err: err}
	}
	return project, nil
}
