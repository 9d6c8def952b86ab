package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// Businesses

func (h *ContentHandler) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.service.ListBusinesses(r.Context(), sitecontent.ListBusinessesRequest{
		Title:     q.Get("title"),
		DateStart: q.Get("dateStart"),
		DateEnd:   q.Get("dateEnd"),
		SortBy:    q.Get("sortBy"),
		Order:     queryOrder(r),
		Page:      queryInt(r, "page", 1),
		Limit:     queryInt(r, "limit", 10),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) ListBusinessMetadata(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBusinessMetadata(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) GetBusiness(w http.ResponseWriter, r *http.Request) {
	business, err := h.service.GetBusinessBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, business)
}

type HeaderRefBody struct {
	Slug string `json:"slug" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

func (b *HeaderRefBody) toRef() *sitecontent.HeaderRef {
	if b == nil {
		return nil
	}
	return &sitecontent.HeaderRef{Slug: b.Slug, URL: b.URL}
}

type MediaRefBody struct {
	Slug string `json:"slug" validate:"required"`
	URL  string `json:"url" validate:"required"`
}

func toMediaRefs(items []MediaRefBody) []sitecontent.MediaRef {
	if items == nil {
		return nil
	}
	refs := make([]sitecontent.MediaRef, 0, len(items))
	for _, item := range items {
		refs = append(refs, sitecontent.MediaRef{Slug: item.Slug, URL: item.URL})
	}
	return refs
}

type CreateBusinessBody struct {
	Title         string         `json:"title" validate:"required"`
	Description   string         `json:"description"`
	Header        *HeaderRefBody `json:"header"`
	ProductHeader *HeaderRefBody `json:"product_header"`
}

func (h *ContentHandler) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	var body CreateBusinessBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondError(w, r, sitecontent.NewValidationError("business title is required"))
		return
	}

	business, err := h.service.CreateBusiness(r.Context(), sitecontent.CreateBusinessRequest{
		Title:         body.Title,
		Description:   body.Description,
		Header:        body.Header.toRef(),
		ProductHeader: body.ProductHeader.toRef(),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, business)
}

type UpdateBusinessBody struct {
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Header        *HeaderRefBody `json:"header"`
	ProductHeader *HeaderRefBody `json:"product_header"`
}

func (h *ContentHandler) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	var body UpdateBusinessBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	business, err := h.service.UpdateBusiness(r.Context(), chi.URLParam(r, "slug"), sitecontent.UpdateBusinessRequest{
		Title:         body.Title,
		Description:   body.Description,
		Header:        body.Header.toRef(),
		ProductHeader: body.ProductHeader.toRef(),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, business)
}

func (h *ContentHandler) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	business, err := h.service.DeleteBusiness(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, business)
}

// Products

func (h *ContentHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.service.ListProducts(r.Context(), sitecontent.ListProductsRequest{
		Title:        q.Get("title"),
		BusinessSlug: q.Get("business"),
		DateStart:    q.Get("dateStart"),
		DateEnd:      q.Get("dateEnd"),
		SortBy:       q.Get("sortBy"),
		Order:        queryOrder(r),
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", 10),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.GetProductBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, product)
}

type CreateProductBody struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	BusinessID  uuid.UUID      `json:"business_id" validate:"required"`
	Media       []MediaRefBody `json:"media" validate:"dive"`
}

func (h *ContentHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var body CreateProductBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondError(w, r, sitecontent.NewValidationError("product title and business_id are required"))
		return
	}

	product, err := h.service.CreateProduct(r.Context(), sitecontent.CreateProductRequest{
		Title:       body.Title,
		Description: body.Description,
		BusinessID:  body.BusinessID,
		Media:       toMediaRefs(body.Media),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, product)
}

type UpdateProductBody struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Media       []MediaRefBody `json:"media"`
}

func (h *ContentHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var body UpdateProductBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), chi.URLParam(r, "slug"), sitecontent.UpdateProductRequest{
		Title:       body.Title,
		Description: body.Description,
		Media:       toMediaRefs(body.Media),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, product)
}

func (h *ContentHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.DeleteProduct(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, product)
}

// Projects

func (h *ContentHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	result, err := h.service.ListProjects(r.Context(), sitecontent.ListProjectsRequest{
		Title:        q.Get("title"),
		BusinessSlug: q.Get("business"),
		DateStart:    q.Get("dateStart"),
		DateEnd:      q.Get("dateEnd"),
		SortBy:       q.Get("sortBy"),
		Order:        queryOrder(r),
		Page:         queryInt(r, "page", 1),
		Limit:        queryInt(r, "limit", 10),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.GetProjectBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, project)
}

type CreateProjectBody struct {
	Title       string         `json:"title" validate:"required"`
	Description string         `json:"description"`
	BusinessID  uuid.UUID      `json:"business_id" validate:"required"`
	Header      *HeaderRefBody `json:"header"`
	Media       []MediaRefBody `json:"media" validate:"dive"`
}

func (h *ContentHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var body CreateProjectBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondError(w, r, sitecontent.NewValidationError("project title and business_id are required"))
		return
	}

	project, err := h.service.CreateProject(r.Context(), sitecontent.CreateProjectRequest{
		Title:       body.Title,
		Description: body.Description,
		BusinessID:  body.BusinessID,
		Header:      body.Header.toRef(),
		Media:       toMediaRefs(body.Media),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, project)
}

type UpdateProjectBody struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Header      *HeaderRefBody `json:"header"`
	Media       []MediaRefBody `json:"media"`
}

func (h *ContentHandler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	var body UpdateProjectBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	project, err := h.service.UpdateProject(r.Context(), chi.URLParam(r, "slug"), sitecontent.UpdateProjectRequest{
		Title:       body.Title,
		Description: body.Description,
		Header:      body.Header.toRef(),
		Media:       toMediaRefs(body.Media),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, project)
}

func (h *ContentHandler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	project, err := h.service.DeleteProject(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, project)
}
