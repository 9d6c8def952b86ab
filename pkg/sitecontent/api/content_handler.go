package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/icodeu/site-content/pkg/sitecontent"
	"github.com/icodeu/site-content/pkg/sitecontent/auth"
)

// ContentHandler exposes the content service over HTTP. Reads are public;
// mutations sit behind the JWT middleware.
type ContentHandler struct {
	service   sitecontent.Service
	tokenAuth *jwtauth.JWTAuth
	validate  *validator.Validate
}

func NewContentHandler(service sitecontent.Service, tokenAuth *jwtauth.JWTAuth) *ContentHandler {
	return &ContentHandler{
		service:   service,
		tokenAuth: tokenAuth,
		validate:  validator.New(),
	}
}

// Routes returns the router for all content endpoints
func (h *ContentHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/search", h.Search)
	r.Post("/contact", h.SubmitContact)

	r.Route("/albums", func(r chi.Router) {
		r.Get("/", h.ListAlbums)
		r.Get("/metadata", h.ListAlbumMetadata)
		r.Get("/{slug}", h.GetAlbum)
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Post("/", h.CreateAlbum)
			r.Post("/{slug}/media", h.CreateMedia)
			r.Patch("/{slug}", h.UpdateAlbum)
			r.Delete("/{slug}", h.DeleteAlbum)
		})
	})

	r.Route("/media", func(r chi.Router) {
		r.Get("/", h.ListMedia)
		r.Get("/{slug}", h.GetMedia)
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Patch("/{slug}", h.UpdateMedia)
			r.Delete("/{slug}", h.DeleteMedia)
		})
	})

	r.Route("/blogs", func(r chi.Router) {
		r.Get("/", h.ListBlogs)
		r.Get("/{slug}", h.GetBlog)
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Post("/", h.CreateBlog)
			r.Patch("/{slug}", h.UpdateBlog)
			r.Delete("/{slug}", h.DeleteBlog)
		})
	})

	r.Route("/documents", func(r chi.Router) {
		r.Get("/", h.ListDocuments)
		r.Get("/{slug}", h.GetDocument)
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Post("/", h.CreateDocument)
			r.Patch("/{slug}", h.UpdateDocument)
			r.Delete("/{slug}", h.DeleteDocument)
		})
	})

	r.Route("/businesses", func(r chi.Router) {
		r.Get("/", h.ListBusinesses)
		r.Get("/metadata", h.ListBusinessMetadata)
		r.Get("/{slug}", h.GetBusiness)
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Post("/", h.CreateBusiness)
			r.Patch("/{slug}", h.UpdateBusiness)
			r.Delete("/{slug}", h.DeleteBusiness)
		})
	})

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{slug}", h.GetProduct)
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Post("/", h.CreateProduct)
			r.Patch("/{slug}", h.UpdateProduct)
			r.Delete("/{slug}", h.DeleteProduct)
		})
	})

	r.Route("/projects", func(r chi.Router) {
		r.Get("/", h.ListProjects)
		r.Get("/{slug}", h.GetProject)
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(h.tokenAuth))
			r.Use(jwtauth.Authenticator)
			r.Post("/", h.CreateProject)
			r.Patch("/{slug}", h.UpdateProject)
			r.Delete("/{slug}", h.DeleteProject)
		})
	})

	return r
}

// queryUUID reads an optional UUID query parameter.
func queryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, sitecontent.NewValidationError("invalid %s: %q", key, raw)
	}
	return &id, nil
}

func decodeBody(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return sitecontent.NewValidationError("invalid request body")
	}
	return nil
}

// Search

func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	sortBy := sitecontent.SearchSort(r.URL.Query().Get("sortBy"))
	if sortBy == "" {
		sortBy = sitecontent.SearchSortActivity
	}

	result, err := h.service.Search(r.Context(), sitecontent.SearchRequest{
		Name:   r.URL.Query().Get("name"),
		SortBy: sortBy,
		Order:  queryOrder(r),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

// Contact

type ContactBody struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

func (h *ContentHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var body ContactBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondError(w, r, sitecontent.NewValidationError("name, a valid email and message are required"))
		return
	}

	msg, err := h.service.SubmitContactMessage(r.Context(), sitecontent.ContactRequest{
		Name:    body.Name,
		Email:   body.Email,
		Message: body.Message,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, msg)
}

// Albums

func (h *ContentHandler) ListAlbums(w http.ResponseWriter, r *http.Request) {
	createdBy, err := queryUUID(r, "createdBy")
	if err != nil {
		respondError(w, r, err)
		return
	}

	q := r.URL.Query()
	result, err := h.service.ListAlbums(r.Context(), sitecontent.ListAlbumsRequest{
		Title:           q.Get("title"),
		CreatedBy:       createdBy,
		DateCreateStart: q.Get("dateCreateStart"),
		DateCreateEnd:   q.Get("dateCreateEnd"),
		DateUpdateStart: q.Get("dateUpdateStart"),
		DateUpdateEnd:   q.Get("dateUpdateEnd"),
		SortBy:          q.Get("sortBy"),
		Order:           queryOrder(r),
		Page:            queryInt(r, "page", 1),
		Limit:           queryInt(r, "limit", 10),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) ListAlbumMetadata(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListAlbumMetadata(r.Context())
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) GetAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := h.service.GetAlbumBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, album)
}

type CreateAlbumBody struct {
	Name string `json:"name" validate:"required"`
}

func (h *ContentHandler) CreateAlbum(w http.ResponseWriter, r *http.Request) {
	adminID, err := auth.AdminID(r.Context())
	if err != nil {
		respondError(w, r, sitecontent.ErrInvalidCredentials)
		return
	}

	var body CreateAlbumBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondError(w, r, sitecontent.NewValidationError("album name is required"))
		return
	}

	album, err := h.service.CreateAlbum(r.Context(), sitecontent.CreateAlbumRequest{
		Name:      body.Name,
		CreatorID: adminID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, album)
}

type UpdateAlbumBody struct {
	Name string `json:"name"`
}

func (h *ContentHandler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	var body UpdateAlbumBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	album, err := h.service.UpdateAlbum(r.Context(), chi.URLParam(r, "slug"), sitecontent.UpdateAlbumRequest{
		Name: body.Name,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, album)
}

func (h *ContentHandler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	album, err := h.service.DeleteAlbum(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, album)
}

// Media

func (h *ContentHandler) ListMedia(w http.ResponseWriter, r *http.Request) {
	uploadedBy, err := queryUUID(r, "uploadedBy")
	if err != nil {
		respondError(w, r, err)
		return
	}

	q := r.URL.Query()
	result, err := h.service.ListMedia(r.Context(), sitecontent.ListMediaRequest{
		Title:      q.Get("title"),
		AlbumSlug:  q.Get("album"),
		UploadedBy: uploadedBy,
		DateStart:  q.Get("dateStart"),
		DateEnd:    q.Get("dateEnd"),
		SortBy:     q.Get("sortBy"),
		Order:      queryOrder(r),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 10),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) GetMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.service.GetMediaBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, media)
}

type MediaItemBody struct {
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required"`
	Size string `json:"size" validate:"required"`
}

type CreateMediaBody struct {
	Items []MediaItemBody `json:"items" validate:"required,min=1,dive"`
}

func (h *ContentHandler) CreateMedia(w http.ResponseWriter, r *http.Request) {
	adminID, err := auth.AdminID(r.Context())
	if err != nil {
		respondError(w, r, sitecontent.ErrInvalidCredentials)
		return
	}

	var body CreateMediaBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondError(w, r, sitecontent.NewValidationError("each media item needs a name, url and size"))
		return
	}

	items := make([]sitecontent.CreateMediaRequest, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, sitecontent.CreateMediaRequest{
			Name: item.Name,
			URL:  item.URL,
			Size: item.Size,
		})
	}

	media, err := h.service.CreateMedia(r.Context(), chi.URLParam(r, "slug"), adminID, items)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, media)
}

type UpdateMediaBody struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Size string `json:"size"`
}

func (h *ContentHandler) UpdateMedia(w http.ResponseWriter, r *http.Request) {
	adminID, err := auth.AdminID(r.Context())
	if err != nil {
		respondError(w, r, sitecontent.ErrInvalidCredentials)
		return
	}

	var body UpdateMediaBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	media, err := h.service.UpdateMedia(r.Context(), chi.URLParam(r, "slug"), adminID, sitecontent.UpdateMediaRequest{
		Name: body.Name,
		URL:  body.URL,
		Size: body.Size,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, media)
}

func (h *ContentHandler) DeleteMedia(w http.ResponseWriter, r *http.Request) {
	media, err := h.service.DeleteMedia(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, media)
}

// Blogs

func (h *ContentHandler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	createdBy, err := queryUUID(r, "createdBy")
	if err != nil {
		respondError(w, r, err)
		return
	}

	q := r.URL.Query()
	result, err := h.service.ListBlogs(r.Context(), sitecontent.ListBlogsRequest{
		Title:           q.Get("title"),
		CreatedBy:       createdBy,
		DateCreateStart: q.Get("dateCreateStart"),
		DateCreateEnd:   q.Get("dateCreateEnd"),
		DateUpdateStart: q.Get("dateUpdateStart"),
		DateUpdateEnd:   q.Get("dateUpdateEnd"),
		SortBy:          q.Get("sortBy"),
		Order:           queryOrder(r),
		Page:            queryInt(r, "page", 1),
		Limit:           queryInt(r, "limit", 10),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) GetBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.service.GetBlogBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, blog)
}

type CreateBlogBody struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
	Header  string `json:"header"`
}

func (h *ContentHandler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	adminID, err := auth.AdminID(r.Context())
	if err != nil {
		respondError(w, r, sitecontent.ErrInvalidCredentials)
		return
	}

	var body CreateBlogBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondError(w, r, sitecontent.NewValidationError("blog title and content are required"))
		return
	}

	blog, err := h.service.CreateBlog(r.Context(), sitecontent.CreateBlogRequest{
		Title:    body.Title,
		Content:  body.Content,
		Header:   body.Header,
		AuthorID: adminID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, blog)
}

type UpdateBlogBody struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Header  string `json:"header"`
}

func (h *ContentHandler) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	var body UpdateBlogBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	blog, err := h.service.UpdateBlog(r.Context(), chi.URLParam(r, "slug"), sitecontent.UpdateBlogRequest{
		Title:   body.Title,
		Content: body.Content,
		Header:  body.Header,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, blog)
}

func (h *ContentHandler) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	blog, err := h.service.DeleteBlog(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, blog)
}

// Documents

func (h *ContentHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	uploadedBy, err := queryUUID(r, "uploadedBy")
	if err != nil {
		respondError(w, r, err)
		return
	}

	q := r.URL.Query()
	result, err := h.service.ListDocuments(r.Context(), sitecontent.ListDocumentsRequest{
		Name:       q.Get("name"),
		Category:   q.Get("category"),
		UploadedBy: uploadedBy,
		DateStart:  q.Get("dateStart"),
		DateEnd:    q.Get("dateEnd"),
		SortBy:     q.Get("sortBy"),
		Order:      queryOrder(r),
		Page:       queryInt(r, "page", 1),
		Limit:      queryInt(r, "limit", 10),
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, result)
}

func (h *ContentHandler) GetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.GetDocumentBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, doc)
}

type CreateDocumentBody struct {
	Name     string `json:"name" validate:"required"`
	URL      string `json:"url" validate:"required"`
	Size     string `json:"size" validate:"required"`
	Category string `json:"category" validate:"required"`
}

func (h *ContentHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	adminID, err := auth.AdminID(r.Context())
	if err != nil {
		respondError(w, r, sitecontent.ErrInvalidCredentials)
		return
	}

	var body CreateDocumentBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}
	if err := h.validate.Struct(body); err != nil {
		respondError(w, r, sitecontent.NewValidationError("document name, url, size and category are required"))
		return
	}

	doc, err := h.service.CreateDocument(r.Context(), sitecontent.CreateDocumentRequest{
		Name:       body.Name,
		URL:        body.URL,
		Size:       body.Size,
		Category:   body.Category,
		UploaderID: adminID,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, doc)
}

type UpdateDocumentBody struct {
	Name     string `json:"name"`
	URL      string `json:"url"`
	Size     string `json:"size"`
	Category string `json:"category"`
}

func (h *ContentHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	var body UpdateDocumentBody
	if err := decodeBody(r, &body); err != nil {
		respondError(w, r, err)
		return
	}

	doc, err := h.service.UpdateDocument(r.Context(), chi.URLParam(r, "slug"), sitecontent.UpdateDocumentRequest{
		Name:     body.Name,
		URL:      body.URL,
		Size:     body.Size,
		Category: body.Category,
	})
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, doc)
}

func (h *ContentHandler) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.service.DeleteDocument(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, doc)
}
