package api

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// FilesHandler moves file bytes in and out of the blob store. Uploads are
// admin-only; downloads are public so the site can serve media and documents.
type FilesHandler struct {
	blobStore sitecontent.BlobStore
	tokenAuth *jwtauth.JWTAuth
}

func NewFilesHandler(blobStore sitecontent.BlobStore, tokenAuth *jwtauth.JWTAuth) *FilesHandler {
	return &FilesHandler{blobStore: blobStore, tokenAuth: tokenAuth}
}

// Routes returns the router for files endpoints
func (h *FilesHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/{key}", h.Download)
	r.Get("/{key}/download-url", h.GetDownloadURL)

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.tokenAuth))
		r.Use(jwtauth.Authenticator)
		r.Post("/{key}/upload-url", h.GetUploadURL)
		r.Put("/{key}", h.Upload)
		r.Delete("/{key}", h.Delete)
	})
	return r
}

type PresignedURLResponse struct {
	URL string `json:"url"`
}

// GetUploadURL returns a presigned URL the client PUTs the bytes to.
func (h *FilesHandler) GetUploadURL(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	url, err := h.blobStore.GetUploadURL(r.Context(), key)
	if err != nil {
		slog.Error("failed to presign upload", "key", key, "error", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, PresignedURLResponse{URL: url})
}

// Upload stores the request body directly, for backends without presigning.
func (h *FilesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	defer r.Body.Close()

	if err := h.blobStore.Upload(r.Context(), key, r.Body); err != nil {
		slog.Error("failed to upload object", "key", key, "error", err)
		respondError(w, r, err)
		return
	}

	meta, err := h.blobStore.GetBlobMeta(r.Context(), key)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, meta)
}

func (h *FilesHandler) GetDownloadURL(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	filename := r.URL.Query().Get("filename")

	url, err := h.blobStore.GetDownloadURL(r.Context(), key, filename)
	if err != nil {
		slog.Error("failed to presign download", "key", key, "error", err)
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, PresignedURLResponse{URL: url})
}

// Download streams the object bytes.
func (h *FilesHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	body, err := h.blobStore.Download(r.Context(), key)
	if err != nil {
		respondError(w, r, err)
		return
	}
	defer body.Close()

	if meta, err := h.blobStore.GetBlobMeta(r.Context(), key); err == nil {
		w.Header().Set("Content-Type", meta.ContentType)
	}
	if _, err := io.Copy(w, body); err != nil {
		slog.Error("failed to stream object", "key", key, "error", err)
	}
}

func (h *FilesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if err := h.blobStore.Delete(r.Context(), key); err != nil {
		slog.Error("failed to delete object", "key", key, "error", err)
		respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
