package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/render"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

var notFoundSentinels = []error{
	sitecontent.ErrAlbumNotFound,
	sitecontent.ErrMediaNotFound,
	sitecontent.ErrBlogNotFound,
	sitecontent.ErrDocumentNotFound,
	sitecontent.ErrBusinessNotFound,
	sitecontent.ErrProductNotFound,
	sitecontent.ErrProjectNotFound,
	sitecontent.ErrAdminNotFound,
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case sitecontent.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, sitecontent.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, sitecontent.ErrDuplicateName):
		return http.StatusConflict
	}
	for _, sentinel := range notFoundSentinels {
		if errors.Is(err, sentinel) {
			return http.StatusNotFound
		}
	}
	return http.StatusInternalServerError
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	render.Status(r, status)
	render.JSON(w, r, ErrorResponse{Error: err.Error()})
}

func respondJSON(w http.ResponseWriter, r *http.Request, status int, payload interface{}) {
	render.Status(r, status)
	render.JSON(w, r, payload)
}

// queryInt reads an integer query parameter, falling back when absent or
// malformed.
func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func queryOrder(r *http.Request) sitecontent.SortOrder {
	if r.URL.Query().Get("order") == "desc" {
		return sitecontent.OrderDesc
	}
	return sitecontent.OrderAsc
}
