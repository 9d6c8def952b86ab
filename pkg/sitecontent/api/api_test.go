package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
	"github.com/icodeu/site-content/pkg/sitecontent/api"
	"github.com/icodeu/site-content/pkg/sitecontent/auth"
	"github.com/icodeu/site-content/pkg/sitecontent/repo/memory"
)

type testServer struct {
	router        chi.Router
	authenticator *auth.Authenticator
	service       sitecontent.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store := memory.New()
	authenticator := auth.New(store, "test-secret", time.Hour)
	svc, err := sitecontent.New(
		sitecontent.WithStore(store),
		sitecontent.WithDefaultImageURL("/static/default-header.png"),
	)
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Mount("/auth", api.NewAuthHandler(authenticator).Routes())
	r.Mount("/", api.NewContentHandler(svc, authenticator.TokenAuth()).Routes())

	return &testServer{router: r, authenticator: authenticator, service: svc}
}

func (s *testServer) loginAs(t *testing.T, username, password string) string {
	t.Helper()
	_, err := s.authenticator.Register(context.Background(), username, username+"@example.com", password)
	require.NoError(t, err)

	token, _, err := s.authenticator.Login(context.Background(), username, password)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func TestLoginEndpoint(t *testing.T) {
	srv := newTestServer(t)
	_, err := srv.authenticator.Register(context.Background(), "editor", "editor@example.com", "swordfish123")
	require.NoError(t, err)

	rec := srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "editor",
		"password": "swordfish123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.LoginResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Token)
	require.NotNil(t, resp.Admin)
	assert.Equal(t, "editor", resp.Admin.Username)

	rec = srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "editor",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodPost, "/auth/login", "", map[string]string{"username": "editor"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAlbumEndpointsRequireAuth(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/albums", "", map[string]string{"name": "Trip"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/albums/trip", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAlbumLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token := srv.loginAs(t, "editor", "swordfish123")

	rec := srv.do(t, http.MethodPost, "/albums", token, map[string]string{"name": "Summer Trip"})
	require.Equal(t, http.StatusCreated, rec.Code)

	var album sitecontent.Album
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&album))
	assert.Equal(t, "summer-trip", album.Slug)
	assert.Equal(t, "0 B", album.Size)

	// Public read.
	rec = srv.do(t, http.MethodGet, "/albums/summer-trip", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/albums/missing", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Duplicate name is rejected as bad input.
	rec = srv.do(t, http.MethodPost, "/albums", token, map[string]string{"name": "Summer Trip"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/albums/summer-trip", token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMediaUploadOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token := srv.loginAs(t, "editor", "swordfish123")

	rec := srv.do(t, http.MethodPost, "/albums", token, map[string]string{"name": "Trip"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/albums/trip/media", token, map[string]interface{}{
		"items": []map[string]string{
			{"name": "Photo", "url": "/files/a.jpg", "size": "500 KB"},
			{"name": "Photo", "url": "/files/b.jpg", "size": "700 KB"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var batch []sitecontent.Media
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&batch))
	require.Len(t, batch, 2)
	assert.Equal(t, "Photo(1)", batch[1].Name)

	rec = srv.do(t, http.MethodGet, "/albums/trip", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var album sitecontent.Album
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&album))
	assert.Equal(t, "1.2 MB", album.Size)
	assert.Len(t, album.Media, 2)

	// Empty batches are rejected before touching the store.
	rec = srv.do(t, http.MethodPost, "/albums/trip/media", token, map[string]interface{}{
		"items": []map[string]string{},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	srv := newTestServer(t)
	token := srv.loginAs(t, "editor", "swordfish123")

	rec := srv.do(t, http.MethodPost, "/albums", token, map[string]string{"name": "Alpha"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = srv.do(t, http.MethodPost, "/blogs", token, map[string]string{"title": "Beta", "content": "text"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodGet, "/search?sortBy=name&order=asc", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var result sitecontent.SearchResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 2, result.Total)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Alpha", result.Items[0].DisplayName)
	assert.Equal(t, "Beta", result.Items[1].DisplayName)
	assert.NotEmpty(t, result.Newest)

	rec = srv.do(t, http.MethodGet, "/search?name=alp", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, 1, result.Total)
}

func TestContactEndpoint(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodPost, "/contact", "", map[string]string{
		"name":    "Jane",
		"email":   "jane@example.com",
		"message": "Hello",
	})
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodPost, "/contact", "", map[string]string{
		"name": "Jane",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBusinessEndpointsOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	token := srv.loginAs(t, "editor", "swordfish123")

	rec := srv.do(t, http.MethodPost, "/businesses", token, map[string]interface{}{
		"title":  "Garments",
		"header": map[string]string{"slug": "hdr", "url": "/files/h.jpg"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var business sitecontent.Business
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&business))
	assert.Equal(t, "garments", business.Slug)

	// Conflicting header slug comes back as bad input.
	rec = srv.do(t, http.MethodPost, "/businesses", token, map[string]interface{}{
		"title":  "Other",
		"header": map[string]string{"slug": "HDR", "url": "/files/h2.jpg"},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/products", token, map[string]interface{}{
		"title":       "Shirt",
		"business_id": business.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = srv.do(t, http.MethodGet, "/products?business=garments", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var list sitecontent.ProductList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&list))
	assert.Equal(t, int64(1), list.Total)
}

func TestQueryValidation(t *testing.T) {
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/albums?createdBy=not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/albums?dateCreateStart=2024-01-01", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
