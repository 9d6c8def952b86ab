package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/go-playground/validator/v10"

	"github.com/icodeu/site-content/pkg/sitecontent"
	"github.com/icodeu/site-content/pkg/sitecontent/auth"
)

// AuthHandler handles admin login and password changes.
type AuthHandler struct {
	authenticator *auth.Authenticator
	validate      *validator.Validate
}

func NewAuthHandler(authenticator *auth.Authenticator) *AuthHandler {
	return &AuthHandler{
		authenticator: authenticator,
		validate:      validator.New(),
	}
}

// Routes returns the router for auth endpoints
func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/login", h.Login)

	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.authenticator.TokenAuth()))
		r.Use(jwtauth.Authenticator)
		r.Get("/me", h.Profile)
		r.Patch("/me", h.UpdateProfile)
		r.Post("/password", h.ChangePassword)
	})
	return r
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string             `json:"token"`
	Admin *sitecontent.Admin `json:"admin"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, sitecontent.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, sitecontent.NewValidationError("username and password are required"))
		return
	}

	token, admin, err := h.authenticator.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, LoginResponse{Token: token, Admin: admin})
}

func (h *AuthHandler) Profile(w http.ResponseWriter, r *http.Request) {
	adminID, err := auth.AdminID(r.Context())
	if err != nil {
		respondError(w, r, sitecontent.ErrInvalidCredentials)
		return
	}

	admin, err := h.authenticator.Profile(r.Context(), adminID)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, admin)
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" validate:"omitempty,email"`
}

func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	adminID, err := auth.AdminID(r.Context())
	if err != nil {
		respondError(w, r, sitecontent.ErrInvalidCredentials)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, sitecontent.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, sitecontent.NewValidationError("invalid email address"))
		return
	}

	admin, err := h.authenticator.UpdateProfile(r.Context(), adminID, req.Username, req.Email)
	if err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, admin)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	adminID, err := auth.AdminID(r.Context())
	if err != nil {
		respondError(w, r, sitecontent.ErrInvalidCredentials)
		return
	}

	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, r, sitecontent.NewValidationError("invalid request body"))
		return
	}
	if err := h.validate.Struct(req); err != nil {
		respondError(w, r, sitecontent.NewValidationError("new password must be at least 8 characters"))
		return
	}

	if err := h.authenticator.ChangePassword(r.Context(), adminID, req.CurrentPassword, req.NewPassword); err != nil {
		respondError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]string{"status": "password changed"})
}
