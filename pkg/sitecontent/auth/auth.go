// Package auth handles backoffice admin authentication: argon2id password
// hashing and JWT issuing for the protected API routes.
package auth

import (
	"context"
	"time"

	"github.com/go-chi/jwtauth"
	"github.com/google/uuid"

	"github.com/icodeu/site-content/pkg/sitecontent"
)

// Authenticator verifies admin credentials and issues JWTs.
type Authenticator struct {
	store     sitecontent.AdminStore
	tokenAuth *jwtauth.JWTAuth
	tokenTTL  time.Duration
}

// New creates an Authenticator signing tokens with the given HS256 secret.
func New(store sitecontent.AdminStore, secret string, tokenTTL time.Duration) *Authenticator {
	if tokenTTL == 0 {
		tokenTTL = 24 * time.Hour
	}
	return &Authenticator{
		store:     store,
		tokenAuth: jwtauth.New("HS256", []byte(secret), nil),
		tokenTTL:  tokenTTL,
	}
}

// TokenAuth exposes the verifier for the HTTP middleware chain.
func (a *Authenticator) TokenAuth() *jwtauth.JWTAuth {
	return a.tokenAuth
}

// Login checks the credentials and returns a signed token plus the matching
// admin. A wrong username and a wrong password are indistinguishable to the
// caller.
func (a *Authenticator) Login(ctx context.Context, username, password string) (string, *sitecontent.Admin, error) {
	admin, err := a.store.GetAdminByUsername(ctx, username)
	if err != nil {
		return "", nil, sitecontent.ErrInvalidCredentials
	}

	ok, err := VerifyPassword(admin.PasswordHash, password)
	if err != nil || !ok {
		return "", nil, sitecontent.ErrInvalidCredentials
	}

	claims := map[string]interface{}{
		"sub":      admin.ID.String(),
		"username": admin.Username,
	}
	jwtauth.SetIssuedNow(claims)
	jwtauth.SetExpiryIn(claims, a.tokenTTL)

	_, token, err := a.tokenAuth.Encode(claims)
	if err != nil {
		return "", nil, err
	}
	return token, admin, nil
}

// Register creates a new admin account with a hashed password.
func (a *Authenticator) Register(ctx context.Context, username, email, password string) (*sitecontent.Admin, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	admin := &sitecontent.Admin{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := a.store.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// Profile returns the account behind an authenticated request.
func (a *Authenticator) Profile(ctx context.Context, adminID uuid.UUID) (*sitecontent.Admin, error) {
	return a.store.GetAdmin(ctx, adminID)
}

// UpdateProfile changes username and/or email. Empty fields keep their
// current value.
func (a *Authenticator) UpdateProfile(ctx context.Context, adminID uuid.UUID, username, email string) (*sitecontent.Admin, error) {
	admin, err := a.store.GetAdmin(ctx, adminID)
	if err != nil {
		return nil, err
	}

	if username != "" {
		admin.Username = username
	}
	if email != "" {
		admin.Email = email
	}
	admin.UpdatedAt = time.Now().UTC()
	if err := a.store.UpdateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// ChangePassword verifies the current password before storing a new hash.
func (a *Authenticator) ChangePassword(ctx context.Context, adminID uuid.UUID, current, next string) error {
	admin, err := a.store.GetAdmin(ctx, adminID)
	if err != nil {
		return err
	}

	ok, err := VerifyPassword(admin.PasswordHash, current)
	if err != nil || !ok {
		return sitecontent.ErrInvalidCredentials
	}

	hash, err := HashPassword(next)
	if err != nil {
		return err
	}
	admin.PasswordHash = hash
	admin.UpdatedAt = time.Now().UTC()
	return a.store.UpdateAdmin(ctx, admin)
}

// AdminID extracts the authenticated admin id from a request context
// populated by the jwtauth verifier middleware.
func AdminID(ctx context.Context) (uuid.UUID, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	sub, _ := claims["sub"].(string)
	return uuid.Parse(sub)
}
