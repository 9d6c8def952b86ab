package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent"
	"github.com/icodeu/site-content/pkg/sitecontent/auth"
	"github.com/icodeu/site-content/pkg/sitecontent/repo/memory"
)

func TestLogin(t *testing.T) {
	store := memory.New()
	authenticator := auth.New(store, "test-secret", time.Hour)
	ctx := context.Background()

	registered, err := authenticator.Register(ctx, "editor", "editor@example.com", "swordfish123")
	require.NoError(t, err)

	token, admin, err := authenticator.Login(ctx, "editor", "swordfish123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, registered.ID, admin.ID)

	decoded, err := authenticator.TokenAuth().Decode(token)
	require.NoError(t, err)
	sub, ok := decoded.Get("sub")
	require.True(t, ok)
	assert.Equal(t, registered.ID.String(), sub)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	store := memory.New()
	authenticator := auth.New(store, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := authenticator.Register(ctx, "editor", "editor@example.com", "swordfish123")
	require.NoError(t, err)

	_, _, err = authenticator.Login(ctx, "editor", "wrong")
	assert.ErrorIs(t, err, sitecontent.ErrInvalidCredentials)

	_, _, err = authenticator.Login(ctx, "nobody", "swordfish123")
	assert.ErrorIs(t, err, sitecontent.ErrInvalidCredentials)
}

func TestChangePassword(t *testing.T) {
	store := memory.New()
	authenticator := auth.New(store, "test-secret", time.Hour)
	ctx := context.Background()

	admin, err := authenticator.Register(ctx, "editor", "editor@example.com", "old-password")
	require.NoError(t, err)

	err = authenticator.ChangePassword(ctx, admin.ID, "wrong", "new-password")
	assert.ErrorIs(t, err, sitecontent.ErrInvalidCredentials)

	err = authenticator.ChangePassword(ctx, admin.ID, "old-password", "new-password")
	require.NoError(t, err)

	_, _, err = authenticator.Login(ctx, "editor", "old-password")
	assert.ErrorIs(t, err, sitecontent.ErrInvalidCredentials)
	_, _, err = authenticator.Login(ctx, "editor", "new-password")
	assert.NoError(t, err)
}

func TestProfileUpdate(t *testing.T) {
	store := memory.New()
	authenticator := auth.New(store, "test-secret", time.Hour)
	ctx := context.Background()

	admin, err := authenticator.Register(ctx, "editor", "editor@example.com", "swordfish123")
	require.NoError(t, err)

	updated, err := authenticator.UpdateProfile(ctx, admin.ID, "", "new@example.com")
	require.NoError(t, err)
	assert.Equal(t, "editor", updated.Username)
	assert.Equal(t, "new@example.com", updated.Email)

	profile, err := authenticator.Profile(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", profile.Email)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	store := memory.New()
	authenticator := auth.New(store, "test-secret", time.Hour)
	ctx := context.Background()

	_, err := authenticator.Register(ctx, "editor", "a@example.com", "password-one")
	require.NoError(t, err)

	_, err = authenticator.Register(ctx, "editor", "b@example.com", "password-two")
	assert.ErrorIs(t, err, sitecontent.ErrDuplicateName)
}
