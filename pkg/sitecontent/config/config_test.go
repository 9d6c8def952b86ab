package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "memory", cfg.DatabaseType)
	assert.Equal(t, "memory", cfg.DefaultStorageBackend)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.NotEmpty(t, cfg.DefaultImageURL)
}

func TestLoadWithEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "testing")
	t.Setenv("DATABASE_URL", "memory")
	t.Setenv("STORAGE_URL", "memory://")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL_HOURS", "2")

	cfg, err := config.Load(config.WithEnv())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "testing", cfg.Environment)
	assert.Equal(t, "env-secret", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "memory", cfg.DatabaseType)
}

func TestWithEnvS3Storage(t *testing.T) {
	t.Setenv("STORAGE_URL", "s3://content-bucket?region=eu-west-1&endpoint=http://localhost:9000")

	cfg, err := config.Load(config.WithEnv())
	require.NoError(t, err)
	assert.Equal(t, "s3", cfg.DefaultStorageBackend)

	var found bool
	for _, backend := range cfg.StorageBackends {
		if backend.Name == "s3" {
			found = true
			assert.Equal(t, "content-bucket", backend.Config["bucket"])
			assert.Equal(t, "eu-west-1", backend.Config["region"])
			assert.Equal(t, "http://localhost:9000", backend.Config["endpoint"])
			assert.Equal(t, true, backend.Config["use_path_style"])
		}
	}
	assert.True(t, found)
}

func TestWithEnvFSStorage(t *testing.T) {
	baseDir := t.TempDir()
	t.Setenv("STORAGE_URL", "fs://"+baseDir+"?url_prefix=http://localhost:8080/files")

	cfg, err := config.Load(config.WithEnv())
	require.NoError(t, err)
	assert.Equal(t, "fs", cfg.DefaultStorageBackend)

	blobStore, err := cfg.BuildDefaultBlobStore()
	require.NoError(t, err)
	assert.NotNil(t, blobStore)
}

func TestWithEnvRejectsBadURLs(t *testing.T) {
	t.Setenv("DATABASE_URL", "mysql://nope")
	_, err := config.Load(config.WithEnv())
	assert.Error(t, err)
}

func TestValidateProductionSecret(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	_, err := config.Load(config.WithEnv())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")

	t.Setenv("JWT_SECRET", "strong-production-secret")
	cfg, err := config.Load(config.WithEnv())
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Environment)
}

func TestBuildStoreMemory(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	store, err := cfg.BuildStore()
	require.NoError(t, err)
	assert.NotNil(t, store)

	svc, err := cfg.BuildService(store)
	require.NoError(t, err)
	assert.NotNil(t, svc)

	blobStore, err := cfg.BuildDefaultBlobStore()
	require.NoError(t, err)
	assert.NotNil(t, blobStore)
}
