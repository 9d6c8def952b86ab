package memory_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent/storage/memory"
)

func TestUploadDownloadRoundtrip(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()

	err := backend.Upload(ctx, "docs/readme.txt", strings.NewReader("hello world"))
	require.NoError(t, err)

	body, err := backend.Download(ctx, "docs/readme.txt")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	meta, err := backend.GetBlobMeta(ctx, "docs/readme.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(11), meta.Size)
	assert.Contains(t, meta.ContentType, "text/plain")
	assert.False(t, meta.UpdatedAt.IsZero())
}

func TestDelete(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "key", strings.NewReader("x")))
	require.NoError(t, backend.Delete(ctx, "key"))

	_, err := backend.Download(ctx, "key")
	assert.Error(t, err)
	assert.Error(t, backend.Delete(ctx, "key"))
}

func TestPresignedURLsUnsupported(t *testing.T) {
	backend := memory.New()
	ctx := context.Background()

	_, err := backend.GetUploadURL(ctx, "key")
	assert.Error(t, err)
	_, err = backend.GetDownloadURL(ctx, "key", "file.txt")
	assert.Error(t, err)
}
