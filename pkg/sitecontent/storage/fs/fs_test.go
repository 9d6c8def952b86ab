package fs_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icodeu/site-content/pkg/sitecontent/storage/fs"
)

func TestUploadDownloadRoundtrip(t *testing.T) {
	backend, err := fs.New(fs.Config{BaseDir: t.TempDir()})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "docs/2024/report.txt", strings.NewReader("hello world")))

	body, err := backend.Download(ctx, "docs/2024/report.txt")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "hello world", string(data))

	meta, err := backend.GetBlobMeta(ctx, "docs/2024/report.txt")
	require.NoError(t, err)
	assert.Equal(t, int64(11), meta.Size)
	assert.Contains(t, meta.ContentType, "text/plain")
}

func TestDeletePrunesEmptyDirectories(t *testing.T) {
	baseDir := t.TempDir()
	backend, err := fs.New(fs.Config{BaseDir: baseDir})
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, backend.Upload(ctx, "media/summer/photo.jpg", strings.NewReader("x")))
	require.NoError(t, backend.Delete(ctx, "media/summer/photo.jpg"))

	_, err = os.Stat(filepath.Join(baseDir, "media"))
	assert.True(t, os.IsNotExist(err))
	assert.Error(t, backend.Delete(ctx, "media/summer/photo.jpg"))
}

func TestURLsRequirePrefix(t *testing.T) {
	ctx := context.Background()

	backend, err := fs.New(fs.Config{BaseDir: t.TempDir()})
	require.NoError(t, err)
	_, err = backend.GetUploadURL(ctx, "key")
	assert.Error(t, err)
	_, err = backend.GetDownloadURL(ctx, "key", "")
	assert.Error(t, err)

	withPrefix, err := fs.New(fs.Config{BaseDir: t.TempDir(), URLPrefix: "http://localhost:8080/files"})
	require.NoError(t, err)
	uploadURL, err := withPrefix.GetUploadURL(ctx, "docs/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/docs/report.pdf", uploadURL)

	downloadURL, err := withPrefix.GetDownloadURL(ctx, "docs/report.pdf", "annual report.pdf")
	require.NoError(t, err)
	assert.Contains(t, downloadURL, "filename=annual+report.pdf")
}

func TestNewRequiresBaseDir(t *testing.T) {
	_, err := fs.New(fs.Config{})
	assert.Error(t, err)
}
