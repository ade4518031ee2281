package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedmasry1001/steelsite/internal/storage"
)

func TestAllowed(t *testing.T) {
	assert.True(t, storage.Allowed("photo.jpg"))
	assert.True(t, storage.Allowed("PHOTO.PNG"))
	assert.True(t, storage.Allowed("banner.webp"))
	assert.False(t, storage.Allowed("notes.pdf"))
	assert.False(t, storage.Allowed("script.sh"))
	assert.False(t, storage.Allowed("noextension"))
}

func TestSafeName(t *testing.T) {
	assert.Equal(t, "site_photo.jpg", storage.SafeName("site photo.jpg"))
	assert.Equal(t, "a_b.png", storage.SafeName("a/b.png"))
	assert.Equal(t, "passwd", storage.SafeName("../../etc/passwd"))
}

func TestSaveAndRemove(t *testing.T) {
	files, err := storage.New(t.TempDir())
	require.NoError(t, err)

	relPath, err := files.Save(storage.ProjectsDir, "front view.jpg", []byte("image-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(relPath, storage.ProjectsDir+"/"))
	assert.True(t, strings.HasSuffix(relPath, "_front_view.jpg"))

	data, err := os.ReadFile(filepath.Join(files.Root(), filepath.FromSlash(relPath)))
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	require.NoError(t, files.Remove(relPath))
	_, err = os.Stat(filepath.Join(files.Root(), filepath.FromSlash(relPath)))
	assert.True(t, os.IsNotExist(err))

	// Removing a missing file is not an error.
	require.NoError(t, files.Remove(relPath))
}

func TestSaveGeneratesUniqueNames(t *testing.T) {
	files, err := storage.New(t.TempDir())
	require.NoError(t, err)

	first, err := files.Save(storage.GalleryDir, "hero.jpg", []byte("a"))
	require.NoError(t, err)
	second, err := files.Save(storage.GalleryDir, "hero.jpg", []byte("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPublicURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/uploads/projects/x.jpg",
		storage.PublicURL("http://localhost:8080", "projects/x.jpg"))
	assert.Equal(t, "http://localhost:8080/uploads/projects/x.jpg",
		storage.PublicURL("http://localhost:8080/", "projects/x.jpg"))
}
