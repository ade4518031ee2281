package storage

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Subdirectories under the upload root.
const (
	ProjectsDir = "projects"
	GalleryDir  = "gallery"
)

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// Storage writes uploaded files under a local directory tree and serves
// them back through the /uploads route.
type Storage struct {
	root string
}

func New(root string) (*Storage, error) {
	for _, dir := range []string{root, filepath.Join(root, ProjectsDir), filepath.Join(root, GalleryDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
		}
	}
	return &Storage{root: root}, nil
}

func (s *Storage) Root() string {
	return s.root
}

// Allowed reports whether the filename carries an accepted image extension.
func Allowed(filename string) bool {
	return allowedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// SafeName flattens a user-supplied filename to a filesystem-safe form.
func SafeName(filename string) string {
	base := filepath.Base(filename)
	return unsafeChars.ReplaceAllString(base, "_")
}

// Save stores data under subdir with a unique uuid-prefixed name and
// returns the storage path relative to the upload root.
func (s *Storage) Save(subdir, originalName string, data []byte) (string, error) {
	filename := fmt.Sprintf("%s_%s", uuid.New().String(), SafeName(originalName))
	relPath := path.Join(subdir, filename)

	if err := os.WriteFile(filepath.Join(s.root, subdir, filename), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return relPath, nil
}

// Remove deletes a stored file. A missing file is not an error; the row
// it backed is already gone.
func (s *Storage) Remove(relPath string) error {
	full := filepath.Join(s.root, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file %s: %w", relPath, err)
	}
	return nil
}

// PublicURL builds the URL a browser uses to fetch a stored file.
func PublicURL(baseURL, relPath string) string {
	return strings.TrimSuffix(baseURL, "/") + "/uploads/" + relPath
}
