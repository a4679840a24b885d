// Package imagestore writes uploaded images below a media root, one
// directory per category, and hands back the relative path stored on
// the entity row.
package imagestore

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Store struct {
	root string
}

func New(root string) *Store {
	return &Store{root: root}
}

// Save streams src into <root>/<categoryDir>/<uuid><ext> and returns the
// path relative to the media root. The original filename only
// contributes its extension.
func (s *Store) Save(src io.Reader, categoryDir, filename string) (string, error) {
	dir := filepath.Join(s.root, sanitizeDir(categoryDir))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	return filepath.Join(sanitizeDir(categoryDir), name), nil
}

// Remove deletes a previously saved image. Missing files are not an
// error; rows may reference images cleaned up out of band.
func (s *Store) Remove(relPath string) error {
	if relPath == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.root, relPath))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func sanitizeDir(dir string) string {
	dir = strings.ToLower(strings.TrimSpace(dir))
	if dir == "" {
		return "uncategorized"
	}
	var b strings.Builder
	for _, r := range dir {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '_':
			b.WriteRune('_')
		}
	}
	if b.Len() == 0 {
		return "uncategorized"
	}
	return b.String()
}
