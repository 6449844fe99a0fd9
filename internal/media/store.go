package media

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

const (
	postsDir      = "posts"
	MaxUploadSize = 5 * 1024 * 1024
)

// ErrTooLarge means the upload exceeded MaxUploadSize; nothing is kept on disk.
var ErrTooLarge = errors.New("media: upload exceeds size limit")

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// Store writes uploaded files below a media root. Post images land under
// posts/<original filename>; the returned path is relative so the DB row
// stays valid if the root moves.
type Store struct {
	root string
}

func NewStore(root string) *Store { return &Store{root: root} }

func AllowedImageType(contentType string) bool { return allowedImageTypes[contentType] }

func (s *Store) SavePostImage(filename string, r io.Reader) (string, error) {
	// strip any client-supplied directory part
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid image filename %q", filename)
	}

	dir := filepath.Join(s.root, postsDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create media dir: %w", err)
	}

	path := filepath.Join(dir, name)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create media file: %w", err)
	}

	// read one byte past the cap so an oversized body is detected, not truncated
	n, err := io.Copy(dst, io.LimitReader(r, MaxUploadSize+1))
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return "", fmt.Errorf("write media file: %w", err)
	}
	if n > MaxUploadSize {
		os.Remove(path)
		return "", ErrTooLarge
	}
	return filepath.ToSlash(filepath.Join(postsDir, name)), nil
}

// Path resolves a stored relative path back to the filesystem.
func (s *Store) Path(rel string) string { return filepath.Join(s.root, filepath.FromSlash(rel)) }
