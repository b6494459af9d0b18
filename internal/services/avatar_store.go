package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"contacts-api/internal/utils"
)

// AvatarStore keeps uploaded avatar files. Owns reports whether a stored
// avatar value points at a file the store manages and may remove.
type AvatarStore interface {
	Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error)
	Owns(avatar string) bool
	Remove(ctx context.Context, avatar string) error
}

const UploadsURLPrefix = "/public/uploads"

// LocalAvatarStore writes avatars to <publicDir>/uploads, which is served
// under /public/.
type LocalAvatarStore struct {
	dir       string
	urlPrefix string
}

func NewLocalAvatarStore(publicDir string) *LocalAvatarStore {
	return &LocalAvatarStore{
		dir:       filepath.Join(publicDir, "uploads"),
		urlPrefix: UploadsURLPrefix,
	}
}

func avatarFileName(header *multipart.FileHeader) string {
	ext := utils.GetExtensionFromMime(header.Header.Get("Content-Type"))
	if ext == "bin" {
		if fromName := strings.TrimPrefix(filepath.Ext(header.Filename), "."); fromName != "" {
			ext = strings.ToLower(fromName)
		}
	}
	return uuid.NewString() + "." + ext
}

func (s *LocalAvatarStore) Save(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating upload directory: %w", err)
	}

	name := avatarFileName(header)
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("error creating avatar file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("error writing avatar file: %w", err)
	}

	utils.LogDebug("Avatar saved: %s", dst.Name())
	return path.Join(s.urlPrefix, name), nil
}

func (s *LocalAvatarStore) Owns(avatar string) bool {
	return strings.HasPrefix(avatar, s.urlPrefix+"/")
}

func (s *LocalAvatarStore) Remove(ctx context.Context, avatar string) error {
	if !s.Owns(avatar) {
		return fmt.Errorf("avatar %q is not managed by this store", avatar)
	}
	name := strings.TrimPrefix(avatar, s.urlPrefix+"/")
	if name == "" || name != filepath.Base(name) || name == ".." {
		return errors.New("invalid avatar file name")
	}
	return os.Remove(filepath.Join(s.dir, name))
}
