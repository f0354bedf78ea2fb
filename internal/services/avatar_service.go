package services

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/viremo/viremo-be/internal/storage"
)

// AvatarServiceProvider defines the interface for avatar services.
type AvatarServiceProvider interface {
	UploadAvatar(ctx context.Context, userID, contentType string, body io.Reader) (string, error)
	DeleteAvatar(ctx context.Context, userID string) error
}

// AvatarService manages the single profile image each user may have. The
// file lives in object storage under a key derived from the user id, so a
// new upload overwrites the previous one.
type AvatarService struct {
	db    *sql.DB
	store storage.ObjectStore
}

// NewAvatarService creates a new AvatarService.
func NewAvatarService(db *sql.DB, store storage.ObjectStore) *AvatarService {
	return &AvatarService{db: db, store: store}
}

func avatarKey(userID string) string {
	return "avatars/" + userID
}

// UploadAvatar stores the image and persists its public URL on the user's
// profile row. The two writes are not atomic: if the profile upsert fails
// after a successful upload, the stored file is left without a referencing
// row and is not cleaned up here.
func (s *AvatarService) UploadAvatar(ctx context.Context, userID, contentType string, body io.Reader) (string, error) {
	key := avatarKey(userID)
	if err := s.store.Put(ctx, key, contentType, body); err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	url := s.store.PublicURL(key)
	_, err := s.db.Exec(`
		INSERT INTO profiles (id, avatar_url, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET avatar_url = excluded.avatar_url, updated_at = CURRENT_TIMESTAMP`,
		userID, url)
	if err != nil {
		return "", fmt.Errorf("failed to save avatar url: %w", err)
	}
	return url, nil
}

// DeleteAvatar removes the stored file and clears the profile row's URL.
func (s *AvatarService) DeleteAvatar(ctx context.Context, userID string) error {
	if err := s.store.Remove(ctx, avatarKey(userID)); err != nil {
		return fmt.Errorf("failed to remove avatar: %w", err)
	}

	_, err := s.db.Exec("UPDATE profiles SET avatar_url = NULL, updated_at = CURRENT_TIMESTAMP WHERE id = ?", userID)
	return err
}
