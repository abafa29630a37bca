package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"workmate/models"
)

// FileStore persists the signed identity token in a local file.
type FileStore struct {
	path   string
	secret []byte
	ttl    time.Duration
}

// NewFileStore creates a file-backed persistent store.
func NewFileStore(path string, secret []byte, ttl time.Duration) *FileStore {
	return &FileStore{path: path, secret: secret, ttl: ttl}
}

func (f *FileStore) Save(ctx context.Context, id models.Identity) error {
	token, err := EncodeIdentity(id, f.secret, f.ttl)
	if err != nil {
		return fmt.Errorf("session: failed to encode identity: %w", err)
	}
	if err := os.WriteFile(f.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session: failed to write session file: %w", err)
	}
	return nil
}

func (f *FileStore) Load(ctx context.Context) (*models.Identity, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session: failed to read session file: %w", err)
	}
	id, err := DecodeIdentity(string(data), f.secret)
	if err != nil {
		return nil, fmt.Errorf("session: failed to decode session file: %w", err)
	}
	return id, nil
}

func (f *FileStore) Clear(ctx context.Context) error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("session: failed to remove session file: %w", err)
	}
	return nil
}
