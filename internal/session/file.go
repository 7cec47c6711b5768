package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

type fileStore struct {
	path string
}

// NewFileStore keeps a single session in a JSON file readable only by its
// owner. The id argument of Get and Delete is ignored; the CLI holds one login
// at a time.
func NewFileStore(path string) Store {
	return &fileStore{path: path}
}

func (f *fileStore) Get(ctx context.Context, id string) (Session, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return Session{}, ErrNotFound
	}
	if err != nil {
		return Session{}, fmt.Errorf("read credentials: %w", err)
	}

	var s Session
	if err := json.Unmarshal(b, &s); err != nil {
		return Session{}, fmt.Errorf("decode credentials: %w", err)
	}
	if !s.Authenticated || s.Token == "" {
		return Session{}, ErrNotFound
	}
	if s.Expired(time.Now()) {
		_ = os.Remove(f.path)
		return Session{}, ErrExpired
	}
	return s, nil
}

func (f *fileStore) Save(ctx context.Context, s Session) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	return writeFile(f.path, b, 0o600)
}

func (f *fileStore) Delete(ctx context.Context, id string) error {
	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// writeFile writes bytes via a temp file, then atomically replaces the target.
func writeFile(path string, b []byte, mode os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() { _ = os.Remove(tmp) }()

	if _, err := f.Write(b); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(mode); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
