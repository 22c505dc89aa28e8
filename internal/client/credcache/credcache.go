// Package credcache persists the issued session between client runs so the
// token can be replayed without logging in again. The storage medium is
// hidden behind the Cache interface.
package credcache

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"stockroom/internal/domain"
)

// ErrNoCredentials means nothing is cached (never logged in, or cleared).
var ErrNoCredentials = errors.New("no cached credentials")

// Credentials is what the client keeps between runs.
type Credentials struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}

// Cache loads, saves, and clears the cached session.
type Cache interface {
	Load() (*Credentials, error)
	Save(Credentials) error
	Clear() error
}

// FileCache stores credentials as a JSON file readable only by the owner.
type FileCache struct {
	Path string
}

func NewFileCache(path string) *FileCache { return &FileCache{Path: path} }

func (f *FileCache) Load() (*Credentials, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoCredentials
		}
		return nil, err
	}
	var c Credentials
	if err := json.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	if c.Token == "" {
		return nil, ErrNoCredentials
	}
	return &c, nil
}

func (f *FileCache) Save(c Credentials) error {
	if err := os.MkdirAll(filepath.Dir(f.Path), 0700); err != nil {
		return err
	}
	b, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, b, 0600)
}

func (f *FileCache) Clear() error {
	err := os.Remove(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
