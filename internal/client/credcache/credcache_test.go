package credcache

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockroom/internal/domain"
)

func TestSaveLoadClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "credentials.json")
	c := NewFileCache(path)

	_, err := c.Load()
	assert.ErrorIs(t, err, ErrNoCredentials)

	creds := Credentials{
		User:  domain.User{ID: "u1", Email: "alice@example.com", Name: "Alice"},
		Token: "tok-123",
	}
	require.NoError(t, c.Save(creds))

	got, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, creds, *got)

	require.NoError(t, c.Clear())
	_, err = c.Load()
	assert.ErrorIs(t, err, ErrNoCredentials)

	// Clearing twice is fine.
	require.NoError(t, c.Clear())
}

func TestFileIsOwnerOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions only")
	}
	path := filepath.Join(t.TempDir(), "credentials.json")
	c := NewFileCache(path)
	require.NoError(t, c.Save(Credentials{Token: "tok"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLoadRejectsEmptyToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"user":{},"token":""}`), 0600))

	_, err := NewFileCache(path).Load()
	assert.ErrorIs(t, err, ErrNoCredentials)
}
