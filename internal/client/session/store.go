// Package session owns the client's sole credential: the opaque bearer
// token. The token is the only piece of state that survives a restart;
// everything else is rebuilt by reconciliation on startup.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store holds the bearer token for the lifetime of the process and, for
// file-backed implementations, across restarts.
type Store interface {
	// Token returns the current token and whether one is present.
	Token() (string, bool)
	// SetToken persists the token.
	SetToken(token string) error
	// Clear removes the token. Clearing must leave no credential behind.
	Clear() error
}

// FileStore keeps the token in a single file with 0600 permissions and an
// in-memory copy so reads never touch the disk. A missing file means the
// token is absent.
type FileStore struct {
	path  string
	token string
}

// NewFileStore loads any previously persisted token from path. Read errors
// other than absence are treated as an absent token; the next SetToken
// overwrites whatever is there.
func NewFileStore(path string) *FileStore {
	s := &FileStore{path: path}
	data, err := os.ReadFile(path)
	if err == nil {
		s.token = strings.TrimSpace(string(data))
	}
	return s
}

func (s *FileStore) Token() (string, bool) {
	return s.token, s.token != ""
}

func (s *FileStore) SetToken(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return err
	}
	s.token = token
	return nil
}

func (s *FileStore) Clear() error {
	s.token = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
