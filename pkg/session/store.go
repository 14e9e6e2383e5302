// Package session persists the authentication session (token plus
// user record) across process restarts. The store keeps two files
// under a single directory, mirroring the two storage keys the web
// client uses; absence or corruption of either is treated as "no
// session" rather than an error.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	tokenFile = "gescar_token"
	userFile  = "gescar_user"

	fileMode = 0o600
	dirMode  = 0o700
)

// User is the persisted user record, matching the wire shape returned
// by the auth endpoints.
type User struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Store reads and writes the session under a fixed directory. The
// auth context is the only writer; concurrent writers are not
// supported.
type Store struct {
	dir string
}

// NewStore returns a store rooted at dir. The directory is created on
// the first Save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore roots the session under the user configuration
// directory (e.g. ~/.config/gescar).
func DefaultStore() (*Store, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("session: resolve config dir: %w", err)
	}
	return NewStore(filepath.Join(base, "gescar")), nil
}

// Load returns the stored token and user when both are present and
// the user record deserializes. Missing or corrupt data yields
// ("", nil): a broken session reads as no session.
func (s *Store) Load() (string, *User) {
	tokenBytes, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil || len(tokenBytes) == 0 {
		return "", nil
	}

	userBytes, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return "", nil
	}

	var user User
	if err := json.Unmarshal(userBytes, &user); err != nil {
		return "", nil
	}

	return string(tokenBytes), &user
}

// Save persists both fields. If the user record cannot be written the
// token file is rolled back so no partial session remains.
func (s *Store) Save(token string, user User) error {
	if err := os.MkdirAll(s.dir, dirMode); err != nil {
		return fmt.Errorf("session: create store dir: %w", err)
	}

	tokenPath := filepath.Join(s.dir, tokenFile)
	if err := os.WriteFile(tokenPath, []byte(token), fileMode); err != nil {
		return fmt.Errorf("session: write token: %w", err)
	}

	userBytes, err := json.Marshal(user)
	if err != nil {
		_ = os.Remove(tokenPath)
		return fmt.Errorf("session: encode user: %w", err)
	}

	if err := os.WriteFile(filepath.Join(s.dir, userFile), userBytes, fileMode); err != nil {
		_ = os.Remove(tokenPath)
		return fmt.Errorf("session: write user: %w", err)
	}

	return nil
}

// Clear removes both fields. Removing an already-absent session is
// not an error.
func (s *Store) Clear() error {
	var firstErr error
	for _, name := range []string{tokenFile, userFile} {
		if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
			if firstErr == nil {
				firstErr = fmt.Errorf("session: clear %s: %w", name, err)
			}
		}
	}
	return firstErr
}
