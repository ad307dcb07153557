// Package store persists the client's durable records: the encrypted session
// blob, the world cache, user settings and favorites. Each record is one JSON
// file under the data directory, addressed by a fixed key.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Keys of the durable records.
const (
	KeySession   = "session"
	KeyWorlds    = "worlds"
	KeySettings  = "settings"
	KeyFavorites = "favorites"
)

// Store reads and writes keyed JSON records inside a single directory.
type Store struct {
	dir string
}

// New returns a store rooted at dir. The directory is created on first write.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-user data directory for the client.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "vrcdesk"), nil
}

// Has reports whether a record exists for key.
func (s *Store) Has(key string) bool {
	_, err := os.Stat(s.path(key))
	return err == nil
}

// Get decodes the record for key into out. The second return is false when no
// record exists, which is not an error.
func (s *Store) Get(key string, out any) (bool, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// Set writes the record for key, replacing any previous value. The write goes
// through a temp file and rename so a crash never leaves a half-written record.
func (s *Store) Set(key string, v any) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	tmp, err := os.CreateTemp(s.dir, key+"-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}

// Remove deletes the record for key. Removing an absent record is a no-op.
func (s *Store) Remove(key string) error {
	err := os.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
