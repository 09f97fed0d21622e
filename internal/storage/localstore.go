// Package storage provides the localstore, a single-file JSON key-value
// namespace. The key names and value shapes are the app's external
// interface: data written here is drop-in compatible with what the
// browser build of FreeLink kept in localStorage.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known keys.
const (
	KeyClients  = "freelink-clients"
	KeyProjects = "freelink-projects"
	KeyInvoices = "freelink-invoices"
	KeyDarkMode = "darkMode"
	KeyToken    = "freelink-token"
	KeyUser     = "freelink-user"
)

// LocalStore is a JSON file of key → JSON value. Every Set writes the
// whole file; collections here are small enough that this is fine.
type LocalStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// Open loads the store at path, creating an empty one if the file does
// not exist yet.
func Open(path string) (*LocalStore, error) {
	s := &LocalStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read localstore: %w", err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &s.data); err != nil {
			return nil, fmt.Errorf("corrupt localstore %s: %w", path, err)
		}
	}
	return s, nil
}

// Path returns the backing file path.
func (s *LocalStore) Path() string {
	return s.path
}

// GetJSON decodes the value under key into v. The bool reports whether
// the key was present.
func (s *LocalStore) GetJSON(key string, v any) (bool, error) {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return true, fmt.Errorf("failed to decode %q: %w", key, err)
	}
	return true, nil
}

// SetJSON encodes v under key and writes the file.
func (s *LocalStore) SetJSON(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %q: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = raw
	return s.saveLocked()
}

// GetString reads a plain string value such as the darkMode flag.
func (s *LocalStore) GetString(key string) (string, bool, error) {
	var v string
	ok, err := s.GetJSON(key, &v)
	return v, ok, err
}

// SetString writes a plain string value.
func (s *LocalStore) SetString(key, value string) error {
	return s.SetJSON(key, value)
}

// Remove deletes a key. Removing an absent key is a no-op.
func (s *LocalStore) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data[key]; !ok {
		return nil
	}
	delete(s.data, key)
	return s.saveLocked()
}

func (s *LocalStore) saveLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0600); err != nil {
		return fmt.Errorf("failed to write localstore: %w", err)
	}
	return os.Rename(tmp, s.path)
}
