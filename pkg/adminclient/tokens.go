package adminclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// TokenStore keeps the bearer token between calls. Load returns "" when
// nothing is stored.
type TokenStore interface {
	Load() (string, error)
	Save(token string) error
	Clear() error
}

// MemoryStore lives as long as the process, like a browser session.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Load() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.token, nil
}

func (s *MemoryStore) Save(token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	return nil
}

func (s *MemoryStore) Clear() error {
	return s.Save("")
}

type fileState struct {
	AuthToken string `json:"auth_token"`
}

// FileStore persists the token as JSON so it survives restarts.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("os.ReadFile -> %w", err)
	}

	var state fileState
	if err = json.Unmarshal(raw, &state); err != nil {
		return "", fmt.Errorf("json.Unmarshal -> %w", err)
	}

	return state.AuthToken, nil
}

func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(fileState{AuthToken: token})
	if err != nil {
		return fmt.Errorf("json.Marshal -> %w", err)
	}
	if err = os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("os.MkdirAll -> %w", err)
	}

	return os.WriteFile(s.path, raw, 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("os.Remove -> %w", err)
	}

	return nil
}

// tokenChain reads the session store first and falls back to the
// persistent one.
type tokenChain struct {
	session    TokenStore
	persistent TokenStore
}

func (c tokenChain) load() (string, error) {
	for _, store := range []TokenStore{c.session, c.persistent} {
		token, err := store.Load()
		if err != nil {
			return "", err
		}
		if token != "" {
			return token, nil
		}
	}

	return "", nil
}

func (c tokenChain) save(token string, remember bool) error {
	if remember {
		return c.persistent.Save(token)
	}

	return c.session.Save(token)
}

func (c tokenChain) clear() error {
	return errors.Join(c.session.Clear(), c.persistent.Clear())
}
