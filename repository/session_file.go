package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"

	"stayease-backend/domain"
)

// FileSessionStore persists the current identity to its own file, keyed
// independently from business data, so a restart restores the session.
type FileSessionStore struct {
	mu     sync.Mutex
	path   string
	logger *logrus.Logger
}

func NewFileSessionStore(path string, logger *logrus.Logger) *FileSessionStore {
	return &FileSessionStore{path: path, logger: logger}
}

func (s *FileSessionStore) CurrentUser() (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(data, &user); err != nil {
		// Malformed identity data is treated as absent and cleared, the
		// caller must never crash over it.
		s.logger.WithFields(logrus.Fields{"path": s.path}).
			Warn("Corrupt session data, clearing: ", err)
		if rmErr := os.Remove(s.path); rmErr != nil && !os.IsNotExist(rmErr) {
			return nil, rmErr
		}
		return nil, nil
	}
	return &user, nil
}

func (s *FileSessionStore) SetCurrentUser(user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileSessionStore) ClearCurrentUser() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
