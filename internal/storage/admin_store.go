package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// AdminToken is the placeholder credential returned on login. It carries no
// session semantics and is never checked on later requests.
const AdminToken = "dummy-token-123"

// AdminStore holds the single admin credential record. The record must be
// seeded before startup; the store never creates or deletes it.
type AdminStore struct {
	path string
	mu   sync.Mutex
}

func NewAdminStore(path string) *AdminStore {
	return &AdminStore{path: path}
}

func (s *AdminStore) load() (*Admin, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrAdminNotConfigured
		}
		return nil, fmt.Errorf("read admin record: %w", err)
	}

	var admin Admin
	if err := json.Unmarshal(data, &admin); err != nil {
		return nil, fmt.Errorf("decode admin record: %w", err)
	}
	if err := checkValid(admin); err != nil {
		return nil, fmt.Errorf("invalid admin record: %w", err)
	}
	return &admin, nil
}

func (s *AdminStore) save(admin *Admin) error {
	data, err := json.MarshalIndent(admin, "", "  ")
	if err != nil {
		return fmt.Errorf("encode admin record: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write admin record: %w", err)
	}
	return nil
}

// Login checks the credentials against the stored record and returns the
// placeholder token.
func (s *AdminStore) Login(_ context.Context, username, password string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	admin, err := s.load()
	if err != nil {
		return "", err
	}

	if username != admin.Username || password != admin.Password {
		return "", ErrInvalidCredentials
	}
	return AdminToken, nil
}

// ChangePassword overwrites the stored password after checking the username
// and the current password.
func (s *AdminStore) ChangePassword(_ context.Context, req PasswordChangeRequest) error {
	if err := checkValid(req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	admin, err := s.load()
	if err != nil {
		return err
	}

	if req.Username != admin.Username {
		return ErrUsernameMismatch
	}
	if req.CurrentPassword != admin.Password {
		return ErrWrongPassword
	}

	admin.Password = req.NewPassword
	return s.save(admin)
}
