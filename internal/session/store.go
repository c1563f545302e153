// Package session persists the signed-in provider in a small local
// key-value file, the terminal counterpart of browser local storage.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/journeyq/dashboard/internal/domain"
)

// DefaultKey is the key the current user is stored under
const DefaultKey = "journeyq_user"

// Store reads and writes the current user. The backing file is a JSON
// object; keys other than the store's own are preserved on write.
type Store struct {
	path   string
	key    string
	logger *slog.Logger
	now    func() time.Time
}

// NewStore creates a store backed by the file at path
func NewStore(path, key string, logger *slog.Logger) *Store {
	if key == "" {
		key = DefaultKey
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:   path,
		key:    key,
		logger: logger,
		now:    time.Now,
	}
}

// Path returns the backing file
func (s *Store) Path() string {
	return s.path
}

// Load returns the stored user, or nil if nobody is signed in
func (s *Store) Load() (*domain.User, error) {
	entries, err := s.readAll()
	if err != nil {
		return nil, &domain.SessionError{Op: "load", Path: s.path, Err: err}
	}

	raw, ok := entries[s.key]
	if !ok {
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, &domain.SessionError{Op: "load", Path: s.path, Err: fmt.Errorf("decode %s: %w", s.key, err)}
	}
	return &user, nil
}

// Save stores user as the current user
func (s *Store) Save(user domain.User) error {
	entries, err := s.readAll()
	if err != nil {
		return &domain.SessionError{Op: "save", Path: s.path, Err: err}
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return &domain.SessionError{Op: "save", Path: s.path, Err: fmt.Errorf("encode user: %w", err)}
	}
	entries[s.key] = raw

	if err := s.writeAll(entries); err != nil {
		return &domain.SessionError{Op: "save", Path: s.path, Err: err}
	}
	s.logger.Info("session saved", "email", user.Email, "service_type", user.ServiceType)
	return nil
}

// Clear removes the current user. Clearing an empty store is not an error.
func (s *Store) Clear() error {
	entries, err := s.readAll()
	if err != nil {
		return &domain.SessionError{Op: "clear", Path: s.path, Err: err}
	}
	if _, ok := entries[s.key]; !ok {
		return nil
	}
	delete(entries, s.key)

	if err := s.writeAll(entries); err != nil {
		return &domain.SessionError{Op: "clear", Path: s.path, Err: err}
	}
	s.logger.Info("session cleared")
	return nil
}

// Login signs in with the mock provider account, overriding its email and
// service type, and stores the result
func (s *Store) Login(email string, serviceType domain.ServiceType) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return domain.User{}, fmt.Errorf("login: email %q: %w", email, domain.ErrInvalidInput)
	}
	if !serviceType.Valid() {
		return domain.User{}, fmt.Errorf("login: service type %q: %w", serviceType, domain.ErrInvalidInput)
	}

	user := domain.MockUser()
	user.Email = email
	user.ServiceType = serviceType

	if err := s.Save(user); err != nil {
		return domain.User{}, fmt.Errorf("login: %w", err)
	}
	return user, nil
}

// Signup creates a new provider account from the given details
func (s *Store) Signup(user domain.User) (domain.User, error) {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.BusinessName) == "" {
		return domain.User{}, fmt.Errorf("signup: name and business name are required: %w", domain.ErrInvalidInput)
	}
	if !strings.Contains(user.Email, "@") {
		return domain.User{}, fmt.Errorf("signup: email %q: %w", user.Email, domain.ErrInvalidInput)
	}
	if !user.ServiceType.Valid() {
		return domain.User{}, fmt.Errorf("signup: service type %q: %w", user.ServiceType, domain.ErrInvalidInput)
	}

	now := s.now()
	user.ID = now.UnixMilli()
	user.Rating = 0
	user.TotalReviews = 0
	user.JoinedDate = now.Format("2006-01-02")

	if err := s.Save(user); err != nil {
		return domain.User{}, fmt.Errorf("signup: %w", err)
	}
	return user, nil
}

// UpdateProfile applies update to the stored user
func (s *Store) UpdateProfile(update domain.ProfileUpdate) (domain.User, error) {
	current, err := s.Load()
	if err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}
	if current == nil {
		return domain.User{}, &domain.SessionError{Op: "update", Path: s.path, Err: domain.ErrNoSession}
	}
	if update.ServiceType != nil && !update.ServiceType.Valid() {
		return domain.User{}, fmt.Errorf("update profile: service type %q: %w", *update.ServiceType, domain.ErrInvalidInput)
	}

	updated := update.Apply(*current)
	if err := s.Save(updated); err != nil {
		return domain.User{}, fmt.Errorf("update profile: %w", err)
	}
	return updated, nil
}

// Logout clears the stored user
func (s *Store) Logout() error {
	return s.Clear()
}

func (s *Store) readAll() (map[string]json.RawMessage, error) {
	entries := make(map[string]json.RawMessage)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return entries, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return entries, nil
}

// writeAll replaces the file atomically via a temp file in the same directory
func (s *Store) writeAll(entries map[string]json.RawMessage) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
