package memory

import (
	"context"
	"sync"
	"time"

	"github.com/medrecords/patient-system/internal/auth"
	"github.com/medrecords/patient-system/internal/core/domain"
)

// UserStore is the in-process credential table. It is constructed once at
// startup and handed to its consumers by reference; nothing survives a
// restart. The mutex guards the maps because echo serves requests
// concurrently.
type UserStore struct {
	mu         sync.RWMutex
	byID       map[int]*domain.User
	idByName   map[string]int
	nextID     int
	bcryptCost int
}

func NewUserStore(bcryptCost int) *UserStore {
	return &UserStore{
		byID:       make(map[int]*domain.User),
		idByName:   make(map[string]int),
		nextID:     1,
		bcryptCost: bcryptCost,
	}
}

// FindByUsername returns the full record including the password hash.
// Intended for the login path only.
func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.idByName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *s.byID[id]
	return &clone, nil
}

// FindByID returns the public projection; the hash never crosses here.
func (s *UserStore) FindByID(_ context.Context, id int) (*domain.PublicUser, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u.Public(), nil
}

// Create hashes the password and stores a new account. Fails with
// domain.ErrUserExists when the username is already taken.
func (s *UserStore) Create(_ context.Context, username, password, role string) (*domain.PublicUser, error) {
	if username == "" || password == "" || !domain.ValidRole(role) {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.idByName[username]; taken {
		return nil, domain.ErrUserExists
	}

	u := &domain.User{
		ID:           s.nextID,
		Username:     username,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
		IsDisabled:   false,
		PasswordHash: hash,
	}
	s.nextID++
	s.byID[u.ID] = u
	s.idByName[u.Username] = u.ID

	return u.Public(), nil
}

// SetDisabled toggles the disabled flag. Accounts are never deleted, so a
// stale token for a disabled account keeps resolving here and keeps being
// rejected by the auth gate.
func (s *UserStore) SetDisabled(_ context.Context, id int, disabled bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.byID[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.IsDisabled = disabled
	return nil
}
