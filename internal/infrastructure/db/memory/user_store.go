// Package memory holds the default, process-local stores. Every store is safe
// for concurrent use and hands out copies so callers cannot mutate its state.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dogtraining/dashboard/internal/core/domain"
)

type UserStore struct {
	mu      sync.RWMutex
	byID    map[string]domain.User
	byEmail map[string]string // normalized email -> user id
}

func NewUserStore() *UserStore {
	return &UserStore{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (s *UserStore) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[domain.NormalizeEmail(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u := s.byID[id]
	return &u, nil
}

// Create stores user under its normalized email. Duplicates by id or email
// are rejected with domain.ErrUserExists.
func (s *UserStore) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if !domain.ValidRole(user.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, user.Role)
	}

	u := *user
	u.Email = domain.NormalizeEmail(u.Email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byEmail[u.Email]; exists {
		return nil, domain.ErrUserExists
	}
	if _, exists := s.byID[u.ID]; exists {
		return nil, domain.ErrUserExists
	}

	s.byID[u.ID] = u
	s.byEmail[u.Email] = u.ID
	out := u
	return &out, nil
}
