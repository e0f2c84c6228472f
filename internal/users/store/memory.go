package store

import (
	"context"
	"sync"

	"github.com/ccarella/app.charmverse.io/internal/users/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
	"github.com/ccarella/app.charmverse.io/pkg/platform/sentinel"
)

// InMemory keeps users and their role grants in memory.
type InMemory struct {
	mu    sync.RWMutex
	users map[domain.UserID]models.User
	roles map[domain.UserID][]domain.RoleID
}

func NewInMemory() *InMemory {
	return &InMemory{
		users: make(map[domain.UserID]models.User),
		roles: make(map[domain.UserID][]domain.RoleID),
	}
}

// Put inserts or replaces a user.
func (s *InMemory) Put(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

// GrantRole assigns a role to a user.
func (s *InMemory) GrantRole(ctx context.Context, userID domain.UserID, roleID domain.RoleID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roles[userID] = append(s.roles[userID], roleID)
	return nil
}

// FindByID returns a single user.
func (s *InMemory) FindByID(ctx context.Context, userID domain.UserID) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return models.User{}, sentinel.ErrNotFound
	}
	return user, nil
}

// ListNotifiable returns every user with a non-empty email address.
// Snooze filtering is the service's job: preferences travel with the user.
func (s *InMemory) ListNotifiable(ctx context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.User
	for _, user := range s.users {
		if user.Email == "" {
			continue
		}
		out = append(out, user)
	}
	return out, nil
}

// RoleIDs returns every role granted to the user across spaces.
func (s *InMemory) RoleIDs(ctx context.Context, userID domain.UserID) ([]domain.RoleID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.RoleID(nil), s.roles[userID]...), nil
}
