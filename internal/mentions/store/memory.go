package store

import (
	"context"
	"sync"

	"github.com/ccarella/app.charmverse.io/internal/mentions/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// InMemory keeps mention tasks in memory.
type InMemory struct {
	mu       sync.RWMutex
	mentions map[domain.UserID][]models.Task
}

func NewInMemory() *InMemory {
	return &InMemory{mentions: make(map[domain.UserID][]models.Task)}
}

// Put records a mention of a user.
func (s *InMemory) Put(ctx context.Context, userID domain.UserID, task models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mentions[userID] = append(s.mentions[userID], task)
	return nil
}

// Acknowledge flips the mention's marked flag.
func (s *InMemory) Acknowledge(ctx context.Context, userID domain.UserID, mentionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tasks := s.mentions[userID]
	for i := range tasks {
		if tasks[i].MentionID == mentionID {
			tasks[i].Marked = true
		}
	}
	return nil
}

// ListForUser returns every mention of the user, acknowledged or not.
func (s *InMemory) ListForUser(ctx context.Context, userID domain.UserID) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Task(nil), s.mentions[userID]...), nil
}
