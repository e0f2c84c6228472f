package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/ccarella/app.charmverse.io/internal/workspace/models"
)

// InMemory keeps workspace events in memory. Intended for tests and local
// development; production uses the PostgreSQL store.
type InMemory struct {
	mu     sync.RWMutex
	events []models.Event
}

func NewInMemory() *InMemory {
	return &InMemory{}
}

// Append records an event. Events are immutable once appended.
func (s *InMemory) Append(ctx context.Context, event models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

// ListByTypeSince returns events of the given type created in (since, until],
// newest first.
func (s *InMemory) ListByTypeSince(ctx context.Context, eventType models.EventType, since, until time.Time) ([]models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Event
	for _, event := range s.events {
		if event.Type != eventType {
			continue
		}
		if event.CreatedAt.Before(since) || event.CreatedAt.After(until) {
			continue
		}
		out = append(out, event)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
