package ledger

import (
	"context"
	"sync"

	"github.com/ccarella/app.charmverse.io/internal/notifications/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// InMemory keeps the delivery ledger in memory.
type InMemory struct {
	mu   sync.RWMutex
	rows map[domain.UserID]map[domain.TaskID]models.LedgerEntry
}

func NewInMemory() *InMemory {
	return &InMemory{rows: make(map[domain.UserID]map[domain.TaskID]models.LedgerEntry)}
}

// FilterSent returns the subset of candidates already recorded for the user.
// An empty candidate set returns immediately without touching the ledger.
func (s *InMemory) FilterSent(ctx context.Context, userID domain.UserID, candidates []domain.TaskID) (map[domain.TaskID]struct{}, error) {
	if len(candidates) == 0 {
		return map[domain.TaskID]struct{}{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sent := make(map[domain.TaskID]struct{})
	userRows := s.rows[userID]
	for _, taskID := range candidates {
		if _, ok := userRows[taskID]; ok {
			sent[taskID] = struct{}{}
		}
	}
	return sent, nil
}

// SentTaskIDs returns every task id ever recorded for the user.
func (s *InMemory) SentTaskIDs(ctx context.Context, userID domain.UserID) (map[domain.TaskID]struct{}, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[domain.TaskID]struct{}, len(s.rows[userID]))
	for taskID := range s.rows[userID] {
		out[taskID] = struct{}{}
	}
	return out, nil
}

// RecordBatch inserts all entries or none. Duplicate (user, task) pairs are
// overwritten silently; the ledger is additive and tolerates replays.
func (s *InMemory) RecordBatch(ctx context.Context, entries []models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, entry := range entries {
		if s.rows[entry.UserID] == nil {
			s.rows[entry.UserID] = make(map[domain.TaskID]models.LedgerEntry)
		}
		s.rows[entry.UserID][entry.TaskID] = entry
	}
	return nil
}
