package store

import (
	"context"
	"sync"
	"time"

	"github.com/ccarella/app.charmverse.io/internal/votes/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

type voteRecord struct {
	task     models.Task
	eligible map[domain.UserID]struct{}
	voted    map[domain.UserID]struct{}
}

// InMemory keeps votes and ballots in memory.
type InMemory struct {
	mu    sync.RWMutex
	votes map[domain.VoteID]*voteRecord
}

func NewInMemory() *InMemory {
	return &InMemory{votes: make(map[domain.VoteID]*voteRecord)}
}

// Put inserts or replaces an open vote together with its eligible voters.
func (s *InMemory) Put(ctx context.Context, task models.Task, eligible []domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := &voteRecord{
		task:     task,
		eligible: make(map[domain.UserID]struct{}, len(eligible)),
		voted:    make(map[domain.UserID]struct{}),
	}
	for _, userID := range eligible {
		record.eligible[userID] = struct{}{}
	}
	s.votes[task.ID] = record
	return nil
}

// CastBallot marks that the user has voted; the vote stops being a task for them.
func (s *InMemory) CastBallot(ctx context.Context, voteID domain.VoteID, userID domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if record, ok := s.votes[voteID]; ok {
		record.voted[userID] = struct{}{}
	}
	return nil
}

// ListOpenForUser returns votes the user may still cast a ballot in.
func (s *InMemory) ListOpenForUser(ctx context.Context, userID domain.UserID) ([]models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	var out []models.Task
	for _, record := range s.votes {
		if _, ok := record.eligible[userID]; !ok {
			continue
		}
		if _, ok := record.voted[userID]; ok {
			continue
		}
		if !record.task.Deadline.IsZero() && record.task.Deadline.Before(now) {
			continue
		}
		out = append(out, record.task)
	}
	return out, nil
}
