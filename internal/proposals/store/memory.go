package store

import (
	"context"
	"sync"

	"github.com/ccarella/app.charmverse.io/internal/proposals/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// InMemory keeps proposals and space memberships in memory.
type InMemory struct {
	mu        sync.RWMutex
	proposals map[domain.ProposalID]models.Proposal
	members   map[domain.SpaceID]map[domain.UserID]struct{}
}

func NewInMemory() *InMemory {
	return &InMemory{
		proposals: make(map[domain.ProposalID]models.Proposal),
		members:   make(map[domain.SpaceID]map[domain.UserID]struct{}),
	}
}

// Put inserts or replaces a proposal.
func (s *InMemory) Put(ctx context.Context, proposal models.Proposal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.proposals[proposal.ID] = proposal
	return nil
}

// AddSpaceMember records that a user belongs to a space.
func (s *InMemory) AddSpaceMember(ctx context.Context, spaceID domain.SpaceID, userID domain.UserID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.members[spaceID] == nil {
		s.members[spaceID] = make(map[domain.UserID]struct{})
	}
	s.members[spaceID][userID] = struct{}{}
	return nil
}

func (s *InMemory) ListByIDs(ctx context.Context, ids []domain.ProposalID) ([]models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Proposal
	for _, id := range ids {
		if proposal, ok := s.proposals[id]; ok {
			out = append(out, proposal)
		}
	}
	return out, nil
}

func (s *InMemory) ListForUserSpaces(ctx context.Context, userID domain.UserID) ([]models.Proposal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.Proposal
	for _, proposal := range s.proposals {
		if _, ok := s.members[proposal.SpaceID][userID]; ok {
			out = append(out, proposal)
		}
	}
	return out, nil
}
