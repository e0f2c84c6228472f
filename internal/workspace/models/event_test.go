package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

func TestEventTaskID(t *testing.T) {
	event := Event{ID: domain.WorkspaceEventID(uuid.MustParse("11111111-1111-1111-1111-111111111111"))}
	userID := domain.UserID(uuid.MustParse("22222222-2222-2222-2222-222222222222"))

	assert.Equal(t,
		domain.TaskID("11111111-1111-1111-1111-111111111111.22222222-2222-2222-2222-222222222222"),
		event.TaskID(userID))
}

func TestLatestByProposal(t *testing.T) {
	now := time.Now()
	proposalA := domain.ProposalID(uuid.New())
	proposalB := domain.ProposalID(uuid.New())

	oldA := Event{ID: domain.WorkspaceEventID(uuid.New()), ProposalID: proposalA, CreatedAt: now.Add(-2 * time.Hour)}
	newA := Event{ID: domain.WorkspaceEventID(uuid.New()), ProposalID: proposalA, CreatedAt: now.Add(-time.Hour)}
	onlyB := Event{ID: domain.WorkspaceEventID(uuid.New()), ProposalID: proposalB, CreatedAt: now.Add(-3 * time.Hour)}

	latest := LatestByProposal([]Event{oldA, newA, onlyB})

	assert.Len(t, latest, 2)
	assert.Equal(t, newA.ID, latest[proposalA].ID)
	assert.Equal(t, onlyB.ID, latest[proposalB].ID)
}
