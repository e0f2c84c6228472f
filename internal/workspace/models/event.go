package models

import (
	"encoding/json"
	"time"

	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// EventType names a kind of workspace occurrence.
type EventType string

const (
	// EventProposalStatusChange records a proposal moving between statuses.
	EventProposalStatusChange EventType = "proposal_status_change"
)

// Event is an immutable, append-only log entry for a domain-level occurrence.
// It is the source of truth for "what changed and when".
type Event struct {
	ID         domain.WorkspaceEventID
	Type       EventType
	ProposalID domain.ProposalID
	ActorID    domain.UserID
	// Meta carries type-specific detail, e.g. {"oldStatus": ..., "newStatus": ...}.
	Meta      json.RawMessage
	CreatedAt time.Time
}

// TaskID derives the notification ledger identity of this event for one user.
// The same status change notifies many users, so the user is part of the key.
func (e Event) TaskID(userID domain.UserID) domain.TaskID {
	return domain.TaskID(e.ID.String() + "." + userID.String())
}

// LatestByProposal collapses events down to the most recent one per proposal,
// so only the latest status change produces a task. Ties keep the first seen.
func LatestByProposal(events []Event) map[domain.ProposalID]Event {
	latest := make(map[domain.ProposalID]Event, len(events))
	for _, event := range events {
		current, ok := latest[event.ProposalID]
		if !ok || event.CreatedAt.After(current.CreatedAt) {
			latest[event.ProposalID] = event
		}
	}
	return latest
}
