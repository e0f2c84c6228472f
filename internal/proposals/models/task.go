package models

import (
	"time"

	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Task is a pending proposal action surfaced to one user. Created transiently
// per aggregation run and never persisted; only its ID reaches the ledger.
type Task struct {
	// ID is the ledger identity: "<workspaceEventID>.<userID>" when derived
	// from an event, or the proposal ID when no event exists.
	ID domain.TaskID
	// Action is empty when no next step applies to this user; such tasks are
	// shown in the workspace task list but never included in digests.
	Action      Action
	Status      ProposalStatus
	SpaceDomain string
	SpaceName   string
	PageTitle   string
	PagePath    string
	// EventCreatedAt orders tasks newest-change-first in digests. Zero when
	// the task has no originating event.
	EventCreatedAt time.Time
}

// TaskList is the per-user split between tasks the user was already notified
// about and tasks still awaiting notification.
type TaskList struct {
	Marked   []Task
	Unmarked []Task
}
