package models

import (
	"time"

	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Task is an open poll awaiting the user's ballot.
type Task struct {
	ID          domain.VoteID
	Title       string
	PageTitle   string
	PagePath    string
	SpaceName   string
	SpaceDomain string
	Deadline    time.Time
}

// TaskID is the notification ledger identity: the vote id itself. A vote is
// one task for everyone it concerns, delivered at most once per user.
func (t Task) TaskID() domain.TaskID {
	return domain.TaskID(t.ID.String())
}
