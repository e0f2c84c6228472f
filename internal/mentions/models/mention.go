package models

import (
	"time"

	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Task is an @-mention of the user inside page content.
//
// Mentions carry their own acknowledgment flag (Marked) set when the user
// opens the page or dismisses the mention in the workspace UI. Digest
// inclusion is decided by that flag, not by the notification ledger — the
// two mechanisms are deliberately separate.
type Task struct {
	// MentionID is the editor-generated node id, unique per mention.
	MentionID   string
	PageTitle   string
	PagePath    string
	SpaceName   string
	SpaceDomain string
	// Text is a short excerpt around the mention.
	Text      string
	CreatedBy string
	CreatedAt time.Time
	// Marked means the user has already acknowledged the mention.
	Marked bool
}

// TaskID is the ledger identity written after a digest send, kept for the
// audit trail even though mention dedup never reads the ledger.
func (t Task) TaskID() domain.TaskID {
	return domain.TaskID(t.MentionID)
}
