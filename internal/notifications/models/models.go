// Package models defines the notification digest and the delivery ledger
// types shared by the aggregation service and its stores.
package models

import (
	"time"

	gnosismodels "github.com/ccarella/app.charmverse.io/internal/gnosis/models"
	mentionmodels "github.com/ccarella/app.charmverse.io/internal/mentions/models"
	proposalmodels "github.com/ccarella/app.charmverse.io/internal/proposals/models"
	usermodels "github.com/ccarella/app.charmverse.io/internal/users/models"
	votemodels "github.com/ccarella/app.charmverse.io/internal/votes/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Kind tags the four task variants.
type Kind string

const (
	KindMultisig Kind = "multisig"
	KindMention  Kind = "mention"
	KindVote     Kind = "vote"
	KindProposal Kind = "proposal"
)

// Channel is the delivery channel recorded in the ledger.
type Channel string

const ChannelEmail Channel = "email"

// TaskRef is the common projection of every task variant: just enough
// identity to write and filter ledger rows.
type TaskRef struct {
	ID   domain.TaskID
	Kind Kind
}

// LedgerEntry records that a task was delivered to a user over a channel.
// Insert-only; at most one row per (user, task) is ever consulted.
type LedgerEntry struct {
	UserID    domain.UserID
	TaskID    domain.TaskID
	Channel   Channel
	Kind      Kind
	CreatedAt time.Time
}

// Digest is the per-user aggregate of pending tasks assembled for one send.
// Constructed fresh each run and discarded after the email and ledger write.
// Every list is already filtered: multisig tasks are actionable and unsent,
// mentions are unacknowledged, votes and proposal tasks are unsent.
type Digest struct {
	User          usermodels.User
	MultisigTasks []gnosismodels.SafeTask
	MentionTasks  []mentionmodels.Task
	VoteTasks     []votemodels.Task
	ProposalTasks []proposalmodels.Task
}

// TotalTasks is the number of items the digest announces. Zero excludes the
// user from dispatch entirely.
func (d Digest) TotalTasks() int {
	return len(d.MultisigTasks) + len(d.MentionTasks) + len(d.VoteTasks) + len(d.ProposalTasks)
}

// TaskRefs projects every included task to its ledger identity. Mentions are
// included: their rows keep the audit trail complete even though mention
// dedup reads the acknowledgment flag, not the ledger.
func (d Digest) TaskRefs() []TaskRef {
	refs := make([]TaskRef, 0, d.TotalTasks())
	for _, task := range d.MultisigTasks {
		refs = append(refs, TaskRef{ID: task.TaskID(), Kind: KindMultisig})
	}
	for _, task := range d.MentionTasks {
		refs = append(refs, TaskRef{ID: task.TaskID(), Kind: KindMention})
	}
	for _, task := range d.VoteTasks {
		refs = append(refs, TaskRef{ID: task.TaskID(), Kind: KindVote})
	}
	for _, task := range d.ProposalTasks {
		refs = append(refs, TaskRef{ID: task.ID, Kind: KindProposal})
	}
	return refs
}

// LedgerEntries builds the batch recorded after a successful send.
func (d Digest) LedgerEntries(now time.Time) []LedgerEntry {
	refs := d.TaskRefs()
	entries := make([]LedgerEntry, 0, len(refs))
	for _, ref := range refs {
		entries = append(entries, LedgerEntry{
			UserID:    d.User.ID,
			TaskID:    ref.ID,
			Channel:   ChannelEmail,
			Kind:      ref.Kind,
			CreatedAt: now,
		})
	}
	return entries
}
