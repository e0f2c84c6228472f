package models

import (
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// ProposalStatus is the lifecycle stage of a proposal.
type ProposalStatus string

const (
	StatusPrivateDraft ProposalStatus = "private_draft"
	StatusDraft        ProposalStatus = "draft"
	StatusDiscussion   ProposalStatus = "discussion"
	StatusReview       ProposalStatus = "review"
	StatusReviewed     ProposalStatus = "reviewed"
	StatusVoteActive   ProposalStatus = "vote_active"
	StatusVoteClosed   ProposalStatus = "vote_closed"
)

// IsDraft reports whether the proposal is in a draft stage. Draft proposals
// are invisible to everyone but their authors.
func (s ProposalStatus) IsDraft() bool {
	return s == StatusPrivateDraft || s == StatusDraft
}

// Known reports whether the status belongs to the current vocabulary.
// Unknown statuses resolve to no action; callers log them as taxonomy gaps.
func (s ProposalStatus) Known() bool {
	switch s {
	case StatusPrivateDraft, StatusDraft, StatusDiscussion, StatusReview,
		StatusReviewed, StatusVoteActive, StatusVoteClosed:
		return true
	}
	return false
}

// Reviewer is a reviewer assignment, either a concrete user or a role.
type Reviewer struct {
	UserID domain.UserID
	RoleID domain.RoleID
}

// PageRef is the slice of the proposal's page needed for digests.
type PageRef struct {
	Title string
	Path  string
}

// SpaceRef is the slice of the owning space needed for digests.
type SpaceRef struct {
	Name   string
	Domain string
}

// Proposal joins the proposal row with its authors, reviewers, page and space.
type Proposal struct {
	ID        domain.ProposalID
	SpaceID   domain.SpaceID
	Status    ProposalStatus
	AuthorIDs []domain.UserID
	Reviewers []Reviewer
	// Page is nil when the proposal's page has been deleted; such proposals
	// never produce tasks.
	Page  *PageRef
	Space SpaceRef
}

// IsAuthor reports whether the user authored the proposal.
func (p Proposal) IsAuthor(userID domain.UserID) bool {
	for _, author := range p.AuthorIDs {
		if author == userID {
			return true
		}
	}
	return false
}

// IsReviewer reports whether the user is a reviewer, either directly or via
// any of the given role grants.
func (p Proposal) IsReviewer(userID domain.UserID, roleIDs []domain.RoleID) bool {
	for _, reviewer := range p.Reviewers {
		if !reviewer.RoleID.IsNil() {
			for _, roleID := range roleIDs {
				if roleID == reviewer.RoleID {
					return true
				}
			}
			continue
		}
		if reviewer.UserID == userID {
			return true
		}
	}
	return false
}
