package models

// Action is the next step a user can take on a proposal.
type Action string

const (
	ActionStartDiscussion Action = "start_discussion"
	ActionStartReview     Action = "start_review"
	ActionStartVote       Action = "start_vote"
	ActionDiscuss         Action = "discuss"
	ActionReview          Action = "review"
	ActionVote            Action = "vote"
)

// Label returns the human-readable form used in digest emails.
func (a Action) Label() string {
	switch a {
	case ActionStartDiscussion:
		return "Start discussion"
	case ActionStartReview:
		return "Start review"
	case ActionStartVote:
		return "Start vote"
	case ActionDiscuss:
		return "Discuss"
	case ActionReview:
		return "Review"
	case ActionVote:
		return "Vote"
	}
	return string(a)
}

// ResolveAction derives the next action for a user on a proposal from the
// proposal status and the user's relationship to it. It is pure and total:
// unknown statuses and role combinations without a next step return ok=false.
//
//	status        | author           | reviewer | other member
//	--------------+------------------+----------+-------------
//	private_draft | start_discussion | -        | -
//	draft         | start_discussion | -        | -
//	discussion    | start_review     | discuss  | discuss
//	review        | -                | review   | -
//	reviewed      | start_vote       | -        | -
//	vote_active   | vote             | vote     | vote
//	vote_closed   | -                | -        | -
func ResolveAction(status ProposalStatus, isAuthor, isReviewer bool) (Action, bool) {
	switch status {
	case StatusPrivateDraft, StatusDraft:
		if isAuthor {
			return ActionStartDiscussion, true
		}
	case StatusDiscussion:
		if isAuthor {
			return ActionStartReview, true
		}
		return ActionDiscuss, true
	case StatusReview:
		if isReviewer {
			return ActionReview, true
		}
	case StatusReviewed:
		if isAuthor {
			return ActionStartVote, true
		}
	case StatusVoteActive:
		return ActionVote, true
	}
	return "", false
}
