// Package service derives proposal tasks: the per-user "what should I do
// next on this proposal" items that feed the workspace task list and the
// notification digests.
package service

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/ccarella/app.charmverse.io/internal/proposals/models"
	wsmodels "github.com/ccarella/app.charmverse.io/internal/workspace/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
	dErrors "github.com/ccarella/app.charmverse.io/pkg/domain-errors"
)

// ProposalStore loads proposals with authors, reviewers, page and space joined.
type ProposalStore interface {
	ListByIDs(ctx context.Context, ids []domain.ProposalID) ([]models.Proposal, error)
	ListForUserSpaces(ctx context.Context, userID domain.UserID) ([]models.Proposal, error)
}

// RoleStore resolves the role grants used for role-based reviewer matching.
type RoleStore interface {
	RoleIDs(ctx context.Context, userID domain.UserID) ([]domain.RoleID, error)
}

// EventStore reads the workspace event log.
type EventStore interface {
	ListByTypeSince(ctx context.Context, eventType wsmodels.EventType, since, until time.Time) ([]wsmodels.Event, error)
}

// LedgerReader reports which task ids were already delivered to a user.
type LedgerReader interface {
	SentTaskIDs(ctx context.Context, userID domain.UserID) (map[domain.TaskID]struct{}, error)
}

type Service struct {
	proposals ProposalStore
	events    EventStore
	roles     RoleStore
	ledger    LedgerReader
	logger    *slog.Logger
}

func New(proposals ProposalStore, events EventStore, roles RoleStore, ledger LedgerReader, logger *slog.Logger) *Service {
	return &Service{
		proposals: proposals,
		events:    events,
		roles:     roles,
		ledger:    ledger,
		logger:    logger,
	}
}

// TasksFromEvents derives the digest-bound proposal tasks for one user from a
// pre-filtered batch of status-change events (the caller has already removed
// events whose task id is in the ledger). Tasks that resolve to no action are
// excluded; draft proposals are invisible to non-authors. The result is
// ordered newest status change first.
func (s *Service) TasksFromEvents(ctx context.Context, userID domain.UserID, events []wsmodels.Event) ([]models.Task, error) {
	if len(events) == 0 {
		return nil, nil
	}

	latest := wsmodels.LatestByProposal(events)

	ids := make([]domain.ProposalID, 0, len(latest))
	for id := range latest {
		ids = append(ids, id)
	}

	proposals, err := s.proposals.ListByIDs(ctx, ids)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load proposals for events")
	}
	roleIDs, err := s.roles.RoleIDs(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "load role grants")
	}

	var tasks []models.Task
	for _, proposal := range proposals {
		event, ok := latest[proposal.ID]
		if !ok {
			continue
		}
		task, ok := s.taskFor(proposal, event, userID, roleIDs)
		if !ok || task.Action == "" {
			continue
		}
		tasks = append(tasks, task)
	}

	sortNewestFirst(tasks)
	return tasks, nil
}

// TasksForUser assembles the full proposal task list for the workspace UI,
// split into tasks already notified (marked) and tasks still pending
// notification (unmarked). Tasks without a next action are included: the list
// shows state, the digest shows work.
func (s *Service) TasksForUser(ctx context.Context, userID domain.UserID) (models.TaskList, error) {
	sent, err := s.ledger.SentTaskIDs(ctx, userID)
	if err != nil {
		return models.TaskList{}, dErrors.Wrap(err, dErrors.CodeInternal, "load sent task ids")
	}

	events, err := s.events.ListByTypeSince(ctx, wsmodels.EventProposalStatusChange, time.Time{}, time.Now())
	if err != nil {
		return models.TaskList{}, dErrors.Wrap(err, dErrors.CodeInternal, "load workspace events")
	}
	latest := wsmodels.LatestByProposal(events)

	proposals, err := s.proposals.ListForUserSpaces(ctx, userID)
	if err != nil {
		return models.TaskList{}, dErrors.Wrap(err, dErrors.CodeInternal, "load proposals")
	}
	roleIDs, err := s.roles.RoleIDs(ctx, userID)
	if err != nil {
		return models.TaskList{}, dErrors.Wrap(err, dErrors.CodeInternal, "load role grants")
	}

	var list models.TaskList
	for _, proposal := range proposals {
		event, hasEvent := latest[proposal.ID]
		task, ok := s.taskFor(proposal, event, userID, roleIDs)
		if !ok {
			continue
		}
		if !hasEvent {
			// No status change on record: the proposal id itself is the task
			// identity and the task cannot be pending notification.
			task.ID = domain.TaskID(proposal.ID.String())
			list.Marked = append(list.Marked, task)
			continue
		}
		if _, alreadySent := sent[task.ID]; alreadySent {
			list.Marked = append(list.Marked, task)
		} else {
			list.Unmarked = append(list.Unmarked, task)
		}
	}

	sortNewestFirst(list.Marked)
	sortNewestFirst(list.Unmarked)
	return list, nil
}

// taskFor builds the task one proposal presents to one user. ok is false when
// the proposal is invisible to the user or cannot carry a task at all.
func (s *Service) taskFor(proposal models.Proposal, event wsmodels.Event, userID domain.UserID, roleIDs []domain.RoleID) (models.Task, bool) {
	isAuthor := proposal.IsAuthor(userID)
	if proposal.Status.IsDraft() && !isAuthor {
		return models.Task{}, false
	}
	if proposal.Page == nil {
		return models.Task{}, false
	}

	action, ok := models.ResolveAction(proposal.Status, isAuthor, proposal.IsReviewer(userID, roleIDs))
	if !ok && !proposal.Status.Known() {
		// A status the resolver has never heard of is a taxonomy gap, not a
		// legitimate no-op.
		s.logger.Warn("unknown proposal status, task skipped",
			"proposalId", proposal.ID.String(),
			"status", string(proposal.Status))
	}

	return models.Task{
		ID:             event.TaskID(userID),
		Action:         action,
		Status:         proposal.Status,
		SpaceDomain:    proposal.Space.Domain,
		SpaceName:      proposal.Space.Name,
		PageTitle:      proposal.Page.Title,
		PagePath:       proposal.Page.Path,
		EventCreatedAt: event.CreatedAt,
	}, true
}

func sortNewestFirst(tasks []models.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].EventCreatedAt.After(tasks[j].EventCreatedAt)
	})
}
