package service

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	gnosismodels "github.com/ccarella/app.charmverse.io/internal/gnosis/models"
	mentionmodels "github.com/ccarella/app.charmverse.io/internal/mentions/models"
	notifmodels "github.com/ccarella/app.charmverse.io/internal/notifications/models"
	usermodels "github.com/ccarella/app.charmverse.io/internal/users/models"
	votemodels "github.com/ccarella/app.charmverse.io/internal/votes/models"
	wsmodels "github.com/ccarella/app.charmverse.io/internal/workspace/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// BuildDigest assembles the pending-task digest for one user. The four task
// sources are queried concurrently, then a single ledger read filters out
// everything already delivered. Mentions are the exception: their dedup state
// is the acknowledgment flag on the mention itself, so the ledger is not
// consulted for them.
func (s *Service) BuildDigest(ctx context.Context, user usermodels.User, events []wsmodels.Event) (notifmodels.Digest, error) {
	var (
		safeTasks    []gnosismodels.SafeTask
		mentionTasks []mentionmodels.Task
		voteTasks    []votemodels.Task
	)

	g, gctx := errgroup.WithContext(ctx)
	if s.safes != nil && user.HasSafes() {
		g.Go(func() error {
			tasks, err := s.safes.PendingTasks(gctx, user.ID)
			if err != nil {
				return fmt.Errorf("load multisig tasks for %s: %w", user.ID, err)
			}
			safeTasks = tasks
			return nil
		})
	}
	g.Go(func() error {
		tasks, err := s.mentions.ListForUser(gctx, user.ID)
		if err != nil {
			return fmt.Errorf("load mentions for %s: %w", user.ID, err)
		}
		mentionTasks = tasks
		return nil
	})
	g.Go(func() error {
		tasks, err := s.votes.ListOpenForUser(gctx, user.ID)
		if err != nil {
			return fmt.Errorf("load open votes for %s: %w", user.ID, err)
		}
		voteTasks = tasks
		return nil
	})
	if err := g.Wait(); err != nil {
		return notifmodels.Digest{}, err
	}

	candidates := make([]domain.TaskID, 0, len(safeTasks)+len(voteTasks)+len(events))
	for _, task := range safeTasks {
		if id := task.TaskID(); id != "" {
			candidates = append(candidates, id)
		}
	}
	for _, task := range voteTasks {
		candidates = append(candidates, task.TaskID())
	}
	for _, event := range events {
		candidates = append(candidates, event.TaskID(user.ID))
	}

	sent, err := s.ledger.FilterSent(ctx, user.ID, candidates)
	if err != nil {
		return notifmodels.Digest{}, fmt.Errorf("filter sent tasks for %s: %w", user.ID, err)
	}

	unsentEvents := lo.Filter(events, func(event wsmodels.Event, _ int) bool {
		_, ok := sent[event.TaskID(user.ID)]
		return !ok
	})
	proposalTasks, err := s.proposals.TasksFromEvents(ctx, user.ID, unsentEvents)
	if err != nil {
		return notifmodels.Digest{}, fmt.Errorf("derive proposal tasks for %s: %w", user.ID, err)
	}

	return notifmodels.Digest{
		User: user,
		MultisigTasks: lo.Filter(safeTasks, func(task gnosismodels.SafeTask, _ int) bool {
			id := task.TaskID()
			if id == "" || !task.ActionableBy() {
				return false
			}
			_, ok := sent[id]
			return !ok
		}),
		MentionTasks: lo.Filter(mentionTasks, func(task mentionmodels.Task, _ int) bool {
			return !task.Marked
		}),
		VoteTasks: lo.Filter(voteTasks, func(task votemodels.Task, _ int) bool {
			_, ok := sent[task.TaskID()]
			return !ok
		}),
		ProposalTasks: proposalTasks,
	}, nil
}

// DigestForUser builds the digest one user would receive right now. Used by
// the admin preview endpoint; it ignores snooze state so operators can see
// what is queued behind a snooze.
func (s *Service) DigestForUser(ctx context.Context, userID domain.UserID) (notifmodels.Digest, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return notifmodels.Digest{}, err
	}
	events, err := s.windowEvents(ctx)
	if err != nil {
		return notifmodels.Digest{}, err
	}
	return s.BuildDigest(ctx, user, events)
}

// windowEvents loads the status-change events inside the run's lookback window.
func (s *Service) windowEvents(ctx context.Context) ([]wsmodels.Event, error) {
	until := s.now()
	since := until.Add(-s.cfg.EventWindow)
	events, err := s.events.ListByTypeSince(ctx, wsmodels.EventProposalStatusChange, since, until)
	if err != nil {
		return nil, fmt.Errorf("load workspace events: %w", err)
	}
	return events, nil
}
