package service

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	notifmodels "github.com/ccarella/app.charmverse.io/internal/notifications/models"
	ledgerstore "github.com/ccarella/app.charmverse.io/internal/notifications/store/ledger"
	"github.com/ccarella/app.charmverse.io/internal/proposals/models"
	proposalstore "github.com/ccarella/app.charmverse.io/internal/proposals/store"
	usermodels "github.com/ccarella/app.charmverse.io/internal/users/models"
	userstore "github.com/ccarella/app.charmverse.io/internal/users/store"
	wsmodels "github.com/ccarella/app.charmverse.io/internal/workspace/models"
	wsstore "github.com/ccarella/app.charmverse.io/internal/workspace/store"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

type fixture struct {
	svc       *Service
	proposals *proposalstore.InMemory
	events    *wsstore.InMemory
	users     *userstore.InMemory
	ledger    *ledgerstore.InMemory
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		proposals: proposalstore.NewInMemory(),
		events:    wsstore.NewInMemory(),
		users:     userstore.NewInMemory(),
		ledger:    ledgerstore.NewInMemory(),
	}
	f.svc = New(f.proposals, f.events, f.users, f.ledger, slog.Default())
	return f
}

func (f *fixture) addUser(t *testing.T) domain.UserID {
	t.Helper()
	user := usermodels.User{ID: domain.UserID(uuid.New()), Username: "member", Email: "member@example.com"}
	require.NoError(t, f.users.Put(context.Background(), user))
	return user.ID
}

func (f *fixture) addProposal(t *testing.T, status models.ProposalStatus, authors []domain.UserID, reviewers []models.Reviewer) models.Proposal {
	t.Helper()
	proposal := models.Proposal{
		ID:        domain.ProposalID(uuid.New()),
		SpaceID:   domain.SpaceID(uuid.New()),
		Status:    status,
		AuthorIDs: authors,
		Reviewers: reviewers,
		Page:      &models.PageRef{Title: "Grants program", Path: "grants"},
		Space:     models.SpaceRef{Name: "Acme", Domain: "acme"},
	}
	require.NoError(t, f.proposals.Put(context.Background(), proposal))
	return proposal
}

func (f *fixture) addEvent(t *testing.T, proposalID domain.ProposalID, at time.Time) wsmodels.Event {
	t.Helper()
	event := wsmodels.Event{
		ID:         domain.WorkspaceEventID(uuid.New()),
		Type:       wsmodels.EventProposalStatusChange,
		ProposalID: proposalID,
		CreatedAt:  at,
	}
	require.NoError(t, f.events.Append(context.Background(), event))
	return event
}

func TestTasksFromEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("derives a task from the latest event per proposal", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)
		proposal := f.addProposal(t, models.StatusReview, nil, []models.Reviewer{{UserID: userID}})
		older := f.addEvent(t, proposal.ID, now.Add(-2*time.Hour))
		latest := f.addEvent(t, proposal.ID, now.Add(-time.Hour))

		tasks, err := f.svc.TasksFromEvents(ctx, userID, []wsmodels.Event{older, latest})
		require.NoError(t, err)

		require.Len(t, tasks, 1)
		assert.Equal(t, latest.TaskID(userID), tasks[0].ID)
		assert.Equal(t, models.ActionReview, tasks[0].Action)
		assert.Equal(t, "acme", tasks[0].SpaceDomain)
	})

	t.Run("task id is the event and user pair", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)
		proposal := f.addProposal(t, models.StatusDiscussion, nil, nil)
		event := f.addEvent(t, proposal.ID, now)

		tasks, err := f.svc.TasksFromEvents(ctx, userID, []wsmodels.Event{event})
		require.NoError(t, err)

		require.Len(t, tasks, 1)
		assert.Equal(t, domain.TaskID(event.ID.String()+"."+userID.String()), tasks[0].ID)
	})

	t.Run("drafts are invisible to non-authors", func(t *testing.T) {
		f := newFixture(t)
		author := f.addUser(t)
		other := f.addUser(t)
		proposal := f.addProposal(t, models.StatusDraft, []domain.UserID{author}, nil)
		event := f.addEvent(t, proposal.ID, now)

		authorTasks, err := f.svc.TasksFromEvents(ctx, author, []wsmodels.Event{event})
		require.NoError(t, err)
		require.Len(t, authorTasks, 1)
		assert.Equal(t, models.ActionStartDiscussion, authorTasks[0].Action)

		otherTasks, err := f.svc.TasksFromEvents(ctx, other, []wsmodels.Event{event})
		require.NoError(t, err)
		assert.Empty(t, otherTasks)
	})

	t.Run("role-based reviewers match through role grants", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)
		roleID := domain.RoleID(uuid.New())
		require.NoError(t, f.users.GrantRole(ctx, userID, roleID))

		proposal := f.addProposal(t, models.StatusReview, nil, []models.Reviewer{{RoleID: roleID}})
		event := f.addEvent(t, proposal.ID, now)

		tasks, err := f.svc.TasksFromEvents(ctx, userID, []wsmodels.Event{event})
		require.NoError(t, err)
		require.Len(t, tasks, 1)
		assert.Equal(t, models.ActionReview, tasks[0].Action)
	})

	t.Run("actionless statuses produce no digest task", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)
		proposal := f.addProposal(t, models.StatusVoteClosed, nil, nil)
		event := f.addEvent(t, proposal.ID, now)

		tasks, err := f.svc.TasksFromEvents(ctx, userID, []wsmodels.Event{event})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("proposals without a page are skipped", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)
		proposal := models.Proposal{
			ID:      domain.ProposalID(uuid.New()),
			SpaceID: domain.SpaceID(uuid.New()),
			Status:  models.StatusDiscussion,
			Space:   models.SpaceRef{Name: "Acme", Domain: "acme"},
		}
		require.NoError(t, f.proposals.Put(ctx, proposal))
		event := f.addEvent(t, proposal.ID, now)

		tasks, err := f.svc.TasksFromEvents(ctx, userID, []wsmodels.Event{event})
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("tasks sort newest status change first", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)
		first := f.addProposal(t, models.StatusDiscussion, nil, nil)
		second := f.addProposal(t, models.StatusDiscussion, nil, nil)
		oldEvent := f.addEvent(t, first.ID, now.Add(-3*time.Hour))
		newEvent := f.addEvent(t, second.ID, now.Add(-time.Hour))

		tasks, err := f.svc.TasksFromEvents(ctx, userID, []wsmodels.Event{oldEvent, newEvent})
		require.NoError(t, err)

		require.Len(t, tasks, 2)
		assert.Equal(t, newEvent.TaskID(userID), tasks[0].ID)
		assert.Equal(t, oldEvent.TaskID(userID), tasks[1].ID)
	})
}

func TestTasksForUser(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("splits marked and unmarked by ledger state", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)

		notified := f.addProposal(t, models.StatusDiscussion, nil, nil)
		pending := f.addProposal(t, models.StatusDiscussion, nil, nil)
		require.NoError(t, f.proposals.AddSpaceMember(ctx, notified.SpaceID, userID))
		require.NoError(t, f.proposals.AddSpaceMember(ctx, pending.SpaceID, userID))

		notifiedEvent := f.addEvent(t, notified.ID, now.Add(-2*time.Hour))
		pendingEvent := f.addEvent(t, pending.ID, now.Add(-time.Hour))

		require.NoError(t, f.ledger.RecordBatch(ctx, []notifmodels.LedgerEntry{{
			UserID:  userID,
			TaskID:  notifiedEvent.TaskID(userID),
			Channel: notifmodels.ChannelEmail,
			Kind:    notifmodels.KindProposal,
		}}))

		list, err := f.svc.TasksForUser(ctx, userID)
		require.NoError(t, err)

		require.Len(t, list.Marked, 1)
		assert.Equal(t, notifiedEvent.TaskID(userID), list.Marked[0].ID)
		require.Len(t, list.Unmarked, 1)
		assert.Equal(t, pendingEvent.TaskID(userID), list.Unmarked[0].ID)
	})

	t.Run("proposals without events are marked with their own id", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)
		proposal := f.addProposal(t, models.StatusVoteClosed, nil, nil)
		require.NoError(t, f.proposals.AddSpaceMember(ctx, proposal.SpaceID, userID))

		list, err := f.svc.TasksForUser(ctx, userID)
		require.NoError(t, err)

		require.Len(t, list.Marked, 1)
		assert.Equal(t, domain.TaskID(proposal.ID.String()), list.Marked[0].ID)
		assert.Empty(t, list.Marked[0].Action)
		assert.Empty(t, list.Unmarked)
	})

	t.Run("actionless tasks still appear in the list", func(t *testing.T) {
		f := newFixture(t)
		userID := f.addUser(t)
		proposal := f.addProposal(t, models.StatusReview, nil, nil)
		require.NoError(t, f.proposals.AddSpaceMember(ctx, proposal.SpaceID, userID))
		f.addEvent(t, proposal.ID, now)

		list, err := f.svc.TasksForUser(ctx, userID)
		require.NoError(t, err)

		require.Len(t, list.Unmarked, 1)
		assert.Empty(t, list.Unmarked[0].Action)
		assert.Equal(t, models.StatusReview, list.Unmarked[0].Status)
	})
}
