package service

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccarella/app.charmverse.io/internal/mailer"
	mentionmodels "github.com/ccarella/app.charmverse.io/internal/mentions/models"
	mentionstore "github.com/ccarella/app.charmverse.io/internal/mentions/store"
	ledgerstore "github.com/ccarella/app.charmverse.io/internal/notifications/store/ledger"
	proposalmodels "github.com/ccarella/app.charmverse.io/internal/proposals/models"
	proposalservice "github.com/ccarella/app.charmverse.io/internal/proposals/service"
	proposalstore "github.com/ccarella/app.charmverse.io/internal/proposals/store"
	userstore "github.com/ccarella/app.charmverse.io/internal/users/store"
	votemodels "github.com/ccarella/app.charmverse.io/internal/votes/models"
	votestore "github.com/ccarella/app.charmverse.io/internal/votes/store"
	wsstore "github.com/ccarella/app.charmverse.io/internal/workspace/store"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// recordingSender captures sent messages instead of talking to SMTP.
type recordingSender struct {
	mu   sync.Mutex
	sent []mailer.Message
}

func (s *recordingSender) Send(ctx context.Context, msg mailer.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)
	return nil
}

func (s *recordingSender) messages() []mailer.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]mailer.Message(nil), s.sent...)
}

// pipeline wires the service against the in-memory stores, the same shape
// the daemon assembles against PostgreSQL.
type pipeline struct {
	svc      *Service
	users    *userstore.InMemory
	events   *wsstore.InMemory
	votes    *votestore.InMemory
	mentions *mentionstore.InMemory
	ledger   *ledgerstore.InMemory
	sender   *recordingSender
	user     domain.UserID
}

func newPipeline(t *testing.T) *pipeline {
	t.Helper()
	logger := slog.Default()

	users := userstore.NewInMemory()
	events := wsstore.NewInMemory()
	votes := votestore.NewInMemory()
	mentions := mentionstore.NewInMemory()
	proposals := proposalstore.NewInMemory()
	ledger := ledgerstore.NewInMemory()
	sender := &recordingSender{}

	proposalSvc := proposalservice.New(proposals, events, users, ledger, logger)

	svc := New(
		Config{WebAppBaseURL: "https://app.charmverse.io", EventWindow: 24 * time.Hour, UserConcurrency: 2},
		users, events, votes, mentions, proposalSvc, nil, ledger, sender,
		nil, logger,
	)
	svc.now = func() time.Time { return time.Date(2022, 3, 15, 12, 0, 0, 0, time.UTC) }

	p := &pipeline{svc: svc, users: users, events: events, votes: votes, mentions: mentions, ledger: ledger, sender: sender}
	p.seed(t, proposals)
	return p
}

// seed loads one user with one pending task of each kind: a proposal they
// authored that moved to discussion, an open vote, and an unread mention.
func (p *pipeline) seed(t *testing.T, proposals *proposalstore.InMemory) {
	t.Helper()
	ctx := context.Background()

	user := testUser()
	require.NoError(t, p.users.Put(ctx, user))
	p.user = user.ID

	proposal := proposalmodels.Proposal{
		ID:        domain.ProposalID(uuid.New()),
		SpaceID:   domain.SpaceID(uuid.New()),
		Status:    proposalmodels.StatusDiscussion,
		AuthorIDs: []domain.UserID{user.ID},
		Page:      &proposalmodels.PageRef{Title: "Treasury Plan", Path: "treasury-plan"},
		Space:     proposalmodels.SpaceRef{Name: "DAO", Domain: "dao"},
	}
	require.NoError(t, proposals.Put(ctx, proposal))
	require.NoError(t, p.events.Append(ctx, statusEvent(proposal.ID, p.svc.now().Add(-time.Hour))))

	vote := votemodels.Task{
		ID:          domain.VoteID(uuid.New()),
		Title:       "Extend runway",
		PageTitle:   "Treasury Plan",
		PagePath:    "treasury-plan",
		SpaceName:   "DAO",
		SpaceDomain: "dao",
		Deadline:    time.Now().Add(24 * time.Hour),
	}
	require.NoError(t, p.votes.Put(ctx, vote, []domain.UserID{user.ID}))

	require.NoError(t, p.mentions.Put(ctx, user.ID, mentionmodels.Task{
		MentionID:   "mention-1",
		PageTitle:   "Treasury Plan",
		PagePath:    "treasury-plan",
		SpaceName:   "DAO",
		SpaceDomain: "dao",
		Text:        "can you weigh in?",
		CreatedBy:   "Bob",
		CreatedAt:   p.svc.now().Add(-2 * time.Hour),
	}))
}

func TestDigestRepeatableWithoutDelivery(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	first, err := p.svc.DigestForUser(ctx, p.user)
	require.NoError(t, err)
	require.Equal(t, 3, first.TotalTasks())

	second, err := p.svc.DigestForUser(ctx, p.user)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Empty(t, p.sender.messages())
}

func TestRunDeliversEachTaskOnce(t *testing.T) {
	p := newPipeline(t)
	ctx := context.Background()

	stats, err := p.svc.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.DigestsSent)
	require.Len(t, p.sender.messages(), 1)
	assert.Equal(t, "3 tasks need your attention", p.sender.messages()[0].Subject)

	sent, err := p.ledger.SentTaskIDs(ctx, p.user)
	require.NoError(t, err)
	assert.Len(t, sent, 3)

	// The vote and the proposal task were recorded; only the still
	// unacknowledged mention survives into the next pass.
	stats, err = p.svc.Run(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, stats.DigestsSent)
	require.Len(t, p.sender.messages(), 2)
	assert.Equal(t, "1 task needs your attention", p.sender.messages()[1].Subject)

	digest, err := p.svc.DigestForUser(ctx, p.user)
	require.NoError(t, err)
	assert.Empty(t, digest.VoteTasks)
	assert.Empty(t, digest.ProposalTasks)
	require.Len(t, digest.MentionTasks, 1)

	// Acknowledging the mention empties the digest; the third pass sends
	// nothing.
	require.NoError(t, p.mentions.Acknowledge(ctx, p.user, "mention-1"))

	stats, err = p.svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.DigestsSent)
	assert.Equal(t, 1, stats.UsersNoTasks)
	assert.Len(t, p.sender.messages(), 2)
}
