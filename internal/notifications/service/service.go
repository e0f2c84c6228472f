// Package service runs the notification pipeline: gather pending tasks per
// user, drop everything already delivered, and send one digest email per user
// with work remaining, recording every announced task in the ledger.
package service

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	gnosismodels "github.com/ccarella/app.charmverse.io/internal/gnosis/models"
	"github.com/ccarella/app.charmverse.io/internal/mailer"
	mentionmodels "github.com/ccarella/app.charmverse.io/internal/mentions/models"
	"github.com/ccarella/app.charmverse.io/internal/notifications/metrics"
	notifmodels "github.com/ccarella/app.charmverse.io/internal/notifications/models"
	proposalmodels "github.com/ccarella/app.charmverse.io/internal/proposals/models"
	usermodels "github.com/ccarella/app.charmverse.io/internal/users/models"
	votemodels "github.com/ccarella/app.charmverse.io/internal/votes/models"
	wsmodels "github.com/ccarella/app.charmverse.io/internal/workspace/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// UserStore lists the users eligible for notification delivery.
type UserStore interface {
	ListNotifiable(ctx context.Context) ([]usermodels.User, error)
	FindByID(ctx context.Context, userID domain.UserID) (usermodels.User, error)
}

// EventStore reads the workspace event log.
type EventStore interface {
	ListByTypeSince(ctx context.Context, eventType wsmodels.EventType, since, until time.Time) ([]wsmodels.Event, error)
}

// VoteStore lists the open votes a user has not cast a ballot on.
type VoteStore interface {
	ListOpenForUser(ctx context.Context, userID domain.UserID) ([]votemodels.Task, error)
}

// MentionStore lists a user's mentions, acknowledged or not.
type MentionStore interface {
	ListForUser(ctx context.Context, userID domain.UserID) ([]mentionmodels.Task, error)
}

// ProposalTaskSource derives digest-bound proposal tasks from status-change
// events already known to be undelivered.
type ProposalTaskSource interface {
	TasksFromEvents(ctx context.Context, userID domain.UserID, events []wsmodels.Event) ([]proposalmodels.Task, error)
}

// SafeTaskSource lists a user's pending multisig transactions. Implemented by
// the gnosis HTTP client, optionally wrapped in its redis cache.
type SafeTaskSource interface {
	PendingTasks(ctx context.Context, userID domain.UserID) ([]gnosismodels.SafeTask, error)
}

// Ledger is the delivery record consulted before and written after each send.
type Ledger interface {
	FilterSent(ctx context.Context, userID domain.UserID, candidates []domain.TaskID) (map[domain.TaskID]struct{}, error)
	RecordBatch(ctx context.Context, entries []notifmodels.LedgerEntry) error
}

// Sender delivers a rendered email.
type Sender interface {
	Send(ctx context.Context, msg mailer.Message) error
}

// Config carries the pipeline knobs.
type Config struct {
	WebAppBaseURL   string
	EventWindow     time.Duration
	UserConcurrency int
}

type Service struct {
	cfg       Config
	users     UserStore
	events    EventStore
	votes     VoteStore
	mentions  MentionStore
	proposals ProposalTaskSource
	safes     SafeTaskSource
	ledger    Ledger
	sender    Sender
	metrics   *metrics.Metrics
	logger    *slog.Logger

	running atomic.Bool
	now     func() time.Time
}

func New(
	cfg Config,
	users UserStore,
	events EventStore,
	votes VoteStore,
	mentions MentionStore,
	proposals ProposalTaskSource,
	safes SafeTaskSource,
	ledger Ledger,
	sender Sender,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	if cfg.UserConcurrency <= 0 {
		cfg.UserConcurrency = 8
	}
	if cfg.EventWindow <= 0 {
		cfg.EventWindow = 24 * time.Hour
	}
	return &Service{
		cfg:       cfg,
		users:     users,
		events:    events,
		votes:     votes,
		mentions:  mentions,
		proposals: proposals,
		safes:     safes,
		ledger:    ledger,
		sender:    sender,
		metrics:   m,
		logger:    logger,
		now:       time.Now,
	}
}
