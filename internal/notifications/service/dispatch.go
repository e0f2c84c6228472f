package service

import (
	"context"
	"fmt"

	"github.com/ccarella/app.charmverse.io/internal/mailer"
	"github.com/ccarella/app.charmverse.io/internal/notifications/emails"
	notifmodels "github.com/ccarella/app.charmverse.io/internal/notifications/models"
)

// dispatch renders and sends one digest, then records every announced task in
// the ledger. Nothing is recorded when the send fails, so the next run retries
// the same tasks. A ledger write that fails after a successful send is counted
// separately; those tasks will be announced again.
func (s *Service) dispatch(ctx context.Context, digest notifmodels.Digest) error {
	body, err := emails.RenderPendingTasks(digest, s.cfg.WebAppBaseURL)
	if err != nil {
		return fmt.Errorf("render digest for %s: %w", digest.User.ID, err)
	}

	msg := mailer.Message{
		To:       digest.User.Email,
		ToName:   digest.User.DisplayName(),
		Subject:  emails.Subject(digest),
		HTMLBody: body,
	}
	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("send digest to %s: %w", digest.User.ID, err)
	}

	if err := s.ledger.RecordBatch(ctx, digest.LedgerEntries(s.now())); err != nil {
		if s.metrics != nil {
			s.metrics.UnrecordedDigest.Inc()
		}
		return fmt.Errorf("record sent tasks for %s: %w", digest.User.ID, err)
	}

	if s.metrics != nil {
		s.metrics.DigestsSent.Inc()
		s.metrics.TasksNotified.WithLabelValues(string(notifmodels.KindMultisig)).Add(float64(len(digest.MultisigTasks)))
		s.metrics.TasksNotified.WithLabelValues(string(notifmodels.KindMention)).Add(float64(len(digest.MentionTasks)))
		s.metrics.TasksNotified.WithLabelValues(string(notifmodels.KindVote)).Add(float64(len(digest.VoteTasks)))
		s.metrics.TasksNotified.WithLabelValues(string(notifmodels.KindProposal)).Add(float64(len(digest.ProposalTasks)))
	}

	s.logger.Info("digest sent",
		"user_id", digest.User.ID,
		"total_tasks", digest.TotalTasks(),
		"multisig", len(digest.MultisigTasks),
		"mentions", len(digest.MentionTasks),
		"votes", len(digest.VoteTasks),
		"proposals", len(digest.ProposalTasks),
	)
	return nil
}
