package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

// RunStats summarizes one pass over the notifiable user base.
type RunStats struct {
	UsersConsidered int
	UsersSnoozed    int
	UsersNoTasks    int
	DigestsSent     int
	Failures        int
	Duration        time.Duration
}

// Run executes one notification pass: load the event window once, then fan
// out over every notifiable user. A failure for one user never aborts the
// run; it is logged, counted, and the rest of the users proceed.
func (s *Service) Run(ctx context.Context) (RunStats, error) {
	start := s.now()

	events, err := s.windowEvents(ctx)
	if err != nil {
		return RunStats{}, err
	}
	users, err := s.users.ListNotifiable(ctx)
	if err != nil {
		return RunStats{}, fmt.Errorf("list notifiable users: %w", err)
	}

	var stats RunStats
	stats.UsersConsidered = len(users)

	var sent, noTasks, failures atomic.Int64

	g := &errgroup.Group{}
	g.SetLimit(s.cfg.UserConcurrency)
	for _, user := range users {
		if user.Preferences.Snoozed(start) {
			stats.UsersSnoozed++
			continue
		}
		g.Go(func() error {
			digest, err := s.BuildDigest(ctx, user, events)
			if err != nil {
				failures.Add(1)
				if s.metrics != nil {
					s.metrics.DigestFailures.Inc()
				}
				s.logger.Error("digest aggregation failed", "user_id", user.ID, "error", err)
				return nil
			}
			if digest.TotalTasks() == 0 {
				noTasks.Add(1)
				if s.metrics != nil {
					s.metrics.UsersSkipped.Inc()
				}
				return nil
			}
			if err := s.dispatch(ctx, digest); err != nil {
				failures.Add(1)
				if s.metrics != nil {
					s.metrics.DigestFailures.Inc()
				}
				s.logger.Error("digest dispatch failed", "user_id", user.ID, "error", err)
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait() // workers always return nil

	stats.DigestsSent = int(sent.Load())
	stats.UsersNoTasks = int(noTasks.Load())
	stats.Failures = int(failures.Load())
	stats.Duration = s.now().Sub(start)

	s.metrics.ObserveRun(stats.Duration)
	s.logger.Info("notification run complete",
		"users", stats.UsersConsidered,
		"snoozed", stats.UsersSnoozed,
		"no_tasks", stats.UsersNoTasks,
		"digests_sent", stats.DigestsSent,
		"failures", stats.Failures,
		"duration", stats.Duration,
	)
	return stats, nil
}

// TryRun starts a run unless one is already in flight. The second return
// value reports whether the run happened; the serve loop uses it to skip a
// tick instead of stacking overlapping runs.
func (s *Service) TryRun(ctx context.Context) (RunStats, bool, error) {
	if !s.running.CompareAndSwap(false, true) {
		return RunStats{}, false, nil
	}
	defer s.running.Store(false)
	stats, err := s.Run(ctx)
	return stats, true, err
}
