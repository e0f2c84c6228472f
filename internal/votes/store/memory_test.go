package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccarella/app.charmverse.io/internal/votes/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

func TestInMemoryVotes(t *testing.T) {
	ctx := context.Background()
	voter := domain.UserID(uuid.New())
	outsider := domain.UserID(uuid.New())

	openVote := func(deadline time.Time) models.Task {
		return models.Task{
			ID:       domain.VoteID(uuid.New()),
			Title:    "Budget",
			Deadline: deadline,
		}
	}

	t.Run("lists open votes for eligible users only", func(t *testing.T) {
		s := NewInMemory()
		vote := openVote(time.Now().Add(24 * time.Hour))
		require.NoError(t, s.Put(ctx, vote, []domain.UserID{voter}))

		tasks, err := s.ListOpenForUser(ctx, voter)
		require.NoError(t, err)
		assert.Len(t, tasks, 1)

		tasks, err = s.ListOpenForUser(ctx, outsider)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("casting a ballot removes the task", func(t *testing.T) {
		s := NewInMemory()
		vote := openVote(time.Now().Add(24 * time.Hour))
		require.NoError(t, s.Put(ctx, vote, []domain.UserID{voter}))
		require.NoError(t, s.CastBallot(ctx, vote.ID, voter))

		tasks, err := s.ListOpenForUser(ctx, voter)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("expired votes are excluded", func(t *testing.T) {
		s := NewInMemory()
		vote := openVote(time.Now().Add(-time.Hour))
		require.NoError(t, s.Put(ctx, vote, []domain.UserID{voter}))

		tasks, err := s.ListOpenForUser(ctx, voter)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})
}
