package ledger

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ccarella/app.charmverse.io/internal/notifications/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Postgres persists the delivery ledger in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FilterSent(ctx context.Context, userID domain.UserID, candidates []domain.TaskID) (map[domain.TaskID]struct{}, error) {
	sent := make(map[domain.TaskID]struct{})
	if len(candidates) == 0 {
		return sent, nil
	}

	raw := make([]string, len(candidates))
	for i, taskID := range candidates {
		raw[i] = string(taskID)
	}

	query := `
		SELECT task_id FROM user_notifications
		WHERE user_id = $1 AND task_id = ANY($2::text[])
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID), pq.Array(raw))
	if err != nil {
		return nil, fmt.Errorf("filter sent tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var taskID string
		if err := rows.Scan(&taskID); err != nil {
			return nil, fmt.Errorf("scan sent task id: %w", err)
		}
		sent[domain.TaskID(taskID)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sent task ids: %w", err)
	}
	return sent, nil
}

func (s *Postgres) SentTaskIDs(ctx context.Context, userID domain.UserID) (map[domain.TaskID]struct{}, error) {
	query := `SELECT task_id FROM user_notifications WHERE user_id = $1`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list sent task ids: %w", err)
	}
	defer rows.Close()

	sent := make(map[domain.TaskID]struct{})
	for rows.Next() {
		var taskID string
		if err := rows.Scan(&taskID); err != nil {
			return nil, fmt.Errorf("scan sent task id: %w", err)
		}
		sent[domain.TaskID(taskID)] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sent task ids: %w", err)
	}
	return sent, nil
}

// RecordBatch inserts every entry in one transaction, one round trip via
// unnest. Replayed (user, task) pairs are ignored so an overlapping run
// cannot fail the batch.
func (s *Postgres) RecordBatch(ctx context.Context, entries []models.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	userIDs := make([]string, len(entries))
	taskIDs := make([]string, len(entries))
	channels := make([]string, len(entries))
	kinds := make([]string, len(entries))
	for i, entry := range entries {
		userIDs[i] = entry.UserID.String()
		taskIDs[i] = string(entry.TaskID)
		channels[i] = string(entry.Channel)
		kinds[i] = string(entry.Kind)
	}

	query := `
		INSERT INTO user_notifications (user_id, task_id, channel, type, created_at)
		SELECT t.user_id::uuid, t.task_id, t.channel, t.kind, now()
		FROM unnest($1::text[], $2::text[], $3::text[], $4::text[]) AS t(user_id, task_id, channel, kind)
		ON CONFLICT (user_id, task_id) DO NOTHING
	`

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin notification batch: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query,
		pq.Array(userIDs), pq.Array(taskIDs), pq.Array(channels), pq.Array(kinds)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record notification batch: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit notification batch: %w", err)
	}
	return nil
}
