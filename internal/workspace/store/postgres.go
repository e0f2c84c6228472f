package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ccarella/app.charmverse.io/internal/workspace/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Postgres persists workspace events in PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) Append(ctx context.Context, event models.Event) error {
	query := `
		INSERT INTO workspace_events (id, type, proposal_id, actor_id, meta, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(ctx, query,
		uuid.UUID(event.ID),
		string(event.Type),
		uuid.UUID(event.ProposalID),
		uuid.UUID(event.ActorID),
		[]byte(event.Meta),
		event.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("append workspace event: %w", err)
	}
	return nil
}

func (s *Postgres) ListByTypeSince(ctx context.Context, eventType models.EventType, since, until time.Time) ([]models.Event, error) {
	query := `
		SELECT id, type, proposal_id, actor_id, meta, created_at
		FROM workspace_events
		WHERE type = $1 AND created_at >= $2 AND created_at <= $3
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, string(eventType), since, until)
	if err != nil {
		return nil, fmt.Errorf("list workspace events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var (
			event      models.Event
			id         uuid.UUID
			typ        string
			proposalID uuid.UUID
			actorID    uuid.UUID
			meta       []byte
		)
		if err := rows.Scan(&id, &typ, &proposalID, &actorID, &meta, &event.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan workspace event: %w", err)
		}
		event.ID = domain.WorkspaceEventID(id)
		event.Type = models.EventType(typ)
		event.ProposalID = domain.ProposalID(proposalID)
		event.ActorID = domain.UserID(actorID)
		event.Meta = meta
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate workspace events: %w", err)
	}
	return events, nil
}
