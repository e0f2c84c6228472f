package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ccarella/app.charmverse.io/internal/mentions/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Postgres reads mention tasks from PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// ListForUser returns every mention of the user, newest first, with the
// acknowledgment flag resolved.
func (s *Postgres) ListForUser(ctx context.Context, userID domain.UserID) ([]models.Task, error) {
	query := `
		SELECT mn.mention_id, pg.title, pg.path, sp.name, sp.domain,
		       mn.text, cb.username, mn.created_at, mn.acknowledged
		FROM mentions mn
		JOIN pages pg ON pg.id = mn.page_id
		JOIN spaces sp ON sp.id = pg.space_id
		JOIN users cb ON cb.id = mn.created_by
		WHERE mn.user_id = $1
		ORDER BY mn.created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list mentions: %w", err)
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		var task models.Task
		if err := rows.Scan(&task.MentionID, &task.PageTitle, &task.PagePath,
			&task.SpaceName, &task.SpaceDomain, &task.Text, &task.CreatedBy,
			&task.CreatedAt, &task.Marked); err != nil {
			return nil, fmt.Errorf("scan mention: %w", err)
		}
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate mentions: %w", err)
	}
	return out, nil
}
