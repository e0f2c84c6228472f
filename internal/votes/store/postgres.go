package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/ccarella/app.charmverse.io/internal/votes/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Postgres reads open votes from PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

// ListOpenForUser returns in-progress votes in the user's spaces that the
// user has not yet cast a ballot in and whose deadline has not passed.
func (s *Postgres) ListOpenForUser(ctx context.Context, userID domain.UserID) ([]models.Task, error) {
	query := `
		SELECT v.id, v.title, pg.title, pg.path, sp.name, sp.domain, v.deadline
		FROM votes v
		JOIN pages pg ON pg.id = v.page_id
		JOIN spaces sp ON sp.id = v.space_id
		JOIN space_memberships m ON m.space_id = v.space_id AND m.user_id = $1
		WHERE v.status = 'in_progress'
		  AND v.deadline > now()
		  AND NOT EXISTS (
			SELECT 1 FROM user_votes uv WHERE uv.vote_id = v.id AND uv.user_id = $1
		  )
		ORDER BY v.deadline ASC
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list open votes: %w", err)
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		var (
			task models.Task
			id   uuid.UUID
		)
		if err := rows.Scan(&id, &task.Title, &task.PageTitle, &task.PagePath,
			&task.SpaceName, &task.SpaceDomain, &task.Deadline); err != nil {
			return nil, fmt.Errorf("scan vote: %w", err)
		}
		task.ID = domain.VoteID(id)
		out = append(out, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate votes: %w", err)
	}
	return out, nil
}
