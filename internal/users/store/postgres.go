package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ccarella/app.charmverse.io/internal/users/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
	"github.com/ccarella/app.charmverse.io/pkg/platform/sentinel"
)

// Postgres reads users, linked safes and role grants from PostgreSQL.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

func (s *Postgres) FindByID(ctx context.Context, userID domain.UserID) (models.User, error) {
	query := `
		SELECT u.id, u.username, COALESCE(u.email, ''),
		       COALESCE(array_agg(gs.address) FILTER (WHERE gs.address IS NOT NULL), '{}'),
		       u.snoozed_until, COALESCE(u.snooze_message, '')
		FROM users u
		LEFT JOIN user_gnosis_safes gs ON gs.user_id = u.id
		WHERE u.id = $1
		GROUP BY u.id
	`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, uuid.UUID(userID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, sentinel.ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *Postgres) ListNotifiable(ctx context.Context) ([]models.User, error) {
	query := `
		SELECT u.id, u.username, COALESCE(u.email, ''),
		       COALESCE(array_agg(gs.address) FILTER (WHERE gs.address IS NOT NULL), '{}'),
		       u.snoozed_until, COALESCE(u.snooze_message, '')
		FROM users u
		LEFT JOIN user_gnosis_safes gs ON gs.user_id = u.id
		WHERE u.email IS NOT NULL AND u.email <> ''
		GROUP BY u.id
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list notifiable users: %w", err)
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

func (s *Postgres) RoleIDs(ctx context.Context, userID domain.UserID) ([]domain.RoleID, error) {
	query := `
		SELECT r.role_id
		FROM space_role_assignments r
		JOIN space_memberships m ON m.id = r.membership_id
		WHERE m.user_id = $1
	`
	rows, err := s.db.QueryContext(ctx, query, uuid.UUID(userID))
	if err != nil {
		return nil, fmt.Errorf("list role ids: %w", err)
	}
	defer rows.Close()

	var out []domain.RoleID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan role id: %w", err)
		}
		out = append(out, domain.RoleID(id))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate role ids: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var (
		user          models.User
		id            uuid.UUID
		safes         pq.StringArray
		snoozedUntil  sql.NullTime
		snoozeMessage string
	)
	if err := row.Scan(&id, &user.Username, &user.Email, &safes, &snoozedUntil, &snoozeMessage); err != nil {
		return models.User{}, err
	}
	user.ID = domain.UserID(id)
	user.SafeAddresses = []string(safes)
	if snoozedUntil.Valid {
		t := snoozedUntil.Time.UTC()
		user.Preferences.SnoozedUntil = &t
	}
	user.Preferences.SnoozeMessage = snoozeMessage
	return user, nil
}
