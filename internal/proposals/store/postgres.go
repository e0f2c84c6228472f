package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ccarella/app.charmverse.io/internal/proposals/models"
	"github.com/ccarella/app.charmverse.io/pkg/domain"
)

// Postgres loads proposals with their page, space, authors and reviewers.
type Postgres struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *Postgres {
	return &Postgres{db: db}
}

const proposalColumns = `
	p.id, p.space_id, p.status,
	sp.name, sp.domain,
	pg.title, pg.path,
	COALESCE(array_agg(DISTINCT pa.user_id::text) FILTER (WHERE pa.user_id IS NOT NULL), '{}')
`

func (s *Postgres) ListByIDs(ctx context.Context, ids []domain.ProposalID) ([]models.Proposal, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	raw := make([]string, len(ids))
	for i, id := range ids {
		raw[i] = id.String()
	}

	query := `
		SELECT ` + proposalColumns + `
		FROM proposals p
		JOIN spaces sp ON sp.id = p.space_id
		LEFT JOIN pages pg ON pg.proposal_id = p.id
		LEFT JOIN proposal_authors pa ON pa.proposal_id = p.id
		WHERE p.id = ANY($1::uuid[])
		GROUP BY p.id, sp.id, pg.id
	`
	return s.queryProposals(ctx, query, pq.Array(raw))
}

func (s *Postgres) ListForUserSpaces(ctx context.Context, userID domain.UserID) ([]models.Proposal, error) {
	query := `
		SELECT ` + proposalColumns + `
		FROM proposals p
		JOIN spaces sp ON sp.id = p.space_id
		JOIN space_memberships m ON m.space_id = p.space_id AND m.user_id = $1
		LEFT JOIN pages pg ON pg.proposal_id = p.id
		LEFT JOIN proposal_authors pa ON pa.proposal_id = p.id
		GROUP BY p.id, sp.id, pg.id
	`
	return s.queryProposals(ctx, query, uuid.UUID(userID))
}

func (s *Postgres) queryProposals(ctx context.Context, query string, args ...any) ([]models.Proposal, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	defer rows.Close()

	var (
		proposals []models.Proposal
		ids       []string
		index     = make(map[domain.ProposalID]int)
	)
	for rows.Next() {
		var (
			proposal  models.Proposal
			id        uuid.UUID
			spaceID   uuid.UUID
			status    string
			pageTitle sql.NullString
			pagePath  sql.NullString
			authors   pq.StringArray
		)
		if err := rows.Scan(&id, &spaceID, &status,
			&proposal.Space.Name, &proposal.Space.Domain,
			&pageTitle, &pagePath, &authors); err != nil {
			return nil, fmt.Errorf("scan proposal: %w", err)
		}
		proposal.ID = domain.ProposalID(id)
		proposal.SpaceID = domain.SpaceID(spaceID)
		proposal.Status = models.ProposalStatus(status)
		if pagePath.Valid {
			proposal.Page = &models.PageRef{Title: pageTitle.String, Path: pagePath.String}
		}
		for _, author := range authors {
			authorID, err := uuid.Parse(author)
			if err != nil {
				return nil, fmt.Errorf("parse author id: %w", err)
			}
			proposal.AuthorIDs = append(proposal.AuthorIDs, domain.UserID(authorID))
		}
		index[proposal.ID] = len(proposals)
		proposals = append(proposals, proposal)
		ids = append(ids, proposal.ID.String())
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate proposals: %w", err)
	}
	if len(proposals) == 0 {
		return nil, nil
	}

	if err := s.attachReviewers(ctx, proposals, index, ids); err != nil {
		return nil, err
	}
	return proposals, nil
}

func (s *Postgres) attachReviewers(ctx context.Context, proposals []models.Proposal, index map[domain.ProposalID]int, ids []string) error {
	query := `
		SELECT proposal_id, user_id, role_id
		FROM proposal_reviewers
		WHERE proposal_id = ANY($1::uuid[])
	`
	rows, err := s.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("list reviewers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			proposalID uuid.UUID
			userID     uuid.NullUUID
			roleID     uuid.NullUUID
		)
		if err := rows.Scan(&proposalID, &userID, &roleID); err != nil {
			return fmt.Errorf("scan reviewer: %w", err)
		}
		i, ok := index[domain.ProposalID(proposalID)]
		if !ok {
			continue
		}
		reviewer := models.Reviewer{}
		if userID.Valid {
			reviewer.UserID = domain.UserID(userID.UUID)
		}
		if roleID.Valid {
			reviewer.RoleID = domain.RoleID(roleID.UUID)
		}
		proposals[i].Reviewers = append(proposals[i].Reviewers, reviewer)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate reviewers: %w", err)
	}
	return nil
}
