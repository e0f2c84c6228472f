// Package domain defines the typed identifiers shared across the module.
//
// IDs are distinct types over uuid.UUID so a vote ID can never be passed
// where a user ID is expected. TaskID is deliberately a string: task
// identities are composite keys whose shape differs per task source (a
// workspace-event/user pair for proposals, a transaction hash for multisig
// tasks), so there is no single UUID to type over.
package domain

import (
	"github.com/google/uuid"

	dErrors "github.com/ccarella/app.charmverse.io/pkg/domain-errors"
)

type (
	UserID           uuid.UUID
	SpaceID          uuid.UUID
	PageID           uuid.UUID
	ProposalID       uuid.UUID
	VoteID           uuid.UUID
	RoleID           uuid.UUID
	WorkspaceEventID uuid.UUID
)

// TaskID identifies a unit of pending user attention in the notification
// ledger. Composite shapes are produced by the task sources themselves.
type TaskID string

func (id UserID) String() string           { return uuid.UUID(id).String() }
func (id SpaceID) String() string          { return uuid.UUID(id).String() }
func (id PageID) String() string           { return uuid.UUID(id).String() }
func (id ProposalID) String() string       { return uuid.UUID(id).String() }
func (id VoteID) String() string           { return uuid.UUID(id).String() }
func (id RoleID) String() string           { return uuid.UUID(id).String() }
func (id WorkspaceEventID) String() string { return uuid.UUID(id).String() }

func (id UserID) IsNil() bool           { return uuid.UUID(id) == uuid.Nil }
func (id RoleID) IsNil() bool           { return uuid.UUID(id) == uuid.Nil }
func (id ProposalID) IsNil() bool       { return uuid.UUID(id) == uuid.Nil }
func (id PageID) IsNil() bool           { return uuid.UUID(id) == uuid.Nil }
func (id WorkspaceEventID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// ParseUserID validates and converts a string into a UserID.
// IDs must be valid, non-nil UUIDs.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(u), nil
}

// ParseSpaceID validates and converts a string into a SpaceID.
func ParseSpaceID(s string) (SpaceID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return SpaceID{}, err
	}
	return SpaceID(u), nil
}

func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id is required")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must be a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "id must not be the nil UUID")
	}
	return u, nil
}
