package models

import (
	"time"

	"github.com/ccarella/app.charmverse.io/pkg/domain"
	pkgemail "github.com/ccarella/app.charmverse.io/pkg/email"
)

// NotificationPreferences is the per-user opt-out state consulted before
// aggregation. It is loaded once with the user and passed through the
// pipeline as a value, never re-fetched mid-run.
type NotificationPreferences struct {
	// SnoozedUntil suppresses digests until the given time. Nil means not snoozed.
	SnoozedUntil *time.Time
	// SnoozeMessage is an optional note shown in the workspace UI; carried
	// here so the preview endpoint can surface it.
	SnoozeMessage string
}

// Snoozed reports whether digests are suppressed at the given time.
func (p NotificationPreferences) Snoozed(now time.Time) bool {
	return p.SnoozedUntil != nil && p.SnoozedUntil.After(now)
}

// User is a workspace member eligible for notification digests.
type User struct {
	ID       domain.UserID
	Username string
	Email    string
	// SafeAddresses lists the user's linked multisig safes. Empty means the
	// multisig task source is skipped entirely for this user.
	SafeAddresses []string
	Preferences   NotificationPreferences
}

// DisplayName is the name used in digest greetings and the mail envelope.
func (u User) DisplayName() string {
	if u.Username != "" {
		return u.Username
	}
	return pkgemail.DisplayNameFromAddress(u.Email)
}

// HasSafes reports whether the multisig task source applies to this user.
func (u User) HasSafes() bool {
	return len(u.SafeAddresses) > 0
}
