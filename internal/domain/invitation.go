package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for invitation operations.
var (
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrInvitationExpired  = errors.New("invitation has expired")
	ErrInvitationUsed     = errors.New("invitation has already been used")
	ErrInviteeNotFound    = errors.New("invitee account not found")
	// ErrDuplicateToken is returned when persisting an invitation whose token
	// collides with an existing one. The service retries issuance.
	ErrDuplicateToken = errors.New("invitation token already exists")
)

// ExpiryMargin is the fixed safety buffer applied when checking invitation
// expiry: a token inside this window of its deadline is treated as already
// expired so an in-flight accept cannot race the deadline.
const ExpiryMargin = time.Minute

// HasExpired reports whether expiresAt is strictly before now plus
// ExpiryMargin. A deadline landing exactly on the margin edge is still
// valid. Pure function of the two timestamps.
func HasExpired(expiresAt, now time.Time) bool {
	return expiresAt.Before(now.Add(ExpiryMargin))
}

// InvitationStatus is the lifecycle state of an invitation.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"

	// Reserved states. No operation currently transitions into them.
	InvitationInvalidated InvitationStatus = "invalidated"
	InvitationDeclined    InvitationStatus = "declined"
)

// Invitation is a token-bearing record offering a named role on a team to an
// email address, with a bounded validity window. Created by Invite, mutated
// only by Accept (which sets UsedAt and the status together), never deleted.
// swagger:model Invitation
type Invitation struct {
	ID        string           `json:"id"`
	Token     string           `json:"-"`
	TeamID    string           `json:"team_id"`
	RoleID    string           `json:"role_id"`
	InviterID string           `json:"inviter_id"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Email     string           `json:"email"`
	Status    InvitationStatus `json:"status"`
	ExpiresAt time.Time        `json:"expires_at"`
	UsedAt    *time.Time       `json:"used_at,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// HasExpired reports whether the invitation's deadline has passed or is
// within the safety margin of now.
func (i *Invitation) HasExpired(now time.Time) bool {
	return HasExpired(i.ExpiresAt, now)
}

// InvitationView is the read-only view returned by Validate.
// swagger:model InvitationView
type InvitationView struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	FirstName string           `json:"first_name"`
	LastName  string           `json:"last_name"`
	Role      string           `json:"role"`
	Team      string           `json:"team"`
	Status    InvitationStatus `json:"status"`
	ExpiresAt time.Time        `json:"expires_at"`
	CreatedAt time.Time        `json:"created_at"`
}

// Report is a simple outcome message returned by invitation operations.
// swagger:model Report
type Report struct {
	Message string `json:"message"`
}

// InvitationRepository defines storage operations for invitations.
type InvitationRepository interface {
	// Create inserts a new invitation. A unique violation on the token column
	// is returned as ErrDuplicateToken.
	Create(ctx context.Context, inv *Invitation) error
	GetByToken(ctx context.Context, token string) (*Invitation, error)
	ListByTeamID(ctx context.Context, teamID string) ([]*Invitation, error)
	// Accept atomically transitions the invitation to accepted (setting
	// used_at) and inserts the membership, in one transaction. The update is
	// guarded by status = pending: when a concurrent accept already won, no
	// row matches and ErrInvitationUsed is returned. A membership unique
	// violation rolls back the whole transaction and returns ErrAlreadyMember.
	Accept(ctx context.Context, invitationID string, m *Membership, usedAt time.Time) error
}

// InvitationService is the invitation lifecycle: issue, validate, accept,
// plus the team-scoped listing for members.
type InvitationService interface {
	Invite(ctx context.Context, teamID, roleSlug, firstName, lastName, email, inviterID string) (*Report, error)
	Validate(ctx context.Context, token string) (*InvitationView, error)
	Accept(ctx context.Context, token string) (*Report, error)
	ListByTeam(ctx context.Context, teamID, callerID string) ([]*Invitation, error)
}
