package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for membership operations.
var (
	// ErrAlreadyMember is returned when inserting a membership that collides
	// with the unique (team, user) constraint.
	ErrAlreadyMember = errors.New("already a team member")

	// ErrNotTeamMember is returned by the membership authorization rule when
	// the caller has no membership in the team. Maps to 403 at the boundary.
	ErrNotTeamMember = errors.New("user is not a member of the team")

	ErrMembershipNotFound = errors.New("membership not found")
)

// MembershipStatus is the lifecycle state of a membership.
//
// Several business rules around these states are documented but not enforced
// by any operation (access checks look only at row existence): only pending
// memberships can be deleted, active memberships can be suspended, and so on.
// Keep it that way unless the system owner confirms they should be enforced.
type MembershipStatus string

const (
	// MembershipActive: the membership is currently active.
	MembershipActive MembershipStatus = "active"
	// MembershipSuspended: the membership has been temporarily suspended.
	MembershipSuspended MembershipStatus = "suspended"
	// MembershipPending: the membership is waiting to be approved or activated.
	MembershipPending MembershipStatus = "pending"
	// MembershipRejected: the membership has not been approved.
	MembershipRejected MembershipStatus = "rejected"
	// MembershipCancelled: the membership has been cancelled, by user request,
	// by an admin, or by system action.
	MembershipCancelled MembershipStatus = "cancelled"
)

// Membership grants a user standing within a team, carrying a role.
// At most one membership exists per (team, user) pair; the backing store
// enforces this with a unique constraint.
// swagger:model Membership
type Membership struct {
	ID        string           `json:"id"`
	TeamID    string           `json:"team_id"`
	UserID    string           `json:"user_id"`
	RoleID    string           `json:"role_id"`
	Status    MembershipStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
}

// TeamMember is the read view of a membership joined with its user and role.
// Permissions is filled by the service from the role's permission catalog.
// swagger:model TeamMember
type TeamMember struct {
	MembershipID string           `json:"membership_id"`
	TeamID       string           `json:"team_id"`
	UserID       string           `json:"user_id"`
	FirstName    string           `json:"first_name"`
	LastName     string           `json:"last_name"`
	Email        string           `json:"email"`
	RoleID       string           `json:"-"`
	RoleSlug     string           `json:"role"`
	Permissions  []string         `json:"permissions"`
	Status       MembershipStatus `json:"status"`
}

// MembershipRepository defines storage operations for memberships.
type MembershipRepository interface {
	// Create inserts a membership. A unique violation on (team_id, user_id)
	// is returned as ErrAlreadyMember.
	Create(ctx context.Context, m *Membership) error
	Exists(ctx context.Context, teamID, userID string) (bool, error)
	GetByTeamAndUser(ctx context.Context, teamID, userID string) (*Membership, error)
	ListByTeamID(ctx context.Context, teamID string) ([]*TeamMember, error)
	ListByUserID(ctx context.Context, userID string) ([]*Membership, error)
}

// MembershipService exposes the authorization rule consulted by every
// team-scoped operation, plus membership reads.
type MembershipService interface {
	// RequireMembership returns ErrNotTeamMember when no membership row exists
	// for (teamID, userID). Any existing row grants access regardless of its
	// status value.
	RequireMembership(ctx context.Context, teamID, userID string) error
	ListByUser(ctx context.Context, userID string) ([]*Membership, error)
}
