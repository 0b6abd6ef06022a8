package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for team operations.
var (
	ErrTeamNotFound      = errors.New("team not found")
	ErrDuplicateTeamName = errors.New("team name already in use")
)

// Team is a care team. Members join through memberships; the creator becomes
// the owner with an active membership.
// swagger:model Team
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeamRepository defines the interface for team storage.
type TeamRepository interface {
	Create(ctx context.Context, team *Team) error
	GetByID(ctx context.Context, id string) (*Team, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// TeamService covers team creation and the team-scoped operations that are
// gated by the membership authorization rule.
type TeamService interface {
	CreateTeam(ctx context.Context, name, description, ownerID string) (*Team, error)
	GetTeam(ctx context.Context, teamID, callerID string) (*Team, error)
	ListMembers(ctx context.Context, teamID, callerID string) ([]*TeamMember, error)
	CreateNote(ctx context.Context, teamID, callerID, title, content string) (*Note, error)
	CreateTask(ctx context.Context, teamID, callerID, title, description, priority string, dueDate *time.Time) (*Task, error)
	ListNotes(ctx context.Context, teamID, callerID string) ([]*Note, error)
	ListTasks(ctx context.Context, teamID, callerID string) ([]*Task, error)
}
