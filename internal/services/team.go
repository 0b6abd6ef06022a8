package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"carehub/internal/domain"
)

type teamService struct {
	teamRepo       domain.TeamRepository
	userRepo       domain.UserRepository
	roleRepo       domain.RoleRepository
	membershipRepo domain.MembershipRepository
	noteRepo       domain.NoteRepository
	taskRepo       domain.TaskRepository
	membership     domain.MembershipService
	resolver       domain.RolePermissionResolver
	now            func() time.Time
}

// NewTeamService creates the team service. Team-scoped reads and writes run
// the membership rule before touching team data; member views carry the
// permissions resolved from each member's role.
func NewTeamService(
	teamRepo domain.TeamRepository,
	userRepo domain.UserRepository,
	roleRepo domain.RoleRepository,
	membershipRepo domain.MembershipRepository,
	noteRepo domain.NoteRepository,
	taskRepo domain.TaskRepository,
	membership domain.MembershipService,
	resolver domain.RolePermissionResolver,
) domain.TeamService {
	return &teamService{
		teamRepo:       teamRepo,
		userRepo:       userRepo,
		roleRepo:       roleRepo,
		membershipRepo: membershipRepo,
		noteRepo:       noteRepo,
		taskRepo:       taskRepo,
		membership:     membership,
		resolver:       resolver,
		now:            time.Now,
	}
}

// CreateTeam creates a team and seeds an active membership for the owner
// carrying the owner role.
func (s *teamService) CreateTeam(ctx context.Context, name, description, ownerID string) (*domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: team name is required", domain.ErrInvalidInput)
	}

	exists, err := s.teamRepo.ExistsByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check team name: %w", err)
	}
	if exists {
		return nil, domain.ErrDuplicateTeamName
	}

	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}

	role, err := s.roleRepo.GetBySlug(ctx, domain.RoleSlugOwner)
	if err != nil {
		return nil, fmt.Errorf("failed to get owner role: %w", err)
	}

	now := s.now()
	team := &domain.Team{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		OwnerID:     owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	member := &domain.Membership{
		ID:        uuid.NewString(),
		TeamID:    team.ID,
		UserID:    owner.ID,
		RoleID:    role.ID,
		Status:    domain.MembershipActive,
		CreatedAt: now,
	}
	if err := s.membershipRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}

	return team, nil
}

func (s *teamService) GetTeam(ctx context.Context, teamID, callerID string) (*domain.Team, error) {
	if err := s.membership.RequireMembership(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *teamService) ListMembers(ctx context.Context, teamID, callerID string) ([]*domain.TeamMember, error) {
	if err := s.membership.RequireMembership(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	members, err := s.membershipRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	// Members sharing a role resolve once.
	permsByRole := make(map[string][]string)
	for _, m := range members {
		perms, ok := permsByRole[m.RoleID]
		if !ok {
			role, err := s.roleRepo.GetByID(ctx, m.RoleID)
			if err != nil {
				return nil, fmt.Errorf("failed to get role for member %s: %w", m.MembershipID, err)
			}
			perms, err = s.resolver.PermissionsOf(ctx, role)
			if err != nil {
				return nil, err
			}
			permsByRole[m.RoleID] = perms
		}
		m.Permissions = perms
	}
	return members, nil
}

func (s *teamService) CreateNote(ctx context.Context, teamID, callerID, title, content string) (*domain.Note, error) {
	if err := s.membership.RequireMembership(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: note title is required", domain.ErrInvalidInput)
	}
	note := &domain.Note{
		ID:        uuid.NewString(),
		TeamID:    teamID,
		AuthorID:  callerID,
		Title:     title,
		Content:   content,
		CreatedAt: s.now(),
	}
	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return note, nil
}

func (s *teamService) CreateTask(ctx context.Context, teamID, callerID, title, description, priority string, dueDate *time.Time) (*domain.Task, error) {
	if err := s.membership.RequireMembership(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: task title is required", domain.ErrInvalidInput)
	}
	task := &domain.Task{
		ID:          uuid.NewString(),
		TeamID:      teamID,
		Title:       title,
		Description: description,
		Priority:    priority,
		DueDate:     dueDate,
		CreatedAt:   s.now(),
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (s *teamService) ListNotes(ctx context.Context, teamID, callerID string) ([]*domain.Note, error) {
	if err := s.membership.RequireMembership(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	notes, err := s.noteRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	return notes, nil
}

func (s *teamService) ListTasks(ctx context.Context, teamID, callerID string) ([]*domain.Task, error) {
	if err := s.membership.RequireMembership(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}
