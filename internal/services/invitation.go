package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"carehub/internal/domain"
)

const (
	invitationTokenBytes = 32
	// tokenIssueAttempts bounds retries when a freshly generated token collides
	// with an existing row. With 256 bits of entropy this effectively never
	// happens, but a collision must trigger reissue, not an overwrite.
	tokenIssueAttempts = 3
)

type invitationService struct {
	invitationRepo domain.InvitationRepository
	userRepo       domain.UserRepository
	teamRepo       domain.TeamRepository
	roleRepo       domain.RoleRepository
	emailService   domain.EmailService
	membership     domain.MembershipService
	expiry         time.Duration
	baseURL        string
	now            func() time.Time
}

// NewInvitationService creates the invitation lifecycle service. expiry is the
// configured invitation TTL; baseURL is used to build the invitation link.
func NewInvitationService(
	invitationRepo domain.InvitationRepository,
	userRepo domain.UserRepository,
	teamRepo domain.TeamRepository,
	roleRepo domain.RoleRepository,
	emailService domain.EmailService,
	membership domain.MembershipService,
	expiry time.Duration,
	baseURL string,
) domain.InvitationService {
	return &invitationService{
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		teamRepo:       teamRepo,
		roleRepo:       roleRepo,
		emailService:   emailService,
		membership:     membership,
		expiry:         expiry,
		baseURL:        strings.TrimSuffix(baseURL, "/"),
		now:            time.Now,
	}
}

func (s *invitationService) Invite(ctx context.Context, teamID, roleSlug, firstName, lastName, email, inviterID string) (*domain.Report, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	inviter, err := s.userRepo.GetByID(ctx, inviterID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get inviter: %w", err)
	}

	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, domain.ErrTeamNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	role, err := s.roleRepo.GetBySlug(ctx, roleSlug)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRole) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get role %q: %w", roleSlug, err)
	}

	now := s.now()
	inv := &domain.Invitation{
		ID:        uuid.NewString(),
		TeamID:    team.ID,
		RoleID:    role.ID,
		InviterID: inviter.ID,
		FirstName: strings.TrimSpace(firstName),
		LastName:  strings.TrimSpace(lastName),
		Email:     email,
		Status:    domain.InvitationPending,
		ExpiresAt: now.Add(s.expiry),
		CreatedAt: now,
		UpdatedAt: now,
	}

	for attempt := 0; ; attempt++ {
		token, err := generateInvitationToken()
		if err != nil {
			return nil, fmt.Errorf("failed to generate token: %w", err)
		}
		inv.Token = token
		err = s.invitationRepo.Create(ctx, inv)
		if err == nil {
			break
		}
		if errors.Is(err, domain.ErrDuplicateToken) && attempt < tokenIssueAttempts-1 {
			continue
		}
		return nil, fmt.Errorf("failed to store invitation: %w", err)
	}

	if s.emailService != nil {
		data := &domain.TeamInvitationEmailData{
			Email:          email,
			FirstName:      inv.FirstName,
			TeamName:       team.Name,
			RoleName:       role.Name,
			InviterName:    strings.TrimSpace(inviter.FirstName + " " + inviter.LastName),
			Link:           fmt.Sprintf("%s/invitations?token=%s", s.baseURL, inv.Token),
			ExpiresInHours: int(s.expiry.Hours()),
		}
		if err := s.emailService.SendTeamInvitation(ctx, data); err != nil {
			return nil, fmt.Errorf("failed to send invitation email: %w", err)
		}
	}

	return &domain.Report{Message: "Invitation sent to " + email}, nil
}

func (s *invitationService) Validate(ctx context.Context, token string) (*domain.InvitationView, error) {
	inv, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	role, err := s.roleRepo.GetByID(ctx, inv.RoleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	team, err := s.teamRepo.GetByID(ctx, inv.TeamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	return &domain.InvitationView{
		ID:        inv.ID,
		Email:     inv.Email,
		FirstName: inv.FirstName,
		LastName:  inv.LastName,
		Role:      role.Slug,
		Team:      team.Name,
		Status:    inv.Status,
		ExpiresAt: inv.ExpiresAt,
		CreatedAt: inv.CreatedAt,
	}, nil
}

func (s *invitationService) Accept(ctx context.Context, token string) (*domain.Report, error) {
	inv, err := s.load(ctx, token)
	if err != nil {
		return nil, err
	}

	invitee, err := s.userRepo.GetByEmail(ctx, inv.Email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInviteeNotFound
		}
		return nil, fmt.Errorf("failed to get invitee: %w", err)
	}

	now := s.now()
	membership := &domain.Membership{
		ID:        uuid.NewString(),
		TeamID:    inv.TeamID,
		UserID:    invitee.ID,
		RoleID:    inv.RoleID,
		Status:    domain.MembershipActive,
		CreatedAt: now,
	}
	if err := s.invitationRepo.Accept(ctx, inv.ID, membership, now); err != nil {
		if errors.Is(err, domain.ErrInvitationUsed) || errors.Is(err, domain.ErrAlreadyMember) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to accept invitation: %w", err)
	}

	return &domain.Report{Message: "Invitation accepted"}, nil
}

// ListByTeam returns a team's invitations to its members. Tokens stay out of
// the serialized form.
func (s *invitationService) ListByTeam(ctx context.Context, teamID, callerID string) ([]*domain.Invitation, error) {
	if err := s.membership.RequireMembership(ctx, teamID, callerID); err != nil {
		return nil, err
	}
	invitations, err := s.invitationRepo.ListByTeamID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	return invitations, nil
}

// load fetches an invitation by token and runs the shared use/expiry guards.
// Status and used_at are updated together; either alone is treated as proof
// of prior use.
func (s *invitationService) load(ctx context.Context, token string) (*domain.Invitation, error) {
	inv, err := s.invitationRepo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domain.ErrInvitationNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}
	if inv.Status == domain.InvitationAccepted {
		return nil, domain.ErrInvitationUsed
	}
	if inv.HasExpired(s.now()) {
		return nil, domain.ErrInvitationExpired
	}
	if inv.UsedAt != nil {
		return nil, domain.ErrInvitationUsed
	}
	return inv, nil
}

func generateInvitationToken() (string, error) {
	b := make([]byte, invitationTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
