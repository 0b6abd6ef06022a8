package services

import (
	"context"
	"fmt"
	"sort"

	"carehub/internal/domain"
)

type membershipService struct {
	membershipRepo domain.MembershipRepository
}

// NewMembershipService creates the membership service. Its RequireMembership
// check is the precondition consulted by every team-scoped operation.
func NewMembershipService(membershipRepo domain.MembershipRepository) domain.MembershipService {
	return &membershipService{membershipRepo: membershipRepo}
}

func (s *membershipService) RequireMembership(ctx context.Context, teamID, userID string) error {
	exists, err := s.membershipRepo.Exists(ctx, teamID, userID)
	if err != nil {
		return fmt.Errorf("failed to check membership: %w", err)
	}
	if !exists {
		return domain.ErrNotTeamMember
	}
	// Any membership row grants access; status is deliberately not inspected.
	return nil
}

func (s *membershipService) ListByUser(ctx context.Context, userID string) ([]*domain.Membership, error) {
	memberships, err := s.membershipRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	return memberships, nil
}

type rolePermissionResolver struct {
	roleRepo domain.RoleRepository
}

// NewRolePermissionResolver resolves a role to its permission names from the
// seeded catalog.
func NewRolePermissionResolver(roleRepo domain.RoleRepository) domain.RolePermissionResolver {
	return &rolePermissionResolver{roleRepo: roleRepo}
}

// PermissionsOf returns the sorted permission names attached to the role.
// Sorting makes repeated resolutions within a request trivially comparable.
func (r *rolePermissionResolver) PermissionsOf(ctx context.Context, role *domain.Role) ([]string, error) {
	perms := role.Permissions
	if perms == nil {
		loaded, err := r.roleRepo.ListPermissionsByRoleID(ctx, role.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load permissions for role %q: %w", role.Slug, err)
		}
		perms = loaded
	}
	names := make([]string, 0, len(perms))
	seen := make(map[string]struct{}, len(perms))
	for _, p := range perms {
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names, nil
}
