package domain

import (
	"context"
	"errors"
)

// ErrInvalidRole is returned when a role slug does not resolve to a catalog entry.
var ErrInvalidRole = errors.New("invalid role")

// Well-known role slugs seeded in the catalog.
const (
	RoleSlugAdmin          = "admin"
	RoleSlugOwner          = "owner"
	RoleSlugCaregiver      = "caregiver"
	RoleSlugPatient        = "patient"
	RoleSlugHealthProvider = "health_provider"
)

// Role is a named bundle of permissions assignable to a membership or invitation.
// The role/permission catalog is seeded externally and read-only here.
// swagger:model Role
type Role struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Slug        string       `json:"slug"`
	Description string       `json:"description"`
	Permissions []Permission `json:"permissions,omitempty"`
}

// Permission is an atomic named capability (e.g. "create:notes").
// swagger:model Permission
type Permission struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoleRepository defines read access to the role/permission catalog.
type RoleRepository interface {
	GetBySlug(ctx context.Context, slug string) (*Role, error)
	GetByID(ctx context.Context, id string) (*Role, error)
	ListPermissionsByRoleID(ctx context.Context, roleID string) ([]Permission, error)
}

// RolePermissionResolver resolves the permission names attached to a role.
// Resolving the same role twice within a request must yield equal sets.
type RolePermissionResolver interface {
	PermissionsOf(ctx context.Context, role *Role) ([]string, error)
}
