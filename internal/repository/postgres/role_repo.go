package postgres

import (
	"context"
	"database/sql"

	"carehub/internal/domain"
)

type roleRepository struct {
	DB *sql.DB
}

func NewRoleRepository(db *sql.DB) domain.RoleRepository {
	return &roleRepository{
		DB: db,
	}
}

func (r *roleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Role, error) {
	query := `SELECT id, name, slug, description FROM roles WHERE slug = $1`
	role := &domain.Role{}
	err := r.DB.QueryRowContext(ctx, query, slug).Scan(&role.ID, &role.Name, &role.Slug, &role.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrInvalidRole
		}
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) GetByID(ctx context.Context, id string) (*domain.Role, error) {
	query := `SELECT id, name, slug, description FROM roles WHERE id = $1`
	role := &domain.Role{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&role.ID, &role.Name, &role.Slug, &role.Description)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrInvalidRole
		}
		return nil, err
	}
	return role, nil
}

func (r *roleRepository) ListPermissionsByRoleID(ctx context.Context, roleID string) ([]domain.Permission, error) {
	query := `
		SELECT p.id, p.name, p.description
		FROM permissions p
		JOIN role_permissions rp ON rp.permission_id = p.id
		WHERE rp.role_id = $1
		ORDER BY p.name
	`
	rows, err := r.DB.QueryContext(ctx, query, roleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	perms := make([]domain.Permission, 0)
	for rows.Next() {
		var p domain.Permission
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, err
		}
		perms = append(perms, p)
	}
	return perms, rows.Err()
}
