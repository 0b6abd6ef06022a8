package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"carehub/internal/domain"
)

type teamRepository struct {
	DB *sql.DB
}

func NewTeamRepository(db *sql.DB) domain.TeamRepository {
	return &teamRepository{
		DB: db,
	}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, name, description, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, team.ID, team.Name, team.Description, team.OwnerID, team.CreatedAt, team.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateTeamName
		}
		return err
	}
	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT id, name, description, owner_id, created_at, updated_at
		FROM teams
		WHERE id = $1
	`
	team := &domain.Team{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&team.ID, &team.Name, &team.Description, &team.OwnerID, &team.CreatedAt, &team.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

func (r *teamRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM teams WHERE name = $1)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, name).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
