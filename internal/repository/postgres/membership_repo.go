package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"carehub/internal/domain"
)

type membershipRepository struct {
	DB *sql.DB
}

func NewMembershipRepository(db *sql.DB) domain.MembershipRepository {
	return &membershipRepository{
		DB: db,
	}
}

func (r *membershipRepository) Create(ctx context.Context, m *domain.Membership) error {
	query := `
		INSERT INTO memberships (id, team_id, user_id, role_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, m.ID, m.TeamID, m.UserID, m.RoleID, string(m.Status), m.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrAlreadyMember
		}
		return err
	}
	return nil
}

func (r *membershipRepository) Exists(ctx context.Context, teamID, userID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM memberships WHERE team_id = $1 AND user_id = $2)`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, teamID, userID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *membershipRepository) GetByTeamAndUser(ctx context.Context, teamID, userID string) (*domain.Membership, error) {
	query := `
		SELECT id, team_id, user_id, role_id, status, created_at
		FROM memberships
		WHERE team_id = $1 AND user_id = $2
	`
	m := &domain.Membership{}
	var status string
	err := r.DB.QueryRowContext(ctx, query, teamID, userID).Scan(
		&m.ID, &m.TeamID, &m.UserID, &m.RoleID, &status, &m.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, err
	}
	m.Status = domain.MembershipStatus(status)
	return m, nil
}

func (r *membershipRepository) ListByTeamID(ctx context.Context, teamID string) ([]*domain.TeamMember, error) {
	query := `
		SELECT m.id, m.team_id, m.user_id, u.first_name, u.last_name, u.email, m.role_id, r.slug, m.status
		FROM memberships m
		JOIN users u ON u.id = m.user_id
		JOIN roles r ON r.id = m.role_id
		WHERE m.team_id = $1
		ORDER BY m.created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*domain.TeamMember, 0)
	for rows.Next() {
		tm := &domain.TeamMember{}
		var firstName, lastName sql.NullString
		var status string
		if err := rows.Scan(&tm.MembershipID, &tm.TeamID, &tm.UserID, &firstName, &lastName, &tm.Email, &tm.RoleID, &tm.RoleSlug, &status); err != nil {
			return nil, err
		}
		tm.FirstName = firstName.String
		tm.LastName = lastName.String
		tm.Status = domain.MembershipStatus(status)
		members = append(members, tm)
	}
	return members, rows.Err()
}

func (r *membershipRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Membership, error) {
	query := `
		SELECT id, team_id, user_id, role_id, status, created_at
		FROM memberships
		WHERE user_id = $1
		ORDER BY created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	memberships := make([]*domain.Membership, 0)
	for rows.Next() {
		m := &domain.Membership{}
		var status string
		if err := rows.Scan(&m.ID, &m.TeamID, &m.UserID, &m.RoleID, &status, &m.CreatedAt); err != nil {
			return nil, err
		}
		m.Status = domain.MembershipStatus(status)
		memberships = append(memberships, m)
	}
	return memberships, rows.Err()
}
