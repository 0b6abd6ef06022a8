package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"carehub/internal/domain"
)

type invitationRepository struct {
	DB *sql.DB
}

func NewInvitationRepository(db *sql.DB) domain.InvitationRepository {
	return &invitationRepository{
		DB: db,
	}
}

func (r *invitationRepository) Create(ctx context.Context, inv *domain.Invitation) error {
	query := `
		INSERT INTO invitations (id, token, team_id, role_id, inviter_id, first_name, last_name, email, status, expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := r.DB.ExecContext(ctx, query,
		inv.ID, inv.Token, inv.TeamID, inv.RoleID, inv.InviterID,
		inv.FirstName, inv.LastName, inv.Email, string(inv.Status),
		inv.ExpiresAt, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrDuplicateToken
		}
		return err
	}
	return nil
}

func (r *invitationRepository) GetByToken(ctx context.Context, token string) (*domain.Invitation, error) {
	query := `
		SELECT id, token, team_id, role_id, inviter_id, first_name, last_name, email, status, expires_at, used_at, created_at, updated_at
		FROM invitations
		WHERE token = $1
	`
	inv := &domain.Invitation{}
	var status string
	var usedAt sql.NullTime
	err := r.DB.QueryRowContext(ctx, query, token).Scan(
		&inv.ID, &inv.Token, &inv.TeamID, &inv.RoleID, &inv.InviterID,
		&inv.FirstName, &inv.LastName, &inv.Email, &status,
		&inv.ExpiresAt, &usedAt, &inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrInvitationNotFound
		}
		return nil, err
	}
	inv.Status = domain.InvitationStatus(status)
	if usedAt.Valid {
		inv.UsedAt = &usedAt.Time
	}
	return inv, nil
}

func (r *invitationRepository) ListByTeamID(ctx context.Context, teamID string) ([]*domain.Invitation, error) {
	query := `
		SELECT id, token, team_id, role_id, inviter_id, first_name, last_name, email, status, expires_at, used_at, created_at, updated_at
		FROM invitations
		WHERE team_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invs := make([]*domain.Invitation, 0)
	for rows.Next() {
		inv := &domain.Invitation{}
		var status string
		var usedAt sql.NullTime
		if err := rows.Scan(
			&inv.ID, &inv.Token, &inv.TeamID, &inv.RoleID, &inv.InviterID,
			&inv.FirstName, &inv.LastName, &inv.Email, &status,
			&inv.ExpiresAt, &usedAt, &inv.CreatedAt, &inv.UpdatedAt,
		); err != nil {
			return nil, err
		}
		inv.Status = domain.InvitationStatus(status)
		if usedAt.Valid {
			inv.UsedAt = &usedAt.Time
		}
		invs = append(invs, inv)
	}
	return invs, rows.Err()
}

// Accept transitions the invitation to accepted and inserts the membership in
// one transaction. The UPDATE is guarded by status = 'pending', so of two
// concurrent accepts exactly one matches a row; the loser sees zero rows and
// gets ErrInvitationUsed. A membership unique violation rolls everything back,
// leaving no accepted-but-memberless state behind.
func (r *invitationRepository) Accept(ctx context.Context, invitationID string, m *domain.Membership, usedAt time.Time) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE invitations
		SET status = $1, used_at = $2, updated_at = $2
		WHERE id = $3 AND status = $4
	`, string(domain.InvitationAccepted), usedAt, invitationID, string(domain.InvitationPending))
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrInvitationUsed
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO memberships (id, team_id, user_id, role_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, m.ID, m.TeamID, m.UserID, m.RoleID, string(m.Status), m.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrAlreadyMember
		}
		return err
	}

	return tx.Commit()
}
