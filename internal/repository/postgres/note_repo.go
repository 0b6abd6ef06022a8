package postgres

import (
	"context"
	"database/sql"

	"carehub/internal/domain"
)

type noteRepository struct {
	DB *sql.DB
}

func NewNoteRepository(db *sql.DB) domain.NoteRepository {
	return &noteRepository{
		DB: db,
	}
}

func (r *noteRepository) Create(ctx context.Context, note *domain.Note) error {
	query := `
		INSERT INTO notes (id, team_id, author_id, title, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.DB.ExecContext(ctx, query, note.ID, note.TeamID, note.AuthorID, note.Title, note.Content, note.CreatedAt)
	return err
}

func (r *noteRepository) ListByTeamID(ctx context.Context, teamID string) ([]*domain.Note, error) {
	query := `
		SELECT id, team_id, author_id, title, content, created_at
		FROM notes
		WHERE team_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*domain.Note, 0)
	for rows.Next() {
		note := &domain.Note{}
		if err := rows.Scan(&note.ID, &note.TeamID, &note.AuthorID, &note.Title, &note.Content, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	return notes, rows.Err()
}
