package domain

import (
	"context"
	"time"
)

// Note is a short team-scoped care note.
// swagger:model Note
type Note struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"team_id"`
	AuthorID  string    `json:"author_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NoteRepository defines storage operations for notes.
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	ListByTeamID(ctx context.Context, teamID string) ([]*Note, error)
}
