package domain

import (
	"context"
	"time"
)

// Task is a team-scoped care task with an optional due date.
// swagger:model Task
type Task struct {
	ID          string     `json:"id"`
	TeamID      string     `json:"team_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// TaskRepository defines storage operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *Task) error
	ListByTeamID(ctx context.Context, teamID string) ([]*Task, error)
}
