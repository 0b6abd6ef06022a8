package postgres

import (
	"context"
	"database/sql"

	"carehub/internal/domain"
)

type taskRepository struct {
	DB *sql.DB
}

func NewTaskRepository(db *sql.DB) domain.TaskRepository {
	return &taskRepository{
		DB: db,
	}
}

func (r *taskRepository) Create(ctx context.Context, task *domain.Task) error {
	query := `
		INSERT INTO tasks (id, team_id, title, description, priority, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.DB.ExecContext(ctx, query, task.ID, task.TeamID, task.Title, task.Description, task.Priority, task.DueDate, task.CreatedAt)
	return err
}

func (r *taskRepository) ListByTeamID(ctx context.Context, teamID string) ([]*domain.Task, error) {
	query := `
		SELECT id, team_id, title, description, priority, due_date, created_at
		FROM tasks
		WHERE team_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task := &domain.Task{}
		var dueDate sql.NullTime
		if err := rows.Scan(&task.ID, &task.TeamID, &task.Title, &task.Description, &task.Priority, &dueDate, &task.CreatedAt); err != nil {
			return nil, err
		}
		if dueDate.Valid {
			task.DueDate = &dueDate.Time
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
