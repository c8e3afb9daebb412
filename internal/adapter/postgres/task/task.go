package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domaintask "github.com/avelar/taskhub/internal/domain/task"
	porttask "github.com/avelar/taskhub/internal/port/task"
)

var _ porttask.Repository = (*Repository)(nil)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const taskColumns = `id, project_id, title, description, status, due_date, created_at, updated_at`

// Create inserts the task and the creator's assignee row in one transaction.
func (r *Repository) Create(ctx context.Context, t domaintask.Task, creatorID uuid.UUID) (domaintask.Task, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var created domaintask.Task
	err = tx.QueryRow(ctx, `
		INSERT INTO tasks (id, project_id, title, description, status, due_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+taskColumns,
		t.ID, t.ProjectID, t.Title, t.Description, t.Status, t.DueDate, t.CreatedAt, t.UpdatedAt,
	).Scan(
		&created.ID, &created.ProjectID, &created.Title, &created.Description,
		&created.Status, &created.DueDate, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("inserting task: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO task_assignees (task_id, user_id, project_id) VALUES ($1, $2, $3)`,
		created.ID, creatorID, created.ProjectID,
	); err != nil {
		return domaintask.Task{}, fmt.Errorf("inserting creator assignment: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domaintask.Task{}, fmt.Errorf("committing transaction: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domaintask.Task, error) {
	var t domaintask.Task
	err := r.pool.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id,
	).Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domaintask.Task{}, domaintask.ErrNotFound
		}
		return domaintask.Task{}, fmt.Errorf("querying task: %w", err)
	}
	return t, nil
}

func (r *Repository) Update(ctx context.Context, t domaintask.Task) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE tasks SET title = $2, description = $3, status = $4, due_date = $5, updated_at = $6
		WHERE id = $1`,
		t.ID, t.Title, t.Description, t.Status, t.DueDate, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domaintask.ErrNotFound
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domaintask.ErrNotFound
	}
	return nil
}

func (r *Repository) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domaintask.Task, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE project_id = $1 ORDER BY created_at DESC`, projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *Repository) ListAssignedToUser(ctx context.Context, projectID, userID uuid.UUID) ([]domaintask.Task, error) {
	query := `
		SELECT t.id, t.project_id, t.title, t.description, t.status, t.due_date, t.created_at, t.updated_at
		FROM tasks t
		JOIN task_assignees a ON a.task_id = t.id
		WHERE t.project_id = $1 AND a.user_id = $2
		ORDER BY t.due_date ASC NULLS LAST, t.created_at DESC`

	rows, err := r.pool.Query(ctx, query, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing assigned tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *Repository) IsAssignee(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	var assigned bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM task_assignees WHERE task_id = $1 AND user_id = $2)`,
		taskID, userID,
	).Scan(&assigned)
	if err != nil {
		return false, fmt.Errorf("checking assignment: %w", err)
	}
	return assigned, nil
}

func (r *Repository) AssigneeIDs(ctx context.Context, taskID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id FROM task_assignees WHERE task_id = $1`, taskID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing assignee ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning assignee id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignee ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) ListAssignees(ctx context.Context, taskID uuid.UUID) ([]domaintask.Assignee, error) {
	query := `
		SELECT a.task_id, a.user_id, a.project_id, u.name, u.avatar
		FROM task_assignees a
		JOIN users u ON u.id = a.user_id
		WHERE a.task_id = $1
		ORDER BY u.name`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing assignees: %w", err)
	}
	defer rows.Close()
	return scanAssignees(rows)
}

// AvailableAssignees returns project members who are not yet assigned to the task.
func (r *Repository) AvailableAssignees(ctx context.Context, taskID uuid.UUID) ([]domaintask.Assignee, error) {
	query := `
		SELECT t.id, m.user_id, m.project_id, u.name, u.avatar
		FROM tasks t
		JOIN project_members m ON m.project_id = t.project_id
		JOIN users u ON u.id = m.user_id
		WHERE t.id = $1
		  AND NOT EXISTS (
			SELECT 1 FROM task_assignees a
			WHERE a.task_id = t.id AND a.user_id = m.user_id
		  )
		ORDER BY u.name`

	rows, err := r.pool.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing available assignees: %w", err)
	}
	defer rows.Close()
	return scanAssignees(rows)
}

func (r *Repository) AddAssignee(ctx context.Context, taskID, userID, projectID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO task_assignees (task_id, user_id, project_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		taskID, userID, projectID,
	)
	if err != nil {
		return fmt.Errorf("adding assignee: %w", err)
	}
	return nil
}

func (r *Repository) RemoveAssignee(ctx context.Context, taskID, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM task_assignees WHERE task_id = $1 AND user_id = $2`, taskID, userID,
	)
	if err != nil {
		return fmt.Errorf("removing assignee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domaintask.ErrNotFound
	}
	return nil
}

func scanTasks(rows pgx.Rows) ([]domaintask.Task, error) {
	var tasks []domaintask.Task
	for rows.Next() {
		var t domaintask.Task
		if err := rows.Scan(
			&t.ID, &t.ProjectID, &t.Title, &t.Description,
			&t.Status, &t.DueDate, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}
	return tasks, nil
}

func scanAssignees(rows pgx.Rows) ([]domaintask.Assignee, error) {
	var assignees []domaintask.Assignee
	for rows.Next() {
		var a domaintask.Assignee
		if err := rows.Scan(&a.TaskID, &a.UserID, &a.ProjectID, &a.Name, &a.Avatar); err != nil {
			return nil, fmt.Errorf("scanning assignee row: %w", err)
		}
		assignees = append(assignees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating assignee rows: %w", err)
	}
	return assignees, nil
}
