package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainproject "github.com/avelar/taskhub/internal/domain/project"
	portproject "github.com/avelar/taskhub/internal/port/project"
)

var _ portproject.Repository = (*Repository)(nil)

type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts the project and the owner's membership row in one transaction
// so a project can never exist without its owner as a member.
func (r *Repository) Create(ctx context.Context, p domainproject.Project) (domainproject.Project, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var created domainproject.Project
	err = tx.QueryRow(ctx, `
		INSERT INTO projects (id, name, is_team, owner_id, image, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, is_team, owner_id, image, created_at`,
		p.ID, p.Name, p.Team, p.OwnerID, p.Image, p.CreatedAt,
	).Scan(&created.ID, &created.Name, &created.Team, &created.OwnerID, &created.Image, &created.CreatedAt)
	if err != nil {
		return domainproject.Project{}, fmt.Errorf("inserting project: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`INSERT INTO project_members (project_id, user_id) VALUES ($1, $2)`,
		created.ID, created.OwnerID,
	); err != nil {
		return domainproject.Project{}, fmt.Errorf("inserting owner membership: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return domainproject.Project{}, fmt.Errorf("committing transaction: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainproject.Project, error) {
	var p domainproject.Project
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, is_team, owner_id, image, created_at FROM projects WHERE id = $1`, id,
	).Scan(&p.ID, &p.Name, &p.Team, &p.OwnerID, &p.Image, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainproject.Project{}, domainproject.ErrNotFound
		}
		return domainproject.Project{}, fmt.Errorf("querying project: %w", err)
	}
	return p, nil
}

func (r *Repository) Rename(ctx context.Context, id uuid.UUID, name string) error {
	tag, err := r.pool.Exec(ctx, `UPDATE projects SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return fmt.Errorf("renaming project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainproject.ErrNotFound
	}
	return nil
}

// Delete removes the project. Memberships, tasks, assignments and
// favorite/archive flags go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainproject.ErrNotFound
	}
	return nil
}

func (r *Repository) ListForUser(ctx context.Context, userID uuid.UUID) (team, personal []domainproject.Summary, err error) {
	query := `
		SELECT p.id, p.name, p.is_team,
			EXISTS (SELECT 1 FROM favorite_projects f WHERE f.project_id = p.id AND f.user_id = $1),
			EXISTS (SELECT 1 FROM archived_projects a WHERE a.project_id = p.id AND a.user_id = $1)
		FROM projects p
		JOIN project_members m ON m.project_id = p.id
		WHERE m.user_id = $1
		ORDER BY p.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domainproject.Summary
		var isTeam bool
		if err := rows.Scan(&s.ID, &s.Name, &isTeam, &s.IsFavorite, &s.IsArchived); err != nil {
			return nil, nil, fmt.Errorf("scanning project row: %w", err)
		}
		if isTeam {
			team = append(team, s)
		} else {
			personal = append(personal, s)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating project rows: %w", err)
	}
	return team, personal, nil
}

func (r *Repository) IsMember(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	var member bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM project_members WHERE project_id = $1 AND user_id = $2)`,
		projectID, userID,
	).Scan(&member)
	if err != nil {
		return false, fmt.Errorf("checking membership: %w", err)
	}
	return member, nil
}

func (r *Repository) AddMember(ctx context.Context, projectID, userID uuid.UUID) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO project_members (project_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		projectID, userID,
	)
	if err != nil {
		return fmt.Errorf("adding member: %w", err)
	}
	return nil
}

func (r *Repository) RemoveMember(ctx context.Context, projectID, userID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx,
		`DELETE FROM project_members WHERE project_id = $1 AND user_id = $2`,
		projectID, userID,
	)
	if err != nil {
		return fmt.Errorf("removing member: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainproject.ErrNotFound
	}

	// A former member keeps no task assignments in the project.
	if _, err := tx.Exec(ctx,
		`DELETE FROM task_assignees WHERE project_id = $1 AND user_id = $2`,
		projectID, userID,
	); err != nil {
		return fmt.Errorf("removing task assignments: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func (r *Repository) MemberIDs(ctx context.Context, projectID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT user_id FROM project_members WHERE project_id = $1`, projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing member ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning member id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member ids: %w", err)
	}
	return ids, nil
}

func (r *Repository) ListMembers(ctx context.Context, projectID uuid.UUID, offset, limit int) ([]domainproject.MemberProfile, error) {
	query := `
		SELECT u.id, u.name, u.avatar
		FROM users u
		JOIN project_members m ON m.user_id = u.id
		WHERE m.project_id = $1
		ORDER BY u.name
		OFFSET $2 LIMIT $3`

	rows, err := r.pool.Query(ctx, query, projectID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("listing members: %w", err)
	}
	defer rows.Close()

	var members []domainproject.MemberProfile
	for rows.Next() {
		var m domainproject.MemberProfile
		if err := rows.Scan(&m.UserID, &m.Name, &m.Avatar); err != nil {
			return nil, fmt.Errorf("scanning member row: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating member rows: %w", err)
	}
	return members, nil
}

func (r *Repository) CountMembers(ctx context.Context, projectID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM project_members WHERE project_id = $1`, projectID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting members: %w", err)
	}
	return count, nil
}

func (r *Repository) ToggleFavorite(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	return r.toggle(ctx, "favorite_projects", projectID, userID)
}

func (r *Repository) ToggleArchive(ctx context.Context, projectID, userID uuid.UUID) (bool, error) {
	return r.toggle(ctx, "archived_projects", projectID, userID)
}

// toggle flips the (project, user) flag row in the given table and reports
// whether the flag is now set. Delete-first keeps the toggle idempotent under
// concurrent requests.
func (r *Repository) toggle(ctx context.Context, table string, projectID, userID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE project_id = $1 AND user_id = $2`, table),
		projectID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("clearing %s flag: %w", table, err)
	}
	if tag.RowsAffected() > 0 {
		return false, nil
	}

	if _, err := r.pool.Exec(ctx,
		fmt.Sprintf(`INSERT INTO %s (project_id, user_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`, table),
		projectID, userID,
	); err != nil {
		return false, fmt.Errorf("setting %s flag: %w", table, err)
	}
	return true, nil
}
