package task

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	domainnotif "github.com/avelar/taskhub/internal/domain/notification"
	domaintask "github.com/avelar/taskhub/internal/domain/task"
	portnotifier "github.com/avelar/taskhub/internal/port/notifier"
	portproject "github.com/avelar/taskhub/internal/port/project"
	porttask "github.com/avelar/taskhub/internal/port/task"
	portuser "github.com/avelar/taskhub/internal/port/user"
)

var (
	ErrNothingToUpdate = errors.New("provide at least one field to update")
	ErrInvalidStatus   = errors.New("invalid task status")
	ErrAlreadyAssigned = errors.New("user is already assigned to this task")
	ErrNotMember       = errors.New("cannot assign a user who is not a project member")
	ErrNotAssigned     = errors.New("user is not assigned to this task")
)

// dueDateLayout is how due dates appear in notification text.
const dueDateLayout = "02 Jan 2006"

type Service struct {
	repo       porttask.Repository
	projects   portproject.Repository
	users      portuser.Repository
	dispatcher portnotifier.Dispatcher
}

func NewService(repo porttask.Repository, projects portproject.Repository, users portuser.Repository, dispatcher portnotifier.Dispatcher) *Service {
	return &Service{repo: repo, projects: projects, users: users, dispatcher: dispatcher}
}

// Create inserts the task with the creator as its first assignee.
func (s *Service) Create(ctx context.Context, projectID, creatorID uuid.UUID, title, description string, dueDate *time.Time) (domaintask.Task, error) {
	created, err := s.repo.Create(ctx, domaintask.New(projectID, title, description, dueDate), creatorID)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("create task: %w", err)
	}
	return created, nil
}

// ListByProject returns every task in the project, newest first.
func (s *Service) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domaintask.Task, error) {
	tasks, err := s.repo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (domaintask.Task, []domaintask.Assignee, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domaintask.Task{}, nil, fmt.Errorf("get task: %w", err)
	}
	assignees, err := s.repo.ListAssignees(ctx, id)
	if err != nil {
		return domaintask.Task{}, nil, fmt.Errorf("list assignees: %w", err)
	}
	return t, assignees, nil
}

// Update applies the changed fields and notifies the other assignees about
// renames, status changes and due date changes.
func (s *Service) Update(ctx context.Context, id, actorID uuid.UUID, upd domaintask.Update) (domaintask.Task, error) {
	if upd.Empty() {
		return domaintask.Task{}, ErrNothingToUpdate
	}
	if upd.Status != nil && !upd.Status.Valid() {
		return domaintask.Task{}, ErrInvalidStatus
	}

	old, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domaintask.Task{}, fmt.Errorf("get task: %w", err)
	}

	updated := old
	if upd.Title != nil {
		updated.Title = *upd.Title
	}
	if upd.Description != nil {
		updated.Description = *upd.Description
	}
	if upd.Status != nil {
		updated.Status = *upd.Status
	}
	if upd.DueDate != nil {
		updated.DueDate = upd.DueDate
	}
	updated.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, updated); err != nil {
		return domaintask.Task{}, fmt.Errorf("update task: %w", err)
	}

	s.notifyUpdate(ctx, old, updated, actorID)
	return updated, nil
}

func (s *Service) notifyUpdate(ctx context.Context, old, updated domaintask.Task, actorID uuid.UUID) {
	recipients, err := s.assigneesExcept(ctx, old.ID, actorID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load update recipients", "task_id", old.ID, "error", err)
		return
	}

	projectName := ""
	if p, err := s.projects.GetByID(ctx, old.ProjectID); err == nil {
		projectName = p.Name
	} else {
		slog.ErrorContext(ctx, "failed to load project for task notification", "task_id", old.ID, "error", err)
	}
	by := s.actorName(ctx, actorID)

	var events []domainnotif.Event
	if updated.Title != old.Title {
		events = append(events, domainnotif.TaskRenamed{
			ProjectName: projectName,
			OldName:     old.Title,
			NewName:     updated.Title,
		})
	}
	if updated.Status != old.Status {
		events = append(events, domainnotif.TaskStatusChanged{
			ProjectName: projectName,
			TaskName:    updated.Title,
			By:          by,
			UpdatedData: string(updated.Status),
		})
	}
	if dueDateChanged(old.DueDate, updated.DueDate) {
		events = append(events, domainnotif.TaskDueDateChanged{
			ProjectName: projectName,
			TaskName:    updated.Title,
			By:          by,
			UpdatedData: updated.DueDate.Format(dueDateLayout),
		})
	}

	for _, ev := range events {
		if err := s.dispatcher.Dispatch(ctx, recipients, ev); err != nil {
			slog.ErrorContext(ctx, "failed to dispatch task update notification", "task_id", old.ID, "error", err)
		}
	}
}

// Delete removes the task and notifies its assignees.
func (s *Service) Delete(ctx context.Context, id, actorID uuid.UUID) (string, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", fmt.Errorf("get task: %w", err)
	}
	recipients, err := s.repo.AssigneeIDs(ctx, id)
	if err != nil {
		return "", fmt.Errorf("list assignees: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return "", fmt.Errorf("delete task: %w", err)
	}

	projectName := ""
	if p, err := s.projects.GetByID(ctx, t.ProjectID); err == nil {
		projectName = p.Name
	}
	if err := s.dispatcher.Dispatch(ctx, recipients, domainnotif.TaskDeleted{
		ProjectName: projectName,
		TaskName:    t.Title,
		By:          s.actorName(ctx, actorID),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to dispatch task delete notification", "task_id", id, "error", err)
	}
	return t.Title, nil
}

// Assignees returns who is assigned and which project members could still be.
func (s *Service) Assignees(ctx context.Context, id uuid.UUID) (assigned, available []domaintask.Assignee, err error) {
	assigned, err = s.repo.ListAssignees(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list assignees: %w", err)
	}
	available, err = s.repo.AvailableAssignees(ctx, id)
	if err != nil {
		return nil, nil, fmt.Errorf("list available assignees: %w", err)
	}
	return assigned, available, nil
}

// AddAssignee assigns a project member to the task and notifies them.
func (s *Service) AddAssignee(ctx context.Context, taskID, actorID, userID uuid.UUID) error {
	assigned, err := s.repo.IsAssignee(ctx, taskID, userID)
	if err != nil {
		return fmt.Errorf("check assignee: %w", err)
	}
	if assigned {
		return ErrAlreadyAssigned
	}

	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		return fmt.Errorf("get task: %w", err)
	}
	member, err := s.projects.IsMember(ctx, t.ProjectID, userID)
	if err != nil {
		return fmt.Errorf("check membership: %w", err)
	}
	if !member {
		return ErrNotMember
	}

	if err := s.repo.AddAssignee(ctx, taskID, userID, t.ProjectID); err != nil {
		return fmt.Errorf("add assignee: %w", err)
	}

	projectName := ""
	if p, err := s.projects.GetByID(ctx, t.ProjectID); err == nil {
		projectName = p.Name
	}
	if err := s.dispatcher.Dispatch(ctx, []uuid.UUID{userID}, domainnotif.AssignedToTask{
		ProjectName: projectName,
		TaskName:    t.Title,
		By:          s.actorName(ctx, actorID),
	}); err != nil {
		slog.ErrorContext(ctx, "failed to dispatch assignment notification", "task_id", taskID, "error", err)
	}
	return nil
}

// RemoveAssignee unassigns the user from the task.
func (s *Service) RemoveAssignee(ctx context.Context, taskID, userID uuid.UUID) error {
	assigned, err := s.repo.IsAssignee(ctx, taskID, userID)
	if err != nil {
		return fmt.Errorf("check assignee: %w", err)
	}
	if !assigned {
		return ErrNotAssigned
	}
	if err := s.repo.RemoveAssignee(ctx, taskID, userID); err != nil {
		return fmt.Errorf("remove assignee: %w", err)
	}
	return nil
}

// IsOwnerOrAssignee reports whether the user may act on the task: either they
// are assigned to it or they own its project. Used by the authorization
// middleware.
func (s *Service) IsOwnerOrAssignee(ctx context.Context, taskID, userID uuid.UUID) (bool, error) {
	assigned, err := s.repo.IsAssignee(ctx, taskID, userID)
	if err != nil {
		return false, err
	}
	if assigned {
		return true, nil
	}

	t, err := s.repo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, domaintask.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	p, err := s.projects.GetByID(ctx, t.ProjectID)
	if err != nil {
		return false, err
	}
	return p.OwnerID == userID, nil
}

func (s *Service) actorName(ctx context.Context, actorID uuid.UUID) string {
	u, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return actorID.String()
	}
	return u.Name
}

func (s *Service) assigneesExcept(ctx context.Context, taskID, exclude uuid.UUID) ([]uuid.UUID, error) {
	ids, err := s.repo.AssigneeIDs(ctx, taskID)
	if err != nil {
		return nil, err
	}
	out := ids[:0]
	for _, id := range ids {
		if id != exclude {
			out = append(out, id)
		}
	}
	return out, nil
}

func dueDateChanged(old, updated *time.Time) bool {
	switch {
	case old == nil && updated == nil:
		return false
	case old == nil || updated == nil:
		return updated != nil
	default:
		return !old.Equal(*updated)
	}
}
